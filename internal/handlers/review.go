package handlers

import (
	"net/http"
	"strings"
	"time"

	"Lumme/internal/middleware"
	"Lumme/internal/model"
	"Lumme/internal/service"

	"go.uber.org/zap"
)

// ReviewHandler — отзывы о товарах.
type ReviewHandler struct {
	ReviewService *service.ReviewService
	Logger        *zap.SugaredLogger
}

func NewReviewHandler(reviewService *service.ReviewService, logger *zap.SugaredLogger) *ReviewHandler {
	return &ReviewHandler{ReviewService: reviewService, Logger: logger}
}

type reviewRequest struct {
	OrderID    int64  `json:"order_id"`
	ProductID  int64  `json:"product_id"`
	SellerID   int64  `json:"seller_id"`
	Rating     int    `json:"rating"`
	ReviewText string `json:"review_text"`
}

type reviewDTO struct {
	ID           int64  `json:"id"`
	Rating       int    `json:"rating"`
	ReviewText   string `json:"review_text"`
	CustomerName string `json:"customer_name"`
	CreatedAt    string `json:"created_at"`
}

func customerName(r *model.Review) string {
	if r.Customer == nil || r.Customer.User == nil {
		return ""
	}
	return strings.TrimSpace(r.Customer.User.FirstName + " " + r.Customer.User.LastName)
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	var req reviewRequest
	if !decodeJSON(w, r, h.Logger, "CreateReview", &req) {
		return
	}
	rv, err := h.ReviewService.Create(r.Context(), userID, service.ReviewInput{
		OrderID:    req.OrderID,
		ProductID:  req.ProductID,
		SellerID:   req.SellerID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	})
	if err != nil {
		writeServiceError(w, h.Logger, "CreateReview", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "review_id": rv.ID})
}

// ListByProduct отзывы о товаре в порядке добавления
func (h *ReviewHandler) ListByProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	reviews, err := h.ReviewService.ListByProduct(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.Logger, "ListReviews", err)
		return
	}
	data := make([]reviewDTO, 0, len(reviews))
	for i := range reviews {
		rv := &reviews[i]
		data = append(data, reviewDTO{
			ID:           rv.ID,
			Rating:       rv.Rating,
			ReviewText:   rv.ReviewText,
			CustomerName: customerName(rv),
			CreatedAt:    rv.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": data})
}
