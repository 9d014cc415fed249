package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"Lumme/internal/middleware"
	"Lumme/internal/model"
	"Lumme/internal/repo"
	"Lumme/internal/service"

	"go.uber.org/zap"
)

// ProductHandler — каталог и товары продавца.
type ProductHandler struct {
	ProductService *service.ProductService
	Logger         *zap.SugaredLogger
}

func NewProductHandler(productService *service.ProductService, logger *zap.SugaredLogger) *ProductHandler {
	return &ProductHandler{ProductService: productService, Logger: logger}
}

type sellerDTO struct {
	ID       int64   `json:"id"`
	ShopName string  `json:"shop_name"`
	Rating   float64 `json:"rating"`
}

type productDTO struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Price         float64         `json:"price"`
	Description   string          `json:"description"`
	Composition   json.RawMessage `json:"composition"`
	Occasion      string          `json:"occasion"`
	Size          string          `json:"size"`
	StockQuantity int             `json:"stock_quantity"`
	IsInStock     bool            `json:"is_in_stock"`
	ImageURL      string          `json:"image_url"`
	Rating        float64         `json:"rating"`
	ReviewCount   int             `json:"review_count"`
	Seller        sellerDTO       `json:"seller"`
}

type productRequest struct {
	Name          *string         `json:"name"`
	Description   *string         `json:"description"`
	Price         *float64        `json:"price"`
	Composition   json.RawMessage `json:"composition"`
	Occasion      *string         `json:"occasion"`
	Size          *string         `json:"size"`
	StockQuantity *int            `json:"stock_quantity"`
	ImageURL      *string         `json:"image_url"`
}

func (req productRequest) input() service.ProductInput {
	in := service.ProductInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Occasion:      req.Occasion,
		Size:          req.Size,
		StockQuantity: req.StockQuantity,
		ImageURL:      req.ImageURL,
	}
	if len(req.Composition) > 0 && string(req.Composition) != "null" {
		in.Composition = req.Composition
	}
	return in
}

type pagination struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
}

func toProductDTO(p *model.Product) productDTO {
	dto := productDTO{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		Description:   p.Description,
		Occasion:      p.Occasion,
		Size:          p.Size,
		StockQuantity: p.StockQuantity,
		IsInStock:     p.IsInStock,
		ImageURL:      p.ImageURL,
		Rating:        p.Rating,
		ReviewCount:   p.ReviewCount,
		Seller:        sellerDTO{ID: p.SellerID},
	}
	// состав хранится как прислан; не-JSON отдаём строкой
	switch {
	case p.Composition == "":
		dto.Composition = json.RawMessage("null")
	case json.Valid([]byte(p.Composition)):
		dto.Composition = json.RawMessage(p.Composition)
	default:
		b, _ := json.Marshal(p.Composition)
		dto.Composition = b
	}
	if p.Seller != nil {
		dto.Seller.ShopName = p.Seller.ShopName
		dto.Seller.Rating = p.Seller.Rating
	}
	return dto
}

// List каталог товаров в наличии
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := repo.ProductFilter{
		Occasion: q.Get("occasion"),
		Size:     q.Get("size"),
	}
	f.Page, _ = strconv.Atoi(q.Get("page"))
	f.PerPage, _ = strconv.Atoi(q.Get("per_page"))
	if v, err := strconv.ParseFloat(q.Get("min_price"), 64); err == nil {
		f.MinPrice = v
	}
	if v, err := strconv.ParseFloat(q.Get("max_price"), 64); err == nil {
		f.MaxPrice = &v
	}

	page, err := h.ProductService.List(r.Context(), f)
	if err != nil {
		writeServiceError(w, h.Logger, "ListProducts", err)
		return
	}
	data := make([]productDTO, 0, len(page.Items))
	for i := range page.Items {
		data = append(data, toProductDTO(&page.Items[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    data,
		"pagination": pagination{
			Page:    page.Page,
			PerPage: page.PerPage,
			Total:   page.Total,
			Pages:   page.Pages,
		},
	})
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	p, err := h.ProductService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.Logger, "GetProduct", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": toProductDTO(p)})
}

// Create новый товар продавца
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	var req productRequest
	if !decodeJSON(w, r, h.Logger, "CreateProduct", &req) {
		return
	}
	p, err := h.ProductService.Create(r.Context(), userID, req.input())
	if err != nil {
		writeServiceError(w, h.Logger, "CreateProduct", err)
		return
	}
	h.Logger.Infow("product created", "product_id", p.ID, "seller_id", p.SellerID)
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "data": toProductDTO(p)})
}

// Update частичное обновление товара
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req productRequest
	if !decodeJSON(w, r, h.Logger, "UpdateProduct", &req) {
		return
	}
	p, err := h.ProductService.Update(r.Context(), userID, id, req.input())
	if err != nil {
		writeServiceError(w, h.Logger, "UpdateProduct", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": toProductDTO(p)})
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.ProductService.Delete(r.Context(), userID, id); err != nil {
		writeServiceError(w, h.Logger, "DeleteProduct", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Product deleted"})
}
