package handlers

import (
	"net/http"
	"time"

	"Lumme/internal/middleware"
	"Lumme/internal/model"
	"Lumme/internal/service"

	"go.uber.org/zap"
)

// OrderHandler — оформление заказов и смена статуса.
type OrderHandler struct {
	OrderService *service.OrderService
	Logger       *zap.SugaredLogger
}

func NewOrderHandler(orderService *service.OrderService, logger *zap.SugaredLogger) *OrderHandler {
	return &OrderHandler{OrderService: orderService, Logger: logger}
}

// Цена позиции от клиента принимается, но сумма считается по каталогу.
type orderItemRequest struct {
	ID       int64   `json:"id"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type orderRequest struct {
	Items           []orderItemRequest `json:"items"`
	DeliveryAddress string             `json:"delivery_address"`
	DeliveryDate    string             `json:"delivery_date"`
	DeliveryTime    string             `json:"delivery_time"`
	PersonalMessage string             `json:"personal_message"`
	PaymentMethod   string             `json:"payment_method"`
}

type orderDTO struct {
	ID              int64   `json:"id"`
	OrderNumber     string  `json:"order_number"`
	TotalAmount     float64 `json:"total_amount"`
	DeliveryAddress string  `json:"delivery_address"`
	DeliveryDate    string  `json:"delivery_date"`
	OrderStatus     string  `json:"order_status"`
	CreatedAt       string  `json:"created_at"`
}

func toOrderDTO(o *model.Order) orderDTO {
	return orderDTO{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		TotalAmount:     o.TotalAmount,
		DeliveryAddress: o.DeliveryAddress,
		DeliveryDate:    o.DeliveryDate.Format(time.DateOnly),
		OrderStatus:     o.OrderStatus,
		CreatedAt:       o.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// Create оформление заказа покупателем
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	var req orderRequest
	if !decodeJSON(w, r, h.Logger, "CreateOrder", &req) {
		return
	}
	in := service.OrderInput{
		Items:           make([]service.OrderItemInput, 0, len(req.Items)),
		DeliveryAddress: req.DeliveryAddress,
		DeliveryDate:    req.DeliveryDate,
		DeliveryTime:    req.DeliveryTime,
		PersonalMessage: req.PersonalMessage,
		PaymentMethod:   req.PaymentMethod,
	}
	for _, it := range req.Items {
		in.Items = append(in.Items, service.OrderItemInput{ProductID: it.ID, Quantity: it.Quantity})
	}

	o, err := h.OrderService.Create(r.Context(), userID, in)
	if err != nil {
		writeServiceError(w, h.Logger, "CreateOrder", err)
		return
	}
	h.Logger.Infow("order created", "order_number", o.OrderNumber, "total", o.TotalAmount)
	writeJSON(w, http.StatusCreated, map[string]any{
		"success":      true,
		"order_number": o.OrderNumber,
		"order_id":     o.ID,
		"total_amount": o.TotalAmount,
	})
}

// List заказы покупателя или продавца
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	orders, err := h.OrderService.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.Logger, "ListOrders", err)
		return
	}
	data := make([]orderDTO, 0, len(orders))
	for i := range orders {
		data = append(data, toOrderDTO(&orders[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": data})
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if !decodeJSON(w, r, h.Logger, "UpdateOrderStatus", &req) {
		return
	}
	o, err := h.OrderService.UpdateStatus(r.Context(), userID, id, req.Status)
	if err != nil {
		writeServiceError(w, h.Logger, "UpdateOrderStatus", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "order_status": o.OrderStatus})
}
