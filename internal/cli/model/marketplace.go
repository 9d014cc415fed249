package model

import "encoding/json"

// User — профиль пользователя, возвращаемый при регистрации/входе.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	UserType  string `json:"user_type"`
}

// AuthResponse — ответ /auth/register и /auth/login.
type AuthResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// SellerRef — краткие сведения о продавце внутри товара.
type SellerRef struct {
	ID       int64   `json:"id"`
	ShopName string  `json:"shop_name"`
	Rating   float64 `json:"rating"`
}

// Product — товар каталога.
type Product struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Price         float64         `json:"price"`
	Description   string          `json:"description"`
	Composition   json.RawMessage `json:"composition,omitempty"` // строка или JSON-список цветов
	Occasion      string          `json:"occasion"`
	Size          string          `json:"size"`
	StockQuantity int             `json:"stock_quantity"`
	IsInStock     bool            `json:"is_in_stock"`
	ImageURL      string          `json:"image_url"`
	Rating        float64         `json:"rating"`
	ReviewCount   int             `json:"review_count"`
	Seller        SellerRef       `json:"seller"`
}

// ProductInput — тело создания/обновления товара. Пустые поля не отправляются,
// поэтому при обновлении сервер сохраняет прежние значения.
type ProductInput struct {
	Name          string          `json:"name,omitempty"`
	Description   string          `json:"description,omitempty"`
	Price         *float64        `json:"price,omitempty"`
	Composition   json.RawMessage `json:"composition,omitempty"`
	Occasion      string          `json:"occasion,omitempty"`
	Size          string          `json:"size,omitempty"`
	StockQuantity *int            `json:"stock_quantity,omitempty"`
	ImageURL      string          `json:"image_url,omitempty"`
}

// Pagination — блок пагинации списка товаров.
type Pagination struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
	Pages   int `json:"pages"`
}

// ProductList — ответ GET /products.
type ProductList struct {
	Success    bool       `json:"success"`
	Data       []Product  `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// ProductResponse — ответ с одним товаром.
type ProductResponse struct {
	Success bool    `json:"success"`
	Data    Product `json:"data"`
}

// MessageResponse — ответ без данных (например, удаление).
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// OrderItemInput — позиция заказа в запросе.
type OrderItemInput struct {
	ID       int64   `json:"id"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// OrderInput — тело POST /orders. DeliveryDate в формате YYYY-MM-DD.
type OrderInput struct {
	Items           []OrderItemInput `json:"items"`
	DeliveryAddress string           `json:"delivery_address"`
	DeliveryDate    string           `json:"delivery_date"`
	DeliveryTime    string           `json:"delivery_time,omitempty"`
	PersonalMessage string           `json:"personal_message,omitempty"`
	PaymentMethod   string           `json:"payment_method,omitempty"`
}

// OrderCreated — ответ POST /orders.
type OrderCreated struct {
	Success     bool    `json:"success"`
	OrderNumber string  `json:"order_number"`
	OrderID     int64   `json:"order_id"`
	TotalAmount float64 `json:"total_amount"`
}

// Order — заказ в списке GET /orders.
type Order struct {
	ID              int64   `json:"id"`
	OrderNumber     string  `json:"order_number"`
	TotalAmount     float64 `json:"total_amount"`
	DeliveryAddress string  `json:"delivery_address"`
	DeliveryDate    string  `json:"delivery_date"`
	OrderStatus     string  `json:"order_status"`
	CreatedAt       string  `json:"created_at"`
}

// OrderList — ответ GET /orders.
type OrderList struct {
	Success bool    `json:"success"`
	Data    []Order `json:"data"`
}

// OrderStatusResponse — ответ PUT /orders/{id}/status.
type OrderStatusResponse struct {
	Success     bool   `json:"success"`
	OrderStatus string `json:"order_status"`
}

// ReviewInput — тело POST /reviews.
type ReviewInput struct {
	OrderID    int64  `json:"order_id"`
	ProductID  int64  `json:"product_id"`
	SellerID   int64  `json:"seller_id"`
	Rating     int    `json:"rating"`
	ReviewText string `json:"review_text,omitempty"`
}

// ReviewCreated — ответ POST /reviews.
type ReviewCreated struct {
	Success  bool  `json:"success"`
	ReviewID int64 `json:"review_id"`
}

// Review — отзыв о товаре.
type Review struct {
	ID           int64  `json:"id"`
	Rating       int    `json:"rating"`
	ReviewText   string `json:"review_text"`
	CustomerName string `json:"customer_name"`
	CreatedAt    string `json:"created_at"`
}

// ReviewList — ответ GET /products/{id}/reviews.
type ReviewList struct {
	Success bool     `json:"success"`
	Data    []Review `json:"data"`
}

// Health — ответ GET /health.
type Health struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// CartItem — позиция локальной корзины.
type CartItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}
