package handlers

import (
	"net/http"

	"Lumme/internal/config"
	"Lumme/internal/middleware"
	"Lumme/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	productService *service.ProductService,
	orderService *service.OrderService,
	reviewService *service.ReviewService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithMetrics)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	productHandler := NewProductHandler(productService, logger)
	orderHandler := NewOrderHandler(orderService, logger)
	reviewHandler := NewReviewHandler(reviewService, logger)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, service.ErrNotFound.Error())
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", Health)

		// Auth routes
		r.Post("/auth/register", userHandler.Register)
		r.Post("/auth/login", userHandler.Login)

		// Catalog
		r.Get("/products", productHandler.List)
		r.Get("/products/{id}", productHandler.Get)
		r.Get("/products/{id}/reviews", reviewHandler.ListByProduct)

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Post("/products", productHandler.Create)
			r.Put("/products/{id}", productHandler.Update)
			r.Delete("/products/{id}", productHandler.Delete)

			r.Post("/orders", orderHandler.Create)
			r.Get("/orders", orderHandler.List)
			r.Put("/orders/{id}/status", orderHandler.UpdateStatus)

			r.Post("/reviews", reviewHandler.Create)
		})
	})

	return &Handler{Router: r}
}
