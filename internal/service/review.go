package service

import (
	"context"

	"Lumme/internal/model"
	"Lumme/internal/repo"
)

// ReviewInput — данные нового отзыва.
type ReviewInput struct {
	OrderID    int64
	ProductID  int64
	SellerID   int64
	Rating     int
	ReviewText string
}

// ReviewService — отзывы покупателей.
type ReviewService struct {
	reviews  repo.ReviewRepository
	products repo.ProductRepository
	users    repo.UserRepository
}

func NewReviewService(r repo.ReviewRepository, p repo.ProductRepository, u repo.UserRepository) *ReviewService {
	return &ReviewService{reviews: r, products: p, users: u}
}

// Create сохраняет отзыв покупателя и пересчитывает рейтинг товара.
func (s *ReviewService) Create(ctx context.Context, userID int64, in ReviewInput) (*model.Review, error) {
	customer, err := customerOf(ctx, s.users, userID, "leave reviews")
	if err != nil {
		return nil, err
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, invalid("rating must be between 1 and 5")
	}
	p, err := s.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, notFound(err)
	}
	sellerID := in.SellerID
	if sellerID == 0 {
		sellerID = p.SellerID
	}
	r := &model.Review{
		OrderID:    in.OrderID,
		CustomerID: customer.ID,
		ProductID:  p.ID,
		SellerID:   sellerID,
		Rating:     in.Rating,
		ReviewText: in.ReviewText,
	}
	if err := s.reviews.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *ReviewService) ListByProduct(ctx context.Context, productID int64) ([]model.Review, error) {
	return s.reviews.ListByProduct(ctx, productID)
}
