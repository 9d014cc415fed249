package repo

import (
	"context"

	"Lumme/internal/model"

	"gorm.io/gorm"
)

// ReviewRepository — доступ к отзывам.
type ReviewRepository interface {
	// Create сохраняет отзыв и пересчитывает рейтинг и число отзывов товара.
	Create(ctx context.Context, review *model.Review) error
	// ListByProduct возвращает отзывы с профилем покупателя (для имени).
	ListByProduct(ctx context.Context, productID int64) ([]model.Review, error)
}

type reviewRepo struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepo{db: db}
}

func (r *reviewRepo) Create(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Customer").Create(review).Error; err != nil {
			return err
		}
		var agg struct {
			Avg   float64
			Count int
		}
		if err := tx.Model(&model.Review{}).
			Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
			Where("product_id = ?", review.ProductID).
			Scan(&agg).Error; err != nil {
			return err
		}
		return tx.Model(&model.Product{}).Where("id = ?", review.ProductID).Updates(map[string]any{
			"rating":       agg.Avg,
			"review_count": agg.Count,
		}).Error
	})
}

func (r *reviewRepo) ListByProduct(ctx context.Context, productID int64) ([]model.Review, error) {
	var list []model.Review
	err := r.db.WithContext(ctx).
		Preload("Customer.User").
		Where("product_id = ?", productID).
		Order("id").
		Find(&list).Error
	return list, err
}
