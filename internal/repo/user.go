package repo

import (
	"context"

	"Lumme/internal/model"

	"gorm.io/gorm"
)

// UserRepository — доступ к пользователям и их профилям.
type UserRepository interface {
	// CreateSeller создаёт пользователя и профиль магазина в одной транзакции.
	CreateSeller(ctx context.Context, user *model.User, seller *model.Seller) error
	// CreateCustomer создаёт пользователя и профиль покупателя в одной транзакции.
	CreateCustomer(ctx context.Context, user *model.User, customer *model.Customer) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	GetSellerByUserID(ctx context.Context, userID int64) (*model.Seller, error)
	GetCustomerByUserID(ctx context.Context, userID int64) (*model.Customer, error)
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateSeller(ctx context.Context, user *model.User, seller *model.Seller) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		seller.UserID = user.ID
		return tx.Create(seller).Error
	})
}

func (r *userRepo) CreateCustomer(ctx context.Context, user *model.User, customer *model.Customer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		customer.UserID = user.ID
		return tx.Create(customer).Error
	})
}

// GetUserByEmail возвращает gorm.ErrRecordNotFound, если пользователя нет.
func (r *userRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetSellerByUserID(ctx context.Context, userID int64) (*model.Seller, error) {
	var s model.Seller
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *userRepo) GetCustomerByUserID(ctx context.Context, userID int64) (*model.Customer, error) {
	var c model.Customer
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
