package service

import (
	"context"
	"errors"
	"fmt"

	"Lumme/internal/model"
	"Lumme/internal/repo"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const defaultShopName = "My shop"

// RegisterInput — данные регистрации.
type RegisterInput struct {
	Email           string
	Password        string
	FirstName       string
	LastName        string
	Phone           string
	UserType        string
	ShopName        string
	ShopDescription string
	ShopAddress     string
}

// UserService — регистрация и вход.
type UserService struct {
	repo repo.UserRepository
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

// Register создаёт пользователя и профиль продавца или покупателя.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	if in.Email == "" || in.Password == "" {
		return nil, invalid("email and password are required")
	}
	if in.UserType == "" {
		in.UserType = model.UserTypeCustomer
	}
	if in.UserType != model.UserTypeCustomer && in.UserType != model.UserTypeSeller {
		return nil, invalid("user_type must be customer or seller")
	}

	existing, err := s.repo.GetUserByEmail(ctx, in.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &model.User{
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		UserType:     in.UserType,
		IsActive:     true,
	}

	if in.UserType == model.UserTypeSeller {
		shop := in.ShopName
		if shop == "" {
			shop = defaultShopName
		}
		err = s.repo.CreateSeller(ctx, user, &model.Seller{
			ShopName:        shop,
			ShopDescription: in.ShopDescription,
			ShopAddress:     in.ShopAddress,
			ShopPhone:       in.Phone,
		})
	} else {
		err = s.repo.CreateCustomer(ctx, user, &model.Customer{})
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login проверяет пароль. Неизвестный email и неверный пароль неразличимы.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, invalid("email and password are required")
	}
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrInactive
	}
	return user, nil
}

// sellerOf возвращает профиль продавца или ErrForbidden с пояснением.
func sellerOf(ctx context.Context, users repo.UserRepository, userID int64, action string) (*model.Seller, error) {
	s, err := users.GetSellerByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: only sellers can %s", ErrForbidden, action)
		}
		return nil, err
	}
	return s, nil
}

func customerOf(ctx context.Context, users repo.UserRepository, userID int64, action string) (*model.Customer, error) {
	c, err := users.GetCustomerByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: only customers can %s", ErrForbidden, action)
		}
		return nil, err
	}
	return c, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
