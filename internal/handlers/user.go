package handlers

import (
	"net/http"

	"Lumme/internal/config"
	"Lumme/internal/middleware"
	"Lumme/internal/model"
	"Lumme/internal/service"

	"go.uber.org/zap"
)

// UserHandler — регистрация и вход.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger, Config: cfg}
}

type registerRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Phone           string `json:"phone"`
	UserType        string `json:"user_type"`
	ShopName        string `json:"shop_name"`
	ShopDescription string `json:"shop_description"`
	ShopAddress     string `json:"shop_address"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userDTO struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	UserType  string `json:"user_type"`
}

type authResponse struct {
	Success bool    `json:"success"`
	Token   string  `json:"token"`
	User    userDTO `json:"user"`
}

// Register регистрация пользователя
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, h.Logger, "Register", &req) {
		return
	}
	user, err := h.UserService.Register(r.Context(), service.RegisterInput{
		Email:           req.Email,
		Password:        req.Password,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           req.Phone,
		UserType:        req.UserType,
		ShopName:        req.ShopName,
		ShopDescription: req.ShopDescription,
		ShopAddress:     req.ShopAddress,
	})
	if err != nil {
		writeServiceError(w, h.Logger, "Register", err)
		return
	}
	h.Logger.Infow("user registered", "user_id", user.ID, "user_type", user.UserType)
	h.respondWithToken(w, http.StatusCreated, user)
}

// Login вход по email и паролю
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, h.Logger, "Login", &req) {
		return
	}
	user, err := h.UserService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, h.Logger, "Login", err)
		return
	}
	h.respondWithToken(w, http.StatusOK, user)
}

func (h *UserHandler) respondWithToken(w http.ResponseWriter, status int, user *model.User) {
	token, err := middleware.IssueToken(user.ID, h.Config.AuthSecret, h.Config.TokenTTL)
	if err != nil {
		h.Logger.Errorw("failed to issue token", "user_id", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, status, authResponse{
		Success: true,
		Token:   token,
		User: userDTO{
			ID:        user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			UserType:  user.UserType,
		},
	})
}
