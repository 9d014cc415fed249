package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"Lumme/internal/config"
	"Lumme/internal/handlers"
	"Lumme/internal/middleware"
	"Lumme/internal/repo"
	"Lumme/internal/service"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newHandlersTestRouter собирает роутер поверх SQLite во временном каталоге.
func newHandlersTestRouter(t *testing.T) (http.Handler, *config.Config) {
	t.Helper()
	cfg := &config.Config{AuthSecret: "test-secret", TokenTTL: time.Hour}
	logger := zap.NewNop().Sugar()

	db, err := repo.InitDB(filepath.Join(t.TempDir(), "handlers.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	users := repo.NewUserRepository(db)
	products := repo.NewProductRepository(db)
	orders := repo.NewOrderRepository(db)
	reviews := repo.NewReviewRepository(db)

	h := handlers.NewHandler(
		service.NewUserService(users),
		service.NewProductService(products, users),
		service.NewOrderService(orders, products, users),
		service.NewReviewService(reviews, products, users),
		logger,
		cfg,
	)
	return h.Router, cfg
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &m), rr.Body.String())
	return m
}

// register регистрирует пользователя и возвращает токен.
func register(t *testing.T, router http.Handler, email, userType string) string {
	t.Helper()
	rr := doJSON(t, router, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email": email, "password": "secret", "first_name": "Ира", "last_name": "К", "user_type": userType,
		"shop_name": "Гул",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode(t, rr)["token"].(string)
}

func tokenFor(t *testing.T, cfg *config.Config, userID int64) string {
	t.Helper()
	tok, err := middleware.IssueToken(userID, cfg.AuthSecret, time.Hour)
	require.NoError(t, err)
	return tok
}
