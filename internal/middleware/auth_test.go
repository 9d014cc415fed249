package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bearer(t *testing.T, req *http.Request, userID int64, secret string, ttl time.Duration) {
	t.Helper()
	tok, err := IssueToken(userID, secret, ttl)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+tok)
}

// Тест: IssueToken + WithAuth — user_id попадает в контекст
func TestWithAuth_ValidBearerSetsUserID(t *testing.T) {
	const secret = "test-secret"

	var got int64
	h := WithAuth(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, ok := GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		got = uid
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	bearer(t, req, 77, secret, time.Hour)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(77), got)
}

// Тест: отсутствие заголовка — user_id не устанавливается
func TestWithAuth_NoHeaderLeavesAnonymous(t *testing.T) {
	h := WithAuth("any-secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserIDFromContext(r.Context()); ok {
			t.Fatalf("user id must not be set without token")
		}
		w.WriteHeader(http.StatusOK)
	}))

	for _, hdr := range []string{"", "Bearer", "Basic abc", "Token xyz"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if hdr != "" {
			req.Header.Set("Authorization", hdr)
		}
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code, hdr)
	}
}

// Тест: чужой секрет или истёкший токен — user_id не устанавливается
func TestWithAuth_InvalidOrExpiredToken(t *testing.T) {
	h := WithAuth("secret-B")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserIDFromContext(r.Context()); ok {
			t.Fatalf("user id must not be set with invalid token")
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	bearer(t, req, 5, "secret-A", time.Hour)
	h.ServeHTTP(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	bearer(t, req, 5, "secret-B", -time.Minute)
	h.ServeHTTP(httptest.NewRecorder(), req)
}

func TestRequireAuth(t *testing.T) {
	const secret = "s"
	h := WithAuth(secret)(RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, map[string]any{"success": false, "error": "Unauthorized"}, body)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	bearer(t, req, 1, secret, time.Hour)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestParseToken_RejectsGarbage(t *testing.T) {
	_, err := ParseToken("not-a-jwt", "s")
	assert.Error(t, err)
}
