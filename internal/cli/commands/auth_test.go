package commands

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Lumme/internal/cli/service"
)

const authOK = `{"success":true,"token":"tok-123","user":{"id":7,"email":"anna@lumme.tj","first_name":"Anna","user_type":"customer"}}`

func TestLogin_Run_StoresSession(t *testing.T) {
	f, ts := newFakeAPI(t)
	f.on("POST /auth/login", 200, authOK)
	cfg := withTempConfig(t, ts.URL)

	out := withStdoutCapture(t, func() {
		require.NoError(t, loginCmd{}.Run(context.Background(), cfg, []string{"anna@lumme.tj", "secret"}))
	})
	assert.Contains(t, out, "Logged in as anna@lumme.tj (customer)")

	call := f.last(t)
	assert.Equal(t, map[string]any{"email": "anna@lumme.tj", "password": "secret"}, call.Body)
	assert.Empty(t, call.Auth)

	// токен лежит в StateDir/token
	b, err := os.ReadFile(filepath.Join(cfg.StateDir, "token"))
	require.NoError(t, err)
	assert.Equal(t, "tok-123", strings.TrimSpace(string(b)))

	// следующий вызов идёт с Bearer
	f.on("GET /orders", 200, `{"success":true,"data":[]}`)
	withStdoutCapture(t, func() {
		require.NoError(t, ordersCmd{}.Run(context.Background(), cfg, nil))
	})
	assert.Equal(t, "Bearer tok-123", f.last(t).Auth)

	out = withStdoutCapture(t, func() {
		require.NoError(t, whoamiCmd{}.Run(context.Background(), cfg, nil))
	})
	assert.Contains(t, out, "anna@lumme.tj")
	assert.Contains(t, out, "Anna")
}

func TestLogin_Run_Errors(t *testing.T) {
	f, ts := newFakeAPI(t)
	f.on("POST /auth/login", 401, `{"success":false,"error":"Invalid credentials"}`)
	cfg := withTempConfig(t, ts.URL)

	err := loginCmd{}.Run(context.Background(), cfg, []string{"a@b.c", "bad"})
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())

	assert.ErrorIs(t, loginCmd{}.Run(context.Background(), cfg, []string{"only"}), ErrUsage)

	// ошибка входа не сохраняет сессию
	assert.ErrorIs(t, whoamiCmd{}.Run(context.Background(), cfg, nil), service.ErrNotLoggedIn)
}

func TestRegister_Run_SellerFlags(t *testing.T) {
	f, ts := newFakeAPI(t)
	f.on("POST /auth/register", 201, `{"success":true,"token":"t-s","user":{"id":1,"email":"shop@lumme.tj","user_type":"seller"}}`)
	cfg := withTempConfig(t, ts.URL)

	out := withStdoutCapture(t, func() {
		require.NoError(t, registerCmd{}.Run(context.Background(), cfg,
			[]string{"-seller", "-shop", "Роза", "-first-name", "Dilnoza", "shop@lumme.tj", "pwd"}))
	})
	assert.Contains(t, out, "Registered shop@lumme.tj (seller)")
	assert.Equal(t, map[string]any{
		"email": "shop@lumme.tj", "password": "pwd", "user_type": "seller",
		"shop_name": "Роза", "first_name": "Dilnoza",
	}, f.last(t).Body)

	assert.ErrorIs(t, registerCmd{}.Run(context.Background(), cfg, []string{"x@y.z"}), ErrUsage)
	assert.ErrorIs(t, registerCmd{}.Run(context.Background(), cfg, []string{"-bogus", "x@y.z", "p"}), ErrUsage)
}

func TestRegister_Run_CustomerDefault(t *testing.T) {
	f, ts := newFakeAPI(t)
	f.on("POST /auth/register", 400, `{"success":false,"error":"user exists"}`)
	cfg := withTempConfig(t, ts.URL)

	err := registerCmd{}.Run(context.Background(), cfg, []string{"c@lumme.tj", "pwd"})
	require.EqualError(t, err, "user exists")
	assert.Equal(t, "customer", f.last(t).Body["user_type"])
}

func TestLogout_Run_ClearsState(t *testing.T) {
	f, ts := newFakeAPI(t)
	f.on("POST /auth/login", 200, authOK)
	cfg := withTempConfig(t, ts.URL)

	withStdoutCapture(t, func() {
		require.NoError(t, loginCmd{}.Run(context.Background(), cfg, []string{"anna@lumme.tj", "secret"}))
		require.NoError(t, cartAddCmd{}.Run(context.Background(), cfg, []string{"3"}))
		require.NoError(t, logoutCmd{}.Run(context.Background(), cfg, nil))
	})
	for _, key := range []string{"token", "user", "cart"} {
		_, err := os.Stat(filepath.Join(cfg.StateDir, key))
		assert.True(t, os.IsNotExist(err), "key %s must be removed", key)
	}
	// повторный logout не ошибка
	withStdoutCapture(t, func() {
		assert.NoError(t, logoutCmd{}.Run(context.Background(), cfg, nil))
	})
}

func TestHealth_Run(t *testing.T) {
	f, ts := newFakeAPI(t)
	f.on("GET /health", 200, `{"status":"ok","message":"Lumme API is running","version":"1.0.0","timestamp":"2026-10-18T10:00:00"}`)
	cfg := withTempConfig(t, ts.URL)

	out := withStdoutCapture(t, func() {
		require.NoError(t, healthCmd{}.Run(context.Background(), cfg, nil))
	})
	assert.Contains(t, out, "Status: ok (version 1.0.0)")
	assert.ErrorIs(t, healthCmd{}.Run(context.Background(), cfg, []string{"extra"}), ErrUsage)

	// битый JSON
	f.on("GET /health", 200, "{")
	assert.Error(t, healthCmd{}.Run(context.Background(), cfg, nil))
}
