package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetupOnlyOnce(t *testing.T) {
	env := newTestEnv(t) // already ran setup

	w := env.do(t, http.MethodPost, "/api/setup", "", map[string]string{
		"email": "second@example.com", "password": "secret1", "name": "Second",
	})
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginRefreshLogout(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "admin@example.com", "password": env.adminPassword,
	})
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	access, _ := data["accessToken"].(string)
	refresh, _ := data["refreshToken"].(string)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	// the minted token works against a gated route
	w = env.do(t, http.MethodGet, "/api/contact", access, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/api/auth/refresh", "", map[string]string{"refreshToken": refresh})
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, decodeData(t, w)["accessToken"])

	w = env.do(t, http.MethodPost, "/api/auth/logout", access, map[string]string{"refreshToken": refresh})
	require.Equal(t, http.StatusOK, w.Code)

	// refresh session is gone
	w = env.do(t, http.MethodPost, "/api/auth/refresh", "", map[string]string{"refreshToken": refresh})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginBadCredentials(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "admin@example.com", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestChangePasswordEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/change-password", env.adminToken, map[string]string{
		"currentPassword": "wrong", "newPassword": "newsecret",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodPost, "/api/auth/change-password", env.adminToken, map[string]string{
		"currentPassword": env.adminPassword, "newPassword": "newsecret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// old password no longer logs in
	w = env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "admin@example.com", "password": env.adminPassword,
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	w = env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "admin@example.com", "password": "newsecret",
	})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestSecurityInfo(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/change-password", env.adminToken, map[string]string{
		"currentPassword": env.adminPassword, "newPassword": "newsecret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/auth/security-info", env.adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	require.Equal(t, "admin@example.com", data["email"])
	require.NotNil(t, data["lastPasswordChange"])
}

func TestUpdateProfileAndPublicProfile(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/update-profile", env.adminToken, map[string]string{
		"github": "https://github.com/admin",
		"mobile": "+123456",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/auth/update-profile", env.adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "https://github.com/admin", decodeData(t, w)["github"])

	// public reduced profile needs no token
	w = env.do(t, http.MethodGet, "/api/profile", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	require.Equal(t, "+123456", data["mobile"])
	require.Equal(t, "admin@example.com", data["email"])
}
