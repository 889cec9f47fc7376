package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAboutEmptyDefault(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/about", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	require.Equal(t, "", data["bio"])
	require.NotNil(t, data["skills"])
	require.Empty(t, data["skills"])
}

func TestAboutUpdateRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/about", "", map[string]string{"bio": "hi"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAboutRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/about", env.adminToken, map[string]interface{}{
		"bio": "Backend engineer", "title": "Engineer", "skills": []string{"Go", "MongoDB"},
		"displayName": "Ada", "initials": "AL",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/about", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	require.Equal(t, "Backend engineer", data["bio"])
	require.Equal(t, []interface{}{"Go", "MongoDB"}, data["skills"])
}
