package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContactPublicCreate(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/contact", "", map[string]string{
		"name": "Alice", "email": "a@x.com", "message": "Hello, interested in working together",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	// status is forced to new no matter what
	require.Equal(t, "new", data["status"])

	// exactly one fan-out notification
	ns, err := env.notifRepo.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, ns, 1)
	require.Equal(t, "Alice sent you a message: Hello, interested in working together", ns[0].Message)
}

func TestContactCreateIgnoresClientStatus(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/contact", "", map[string]string{
		"name": "Bob", "email": "b@x.com", "message": "hi", "status": "replied",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "new", decodeData(t, w)["status"])
}

func TestContactCreateValidation(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/contact", "", map[string]string{
		"name": "Alice", "email": "", "message": "hi",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContactListRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/contact", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodGet, "/api/contact", env.adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestContactViewMarksRead(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/contact", "", map[string]string{
		"name": "Alice", "email": "a@x.com", "message": "hi",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id, _ := decodeData(t, w)["id"].(string)
	require.NotEmpty(t, id)

	w = env.do(t, http.MethodGet, "/api/contact/"+id, env.adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "read", decodeData(t, w)["status"])

	// idempotent on a second view
	w = env.do(t, http.MethodGet, "/api/contact/"+id, env.adminToken, nil)
	require.Equal(t, "read", decodeData(t, w)["status"])
}

func TestContactStatusUpdateAndDelete(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/contact", "", map[string]string{
		"name": "Alice", "email": "a@x.com", "message": "hi",
	})
	id, _ := decodeData(t, w)["id"].(string)

	w = env.do(t, http.MethodPatch, "/api/contact/"+id, env.adminToken, map[string]string{"status": "replied"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "replied", decodeData(t, w)["status"])

	w = env.do(t, http.MethodPatch, "/api/contact/"+id, env.adminToken, map[string]string{"status": "archived"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodDelete, "/api/contact/"+id, env.adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodDelete, "/api/contact/"+id, env.adminToken, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	var envl struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envl))
	require.False(t, envl.Success)
	require.NotEmpty(t, envl.Error)
}
