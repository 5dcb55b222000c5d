package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campushire/placement-api/internal/middleware"
	"github.com/campushire/placement-api/internal/models"
	"github.com/campushire/placement-api/internal/store"
	"github.com/campushire/placement-api/internal/store/kv"
)

type responseEnvelope struct {
	Data  json.RawMessage        `json:"data"`
	Error map[string]interface{} `json:"error"`
	Meta  map[string]interface{} `json:"meta"`
}

func newHandlerStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New(kv.NewMemory(), zap.NewNop(), true)
	require.NoError(t, st.Load(context.Background()))
	return st
}

func jsonRequest(t *testing.T, method, target string, payload interface{}) *http.Request {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func actAs(c *gin.Context, st *store.Store, userID string) {
	user, _ := st.UserByID(userID)
	c.Set(middleware.ContextUserKey, &models.JWTClaims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	})
}
