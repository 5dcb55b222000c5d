package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushire/placement-api/internal/service"
)

func newAuthHandler(t *testing.T) (*AuthHandler, *service.AuthService) {
	t.Helper()
	st := newHandlerStore(t)
	svc := service.NewAuthService(st, nil, nil, service.AuthConfig{Secret: "test_secret", Expiration: time.Hour, Issuer: "placement-api"})
	return NewAuthHandler(svc), svc
}

func TestAuthHandlerLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler, _ := newAuthHandler(t)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = jsonRequest(t, http.MethodPost, "/auth/login", map[string]string{
		"email":    "alice@student.edu",
		"password": "anything",
	})

	handler.Login(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	var res map[string]interface{}
	require.NoError(t, json.Unmarshal(envelope.Data, &res))
	assert.NotEmpty(t, res["token"])
}

func TestAuthHandlerLoginUnknownEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler, _ := newAuthHandler(t)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = jsonRequest(t, http.MethodPost, "/auth/login", map[string]string{
		"email":    "nobody@student.edu",
		"password": "pw",
	})

	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandlerLoginMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler, _ := newAuthHandler(t)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/login", nil)

	handler.Login(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandlerRegister(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler, svc := newAuthHandler(t)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = jsonRequest(t, http.MethodPost, "/auth/register", map[string]string{
		"name":     "New Student",
		"email":    "new@student.edu",
		"password": "secret1",
		"role":     "student",
	})

	handler.Register(c)

	require.Equal(t, http.StatusCreated, rec.Code)

	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	var res struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &res))

	claims, err := svc.ValidateToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "new@student.edu", claims.Email)
}
