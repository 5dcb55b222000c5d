package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/campushire/placement-api/internal/middleware"
	"github.com/campushire/placement-api/internal/models"
)

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return nil
	}
	return claims
}

// currentUser reconstructs the acting user from the token claims.
func currentUser(c *gin.Context) (models.User, bool) {
	claims := claimsFromContext(c)
	if claims == nil {
		return models.User{}, false
	}
	return models.User{
		ID:    claims.UserID,
		Name:  claims.Name,
		Email: claims.Email,
		Role:  claims.Role,
	}, true
}
