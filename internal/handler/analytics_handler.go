package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushire/placement-api/internal/service"
	appErrors "github.com/campushire/placement-api/pkg/errors"
	"github.com/campushire/placement-api/pkg/response"
)

// AnalyticsHandler wires HTTP endpoints to the analytics service.
type AnalyticsHandler struct {
	service *service.AnalyticsService
}

// NewAnalyticsHandler creates a new handler.
func NewAnalyticsHandler(svc *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: svc}
}

// AdminOverview godoc
// @Summary Portal-wide analytics
// @Description User counts, pipeline funnel, batch placement rates, skill demand and recruiter rankings
// @Tags Analytics
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /analytics/overview [get]
func (h *AnalyticsHandler) AdminOverview(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.AdminOverview(c.Request.Context()))
}

// RecruiterOverview godoc
// @Summary Analytics for the caller's postings
// @Tags Analytics
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /analytics/recruiter [get]
func (h *AnalyticsHandler) RecruiterOverview(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	response.JSON(c, http.StatusOK, h.service.RecruiterOverview(c.Request.Context(), user.ID))
}
