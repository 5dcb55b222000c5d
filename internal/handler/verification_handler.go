package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushire/placement-api/internal/models"
	"github.com/campushire/placement-api/internal/service"
	appErrors "github.com/campushire/placement-api/pkg/errors"
	"github.com/campushire/placement-api/pkg/response"
)

// VerificationHandler wires HTTP endpoints to the verification service.
type VerificationHandler struct {
	service *service.VerificationService
}

// NewVerificationHandler creates a new handler.
func NewVerificationHandler(svc *service.VerificationService) *VerificationHandler {
	return &VerificationHandler{service: svc}
}

// Submit godoc
// @Summary Submit a document for verification
// @Tags Verifications
// @Accept json
// @Produce json
// @Param payload body service.SubmitVerificationRequest true "Document payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /verifications [post]
func (h *VerificationHandler) Submit(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req service.SubmitVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid verification payload"))
		return
	}

	ver, err := h.service.Submit(c.Request.Context(), user, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, ver)
}

// Mine godoc
// @Summary List the caller's own verification requests
// @Tags Verifications
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /verifications/mine [get]
func (h *VerificationHandler) Mine(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	vers := h.service.ListByStudent(c.Request.Context(), user.ID)
	response.JSON(c, http.StatusOK, vers, map[string]interface{}{"total": len(vers)})
}

// Queue godoc
// @Summary List verification requests for review
// @Tags Verifications
// @Produce json
// @Param status query string false "pending, approved or rejected"
// @Success 200 {object} response.Envelope
// @Router /verifications [get]
func (h *VerificationHandler) Queue(c *gin.Context) {
	var status *models.VerificationStatus
	if raw := c.Query("status"); raw != "" {
		s := models.VerificationStatus(raw)
		if s != models.VerificationPending && s != models.VerificationApproved && s != models.VerificationRejected {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unknown verification status"))
			return
		}
		status = &s
	}

	vers := h.service.Queue(c.Request.Context(), status)
	response.JSON(c, http.StatusOK, vers, map[string]interface{}{"total": len(vers)})
}

// Approve godoc
// @Summary Approve a pending verification
// @Description Sets the matching profile flag for transcript and certificate documents
// @Tags Verifications
// @Accept json
// @Produce json
// @Param id path string true "Verification ID"
// @Param payload body service.ReviewVerificationRequest false "Optional remark"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /verifications/{id}/approve [post]
func (h *VerificationHandler) Approve(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req service.ReviewVerificationRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid review payload"))
			return
		}
	}

	ver, err := h.service.Approve(c.Request.Context(), user, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, ver)
}

// Reject godoc
// @Summary Reject a pending verification
// @Description A non-empty remark is mandatory; the profile is never touched
// @Tags Verifications
// @Accept json
// @Produce json
// @Param id path string true "Verification ID"
// @Param payload body service.ReviewVerificationRequest true "Remark payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /verifications/{id}/reject [post]
func (h *VerificationHandler) Reject(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req service.ReviewVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid review payload"))
		return
	}

	ver, err := h.service.Reject(c.Request.Context(), user, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, ver)
}
