package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushire/placement-api/internal/models"
	"github.com/campushire/placement-api/internal/service"
	appErrors "github.com/campushire/placement-api/pkg/errors"
	"github.com/campushire/placement-api/pkg/response"
)

// JobHandler wires HTTP endpoints to the job service.
type JobHandler struct {
	service *service.JobService
}

// NewJobHandler creates a new handler.
func NewJobHandler(svc *service.JobService) *JobHandler {
	return &JobHandler{service: svc}
}

// List godoc
// @Summary List job postings
// @Tags Jobs
// @Produce json
// @Param status query string false "open or closed"
// @Param location query string false "Filter by location"
// @Param skill query string false "Filter by required skill"
// @Param search query string false "Match company or title"
// @Success 200 {object} response.Envelope
// @Router /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	var filter models.JobFilter

	if status := c.Query("status"); status != "" {
		s := models.JobStatus(status)
		if s != models.JobOpen && s != models.JobClosed {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "status must be open or closed"))
			return
		}
		filter.Status = &s
	}
	filter.Location = c.Query("location")
	filter.Skill = c.Query("skill")
	filter.Search = c.Query("search")

	jobs := h.service.List(c.Request.Context(), filter)
	response.JSON(c, http.StatusOK, jobs, map[string]interface{}{"total": len(jobs)})
}

// Get godoc
// @Summary Get a job posting
// @Tags Jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, job)
}

// Mine godoc
// @Summary List the caller's own postings
// @Tags Jobs
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /jobs/mine [get]
func (h *JobHandler) Mine(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	jobs := h.service.ListByRecruiter(c.Request.Context(), user.ID)
	response.JSON(c, http.StatusOK, jobs, map[string]interface{}{"total": len(jobs)})
}

// Create godoc
// @Summary Create a job posting
// @Tags Jobs
// @Accept json
// @Produce json
// @Param payload body service.JobRequest true "Job payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req service.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid job payload"))
		return
	}

	job, err := h.service.Create(c.Request.Context(), user, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, job)
}

// Update godoc
// @Summary Update a job posting
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param payload body service.JobRequest true "Job payload"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /jobs/{id} [put]
func (h *JobHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req service.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid job payload"))
		return
	}

	job, err := h.service.Update(c.Request.Context(), user.ID, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, job)
}

// SetStatus godoc
// @Summary Open or close a job posting
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param payload body object true "Status payload"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /jobs/{id}/status [patch]
func (h *JobHandler) SetStatus(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var payload struct {
		Status models.JobStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "status required"))
		return
	}

	job, err := h.service.SetStatus(c.Request.Context(), user.ID, c.Param("id"), payload.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, job)
}

// Delete godoc
// @Summary Delete a job posting
// @Description Fails when any application references the posting
// @Tags Jobs
// @Param id path string true "Job ID"
// @Success 204 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /jobs/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	if err := h.service.Delete(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
