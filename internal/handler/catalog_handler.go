package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushire/placement-api/internal/service"
	appErrors "github.com/campushire/placement-api/pkg/errors"
	"github.com/campushire/placement-api/pkg/response"
)

// CatalogHandler wires HTTP endpoints to the catalog service.
type CatalogHandler struct {
	service *service.CatalogService
}

// NewCatalogHandler creates a new handler.
func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// Departments godoc
// @Summary List departments
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /departments [get]
func (h *CatalogHandler) Departments(c *gin.Context) {
	departments := h.service.Departments(c.Request.Context())
	response.JSON(c, http.StatusOK, departments, map[string]interface{}{"total": len(departments)})
}

// AddDepartment godoc
// @Summary Add a department
// @Tags Catalog
// @Accept json
// @Produce json
// @Param payload body service.AddDepartmentRequest true "Department payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /departments [post]
func (h *CatalogHandler) AddDepartment(c *gin.Context) {
	var req service.AddDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid department payload"))
		return
	}

	dept, err := h.service.AddDepartment(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dept)
}

// Skills godoc
// @Summary List skills
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /skills [get]
func (h *CatalogHandler) Skills(c *gin.Context) {
	skills := h.service.Skills(c.Request.Context())
	response.JSON(c, http.StatusOK, skills, map[string]interface{}{"total": len(skills)})
}

// AddSkill godoc
// @Summary Add a skill
// @Description Skill names are unique ignoring case
// @Tags Catalog
// @Accept json
// @Produce json
// @Param payload body service.AddSkillRequest true "Skill payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /skills [post]
func (h *CatalogHandler) AddSkill(c *gin.Context) {
	var req service.AddSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid skill payload"))
		return
	}

	skill, err := h.service.AddSkill(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, skill)
}
