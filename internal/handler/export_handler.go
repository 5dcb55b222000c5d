package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/campushire/placement-api/internal/service"
	"github.com/campushire/placement-api/pkg/response"
)

// ExportHandler serves downloadable report renditions.
type ExportHandler struct {
	service *service.ExportService
}

// NewExportHandler creates a new handler.
func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

func exportFormat(c *gin.Context) service.ExportFormat {
	format := service.ExportFormat(c.DefaultQuery("format", string(service.FormatCSV)))
	return format
}

func serveExport(c *gin.Context, file *service.ExportFile) {
	c.Header("Content-Disposition", `attachment; filename="`+file.Name+`"`)
	c.Data(200, file.ContentType, file.Body)
}

// PlacementSummary godoc
// @Summary Download the placement summary report
// @Tags Exports
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /exports/placement-summary [get]
func (h *ExportHandler) PlacementSummary(c *gin.Context) {
	file, err := h.service.PlacementSummary(c.Request.Context(), exportFormat(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	serveExport(c, file)
}

// SkillDemand godoc
// @Summary Download the skill demand report
// @Tags Exports
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /exports/skill-demand [get]
func (h *ExportHandler) SkillDemand(c *gin.Context) {
	file, err := h.service.SkillDemand(c.Request.Context(), exportFormat(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	serveExport(c, file)
}
