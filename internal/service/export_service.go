package service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	appErrors "github.com/campushire/placement-api/pkg/errors"
	"github.com/campushire/placement-api/pkg/export"
)

// ExportFormat selects the rendered output type.
type ExportFormat string

const (
	FormatCSV ExportFormat = "csv"
	FormatPDF ExportFormat = "pdf"
)

// ExportFile is a rendered report ready to be served as a download.
type ExportFile struct {
	Name        string
	ContentType string
	Body        []byte
}

// ExportService renders analytics snapshots into downloadable reports.
type ExportService struct {
	analytics *AnalyticsService
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
	logger    *zap.Logger
}

// NewExportService creates an instance of ExportService.
func NewExportService(analytics *AnalyticsService, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		analytics: analytics,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
		logger:    logger,
	}
}

// PlacementSummary renders per-batch placement figures.
func (s *ExportService) PlacementSummary(ctx context.Context, format ExportFormat) (*ExportFile, error) {
	overview := s.analytics.AdminOverview(ctx)

	data := export.Dataset{
		Headers: []string{"Batch", "Students", "Applied", "Offered", "Placement Rate (%)"},
	}
	for _, b := range overview.BatchStats {
		data.Rows = append(data.Rows, map[string]string{
			"Batch":              strconv.Itoa(b.Year),
			"Students":           strconv.Itoa(b.Total),
			"Applied":            strconv.Itoa(b.Applied),
			"Offered":            strconv.Itoa(b.Offered),
			"Placement Rate (%)": strconv.FormatFloat(b.PlacementRate, 'f', 1, 64),
		})
	}

	return s.render("placement-summary", "Placement Summary", data, format)
}

// SkillDemand renders the top in-demand skills across open postings.
func (s *ExportService) SkillDemand(ctx context.Context, format ExportFormat) (*ExportFile, error) {
	overview := s.analytics.AdminOverview(ctx)

	data := export.Dataset{
		Headers: []string{"Skill", "Job Postings"},
	}
	for _, d := range overview.TopSkills {
		data.Rows = append(data.Rows, map[string]string{
			"Skill":        d.Skill,
			"Job Postings": strconv.Itoa(d.Jobs),
		})
	}

	return s.render("skill-demand", "Skill Demand", data, format)
}

func (s *ExportService) render(name, title string, data export.Dataset, format ExportFormat) (*ExportFile, error) {
	switch format {
	case FormatCSV:
		body, err := s.csv.Render(data)
		if err != nil {
			s.logger.Error("render csv export failed", zap.String("report", name), zap.Error(err))
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render report")
		}
		return &ExportFile{
			Name:        fmt.Sprintf("%s.csv", name),
			ContentType: "text/csv",
			Body:        body,
		}, nil
	case FormatPDF:
		body, err := s.pdf.Render(data, title)
		if err != nil {
			s.logger.Error("render pdf export failed", zap.String("report", name), zap.Error(err))
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render report")
		}
		return &ExportFile{
			Name:        fmt.Sprintf("%s.pdf", name),
			ContentType: "application/pdf",
			Body:        body,
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format: %s", format))
	}
}
