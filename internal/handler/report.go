package handler

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/shadowmoulic/youtube-dashboard/internal/middleware"
	"github.com/shadowmoulic/youtube-dashboard/internal/model"
	"github.com/shadowmoulic/youtube-dashboard/internal/report"
	"github.com/shadowmoulic/youtube-dashboard/internal/service"
)

type ReportHandler struct {
	svc *service.AnalysisService
}

func NewReportHandler(svc *service.AnalysisService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// Generate handles POST /api/reports — runs a full channel analysis and
// streams back the PDF.
func (h *ReportHandler) Generate(c fiber.Ctx) error {
	var req model.ReportRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest,
			"INVALID_BODY", "Request body must be valid JSON")
	}

	channel, errMsg := middleware.ValidateChannelInput(req.Channel)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_PARAM", errMsg)
	}

	name, email, errMsg := middleware.ValidateLead(req.Name, req.Email)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_PARAM", errMsg)
	}

	maxVideos := req.MaxVideos
	if maxVideos == 0 {
		maxVideos = service.DefaultMaxVideos
	}
	if maxVideos < middleware.MinMaxVideos || maxVideos > middleware.MaxMaxVideos {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest,
			"INVALID_PARAM", "maxVideos must be between 1 and 50")
	}

	resp, err := h.svc.Analyze(c.Context(), channel, maxVideos)
	if err != nil {
		return analysisError(c, err)
	}

	pdf, err := report.Generate(resp, model.Lead{Name: name, Email: email})
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError,
			"INTERNAL_ERROR", "Failed to generate report")
	}

	Metrics.ReportsGenerated.Inc()

	filename := fmt.Sprintf("seo-report-%d.pdf", time.Now().Unix())
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdf)
}
