package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/shadowmoulic/youtube-dashboard/internal/middleware"
	"github.com/shadowmoulic/youtube-dashboard/internal/service"
	"github.com/shadowmoulic/youtube-dashboard/internal/youtube"
)

type AnalysisHandler struct {
	svc *service.AnalysisService
}

func NewAnalysisHandler(svc *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{svc: svc}
}

// Analyze handles GET /api/analyze?channel=X&max=N
func (h *AnalysisHandler) Analyze(c fiber.Ctx) error {
	channel, errMsg := middleware.ValidateChannelInput(fiber.Query[string](c, "channel"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_PARAM", errMsg)
	}

	maxVideos, errMsg := middleware.ValidateMaxVideos(fiber.Query[string](c, "max"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_PARAM", errMsg)
	}
	if maxVideos == 0 {
		maxVideos = service.DefaultMaxVideos
	}

	start := time.Now()
	resp, err := h.svc.Analyze(c.Context(), channel, maxVideos)
	if err != nil {
		return analysisError(c, err)
	}

	if resp.Cached {
		Metrics.CacheHits.Inc()
	} else {
		Metrics.CacheMisses.Inc()
		Metrics.UpstreamDuration.Observe(time.Since(start).Seconds())
	}
	Metrics.AnalysesTotal.WithLabelValues("ok").Inc()

	return c.JSON(resp)
}

// analysisError maps pipeline failures onto the API error envelope. Upstream
// API failures are surfaced with their original message so the caller can see
// quota and key problems directly.
func analysisError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidIdentifier):
		Metrics.AnalysesTotal.WithLabelValues("invalid_identifier").Inc()
		return middleware.ErrorResponse(c, fiber.StatusBadRequest,
			"INVALID_IDENTIFIER", "Input is not a recognizable channel URL, @handle, or channel ID")
	case errors.Is(err, youtube.ErrNotFound):
		Metrics.AnalysesTotal.WithLabelValues("not_found").Inc()
		return middleware.ErrorResponse(c, fiber.StatusNotFound,
			"NOT_FOUND", "Channel not found")
	case errors.Is(err, service.ErrNoRecentVideos):
		Metrics.AnalysesTotal.WithLabelValues("no_recent_videos").Inc()
		return middleware.ErrorResponse(c, fiber.StatusNotFound,
			"NOT_FOUND", "Channel has no videos in the last 3 months")
	default:
		Metrics.AnalysesTotal.WithLabelValues("upstream_error").Inc()
		return middleware.ErrorResponse(c, fiber.StatusBadGateway,
			"UPSTREAM_ERROR", err.Error())
	}
}
