package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/shadowmoulic/youtube-dashboard/internal/middleware"
	"github.com/shadowmoulic/youtube-dashboard/internal/resolver"
)

type ResolveHandler struct{}

func NewResolveHandler() *ResolveHandler {
	return &ResolveHandler{}
}

// Resolve handles GET /api/resolve?input=X — classifies a channel reference
// without touching any upstream API.
func (h *ResolveHandler) Resolve(c fiber.Ctx) error {
	input, errMsg := middleware.ValidateChannelInput(fiber.Query[string](c, "input"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_PARAM", errMsg)
	}

	ident := resolver.Resolve(input)
	if ident == nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest,
			"INVALID_IDENTIFIER", "Input is not a recognizable channel URL, @handle, or channel ID")
	}

	return c.JSON(ident)
}
