package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"videothingy/caption-board/internal/supabase"
	"videothingy/caption-board/models"
	"videothingy/caption-board/utils"
)

// CaptionListResponse documents the success envelope of ListCaptions.
type CaptionListResponse struct {
	Status string           `json:"status" example:"success"`
	Data   []models.Caption `json:"data"`
}

// ErrorResponse documents the error envelope shared by the JSON endpoints.
type ErrorResponse struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message" example:"Supabase error 500: server error"`
}

// ListCaptions returns the same captions the home page renders.
//
//	@Summary		Latest captions
//	@Description	Up to 10 captions, newest first, read fresh from Supabase on every call.
//	@Tags			captions
//	@Produce		json
//	@Success		200	{object}	CaptionListResponse
//	@Failure		502	{object}	ErrorResponse	"Supabase answered with an error or could not be reached"
//	@Failure		503	{object}	ErrorResponse	"SUPABASE_URL or SUPABASE_ANON_KEY is not set"
//	@Router			/api/v1/captions [get]
func (h *ApplicationHandler) ListCaptions(c *fiber.Ctx) error {
	outcome := h.fetchCaptions(c)
	c.Set(fiber.HeaderCacheControl, "no-store")

	switch {
	case outcome.Err == nil:
		captions := outcome.Captions
		if captions == nil {
			captions = []models.Caption{}
		}
		return utils.RespondWithJSON(c, fiber.StatusOK, captions)
	case errors.Is(outcome.Err, supabase.ErrMissingConfig):
		return utils.RespondWithError(c, fiber.StatusServiceUnavailable, outcome.Message())
	default:
		return utils.RespondWithError(c, fiber.StatusBadGateway, outcome.Message())
	}
}
