package handlers

import (
	"github.com/gofiber/fiber/v2"

	"videothingy/caption-board/utils"
)

// Health reports that the process is up.
// GET /health
func (h *ApplicationHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "ok",
		"message": "Caption board is healthy",
	})
}

// Ready reports whether the captions table answers with the configured key.
// GET /health/ready
func (h *ApplicationHandler) Ready(c *fiber.Ctx) error {
	count, err := h.Readiness.Check(c.UserContext())
	if err != nil {
		h.Logger.WithError(err).Warn("Readiness check failed")
		return utils.RespondWithError(c, fiber.StatusServiceUnavailable, err.Error())
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":   "ok",
		"captions": count,
	})
}
