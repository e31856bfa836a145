package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"videothingy/caption-board/internal/supabase"
	"videothingy/caption-board/middleware"
)

// Home renders the latest captions.
// GET /
func (h *ApplicationHandler) Home(c *fiber.Ctx) error {
	outcome := h.fetchCaptions(c)

	page, err := renderTemplate(captionsTemplate, newCaptionsView(outcome))
	if err != nil {
		h.Logger.WithError(err).Error("Error rendering captions page")
		return err
	}
	return sendPage(c, page)
}

// Hello renders the placeholder variant of the page without fetching anything.
// GET /hello
func (h *ApplicationHandler) Hello(c *fiber.Ctx) error {
	page, err := renderTemplate(helloTemplate, helloView{
		Title:   pageHeading,
		Heading: pageHeading,
		Message: "Hello World",
	})
	if err != nil {
		h.Logger.WithError(err).Error("Error rendering hello page")
		return err
	}
	return sendPage(c, page)
}

// fetchCaptions runs one fetch and records its outcome.
func (h *ApplicationHandler) fetchCaptions(c *fiber.Ctx) supabase.FetchOutcome {
	outcome := h.Captions.Fetch(c.UserContext())
	kind := outcome.Kind()
	h.Metrics.ObserveFetch(kind)

	entry := h.Logger.WithFields(logrus.Fields{
		"request_id": c.Locals(middleware.RequestIDKey),
		"outcome":    kind,
	})
	if outcome.Err != nil {
		entry.WithError(outcome.Err).Warn("Caption fetch failed")
	} else {
		entry.WithField("count", len(outcome.Captions)).Debug("Fetched captions")
	}
	return outcome
}

func sendPage(c *fiber.Ctx, page []byte) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Status(fiber.StatusOK).Send(page)
}
