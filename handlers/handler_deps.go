package handlers

import (
	"context"

	"github.com/sirupsen/logrus"

	"videothingy/caption-board/internal/metrics"
	"videothingy/caption-board/internal/supabase"
)

// CaptionSource produces the captions shown on one page render.
type CaptionSource interface {
	Fetch(ctx context.Context) supabase.FetchOutcome
}

// ReadinessChecker reports whether the captions table can be reached.
type ReadinessChecker interface {
	Check(ctx context.Context) (int64, error)
}

// ApplicationHandler holds shared dependencies for handlers.
type ApplicationHandler struct {
	Captions  CaptionSource
	Readiness ReadinessChecker
	Logger    logrus.FieldLogger
	Metrics   *metrics.Metrics
}

// NewApplicationHandler creates a new ApplicationHandler with the given dependencies.
func NewApplicationHandler(captions CaptionSource, readiness ReadinessChecker, logger logrus.FieldLogger, m *metrics.Metrics) *ApplicationHandler {
	return &ApplicationHandler{
		Captions:  captions,
		Readiness: readiness,
		Logger:    logger,
		Metrics:   m,
	}
}
