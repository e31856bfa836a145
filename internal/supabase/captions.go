package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"videothingy/caption-board/config"
	"videothingy/caption-board/models"
)

const (
	// CaptionsLimit is the number of rows requested per render.
	CaptionsLimit = 10

	captionsTable   = "captions"
	captionsColumns = "content,like_count,created_datetime_utc"
	captionsOrder   = "created_datetime_utc.desc"
)

// Outcome names used for logging and metrics.
const (
	OutcomeOK            = "ok"
	OutcomeEmpty         = "empty"
	OutcomeConfigMissing = "config_missing"
	OutcomeUpstreamError = "upstream_error"
	OutcomeNetworkError  = "network_error"
	OutcomeDecodeError   = "decode_error"
)

// FetchOutcome is the result of one fetch. When Err is set Captions is empty.
type FetchOutcome struct {
	Captions []models.Caption
	Err      error
}

// Message is the text shown to the user for a failed fetch, or "" on success.
func (o FetchOutcome) Message() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}

// Kind classifies the outcome.
func (o FetchOutcome) Kind() string {
	var (
		upstream *UpstreamError
		decode   *DecodeError
	)
	switch {
	case o.Err == nil && len(o.Captions) == 0:
		return OutcomeEmpty
	case o.Err == nil:
		return OutcomeOK
	case errors.Is(o.Err, ErrMissingConfig):
		return OutcomeConfigMissing
	case errors.As(o.Err, &upstream):
		return OutcomeUpstreamError
	case errors.As(o.Err, &decode):
		return OutcomeDecodeError
	default:
		return OutcomeNetworkError
	}
}

func failed(err error) FetchOutcome {
	return FetchOutcome{Captions: []models.Caption{}, Err: err}
}

// CaptionFetcher reads the latest captions from the Supabase REST API.
// It holds no mutable state and may be shared between requests.
type CaptionFetcher struct {
	cfg      config.SupabaseConfig
	endpoint string
	timeout  time.Duration
}

// NewCaptionFetcher builds a fetcher. A zero timeout leaves the request unbounded.
func NewCaptionFetcher(cfg config.SupabaseConfig, timeout time.Duration) *CaptionFetcher {
	f := &CaptionFetcher{cfg: cfg, timeout: timeout}
	if cfg.Configured() {
		f.endpoint = captionsURL(cfg.URL)
	}
	return f
}

func captionsURL(base string) string {
	q := url.Values{}
	q.Set("select", captionsColumns)
	q.Set("order", captionsOrder)
	q.Set("limit", strconv.Itoa(CaptionsLimit))
	return base + "/rest/v1/" + captionsTable + "?" + q.Encode()
}

// Fetch issues one uncached GET for the latest captions.
// It never returns a Go error; failures are carried in the outcome.
func (f *CaptionFetcher) Fetch(ctx context.Context) FetchOutcome {
	if !f.cfg.Configured() {
		return failed(ErrMissingConfig)
	}
	if err := ctx.Err(); err != nil {
		return failed(&NetworkError{Err: err})
	}

	timeout, err := f.requestTimeout(ctx)
	if err != nil {
		return failed(&NetworkError{Err: err})
	}

	agent := fiber.Get(f.endpoint).
		Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON).
		Set(fiber.HeaderCacheControl, "no-store").
		Set("apikey", f.cfg.AnonKey).
		Set(fiber.HeaderAuthorization, "Bearer "+f.cfg.AnonKey)
	if timeout > 0 {
		agent.Timeout(timeout)
	}

	status, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return failed(&NetworkError{Err: errors.Join(errs...)})
	}

	if status < fiber.StatusOK || status >= fiber.StatusMultipleChoices {
		return failed(&UpstreamError{StatusCode: status, Body: string(body)})
	}

	var captions []models.Caption
	if err := json.Unmarshal(body, &captions); err != nil {
		return failed(&DecodeError{Err: err})
	}
	if captions == nil {
		captions = []models.Caption{}
	}
	return FetchOutcome{Captions: captions}
}

// requestTimeout is the configured timeout, shortened to the context deadline if that comes first.
// A deadline that has already passed is reported as context.DeadlineExceeded.
func (f *CaptionFetcher) requestTimeout(ctx context.Context) (time.Duration, error) {
	return boundedTimeout(ctx, f.timeout)
}

func boundedTimeout(ctx context.Context, timeout time.Duration) (time.Duration, error) {
	deadline, ok := ctx.Deadline()
	if !ok {
		return timeout, nil
	}
	remaining := time.Until(deadline)
	if remaining <= 0 {
		return 0, context.DeadlineExceeded
	}
	if timeout == 0 || remaining < timeout {
		timeout = remaining
	}
	return timeout, nil
}
