package supabase

import (
	"context"
	"fmt"
	"time"

	"github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"

	"videothingy/caption-board/config"
)

// ReadinessCheck checks that the captions table is reachable with the configured key.
type ReadinessCheck struct {
	client  *supa.Client
	timeout time.Duration
	initErr error
}

// NewReadinessCheck builds the Supabase client used by the readiness check.
// A missing or invalid configuration is reported by Check, not here.
// A zero timeout leaves the check bounded only by the caller's context.
func NewReadinessCheck(cfg config.SupabaseConfig, timeout time.Duration) *ReadinessCheck {
	if !cfg.Configured() {
		return &ReadinessCheck{initErr: ErrMissingConfig}
	}
	client, err := supa.NewClient(cfg.URL, cfg.AnonKey, nil)
	if err != nil {
		return &ReadinessCheck{initErr: fmt.Errorf("error initializing Supabase client: %w", err)}
	}
	return &ReadinessCheck{client: client, timeout: timeout}
}

type readinessResult struct {
	count int64
	err   error
}

// Check runs a HEAD count query against the captions table and returns the row count.
// The postgrest client takes no context, so the query runs in its own goroutine and
// Check returns as soon as ctx is done or the timeout elapses.
func (rc *ReadinessCheck) Check(ctx context.Context) (int64, error) {
	if rc.initErr != nil {
		return 0, rc.initErr
	}

	timeout, err := boundedTimeout(ctx, rc.timeout)
	if err != nil {
		return 0, fmt.Errorf("captions table unreachable: %w", err)
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	done := make(chan readinessResult, 1)
	go func() {
		_, count, err := rc.client.From(captionsTable).
			Select("created_datetime_utc", "exact", true).
			Order("created_datetime_utc", &postgrest.OrderOpts{Ascending: false}).
			Limit(1, "").
			Execute()
		done <- readinessResult{count: count, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return 0, fmt.Errorf("captions table unreachable: %w", res.err)
		}
		return res.count, nil
	case <-ctx.Done():
		return 0, fmt.Errorf("captions table unreachable: %w", ctx.Err())
	}
}
