package supabase

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2/utils"
)

// ErrMissingConfig is reported instead of fetching when the URL or key is unset.
var ErrMissingConfig = errors.New("Missing SUPABASE_URL or SUPABASE_ANON_KEY.")

// UpstreamError is a non-2xx answer from the REST API.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	detail := e.Body
	if detail == "" {
		detail = utils.StatusMessage(e.StatusCode)
	}
	return fmt.Sprintf("Supabase error %d: %s", e.StatusCode, detail)
}

// NetworkError means the request never produced a response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("Supabase request failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// DecodeError means a successful response carried a body that is not a caption list.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("Supabase response could not be decoded: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
