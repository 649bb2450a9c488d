package domain

import "fmt"

// FetchError reports a failed alert fetch. StatusCode is zero when the request
// never produced a response.
type FetchError struct {
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("nws API error: status %d: %v", e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("nws API error: status %d", e.StatusCode)
	default:
		return fmt.Sprintf("nws request: %v", e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
