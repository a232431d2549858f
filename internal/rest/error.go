package rest

import "fmt"

// HTTPError is returned for any non-2xx gateway response.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

// Error renders the status code and a bounded slice of the response body.
func (e *HTTPError) Error() string {
	body := e.Body
	if len(body) > 256 {
		body = body[:256]
	}
	if len(body) == 0 {
		return fmt.Sprintf("rest: gateway returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("rest: gateway returned status %d: %s", e.StatusCode, body)
}
