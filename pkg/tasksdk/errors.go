package tasksdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is a non-success response from the server.
type APIError struct {
	StatusCode int

	// Status is the envelope discriminator, "fail" or "error".
	Status  string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("taskboard: %d %s: %s", e.StatusCode, e.Status, e.Message)
}

// parseErrorResponse turns a non-2xx response body into an *APIError. Bodies
// that are not a failure envelope fall back to the status text.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Status:     errResp.Status,
			Message:    errResp.Message,
		}
	}

	status := "fail"
	if resp.StatusCode >= http.StatusInternalServerError {
		status = "error"
	}
	return &APIError{
		StatusCode: resp.StatusCode,
		Status:     status,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
