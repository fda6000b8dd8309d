package httpx

import (
	"encoding/json"
	"net/http"
)

// Envelope status values.
const (
	StatusSuccess = "success"
	StatusFail    = "fail"  // client error, 4xx
	StatusError   = "error" // server error, 5xx
)

// Success is the body of every 2xx JSON response.
type Success struct {
	Status  string `json:"status" example:"success"`
	Results *int   `json:"results,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Failure is the body of every error response.
type Failure struct {
	Status  string `json:"status" example:"fail"`
	Message string `json:"message" example:"Task not found"`
}

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteData wraps data in a success envelope.
func WriteData(w http.ResponseWriter, code int, data any) {
	WriteJSON(w, code, Success{Status: StatusSuccess, Data: data})
}

// WriteList wraps a list in a success envelope with a result count. The
// items are nested under key inside data.
func WriteList[T any](w http.ResponseWriter, key string, items []T) {
	if items == nil {
		items = []T{}
	}
	n := len(items)
	WriteJSON(w, http.StatusOK, Success{
		Status:  StatusSuccess,
		Results: &n,
		Data:    map[string][]T{key: items},
	})
}

// WriteError writes a failure envelope. 5xx codes are reported as "error",
// everything else as "fail".
func WriteError(w http.ResponseWriter, code int, message string) {
	status := StatusFail
	if code >= http.StatusInternalServerError {
		status = StatusError
	}
	WriteJSON(w, code, Failure{Status: status, Message: message})
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// This is commonly required for sensitive responses like tokens.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
