package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/service"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

const (
	msgRouteNotFound = "Route does not exist"
	msgBadRange      = "range must be an integer number of days"
)

// statusFor maps a service error kind to its HTTP status code.
func statusFor(k service.Kind) int {
	switch k {
	case service.KindValidation:
		return http.StatusBadRequest
	case service.KindConflict:
		return http.StatusConflict
	case service.KindAuthentication:
		return http.StatusUnauthorized
	case service.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError renders err as a failure envelope. Internal errors never
// leak their cause to the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	kind := service.KindOf(err)
	code := statusFor(kind)

	if kind == service.KindInternal {
		slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))
		httpx.WriteError(w, code, service.MsgInternal)
		return
	}

	msg := service.MsgInternal
	var se *service.Error
	if errors.As(err, &se) {
		msg = se.Message
	}
	httpx.WriteError(w, code, msg)
}
