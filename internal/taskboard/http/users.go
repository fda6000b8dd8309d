package http

import (
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/service"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
)

// MeHandler godoc
//
//	@Summary		Current user
//	@Description	Returns the identity the session token resolves to.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	tasksdk.Envelope[tasksdk.User]	"Caller identity"
//	@Failure		401	{object}	tasksdk.ErrorResponse			"Missing, invalid or expired token"
//	@Router			/api/v1/users/me [get].
func MeHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := httpx.PrincipalFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, service.MsgLoginRequired)
		return
	}

	httpx.WriteData(w, http.StatusOK, tasksdk.User{ID: p.ID, Email: p.Email, Name: p.Name})
}
