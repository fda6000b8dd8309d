package http

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/metrics"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/service"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
)

type AuthHandler struct {
	AuthService *service.AuthService
	Metrics     metrics.Recorder
}

// HandleRegister godoc
//
//	@Summary		Register
//	@Description	Create an account. The email must not already be registered.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		tasksdk.RegisterRequest					true	"Account details"
//	@Success		201		{object}	tasksdk.Envelope[tasksdk.User]			"Created user"
//	@Failure		400		{object}	tasksdk.ErrorResponse					"Missing fields or passwords do not match"
//	@Failure		409		{object}	tasksdk.ErrorResponse					"Email is already registered"
//	@Failure		429		{object}	tasksdk.ErrorResponse					"Too many requests"
//	@Router			/api/v1/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.AuthService.Register(r.Context(), service.RegisterInput{
		Email:           req.Email,
		Name:            req.Name,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.Metrics.RecordRegistration()
	httpx.WriteData(w, http.StatusCreated, toUser(user))
}

// HandleLogin godoc
//
//	@Summary		Login
//	@Description	Exchange email and password for a session token valid for 30 days.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		tasksdk.LoginRequest					true	"Credentials"
//	@Success		200		{object}	tasksdk.Envelope[tasksdk.LoginResponse]	"Session token and identity"
//	@Failure		400		{object}	tasksdk.ErrorResponse					"Missing fields"
//	@Failure		401		{object}	tasksdk.ErrorResponse					"Email or password mismatch"
//	@Failure		429		{object}	tasksdk.ErrorResponse					"Too many requests"
//	@Router			/api/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if service.IsKind(err, service.KindAuthentication) {
			h.Metrics.RecordLogin(false)
		}
		writeServiceError(w, r, err)
		return
	}

	h.Metrics.RecordLogin(true)
	httpx.WriteData(w, http.StatusOK, tasksdk.LoginResponse{
		Info:      toUser(sess.User),
		Token:     sess.Token,
		ExpiresAt: sess.ExpiresAt,
	})
}

// verifySession adapts AuthService.VerifySession to the authn middleware.
func (h *AuthHandler) verifySession(ctx context.Context, authorization string) (httpx.Principal, error) {
	user, err := h.AuthService.VerifySession(ctx, authorization)
	if err != nil {
		return httpx.Principal{}, err
	}
	return httpx.Principal{ID: user.ID, Email: user.Email, Name: user.Name}, nil
}
