package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"
	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

// DefaultStoreTimeout bounds every store call when no timeout is configured.
const DefaultStoreTimeout = 5 * time.Second

type AuthService struct {
	Store    store.Store
	Hasher   *cryptox.Hasher
	Signer   jwtx.Signer
	Verifier jwtx.Verifier

	// Issuer is written to the iss claim. Empty omits it.
	Issuer string

	StoreTimeout time.Duration

	// Now defaults to time.Now.
	Now func() time.Time
}

type RegisterInput struct {
	Email           string
	Name            string
	Password        string
	ConfirmPassword string
}

// Register creates a new account. The email lookup gives a friendly error
// in the common case; the unique index on email closes the race between the
// lookup and the insert.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (domain.PublicUser, error) {
	log := slogx.FromContext(ctx)

	if in.Email == "" || in.Name == "" || in.Password == "" || in.ConfirmPassword == "" {
		return domain.PublicUser{}, validationError(MsgRegisterFieldsRequired)
	}
	if in.Password != in.ConfirmPassword {
		return domain.PublicUser{}, validationError(MsgPasswordsDoNotMatch)
	}

	_, err := s.getUserByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return domain.PublicUser{}, conflictError(MsgEmailRegistered, nil)
	case !errors.Is(err, store.ErrNotFound):
		log.Error("failed to look up user by email", slog.Any("error", err))
		return domain.PublicUser{}, internalError(err)
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.PublicUser{}, internalError(err)
	}

	now := s.now()
	user := domain.User{
		ID:           idx.NewAt(now).String(),
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	sctx, cancel := withStoreTimeout(ctx, s.StoreTimeout)
	defer cancel()

	if err := s.Store.Users().CreateUser(sctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("registration lost race on email", slog.String("email", in.Email))
			return domain.PublicUser{}, conflictError(MsgEmailRegistered, err)
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.PublicUser{}, internalError(err)
	}

	log.Info("user registered", slog.String("user_id", user.ID))
	return user.Public(), nil
}

// Login checks credentials and mints a session token. Unknown emails and
// wrong passwords fail with the same error and take comparable time.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Session, error) {
	log := slogx.FromContext(ctx)

	if email == "" || password == "" {
		return domain.Session{}, validationError(MsgLoginFieldsRequired)
	}

	user, err := s.getUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.Hasher.VerifyDummy(password)
			return domain.Session{}, authError(MsgCredentialsMismatch, nil)
		}
		log.Error("failed to look up user by email", slog.Any("error", err))
		return domain.Session{}, internalError(err)
	}

	if err := s.Hasher.Verify(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			return domain.Session{}, authError(MsgCredentialsMismatch, nil)
		}
		log.Error("failed to verify password hash", slog.String("user_id", user.ID), slog.Any("error", err))
		return domain.Session{}, internalError(err)
	}

	claims := jwtx.NewSessionClaims(user.ID, s.Issuer, jwtx.DefaultSessionTTL, s.now())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		log.Error("failed to sign session token", slog.Any("error", err))
		return domain.Session{}, internalError(err)
	}

	return domain.Session{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time.UTC(),
		User:      user.Public(),
	}, nil
}

// VerifySession resolves an Authorization header value to the user it was
// issued for.
func (s *AuthService) VerifySession(ctx context.Context, authorization string) (domain.PublicUser, error) {
	token, ok := bearerToken(authorization)
	if !ok {
		return domain.PublicUser{}, authError(MsgLoginRequired, nil)
	}

	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return domain.PublicUser{}, authError(MsgInvalidToken, err)
	}

	sctx, cancel := withStoreTimeout(ctx, s.StoreTimeout)
	defer cancel()

	user, err := s.Store.Users().GetUserByID(sctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.PublicUser{}, authError(MsgUserGone, err)
		}
		slogx.FromContext(ctx).Error("failed to load session user", slog.Any("error", err))
		return domain.PublicUser{}, internalError(err)
	}

	return user.Public(), nil
}

func (s *AuthService) getUserByEmail(ctx context.Context, email string) (domain.User, error) {
	sctx, cancel := withStoreTimeout(ctx, s.StoreTimeout)
	defer cancel()
	return s.Store.Users().GetUserByEmail(sctx, email)
}

func (s *AuthService) now() time.Time {
	return clock(s.Now)
}

func bearerToken(header string) (string, bool) {
	token, ok := strings.CutPrefix(strings.TrimSpace(header), "Bearer ")
	if !ok {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func withStoreTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = DefaultStoreTimeout
	}
	return context.WithTimeout(ctx, d)
}

// clock returns the current UTC time at the millisecond precision the stores
// keep.
func clock(now func() time.Time) time.Time {
	if now == nil {
		now = time.Now
	}
	return now().UTC().Truncate(time.Millisecond)
}
