package tasksdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the taskboard service. It performs the public
// operations and creates authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new taskboard client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates an account and returns its public projection.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", "", req)
	if err != nil {
		return nil, err
	}

	user, err := decodeData[User](resp, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Login exchanges credentials for a Session.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", "", LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	login, err := decodeData[LoginResponse](resp, http.StatusOK)
	if err != nil {
		return nil, err
	}

	return c.NewSessionFromToken(login.Token, login.ExpiresAt, login.Info), nil
}

// NewSessionFromToken wraps a token obtained elsewhere.
func (c *SDKClient) NewSessionFromToken(token string, expiresAt time.Time, user User) *Session {
	return &Session{
		client:    c,
		token:     token,
		expiresAt: expiresAt,
		user:      user,
	}
}

// GetLiveness checks if the service is alive.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	return c.getHealth(ctx, "/livez")
}

// GetReadiness checks if the service is ready.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	return c.getHealth(ctx, "/readyz")
}

func (c *SDKClient) getHealth(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}

	return &health, nil
}
