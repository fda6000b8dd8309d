package domain

import "time"

// Session is the result of a successful login. The token is stateless and
// cannot be revoked before ExpiresAt.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      PublicUser
}
