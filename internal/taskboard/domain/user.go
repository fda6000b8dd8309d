package domain

import "time"

type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string // argon2id PHC, or bcrypt for imported accounts
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the only identity shape that leaves the auth service.
type PublicUser struct {
	ID    string
	Email string
	Name  string
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, Name: u.Name}
}
