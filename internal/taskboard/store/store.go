package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable. Every write touches a single row, so there is no transaction
// surface.
type Store interface {
	Users() Users
	Tasks() Tasks

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is an exact, case-sensitive match.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error
}

// TaskFilter narrows ListTasksByOwner to a creation-time window. Nil bounds
// are open.
type TaskFilter struct {
	CreatedAfter      *time.Time // exclusive
	CreatedAtOrBefore *time.Time // inclusive
}

type Tasks interface {
	// CreateTask inserts t as-is. IsExpired is not stored.
	CreateTask(ctx context.Context, t domain.Task) error

	// GetTaskByID ignores ownership.
	GetTaskByID(ctx context.Context, id string) (domain.Task, error)

	// GetOwnedTask returns ErrNotFound when the task belongs to someone else.
	GetOwnedTask(ctx context.Context, ownerID, id string) (domain.Task, error)

	// ListTasksByOwner returns tasks ordered by created_at then id.
	ListTasksByOwner(ctx context.Context, ownerID string, f TaskFilter) ([]domain.Task, error)

	// UpdateOwnedTask replaces title, status, priority, checklists, due date
	// and updated_at on the row matching t.ID and t.CreatedBy, and returns
	// the stored row.
	UpdateOwnedTask(ctx context.Context, t domain.Task) (domain.Task, error)

	// DeleteOwnedTask removes the row matching id and owner.
	DeleteOwnedTask(ctx context.Context, ownerID, id string) error
}
