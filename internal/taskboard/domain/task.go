package domain

import (
	"errors"
	"strings"
	"time"
)

type Status string

const (
	StatusBacklog    Status = "backlog"
	StatusTodo       Status = "todo"
	StatusInProgress Status = "inProgress"
	StatusDone       Status = "done"
)

func (s Status) Valid() bool {
	switch s {
	case StatusBacklog, StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityModerate Priority = "moderate"
	PriorityHigh     Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityModerate, PriorityHigh:
		return true
	}
	return false
}

// ChecklistItem is stored verbatim as part of a JSON column.
type ChecklistItem struct {
	Title   string `json:"title"`
	Checked bool   `json:"checked"`
}

type Task struct {
	ID         string
	Title      string
	Status     Status
	Priority   Priority
	Checklists []ChecklistItem
	DueDate    *time.Time
	CreatedBy  string // owner, immutable
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// IsExpired is derived on read and never stored.
	IsExpired bool
}

// Expired reports whether the task is past its due date at now. Finished
// tasks never expire.
func (t Task) Expired(now time.Time) bool {
	if t.DueDate == nil || t.Status == StatusDone {
		return false
	}
	return t.DueDate.Before(now)
}

var (
	ErrTitleRequired   = errors.New("title is required")
	ErrInvalidStatus   = errors.New("status must be one of backlog, todo, inProgress, done")
	ErrInvalidPriority = errors.New("priority must be one of low, moderate, high")
)

// Validate checks the caller-editable fields. It runs before every create
// and update so stored rows only ever hold known enum values.
func (t Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrTitleRequired
	}
	if !t.Status.Valid() {
		return ErrInvalidStatus
	}
	if !t.Priority.Valid() {
		return ErrInvalidPriority
	}
	return nil
}
