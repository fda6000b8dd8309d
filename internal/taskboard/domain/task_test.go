package domain_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/stretchr/testify/require"
)

func TestTaskValidate(t *testing.T) {
	valid := domain.Task{Title: "X", Status: domain.StatusTodo, Priority: domain.PriorityHigh}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name string
		edit func(*domain.Task)
		want error
	}{
		{"empty title", func(t *domain.Task) { t.Title = "" }, domain.ErrTitleRequired},
		{"blank title", func(t *domain.Task) { t.Title = "   " }, domain.ErrTitleRequired},
		{"empty status", func(t *domain.Task) { t.Status = "" }, domain.ErrInvalidStatus},
		{"unknown status", func(t *domain.Task) { t.Status = "archived" }, domain.ErrInvalidStatus},
		{"status is case sensitive", func(t *domain.Task) { t.Status = "InProgress" }, domain.ErrInvalidStatus},
		{"empty priority", func(t *domain.Task) { t.Priority = "" }, domain.ErrInvalidPriority},
		{"unknown priority", func(t *domain.Task) { t.Priority = "urgent" }, domain.ErrInvalidPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := valid
			tt.edit(&task)
			require.ErrorIs(t, task.Validate(), tt.want)
		})
	}
}

func TestTaskExpired(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name   string
		due    *time.Time
		status domain.Status
		want   bool
	}{
		{"no due date", nil, domain.StatusTodo, false},
		{"due in future", &future, domain.StatusTodo, false},
		{"due exactly now", &now, domain.StatusTodo, false},
		{"overdue", &past, domain.StatusInProgress, true},
		{"overdue but done", &past, domain.StatusDone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := domain.Task{DueDate: tt.due, Status: tt.status}
			require.Equal(t, tt.want, task.Expired(now))
		})
	}
}

func TestAnalyticsAdd(t *testing.T) {
	var a domain.Analytics
	require.Equal(t, domain.Analytics{}, a)

	a.Add(domain.Task{Status: domain.StatusTodo, Priority: domain.PriorityHigh, IsExpired: true})
	a.Add(domain.Task{Status: domain.StatusDone, Priority: domain.PriorityLow})
	a.Add(domain.Task{Status: domain.StatusBacklog, Priority: domain.PriorityModerate})
	a.Add(domain.Task{Status: domain.StatusInProgress, Priority: domain.PriorityHigh, IsExpired: true})

	require.Equal(t, domain.StatusCounts{Backlog: 1, Todo: 1, InProgress: 1, Done: 1}, a.Status)
	require.Equal(t, domain.PriorityCounts{Low: 1, Moderate: 1, High: 2, Due: 2}, a.Priorities)
}

func TestUserPublic(t *testing.T) {
	u := domain.User{ID: "1", Email: "a@b.c", Name: "A", PasswordHash: "secret"}
	require.Equal(t, domain.PublicUser{ID: "1", Email: "a@b.c", Name: "A"}, u.Public())
}
