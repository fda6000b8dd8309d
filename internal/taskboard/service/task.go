package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

// DefaultRangeDays is the listing window used when the caller gives none.
const DefaultRangeDays = 7

// maxBoundedRangeDays is the widest window given a lower bound. Wider ranges
// reach past what the stores can represent (about 700 BC from today), so they
// list everything up to the end of the day instead.
const maxBoundedRangeDays = 1_000_000

type TaskService struct {
	Store        store.Store
	StoreTimeout time.Duration

	// SharedRead lets any authenticated caller read a task by id. When false,
	// GetTask is owner-scoped like every other operation.
	SharedRead bool

	// Now defaults to time.Now.
	Now func() time.Time
}

// TaskInput holds the caller-editable fields of a task. CreatedAt is only
// honoured on create.
type TaskInput struct {
	Title      string
	Status     domain.Status
	Priority   domain.Priority
	Checklists []domain.ChecklistItem
	DueDate    *time.Time
	CreatedAt  *time.Time
}

func (s *TaskService) CreateTask(ctx context.Context, ownerID string, in TaskInput) (domain.Task, error) {
	now := s.now()

	createdAt := now
	if in.CreatedAt != nil && !in.CreatedAt.IsZero() {
		createdAt = in.CreatedAt.UTC().Truncate(time.Millisecond)
	}

	task := domain.Task{
		ID:         idx.NewAt(now).String(),
		Title:      in.Title,
		Status:     in.Status,
		Priority:   in.Priority,
		Checklists: normalizeChecklists(in.Checklists),
		DueDate:    normalizeTime(in.DueDate),
		CreatedBy:  ownerID,
		CreatedAt:  createdAt,
		UpdatedAt:  now,
	}
	if err := task.Validate(); err != nil {
		return domain.Task{}, validationError(err.Error())
	}

	sctx, cancel := withStoreTimeout(ctx, s.StoreTimeout)
	defer cancel()

	if err := s.Store.Tasks().CreateTask(sctx, task); err != nil {
		slogx.FromContext(ctx).Error("failed to create task", slog.Any("error", err))
		return domain.Task{}, internalError(err)
	}

	task.IsExpired = task.Expired(now)
	return task, nil
}

// ListTasks returns the owner's tasks created in (end-rangeDays, end], where
// end is the last millisecond of the current UTC day. Zero or negative
// rangeDays give an empty window.
func (s *TaskService) ListTasks(ctx context.Context, ownerID string, rangeDays int) ([]domain.Task, error) {
	now := s.now()
	end := endOfDay(now)

	filter := store.TaskFilter{CreatedAtOrBefore: &end}
	if rangeDays <= maxBoundedRangeDays {
		start := end.AddDate(0, 0, -rangeDays)
		filter.CreatedAfter = &start
	}

	sctx, cancel := withStoreTimeout(ctx, s.StoreTimeout)
	defer cancel()

	tasks, err := s.Store.Tasks().ListTasksByOwner(sctx, ownerID, filter)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list tasks", slog.Any("error", err))
		return nil, internalError(err)
	}

	for i := range tasks {
		tasks[i].IsExpired = tasks[i].Expired(now)
	}
	return tasks, nil
}

func (s *TaskService) GetTask(ctx context.Context, callerID, taskID string) (domain.Task, error) {
	if taskID == "" {
		return domain.Task{}, validationError(MsgTaskIDRequired)
	}

	sctx, cancel := withStoreTimeout(ctx, s.StoreTimeout)
	defer cancel()

	var (
		task domain.Task
		err  error
	)
	if s.SharedRead {
		task, err = s.Store.Tasks().GetTaskByID(sctx, taskID)
	} else {
		task, err = s.Store.Tasks().GetOwnedTask(sctx, callerID, taskID)
	}
	if err != nil {
		return domain.Task{}, s.mapStoreError(ctx, "failed to get task", err)
	}

	task.IsExpired = task.Expired(s.now())
	return task, nil
}

// UpdateTask replaces title, status, priority, checklists and due date of a
// task the caller owns. Another owner's task looks exactly like a missing one.
func (s *TaskService) UpdateTask(ctx context.Context, ownerID, taskID string, in TaskInput) (domain.Task, error) {
	if taskID == "" {
		return domain.Task{}, validationError(MsgTaskIDRequired)
	}

	now := s.now()
	task := domain.Task{
		ID:         taskID,
		Title:      in.Title,
		Status:     in.Status,
		Priority:   in.Priority,
		Checklists: normalizeChecklists(in.Checklists),
		DueDate:    normalizeTime(in.DueDate),
		CreatedBy:  ownerID,
		UpdatedAt:  now,
	}
	if err := task.Validate(); err != nil {
		return domain.Task{}, validationError(err.Error())
	}

	sctx, cancel := withStoreTimeout(ctx, s.StoreTimeout)
	defer cancel()

	updated, err := s.Store.Tasks().UpdateOwnedTask(sctx, task)
	if err != nil {
		return domain.Task{}, s.mapStoreError(ctx, "failed to update task", err)
	}

	updated.IsExpired = updated.Expired(now)
	return updated, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, ownerID, taskID string) error {
	if taskID == "" {
		return validationError(MsgTaskIDRequired)
	}

	sctx, cancel := withStoreTimeout(ctx, s.StoreTimeout)
	defer cancel()

	if err := s.Store.Tasks().DeleteOwnedTask(sctx, ownerID, taskID); err != nil {
		return s.mapStoreError(ctx, "failed to delete task", err)
	}
	return nil
}

// Analytics counts every task the owner has, with no time window.
func (s *TaskService) Analytics(ctx context.Context, ownerID string) (domain.Analytics, error) {
	sctx, cancel := withStoreTimeout(ctx, s.StoreTimeout)
	defer cancel()

	tasks, err := s.Store.Tasks().ListTasksByOwner(sctx, ownerID, store.TaskFilter{})
	if err != nil {
		slogx.FromContext(ctx).Error("failed to load tasks for analytics", slog.Any("error", err))
		return domain.Analytics{}, internalError(err)
	}

	now := s.now()
	var a domain.Analytics
	for _, t := range tasks {
		t.IsExpired = t.Expired(now)
		a.Add(t)
	}
	return a, nil
}

func (s *TaskService) mapStoreError(ctx context.Context, msg string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return notFoundError(MsgTaskNotFound, err)
	}
	slogx.FromContext(ctx).Error(msg, slog.Any("error", err))
	return internalError(err)
}

func (s *TaskService) now() time.Time {
	return clock(s.Now)
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), time.UTC)
}

func normalizeTime(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	v := t.UTC().Truncate(time.Millisecond)
	return &v
}

func normalizeChecklists(items []domain.ChecklistItem) []domain.ChecklistItem {
	if items == nil {
		return []domain.ChecklistItem{}
	}
	return items
}
