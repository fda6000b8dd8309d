package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"
	"github.com/jackc/pgx/v5"
)

type tasksRepo struct {
	db DB
}

const taskColumns = `id, title, status, priority, checklists, due_date, created_by, created_at, updated_at`

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) error {
	checklists, err := encodeChecklists(t.Checklists)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO tasks (`+taskColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		t.ID,
		t.Title,
		string(t.Status),
		string(t.Priority),
		checklists,
		t.DueDate,
		t.CreatedBy,
		t.CreatedAt,
		t.UpdatedAt,
	)
	return mapUnique(err)
}

func (r *tasksRepo) GetTaskByID(ctx context.Context, id string) (domain.Task, error) {
	row := r.db.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id)
	t, err := scanTask(row)
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	return t, nil
}

func (r *tasksRepo) GetOwnedTask(ctx context.Context, ownerID, id string) (domain.Task, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1 AND created_by = $2`, id, ownerID)
	t, err := scanTask(row)
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	return t, nil
}

func (r *tasksRepo) ListTasksByOwner(ctx context.Context, ownerID string, f store.TaskFilter) ([]domain.Task, error) {
	var (
		where = []string{"created_by = $1"}
		args  = []any{ownerID}
	)
	if f.CreatedAfter != nil {
		args = append(args, *f.CreatedAfter)
		where = append(where, fmt.Sprintf("created_at > $%d", len(args)))
	}
	if f.CreatedAtOrBefore != nil {
		args = append(args, *f.CreatedAtOrBefore)
		where = append(where, fmt.Sprintf("created_at <= $%d", len(args)))
	}

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *tasksRepo) UpdateOwnedTask(ctx context.Context, t domain.Task) (domain.Task, error) {
	checklists, err := encodeChecklists(t.Checklists)
	if err != nil {
		return domain.Task{}, err
	}

	row := r.db.QueryRow(ctx, `
		UPDATE tasks
		SET title = $1, status = $2, priority = $3, checklists = $4, due_date = $5, updated_at = $6
		WHERE id = $7 AND created_by = $8
		RETURNING `+taskColumns,
		t.Title,
		string(t.Status),
		string(t.Priority),
		checklists,
		t.DueDate,
		t.UpdatedAt,
		t.ID,
		t.CreatedBy,
	)
	updated, err := scanTask(row)
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	return updated, nil
}

func (r *tasksRepo) DeleteOwnedTask(ctx context.Context, ownerID, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND created_by = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func scanTask(row pgx.Row) (domain.Task, error) {
	var (
		t                domain.Task
		status, priority string
		checklists       []byte
		dueDate          *time.Time
	)
	err := row.Scan(
		&t.ID,
		&t.Title,
		&status,
		&priority,
		&checklists,
		&dueDate,
		&t.CreatedBy,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return domain.Task{}, err
	}

	items, err := decodeChecklists(checklists)
	if err != nil {
		return domain.Task{}, err
	}

	t.Status = domain.Status(status)
	t.Priority = domain.Priority(priority)
	t.Checklists = items
	t.DueDate = utcPtr(dueDate)
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return t, nil
}
