package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"
)

type tasksRepo struct {
	db *sql.DB
}

const taskColumns = `id, title, status, priority, checklists, due_date, created_by, created_at, updated_at`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) error {
	checklists, err := encodeChecklists(t.Checklists)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO tasks (`+taskColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID,
		t.Title,
		string(t.Status),
		string(t.Priority),
		checklists,
		mapOptionalTime(t.DueDate),
		t.CreatedBy,
		toMillis(t.CreatedAt),
		toMillis(t.UpdatedAt),
	)
	return mapUnique(err)
}

func (r *tasksRepo) GetTaskByID(ctx context.Context, id string) (domain.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	return t, nil
}

func (r *tasksRepo) GetOwnedTask(ctx context.Context, ownerID, id string) (domain.Task, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ? AND created_by = ?`, id, ownerID)
	t, err := scanTask(row)
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	return t, nil
}

func (r *tasksRepo) ListTasksByOwner(ctx context.Context, ownerID string, f store.TaskFilter) ([]domain.Task, error) {
	var (
		where = []string{"created_by = ?"}
		args  = []any{ownerID}
	)
	if f.CreatedAfter != nil {
		where = append(where, "created_at > ?")
		args = append(args, toMillis(*f.CreatedAfter))
	}
	if f.CreatedAtOrBefore != nil {
		where = append(where, "created_at <= ?")
		args = append(args, toMillis(*f.CreatedAtOrBefore))
	}

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

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

	row := r.db.QueryRowContext(ctx, `
		UPDATE tasks
		SET title = ?, status = ?, priority = ?, checklists = ?, due_date = ?, updated_at = ?
		WHERE id = ? AND created_by = ?
		RETURNING `+taskColumns,
		t.Title,
		string(t.Status),
		string(t.Priority),
		checklists,
		mapOptionalTime(t.DueDate),
		toMillis(t.UpdatedAt),
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
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ? AND created_by = ?`, id, ownerID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func scanTask(row rowScanner) (domain.Task, error) {
	var (
		t                    domain.Task
		status, priority     string
		checklists           string
		dueDate              sql.NullInt64
		createdAt, updatedAt int64
	)
	err := row.Scan(
		&t.ID,
		&t.Title,
		&status,
		&priority,
		&checklists,
		&dueDate,
		&t.CreatedBy,
		&createdAt,
		&updatedAt,
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
	t.DueDate = mapNullTimePtr(dueDate)
	t.CreatedAt = fromMillis(createdAt)
	t.UpdatedAt = fromMillis(updatedAt)
	return t, nil
}
