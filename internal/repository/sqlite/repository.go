package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tasq/internal/errors"
	"tasq/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations. It is the
// single source of truth: callers replace their in-memory task list with
// a fresh ListTasks result after every mutation.
type Repository interface {
	// Create operations
	CreateTask(ctx context.Context, task *Task) error

	// Read operations
	GetTask(ctx context.Context, id int64) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)

	// Update operations
	MarkComplete(ctx context.Context, id int64, completedAt time.Time) error
	SetPriority(ctx context.Context, id int64, priority int) error
	SetPosition(ctx context.Context, id int64, position int) error

	// Delete operations
	DeleteTask(ctx context.Context, id int64) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance, creating the parent
// directory if needed and running any pending migrations.
func New(dbPath string) (*SQLiteRepository, error) {
	if dbPath != ":memory:" {
		if dir := filepath.Dir(dbPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, errors.NewDatabaseError("create database directory", err)
			}
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTask creates a new task row. The caller is responsible for
// description validation, priority clamping and the position hint;
// CreatedAt defaults to now when unset.
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now().UTC()
	}

	query := `
	INSERT INTO tasks (description, completed, priority, created_at, completed_at, position)
	VALUES (?, ?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		task.Description,
		task.Completed,
		task.Priority,
		timeToDB(task.CreatedAt),
		timePtrToDB(task.CompletedAt),
		task.Position,
	)
	if err != nil {
		return err
	}

	task.ID = id
	return nil
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	query := `
	SELECT id, description, completed, priority, created_at, completed_at, position
	FROM tasks
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// ListTasks retrieves all tasks in canonical order: pending before
// completed, then by priority, manual position and creation time.
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	query := `
	SELECT id, description, completed, priority, created_at, completed_at, position
	FROM tasks
	ORDER BY completed ASC, priority ASC, position ASC, created_at ASC`

	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// MarkComplete sets completed and completed_at for the row with the given
// id. Completing a missing or already-completed task is a no-op; the
// original completed_at is never overwritten.
func (r *SQLiteRepository) MarkComplete(ctx context.Context, id int64, completedAt time.Time) error {
	query := `
	UPDATE tasks
	SET completed = TRUE, completed_at = ?
	WHERE id = ? AND completed = FALSE`

	return Execute(ctx, r.db, query, timeToDB(completedAt), id)
}

// SetPriority overwrites the priority for a single row. The caller
// guarantees the value is already clamped to the valid range.
func (r *SQLiteRepository) SetPriority(ctx context.Context, id int64, priority int) error {
	query := `UPDATE tasks SET priority = ? WHERE id = ?`
	return Execute(ctx, r.db, query, priority, id)
}

// SetPosition overwrites the manual ordering hint for a single row
func (r *SQLiteRepository) SetPosition(ctx context.Context, id int64, position int) error {
	query := `UPDATE tasks SET position = ? WHERE id = ?`
	return Execute(ctx, r.db, query, position, id)
}

// DeleteTask removes the row with the given id. Deleting a missing id is
// a no-op.
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE id = ?`
	return Execute(ctx, r.db, query, id)
}
