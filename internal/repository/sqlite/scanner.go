package sqlite

import (
	"database/sql"
	"fmt"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// ScanTask scans a single task from a database row. Timestamps are stored
// as RFC3339 text; a malformed created_at is a storage error, not a zero value.
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	var createdAt string
	var completedAt sql.NullString

	err := scanner.Scan(
		&task.ID,
		&task.Description,
		&task.Completed,
		&task.Priority,
		&createdAt,
		&completedAt,
		&task.Position,
	)
	if err != nil {
		return nil, err
	}

	task.CreatedAt, err = timeFromDB(createdAt)
	if err != nil {
		return nil, fmt.Errorf("malformed created_at for task %d: %w", task.ID, err)
	}

	if completedAt.Valid {
		t, err := timeFromDB(completedAt.String)
		if err != nil {
			return nil, fmt.Errorf("malformed completed_at for task %d: %w", task.ID, err)
		}
		task.CompletedAt = &t
	}

	return task, nil
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]*Task, error) {
	var tasks []*Task
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
