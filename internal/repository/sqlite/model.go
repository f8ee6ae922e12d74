package sqlite

import "time"

// Task represents a single row of the tasks table.
// CompletedAt is a pointer to allow NULL values; it is set exactly once,
// when the task is completed, and never cleared.
type Task struct {
	ID          int64
	Description string
	Completed   bool
	Priority    int
	CreatedAt   time.Time
	CompletedAt *time.Time
	Position    int
}
