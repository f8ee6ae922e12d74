package domain

import (
	"strings"
	"time"
)

// Priority bounds. Lower numbers are more urgent.
const (
	PriorityHighest = 1
	PriorityDefault = 3
	PriorityLowest  = 5
)

// Task represents a task in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID          int64
	Description string
	Completed   bool
	Priority    int
	CreatedAt   time.Time
	CompletedAt *time.Time
	Position    int
}

// NewTask creates a new pending Task with the given description and priority.
func NewTask(description string, priority int) Task {
	return Task{
		Description: strings.TrimSpace(description),
		Priority:    ClampPriority(priority),
	}
}

// IsPending returns true if the task has not been completed.
func (t Task) IsPending() bool {
	return !t.Completed
}

// Matches reports whether the task description contains the given text,
// case-insensitively.
func (t Task) Matches(text string) bool {
	return strings.Contains(strings.ToLower(t.Description), strings.ToLower(text))
}

// StatusGlyph returns the completion glyph used in list output.
func (t Task) StatusGlyph() string {
	if t.Completed {
		return "✓"
	}
	return "○"
}

// PriorityIndicator returns the urgency marker: more exclamation marks
// for more urgent tasks (priority 1 renders five, priority 5 one).
func (t Task) PriorityIndicator() string {
	n := PriorityLowest + 1 - ClampPriority(t.Priority)
	return strings.Repeat("!", n)
}

// PriorityLabel returns a human-readable name for the task's priority level.
func (t Task) PriorityLabel() string {
	switch ClampPriority(t.Priority) {
	case 1:
		return "URGENT"
	case 2:
		return "HIGH"
	case 3:
		return "NORMAL"
	case 4:
		return "LOW"
	default:
		return "VERY LOW"
	}
}

// String returns the task description for display purposes.
func (t Task) String() string {
	return t.Description
}

// ClampPriority forces a priority value into the valid [1,5] range.
func ClampPriority(p int) int {
	if p < PriorityHighest {
		return PriorityHighest
	}
	if p > PriorityLowest {
		return PriorityLowest
	}
	return p
}

// Less reports whether task a sorts before task b in canonical order:
// ascending by (completed, priority, position, created_at). Pending tasks
// always precede completed ones; creation time is the final tie-break.
func Less(a, b Task) bool {
	if a.Completed != b.Completed {
		return !a.Completed
	}
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	if a.Position != b.Position {
		return a.Position < b.Position
	}
	return a.CreatedAt.Before(b.CreatedAt)
}
