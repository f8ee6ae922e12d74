package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTask(t *testing.T) {
	task := NewTask("  Buy milk  ", 2)
	assert.Equal(t, "Buy milk", task.Description)
	assert.Equal(t, 2, task.Priority)
	assert.False(t, task.Completed)
	assert.Nil(t, task.CompletedAt)
}

func TestClampPriority(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"below minimum", -3, 1},
		{"zero", 0, 1},
		{"lowest bound", 1, 1},
		{"middle", 3, 3},
		{"highest bound", 5, 5},
		{"above maximum", 9, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClampPriority(tt.input))
		})
	}
}

func TestIsPending(t *testing.T) {
	assert.True(t, Task{}.IsPending())
	assert.False(t, Task{Completed: true}.IsPending())
}

func TestMatches(t *testing.T) {
	task := Task{Description: "Write the Quarterly Report"}

	assert.True(t, task.Matches("quarterly"))
	assert.True(t, task.Matches("REPORT"))
	assert.True(t, task.Matches("Write the Quarterly Report"))
	assert.False(t, task.Matches("monthly"))
}

func TestStatusGlyph(t *testing.T) {
	assert.Equal(t, "○", Task{}.StatusGlyph())
	assert.Equal(t, "✓", Task{Completed: true}.StatusGlyph())
}

func TestPriorityIndicator(t *testing.T) {
	tests := []struct {
		priority int
		expected string
	}{
		{1, "!!!!!"},
		{2, "!!!!"},
		{3, "!!!"},
		{4, "!!"},
		{5, "!"},
		{99, "!"},
		{0, "!!!!!"},
	}

	for _, tt := range tests {
		task := Task{Priority: tt.priority}
		assert.Equal(t, tt.expected, task.PriorityIndicator())
	}
}

func TestPriorityLabel(t *testing.T) {
	tests := []struct {
		priority int
		expected string
	}{
		{1, "URGENT"},
		{2, "HIGH"},
		{3, "NORMAL"},
		{4, "LOW"},
		{5, "VERY LOW"},
	}

	for _, tt := range tests {
		task := Task{Priority: tt.priority}
		assert.Equal(t, tt.expected, task.PriorityLabel())
	}
}

func TestLess(t *testing.T) {
	earlier := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	later := earlier.Add(time.Hour)

	tests := []struct {
		name     string
		a, b     Task
		expected bool
	}{
		{
			name:     "pending before completed regardless of priority",
			a:        Task{Priority: 5},
			b:        Task{Completed: true, Priority: 1},
			expected: true,
		},
		{
			name:     "completed after pending",
			a:        Task{Completed: true, Priority: 1},
			b:        Task{Priority: 5},
			expected: false,
		},
		{
			name:     "lower priority number first",
			a:        Task{Priority: 1, Position: 9},
			b:        Task{Priority: 2, Position: 0},
			expected: true,
		},
		{
			name:     "position breaks priority tie",
			a:        Task{Priority: 3, Position: 0, CreatedAt: later},
			b:        Task{Priority: 3, Position: 1, CreatedAt: earlier},
			expected: true,
		},
		{
			name:     "creation time is final tie-break",
			a:        Task{Priority: 3, Position: 0, CreatedAt: earlier},
			b:        Task{Priority: 3, Position: 0, CreatedAt: later},
			expected: true,
		},
		{
			name:     "equal tasks are not less",
			a:        Task{Priority: 3, Position: 0, CreatedAt: earlier},
			b:        Task{Priority: 3, Position: 0, CreatedAt: earlier},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Less(tt.a, tt.b))
		})
	}
}
