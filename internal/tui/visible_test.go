package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tasq/internal/domain"
)

func TestVisibleTasks(t *testing.T) {
	tasks := []domain.Task{
		{ID: 1, Description: "pending one"},
		{ID: 2, Description: "done", Completed: true},
		{ID: 3, Description: "pending two"},
	}

	pending := visibleTasks(tasks, false)
	assert.Len(t, pending, 2)
	assert.Equal(t, int64(1), pending[0].ID)
	assert.Equal(t, int64(3), pending[1].ID)

	all := visibleTasks(tasks, true)
	assert.Len(t, all, 3)
}

func TestVisibleTasksEmpty(t *testing.T) {
	assert.Empty(t, visibleTasks(nil, false))
	assert.Empty(t, visibleTasks(nil, true))

	onlyCompleted := []domain.Task{{ID: 1, Completed: true}}
	assert.Empty(t, visibleTasks(onlyCompleted, false))
}
