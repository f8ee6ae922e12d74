package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tasq/internal/repository/sqlite"
)

func TestMapperRoundTrip(t *testing.T) {
	mapper := NewTaskMapper()
	completedAt := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)

	task := Task{
		ID:          7,
		Description: "ship release",
		Completed:   true,
		Priority:    2,
		CreatedAt:   time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		CompletedAt: &completedAt,
		Position:    3,
	}

	back := mapper.FromDatabase(mapper.ToDatabase(task))
	assert.Equal(t, task, back)
}

func TestFromDatabaseSlice(t *testing.T) {
	mapper := NewTaskMapper()

	dbTasks := []*sqlite.Task{
		{ID: 1, Description: "first", Priority: 3},
		{ID: 2, Description: "second", Priority: 1},
	}

	tasks := mapper.FromDatabaseSlice(dbTasks)
	assert.Len(t, tasks, 2)
	assert.Equal(t, "first", tasks[0].Description)
	assert.Equal(t, int64(2), tasks[1].ID)

	assert.Empty(t, mapper.FromDatabaseSlice(nil))
}
