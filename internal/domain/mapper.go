package domain

import (
	"tasq/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(domainTask Task) sqlite.Task {
	return sqlite.Task{
		ID:          domainTask.ID,
		Description: domainTask.Description,
		Completed:   domainTask.Completed,
		Priority:    domainTask.Priority,
		CreatedAt:   domainTask.CreatedAt,
		CompletedAt: domainTask.CompletedAt,
		Position:    domainTask.Position,
	}
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) Task {
	return Task{
		ID:          dbTask.ID,
		Description: dbTask.Description,
		Completed:   dbTask.Completed,
		Priority:    dbTask.Priority,
		CreatedAt:   dbTask.CreatedAt,
		CompletedAt: dbTask.CompletedAt,
		Position:    dbTask.Position,
	}
}

// FromDatabaseSlice converts a slice of database Tasks to domain Tasks.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlite.Task) []Task {
	domainTasks := make([]Task, len(dbTasks))
	for i, task := range dbTasks {
		domainTasks[i] = m.FromDatabase(*task)
	}
	return domainTasks
}
