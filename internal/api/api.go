package api

import (
	"context"
	"strconv"
	"time"

	"tasq/internal/domain"
	"tasq/internal/errors"
	"tasq/internal/logging"
	"tasq/internal/repository/sqlite"
	"tasq/internal/validation"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// API defines the interface for all task operations. Every mutation is
// expected to be followed by a fresh ListTasks call by the caller; the
// reload discipline keeps in-memory state identical to persisted state.
type API interface {
	// Store primitives
	AddTask(ctx context.Context, description string, priority int) (*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]domain.Task, error)
	CompleteTask(ctx context.Context, id int64) error
	SetTaskPriority(ctx context.Context, id int64, priority int) error
	SetTaskPosition(ctx context.Context, id int64, position int) error
	DeleteTask(ctx context.Context, id int64) error

	// Ordering operations
	SwapPositions(ctx context.Context, a, b domain.Task) error
	NextTask(ctx context.Context) (*domain.Task, error)

	// Command-surface resolution
	ResolvePendingTask(ctx context.Context, ref string) (*domain.Task, error)
	ResolveTask(ctx context.Context, ref string) (*domain.Task, error)
}

type apiImpl struct {
	repo      sqlite.Repository
	mapper    *domain.TaskMapper
	validator *validation.TaskValidator
}

// New creates a new API instance.
func New(repo sqlite.Repository) API {
	return &apiImpl{
		repo:      repo,
		mapper:    domain.NewTaskMapper(),
		validator: validation.NewTaskValidator(),
	}
}

// AddTask validates the description, clamps the priority and persists a
// new pending task positioned after all current tasks.
func (a *apiImpl) AddTask(ctx context.Context, description string, priority int) (*domain.Task, error) {
	cleaned, err := a.validator.GetValidDescription(description)
	if err != nil {
		return nil, err
	}

	existing, err := a.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	dbTask := &sqlite.Task{
		Description: cleaned,
		Priority:    domain.ClampPriority(priority),
		CreatedAt:   timeNow().UTC(),
		Position:    len(existing),
	}
	if err := a.repo.CreateTask(ctx, dbTask); err != nil {
		return nil, err
	}

	logging.Debugf("added task %d %q priority %d position %d\n", dbTask.ID, dbTask.Description, dbTask.Priority, dbTask.Position)
	task := a.mapper.FromDatabase(*dbTask)
	return &task, nil
}

func (a *apiImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if err := a.validator.ValidateTaskID(id); err != nil {
		return nil, err
	}

	dbTask, err := a.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	task := a.mapper.FromDatabase(*dbTask)
	return &task, nil
}

// ListTasks returns every task in canonical order.
func (a *apiImpl) ListTasks(ctx context.Context) ([]domain.Task, error) {
	dbTasks, err := a.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return a.mapper.FromDatabaseSlice(dbTasks), nil
}

// CompleteTask marks the task complete with the current time. Completing
// a missing or already-completed task is a no-op.
func (a *apiImpl) CompleteTask(ctx context.Context, id int64) error {
	if err := a.validator.ValidateTaskID(id); err != nil {
		return err
	}
	return a.repo.MarkComplete(ctx, id, timeNow().UTC())
}

// SetTaskPriority clamps the priority into the valid range before writing.
func (a *apiImpl) SetTaskPriority(ctx context.Context, id int64, priority int) error {
	if err := a.validator.ValidateTaskID(id); err != nil {
		return err
	}
	return a.repo.SetPriority(ctx, id, domain.ClampPriority(priority))
}

func (a *apiImpl) SetTaskPosition(ctx context.Context, id int64, position int) error {
	if err := a.validator.ValidateTaskID(id); err != nil {
		return err
	}
	return a.repo.SetPosition(ctx, id, position)
}

func (a *apiImpl) DeleteTask(ctx context.Context, id int64) error {
	if err := a.validator.ValidateTaskID(id); err != nil {
		return err
	}
	return a.repo.DeleteTask(ctx, id)
}

// SwapPositions exchanges two tasks in the overall ordering, then
// rewrites every task's position hint to its resulting index. Deletes
// leave gaps and adds can duplicate a hint (position is the task count
// at insert time); renumbering on every reorder keeps the hints unique,
// so a swap always takes effect.
func (a *apiImpl) SwapPositions(ctx context.Context, first, second domain.Task) error {
	tasks, err := a.ListTasks(ctx)
	if err != nil {
		return err
	}

	firstIdx, secondIdx := -1, -1
	for i := range tasks {
		switch tasks[i].ID {
		case first.ID:
			firstIdx = i
		case second.ID:
			secondIdx = i
		}
	}
	if firstIdx < 0 || secondIdx < 0 {
		// One of the tasks was deleted underneath us; the caller's
		// next reload picks that up.
		return nil
	}
	tasks[firstIdx], tasks[secondIdx] = tasks[secondIdx], tasks[firstIdx]

	for i := range tasks {
		if tasks[i].Position == i {
			continue
		}
		if err := a.repo.SetPosition(ctx, tasks[i].ID, i); err != nil {
			logging.Debugf("renumber stopped at index %d: %v\n", i, err)
			return err
		}
	}
	return nil
}

// NextTask returns the first pending task in canonical order.
func (a *apiImpl) NextTask(ctx context.Context) (*domain.Task, error) {
	tasks, err := a.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].IsPending() {
			return &tasks[i], nil
		}
	}
	return nil, errors.NewNotFoundError("pending task", "next")
}

// ResolvePendingTask resolves an id-or-text reference against pending
// tasks only: a numeric reference looks up by id, anything else matches
// the first pending task whose description contains the text
// (case-insensitive).
func (a *apiImpl) ResolvePendingTask(ctx context.Context, ref string) (*domain.Task, error) {
	return a.resolve(ctx, ref, true)
}

// ResolveTask resolves an id-or-text reference against all tasks,
// regardless of completion state.
func (a *apiImpl) ResolveTask(ctx context.Context, ref string) (*domain.Task, error) {
	return a.resolve(ctx, ref, false)
}

func (a *apiImpl) resolve(ctx context.Context, ref string, pendingOnly bool) (*domain.Task, error) {
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		return a.GetTask(ctx, id)
	}

	tasks, err := a.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if pendingOnly && !tasks[i].IsPending() {
			continue
		}
		if tasks[i].Matches(ref) {
			return &tasks[i], nil
		}
	}
	return nil, errors.NewNotFoundError("task", ref)
}
