package cli

import (
	"context"
	"fmt"
	"strconv"

	"tasq/internal/api"
	"tasq/internal/domain"
	"tasq/internal/errors"
)

// SetPriorityCommand handles the set-priority command
type SetPriorityCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewSetPriorityCommand creates a new set-priority command handler
func NewSetPriorityCommand(apiInstance api.API) *SetPriorityCommand {
	return &SetPriorityCommand{
		api:          apiInstance,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the set-priority command. Text references match any task,
// not just pending ones. Out-of-range priorities are clamped so the store
// never sees a value outside [1,5].
func (c *SetPriorityCommand) Execute(ctx context.Context, ref string, priorityArg string) error {
	priority, err := strconv.Atoi(priorityArg)
	if err != nil {
		return c.errorHandler.Handle("set priority",
			errors.NewInvalidInputError("priority", priorityArg, "must be an integer between 1 and 5"))
	}
	priority = domain.ClampPriority(priority)

	task, err := c.api.ResolveTask(ctx, ref)
	if err != nil {
		if c.errorHandler.IsNotFoundError(err) {
			fmt.Printf("Task not found: %s\n", ref)
			return nil
		}
		return c.errorHandler.Handle("set priority", err)
	}

	if err := c.api.SetTaskPriority(ctx, task.ID, priority); err != nil {
		return c.errorHandler.Handle("set priority", err)
	}

	if _, byID := parseTaskID(ref); byID {
		fmt.Printf("Set priority %d for task %d\n", priority, task.ID)
	} else {
		fmt.Printf("Set priority %d for task: %s\n", priority, task.Description)
	}
	return nil
}
