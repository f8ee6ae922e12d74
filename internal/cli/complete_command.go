package cli

import (
	"context"
	"fmt"
	"strconv"

	"tasq/internal/api"
)

// CompleteCommand handles the complete command
type CompleteCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewCompleteCommand creates a new complete command handler
func NewCompleteCommand(apiInstance api.API) *CompleteCommand {
	return &CompleteCommand{
		api:          apiInstance,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the complete command. A reference that matches no task
// prints a message but exits zero: a failed lookup is not a process failure.
func (c *CompleteCommand) Execute(ctx context.Context, ref string) error {
	task, err := c.api.ResolvePendingTask(ctx, ref)
	if err != nil {
		if c.errorHandler.IsNotFoundError(err) {
			fmt.Printf("Task not found: %s\n", ref)
			return nil
		}
		return c.errorHandler.Handle("complete task", err)
	}

	if err := c.api.CompleteTask(ctx, task.ID); err != nil {
		return c.errorHandler.Handle("complete task", err)
	}

	if _, byID := parseTaskID(ref); byID {
		fmt.Printf("Completed task %d\n", task.ID)
	} else {
		fmt.Printf("Completed task: %s\n", task.Description)
	}
	return nil
}

// parseTaskID reports whether a reference is a numeric task id
func parseTaskID(ref string) (int64, bool) {
	id, err := strconv.ParseInt(ref, 10, 64)
	return id, err == nil
}
