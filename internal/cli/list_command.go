package cli

import (
	"context"
	"fmt"

	"tasq/internal/api"
	"tasq/internal/domain"
)

// ListCommand handles the list command
type ListCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(apiInstance api.API) *ListCommand {
	return &ListCommand{
		api:          apiInstance,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the list command. With exactly one of the two flags set
// the output is filtered; with both or neither, everything is printed.
func (c *ListCommand) Execute(ctx context.Context, completed, pending bool) error {
	tasks, err := c.api.ListTasks(ctx)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	var filtered []domain.Task
	switch {
	case completed && !pending:
		for _, t := range tasks {
			if t.Completed {
				filtered = append(filtered, t)
			}
		}
	case pending && !completed:
		for _, t := range tasks {
			if t.IsPending() {
				filtered = append(filtered, t)
			}
		}
	default:
		filtered = tasks
	}

	if len(filtered) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	for _, t := range filtered {
		fmt.Printf("%s [%d] %s %s\n", t.StatusGlyph(), t.ID, t.PriorityIndicator(), t.Description)
	}
	return nil
}
