package cli

import (
	"context"
	"fmt"
	"strings"

	"tasq/internal/api"
)

// AddCommand handles the add command
type AddCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(apiInstance api.API) *AddCommand {
	return &AddCommand{
		api:          apiInstance,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string, priority int) error {
	description := strings.Join(args, " ")

	task, err := c.api.AddTask(ctx, description, priority)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	fmt.Printf("Added task: %s (priority: %d)\n", task.Description, task.Priority)
	return nil
}
