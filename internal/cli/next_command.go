package cli

import (
	"context"
	"fmt"

	"tasq/internal/api"
)

// NextCommand handles the next command
type NextCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewNextCommand creates a new next command handler
func NewNextCommand(apiInstance api.API) *NextCommand {
	return &NextCommand{
		api:          apiInstance,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the next command
func (c *NextCommand) Execute(ctx context.Context) error {
	task, err := c.api.NextTask(ctx)
	if err != nil {
		if c.errorHandler.IsNotFoundError(err) {
			fmt.Println("No pending tasks!")
			return nil
		}
		return c.errorHandler.Handle("get next task", err)
	}

	fmt.Printf("Next task: [%d] %s %s\n", task.ID, task.PriorityIndicator(), task.Description)
	return nil
}
