package validation

import (
	"strings"

	"tasq/internal/domain"
)

const (
	descriptionMinLength = 1
	descriptionMaxLength = 255
)

// TaskValidator provides validation for task-related operations
type TaskValidator struct{}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{}
}

// ValidateDescription validates a task description for creation
func (tv *TaskValidator) ValidateDescription(description string) error {
	validationError := NewValidationError()

	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		validationError.AddRequiredError("description")
		return validationError
	}

	if len(trimmed) > descriptionMaxLength {
		validationError.AddInvalidLengthError("description", trimmed, descriptionMinLength, descriptionMaxLength)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidatePriority validates a priority value supplied programmatically.
// Interactive callers clamp instead; this rejects out-of-range input at
// the boundary where a caller passed an explicit value.
func (tv *TaskValidator) ValidatePriority(priority int) error {
	if priority < domain.PriorityHighest || priority > domain.PriorityLowest {
		validationError := NewValidationError()
		validationError.AddInvalidRangeError("priority", priority, domain.PriorityHighest, domain.PriorityLowest)
		return validationError
	}
	return nil
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if id <= 0 {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("task_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// GetValidDescription returns a cleaned description if valid
func (tv *TaskValidator) GetValidDescription(description string) (string, error) {
	if err := tv.ValidateDescription(description); err != nil {
		return "", err
	}
	return strings.TrimSpace(description), nil
}
