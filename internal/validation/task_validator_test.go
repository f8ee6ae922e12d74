package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDescription(t *testing.T) {
	validator := NewTaskValidator()

	tests := []struct {
		name        string
		description string
		wantErr     bool
	}{
		{"valid description", "Buy milk", false},
		{"valid with surrounding whitespace", "  Buy milk  ", false},
		{"empty", "", true},
		{"whitespace only", "   \t  ", true},
		{"at max length", strings.Repeat("a", 255), false},
		{"over max length", strings.Repeat("a", 256), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateDescription(tt.description)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePriority(t *testing.T) {
	validator := NewTaskValidator()

	for p := 1; p <= 5; p++ {
		assert.NoError(t, validator.ValidatePriority(p))
	}

	assert.Error(t, validator.ValidatePriority(0))
	assert.Error(t, validator.ValidatePriority(6))
	assert.Error(t, validator.ValidatePriority(-1))
}

func TestValidateTaskID(t *testing.T) {
	validator := NewTaskValidator()

	assert.NoError(t, validator.ValidateTaskID(1))
	assert.NoError(t, validator.ValidateTaskID(999))
	assert.Error(t, validator.ValidateTaskID(0))
	assert.Error(t, validator.ValidateTaskID(-5))
}

func TestGetValidDescription(t *testing.T) {
	validator := NewTaskValidator()

	desc, err := validator.GetValidDescription("  Buy milk  ")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", desc)

	_, err = validator.GetValidDescription("   ")
	assert.Error(t, err)
}

func TestValidationErrorMessages(t *testing.T) {
	validator := NewTaskValidator()

	err := validator.ValidateDescription("")
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, validationErr.GetUserFriendlyMessage(), "description is required")

	err = validator.ValidatePriority(10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "between 1 and 5")
}
