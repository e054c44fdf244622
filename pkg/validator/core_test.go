package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fezwebco/getintouch/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("lists every failure", func(t *testing.T) {
		errs := validator.ValidationErrors{
			{Field: "name", Message: "Name is required"},
			{Field: "email", Message: "Invalid email address"},
		}

		assert.Equal(t, "validation failed: name: Name is required; email: Invalid email address", errs.Error())
	})
}

func TestValidationErrors_Map(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "name", Message: "required"},
		{Field: "message", Message: "required"},
		{Field: "name", Message: "too long"},
	}

	assert.Equal(t, map[string][]string{
		"name":    {"required", "too long"},
		"message": {"required"},
	}, errs.Map())

	var empty validator.ValidationErrors
	assert.Nil(t, empty.Map())
}

func TestApply(t *testing.T) {
	t.Run("all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", "Jane"),
			validator.ValidEmail("email", "jane@example.com"),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failing rule", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", ""),
			validator.ValidEmail("email", "jane@example.com"),
			validator.Required("message", "  "),
		)
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 2)
		assert.Equal(t, "name", errs[0].Field)
		assert.Equal(t, "message", errs[1].Field)
	})

	t.Run("custom message", func(t *testing.T) {
		err := validator.Apply(validator.Required("name", "").WithMessage("Name is required"))
		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 1)
		assert.Equal(t, "Name is required", errs[0].Message)
		assert.Equal(t, validator.CodeRequired, errs[0].Code)
	})
}

func TestValidationErrorDetection(t *testing.T) {
	err := validator.Apply(validator.Required("name", ""))
	wrapped := fmt.Errorf("submit: %w", err)

	assert.True(t, errors.Is(wrapped, validator.ErrValidationFailed))
	assert.Len(t, validator.ExtractValidationErrors(wrapped), 1)

	plain := errors.New("network down")
	assert.False(t, errors.Is(plain, validator.ErrValidationFailed))
	assert.Nil(t, validator.ExtractValidationErrors(plain))
	assert.Nil(t, validator.ExtractValidationErrors(nil))
}
