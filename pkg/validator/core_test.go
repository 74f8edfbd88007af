package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cardcheck/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "number", Message: "invalid card number"})
		assert.Equal(t, "validation failed: number: invalid card number", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "number", Message: "invalid card number"})
		errs.Add(validator.ValidationError{Field: "image_path", Message: "field is required"})

		msg := errs.Error()
		assert.Contains(t, msg, "validation failed:")
		assert.Contains(t, msg, "number: invalid card number")
		assert.Contains(t, msg, "image_path: field is required")
	})
}

func TestValidationErrors_Lookup(t *testing.T) {
	t.Parallel()

	errs := validator.ValidationErrors{
		{Field: "number", Message: "invalid card number"},
		{Field: "number", Message: "card brand must be one of: visa"},
		{Field: "image_path", Message: "field is required"},
	}

	assert.True(t, errs.Has("number"))
	assert.False(t, errs.Has("brand"))
	assert.Equal(t, []string{"invalid card number", "card brand must be one of: visa"}, errs.Get("number"))
	assert.Nil(t, errs.Get("brand"))
	assert.Equal(t, []string{"number", "image_path"}, errs.Fields())
	assert.Equal(t, map[string][]string{
		"number":     {"invalid card number", "card brand must be one of: visa"},
		"image_path": {"field is required"},
	}, errs.ToMap())
	assert.False(t, errs.IsEmpty())
	assert.True(t, validator.ValidationErrors{}.IsEmpty())
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("number", "4532015112830366"),
			validator.ValidCardNumber("number", "4532015112830366"),
		)
		assert.NoError(t, err)
	})

	t.Run("returns nil without rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("collects every failing rule in order", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("image_path", " "),
			validator.ValidCardNumber("number", "1234"),
			validator.MaxLen("note", "ok", 10),
		)
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 2)
		assert.Equal(t, "image_path", errs[0].Field)
		assert.Equal(t, "number", errs[1].Field)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))

	err := validator.Apply(validator.Required("number", ""))
	wrapped := fmt.Errorf("decode request: %w", err)

	errs := validator.ExtractValidationErrors(wrapped)
	require.Len(t, errs, 1)
	assert.Equal(t, "validation.required", errs[0].TranslationKey)

	assert.True(t, validator.IsValidationError(wrapped))
	assert.False(t, validator.IsValidationError(nil))
	assert.False(t, validator.IsValidationError(validator.ErrValidationFailed))
	assert.ErrorIs(t, wrapped, validator.ErrValidationFailed)
}
