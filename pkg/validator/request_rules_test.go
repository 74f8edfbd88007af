package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/cardcheck/pkg/validator"
)

func TestRequired(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.Required("image_path", "cards/base.jpg")))
	for _, v := range []string{"", " ", "\t\n"} {
		assert.Error(t, validator.Apply(validator.Required("image_path", v)), "value %q", v)
	}
}

func TestMaxLen(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.MaxLen("number", "12345", 5)))
	assert.Error(t, validator.Apply(validator.MaxLen("number", "123456", 5)))

	errs := validator.ExtractValidationErrors(validator.Apply(validator.MaxLen("number", "123456", 5)))
	assert.Equal(t, 5, errs[0].TranslationValues["max"])
}

func TestNotEmptySlice(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.NotEmptySlice("numbers", []string{"1"})))
	assert.Error(t, validator.Apply(validator.NotEmptySlice("numbers", []string{})))
	assert.Error(t, validator.Apply(validator.NotEmptySlice[string]("numbers", nil)))
}

func TestMaxItems(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.MaxItems("numbers", []string{"1", "2"}, 2)))
	assert.Error(t, validator.Apply(validator.MaxItems("numbers", []string{"1", "2", "3"}, 2)))
}

func TestRelativePath(t *testing.T) {
	t.Parallel()

	valid := []string{"base.jpg", "cards/2024/front.png", "./base.jpg", "a..b/c.jpg"}
	for _, p := range valid {
		assert.NoError(t, validator.Apply(validator.RelativePath("image_path", p)), "path %q", p)
	}

	invalid := []string{"/etc/passwd", "../secret.jpg", "cards/../../x.png", "..\\x.png", "a\x00b.jpg", "\\abs.jpg"}
	for _, p := range invalid {
		assert.Error(t, validator.Apply(validator.RelativePath("image_path", p)), "path %q", p)
	}
}
