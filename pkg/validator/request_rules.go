package validator

import (
	"fmt"
	"strings"
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MaxLen validates that a string is at most max bytes long.
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// NotEmptySlice validates that a slice has at least one element.
func NotEmptySlice[T any](field string, value []T) Rule {
	return Rule{
		Check: func() bool {
			return len(value) > 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain at least one item",
			TranslationKey: "validation.not_empty",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MaxItems validates that a slice holds no more than max elements.
func MaxItems[T any](field string, value []T, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must contain at most %d items", max),
			TranslationKey: "validation.max_items",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// RelativePath validates that a path does not escape its root: no absolute
// paths, no parent directory segments and no NUL bytes.
func RelativePath(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.ContainsRune(value, 0) {
				return false
			}
			p := strings.ReplaceAll(value, "\\", "/")
			if strings.HasPrefix(p, "/") {
				return false
			}
			for _, seg := range strings.Split(p, "/") {
				if seg == ".." {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a relative path without parent directory references",
			TranslationKey: "validation.relative_path",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
