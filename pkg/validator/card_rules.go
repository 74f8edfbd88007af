package validator

import (
	"slices"
	"strings"

	"github.com/dmitrymomot/cardcheck/pkg/card"
)

// ValidCardNumber validates a card number using length, Luhn checksum and
// normalization rules of the card package. Separators are ignored.
func ValidCardNumber(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return card.Validate(value).Valid
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid card number",
			TranslationKey: "validation.card_number",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// CardBrandIn validates that a card number is valid and issued by one of the
// allowed brands.
func CardBrandIn(field, value string, brands ...card.Brand) Rule {
	names := make([]string, 0, len(brands))
	for _, b := range brands {
		names = append(names, b.String())
	}

	return Rule{
		Check: func() bool {
			res := card.Validate(value)
			return res.Valid && slices.Contains(brands, res.Brand)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "card brand must be one of: " + strings.Join(names, ", "),
			TranslationKey: "validation.card_brand",
			TranslationValues: map[string]any{
				"field":  field,
				"brands": names,
			},
		},
	}
}
