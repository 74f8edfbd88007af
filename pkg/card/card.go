package card

import "strings"

const (
	// MinLength is the shortest plausible card number.
	MinLength = 13
	// MaxLength is the longest plausible card number.
	MaxLength = 19
)

// Result is the outcome of validating a single card number.
// Number holds the normalized digits and is populated even when Valid is false.
type Result struct {
	Valid  bool   `json:"valid" yaml:"valid"`
	Brand  Brand  `json:"brand" yaml:"brand"`
	Number string `json:"number" yaml:"number"`
}

// Validate normalizes input, checks its length and Luhn checksum, and
// classifies the brand of checksum-valid numbers.
func Validate(input string) Result {
	number := Normalize(input)

	if !plausible(number) {
		return Result{Valid: false, Brand: Unknown, Number: number}
	}

	if !Luhn(number) {
		return Result{Valid: false, Brand: Unknown, Number: number}
	}

	return Result{Valid: true, Brand: Classify(number), Number: number}
}

// Normalize returns the ASCII digits of s in their original order.
// Normalizing an already normalized string returns it unchanged.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// Mask hides all but the first six and last four digits of a number.
// Numbers too short to keep both ends are fully masked.
//
// Example:
//
//	card.Mask("4532015112830366") // "453201******0366"
func Mask(number string) string {
	number = Normalize(number)
	if len(number) < MinLength {
		return strings.Repeat("*", len(number))
	}
	return number[:6] + strings.Repeat("*", len(number)-10) + number[len(number)-4:]
}

func plausible(number string) bool {
	if len(number) < MinLength || len(number) > MaxLength {
		return false
	}
	return allDigits(number)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
