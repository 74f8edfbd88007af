package card_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/cardcheck/pkg/card"
)

func TestLuhn(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		for _, n := range []string{
			"4532015112830366",
			"5555555555554444",
			"79927398713",
			"0",
			"00",
			"18",
		} {
			assert.True(t, card.Luhn(n), "expected %s to pass", n)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, n := range []string{
			"4532015112830367",
			"79927398710",
			"1",
			"",
			"4532 0151 1283 0366",
			"12a4",
		} {
			assert.False(t, card.Luhn(n), "expected %q to fail", n)
		}
	})

	t.Run("doubled digits above nine are reduced", func(t *testing.T) {
		// 9 doubled is 18, reduced to 9; 9 + 1 = 10.
		assert.True(t, card.Luhn("91"))
		// 5 doubled is 10, reduced to 1; 1 + 9 = 10.
		assert.True(t, card.Luhn("59"))
	})
}

func TestCheckDigit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		partial string
		want    byte
	}{
		{"453201511283036", '6'},
		{"555555555555444", '4'},
		{"7992739871", '3'},
		{"37828224631000", '5'},
		{"000000000000", '0'},
	}

	for _, tt := range tests {
		d, ok := card.CheckDigit(tt.partial)
		assert.True(t, ok)
		assert.Equal(t, string(tt.want), string(d), "partial %s", tt.partial)
		assert.True(t, card.Luhn(tt.partial+string(d)))
	}

	_, ok := card.CheckDigit("")
	assert.False(t, ok)
	_, ok = card.CheckDigit("12-3")
	assert.False(t, ok)
}
