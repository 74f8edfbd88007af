package card_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cardcheck/pkg/card"
)

// validNumber pads prefix with zeros to length-1 digits and appends the Luhn
// check digit.
func validNumber(t *testing.T, prefix string, length int) string {
	t.Helper()
	require.Less(t, len(prefix), length)
	partial := prefix + strings.Repeat("0", length-1-len(prefix))
	d, ok := card.CheckDigit(partial)
	require.True(t, ok)
	return partial + string(d)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("canonical visa", func(t *testing.T) {
		res := card.Validate("4532015112830366")
		assert.True(t, res.Valid)
		assert.Equal(t, card.Visa, res.Brand)
		assert.Equal(t, "4532015112830366", res.Number)
	})

	t.Run("perturbed check digit", func(t *testing.T) {
		res := card.Validate("4532015112830367")
		assert.False(t, res.Valid)
		assert.Equal(t, card.Unknown, res.Brand)
		assert.Equal(t, "4532015112830367", res.Number)
	})

	t.Run("separators are ignored", func(t *testing.T) {
		spaced := card.Validate("5555 5555 5555 4444")
		dashed := card.Validate("5555-5555-5555-4444")
		plain := card.Validate("5555555555554444")

		assert.Equal(t, plain, spaced)
		assert.Equal(t, plain, dashed)
		assert.True(t, plain.Valid)
		assert.Equal(t, card.Mastercard, plain.Brand)
	})

	t.Run("sample from the driver", func(t *testing.T) {
		res := card.Validate("5379 5625 8396 2700")
		assert.Equal(t, card.Result{Valid: true, Brand: card.Mastercard, Number: "5379562583962700"}, res)
	})

	t.Run("well known test numbers", func(t *testing.T) {
		cases := map[string]card.Brand{
			"4111111111111111":    card.Visa,
			"4222222222222":       card.Visa,
			"5105105105105100":    card.Mastercard,
			"2223003122003222":    card.Mastercard,
			"378282246310005":     card.Amex,
			"371449635398431":     card.Amex,
			"6011111111111117":    card.Discover,
			"6011000990139424":    card.Discover,
			"30569309025904":      card.Diners,
			"38520000023237":      card.Diners,
			"3530111333300000":    card.JCB,
			"3566002020360505":    card.JCB,
			"6062826786276634":    card.Hipercard,
			"6362970000457013":    card.Elo,
			"4000 0000 0000 0002": card.Visa,
		}
		for number, brand := range cases {
			res := card.Validate(number)
			assert.True(t, res.Valid, "number %s should be valid", number)
			assert.Equal(t, brand, res.Brand, "number %s", number)
		}
	})

	t.Run("length gate", func(t *testing.T) {
		// 12 zeros pass Luhn but are too short.
		res := card.Validate("000000000000")
		assert.False(t, res.Valid)
		assert.Equal(t, card.Unknown, res.Brand)
		assert.Equal(t, "000000000000", res.Number)

		res = card.Validate(strings.Repeat("0", 20))
		assert.False(t, res.Valid)
		assert.Equal(t, card.Unknown, res.Brand)

		for _, n := range []int{card.MinLength, card.MaxLength} {
			res = card.Validate(validNumber(t, "4", n))
			assert.True(t, res.Valid, "length %d", n)
			assert.Equal(t, card.Visa, res.Brand)
		}
	})

	t.Run("twelve digit numbers are never valid", func(t *testing.T) {
		for _, prefix := range []string{"4", "51", "34", "6011"} {
			d, ok := card.CheckDigit(prefix + strings.Repeat("1", 11-len(prefix)))
			require.True(t, ok)
			number := prefix + strings.Repeat("1", 11-len(prefix)) + string(d)
			require.Len(t, number, 12)
			require.True(t, card.Luhn(number))

			res := card.Validate(number)
			assert.False(t, res.Valid)
			assert.Equal(t, card.Unknown, res.Brand)
		}
	})

	t.Run("twenty digit numbers are never valid", func(t *testing.T) {
		number := validNumber(t, "4", 20)
		require.True(t, card.Luhn(number))
		assert.False(t, card.Validate(number).Valid)
	})

	t.Run("valid number with unknown brand", func(t *testing.T) {
		res := card.Validate("0000 0000 0000 0")
		assert.True(t, res.Valid)
		assert.Equal(t, card.Unknown, res.Brand)

		res = card.Validate(validNumber(t, "9", 16))
		assert.True(t, res.Valid)
		assert.Equal(t, card.Unknown, res.Brand)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, card.Result{Valid: false, Brand: card.Unknown, Number: ""}, card.Validate(""))
	})

	t.Run("garbage input", func(t *testing.T) {
		inputs := []string{
			"not a card",
			"\x00\xff\xfe",
			"４５３２０１５１１２８３０３６６",
			"💳💳💳",
			strings.Repeat("9", 10000),
			"4532-0151-1283-0366-",
		}
		for _, in := range inputs {
			assert.NotPanics(t, func() { card.Validate(in) })
			res := card.Validate(in)
			assert.Equal(t, card.Normalize(in), res.Number)
		}

		// Full-width digits are not ASCII and are stripped.
		assert.Equal(t, "", card.Validate("４５３２０１５１１２８３０３６６").Number)
		assert.True(t, card.Validate("4532-0151-1283-0366-").Valid)
	})

	t.Run("invalid numbers skip classification", func(t *testing.T) {
		number := validNumber(t, "4", 16)
		last := number[len(number)-1]
		bad := number[:len(number)-1] + string('0'+(last-'0'+1)%10)

		res := card.Validate(bad)
		assert.False(t, res.Valid)
		assert.Equal(t, card.Unknown, res.Brand)
	})
}

func TestValidateConcurrent(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for range 100 {
				res := card.Validate(fmt.Sprintf("4532 0151 1283 036%d", 6+i%2))
				assert.Equal(t, i%2 == 0, res.Valid)
			}
		}(i)
	}
	wg.Wait()
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"digits only", "4532015112830366", "4532015112830366"},
		{"spaces", "4532 0151 1283 0366", "4532015112830366"},
		{"dashes", "4532-0151-1283-0366", "4532015112830366"},
		{"mixed noise", " card#: 4532.0151/1283_0366 ", "4532015112830366"},
		{"no digits", "abc-def", ""},
		{"empty", "", ""},
		{"non ascii digits", "٤٥٣٢", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := card.Normalize(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, card.Normalize(got), "normalization must be idempotent")
		})
	}
}

func TestMask(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "453201******0366", card.Mask("4532015112830366"))
	assert.Equal(t, "453201******0366", card.Mask("4532 0151 1283 0366"))
	assert.Equal(t, "378282*****0005", card.Mask("378282246310005"))
	assert.Equal(t, "************", card.Mask("123456789012"))
	assert.Equal(t, "", card.Mask(""))
}
