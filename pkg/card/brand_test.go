package card_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/cardcheck/pkg/card"
)

// pad extends a prefix with zeros to a 16 digit number.
func pad(prefix string) string {
	return prefix + strings.Repeat("0", 16-len(prefix))
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		want   card.Brand
	}{
		{"visa", "4", card.Visa},
		{"mastercard legacy lower bound", "51", card.Mastercard},
		{"mastercard legacy upper bound", "55", card.Mastercard},
		{"below mastercard legacy range", "50", card.Unknown},
		{"above mastercard legacy range", "56", card.Unknown},
		{"below mastercard 2-series", "2220", card.Unknown},
		{"mastercard 2-series lower bound", "2221", card.Mastercard},
		{"mastercard 2-series inner", "2230", card.Mastercard},
		{"mastercard 2-series inner 2299", "2299", card.Mastercard},
		{"mastercard 2-series inner 2300", "2300", card.Mastercard},
		{"mastercard 2-series inner 2699", "2699", card.Mastercard},
		{"mastercard 2-series upper bound", "2720", card.Mastercard},
		{"above mastercard 2-series", "2721", card.Unknown},
		{"amex 34", "34", card.Amex},
		{"amex 37", "37", card.Amex},
		{"discover 6011", "6011", card.Discover},
		{"discover 6012 is not 6011", "6012", card.Unknown},
		{"discover 65", "65", card.Discover},
		{"below discover 644", "643", card.Unknown},
		{"discover 644", "644", card.Discover},
		{"discover 649", "649", card.Discover},
		{"below discover 622 range", "622125", card.Unknown},
		{"discover 622 lower bound", "622126", card.Discover},
		{"discover 622 inner", "622500", card.Discover},
		{"discover 622 upper bound", "622925", card.Discover},
		{"above discover 622 range", "622926", card.Unknown},
		{"below diners 30x", "299", card.Unknown},
		{"diners 300", "300", card.Diners},
		{"diners 302", "302", card.Diners},
		{"diners 305", "305", card.Diners},
		{"above diners 30x", "306", card.Unknown},
		{"diners 36", "36", card.Diners},
		{"diners 38", "38", card.Diners},
		{"diners 39", "39", card.Diners},
		{"jcb 2131", "2131", card.JCB},
		{"jcb 1800", "1800", card.JCB},
		{"jcb 35", "35", card.JCB},
		{"elo 504175", "504175", card.Elo},
		{"elo 506699", "506699", card.Elo},
		{"elo 5067 lower bound", "506700", card.Elo},
		{"elo 5067 upper bound", "506779", card.Elo},
		{"above elo 5067 range", "506780", card.Unknown},
		{"elo 509 lower bound", "509000", card.Elo},
		{"elo 509 upper bound", "509999", card.Elo},
		{"elo 627780", "627780", card.Elo},
		{"elo 636297", "636297", card.Elo},
		{"elo 636368", "636368", card.Elo},
		{"hipercard 606282", "606282", card.Hipercard},
		{"no match", "9", card.Unknown},
		{"no match 1", "1", card.Unknown},
		{"no match zeros", "0", card.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, card.Classify(pad(tt.prefix)))
		})
	}
}

func TestClassifyTableOrder(t *testing.T) {
	t.Parallel()

	// Each prefix matches a later rule too; the earlier rule must win.
	tests := []struct {
		prefix  string
		want    card.Brand
		shadows card.Brand
	}{
		{"401178", card.Visa, card.Elo},
		{"438935", card.Visa, card.Elo},
		{"457631", card.Visa, card.Elo},
		{"650031", card.Discover, card.Elo},
		{"650978", card.Discover, card.Elo},
		{"3841", card.Diners, card.Hipercard},
	}

	for _, tt := range tests {
		number := pad(tt.prefix)
		assert.Equal(t, tt.want, card.Classify(number), "prefix %s", tt.prefix)
		if tt.shadows == card.Elo {
			assert.True(t, card.MatchesElo(number), "prefix %s is an elo bin", tt.prefix)
		}
	}
}

func TestClassifyThroughValidate(t *testing.T) {
	t.Parallel()

	for _, prefix := range []string{"2221", "2720", "622126", "622925", "506700", "509999"} {
		number := validNumber(t, prefix, 16)
		res := card.Validate(number)
		assert.True(t, res.Valid)
		assert.Equal(t, card.Classify(number), res.Brand)
		assert.NotEqual(t, card.Unknown, res.Brand, "prefix %s", prefix)
	}

	for _, prefix := range []string{"2220", "2721", "622125", "622926"} {
		res := card.Validate(validNumber(t, prefix, 16))
		assert.True(t, res.Valid)
		assert.Equal(t, card.Unknown, res.Brand, "prefix %s", prefix)
	}
}

func TestClassifyShortInput(t *testing.T) {
	t.Parallel()

	assert.Equal(t, card.Unknown, card.Classify(""))
	assert.Equal(t, card.Visa, card.Classify("4"))
	assert.Equal(t, card.Unknown, card.Classify("222"))
	assert.Equal(t, card.Unknown, card.Classify("62212"))
}

func TestMatchesElo(t *testing.T) {
	t.Parallel()

	in := []string{
		"401178", "401179", "431274", "438935", "451416", "457393", "457631", "457632",
		"504175", "506699", "506700", "506779", "509000", "509999", "627780", "636297", "636368",
		"650030", "650033", "650035", "650039", "650040", "650049", "650050", "650051",
		"650057", "650089", "650400", "650439", "650485", "650599",
		"650700", "650729", "650900", "650978",
	}
	out := []string{
		"401177", "401180", "457630", "457633", "504176", "506698", "506780", "508999",
		"650029", "650034", "650052", "650056", "650090", "650399",
		"650440", "650484", "650600", "650699", "650730", "650899", "650979", "650999",
		"627781", "636298",
	}

	for _, p := range in {
		assert.True(t, card.MatchesElo(p+"0000000000"), "expected elo for %s", p)
	}
	for _, p := range out {
		assert.False(t, card.MatchesElo(p+"0000000000"), "expected no elo for %s", p)
	}
	assert.False(t, card.MatchesElo("65003"))
}

func TestBrands(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []card.Brand{
		card.Visa, card.Mastercard, card.Amex, card.Discover,
		card.Diners, card.JCB, card.Elo, card.Hipercard,
	}, card.Brands())
}

func TestBrand(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "visa", card.Visa.String())
	assert.True(t, card.Elo.IsKnown())
	assert.False(t, card.Unknown.IsKnown())
	assert.False(t, card.Brand("maestro").IsKnown())

	assert.Equal(t, card.Amex, card.ParseBrand(" AMEX "))
	assert.Equal(t, card.Unknown, card.ParseBrand("maestro"))
	assert.Equal(t, card.Unknown, card.ParseBrand(""))
}
