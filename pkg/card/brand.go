package card

import "strings"

// Brand identifies the issuing network of a card number.
type Brand string

const (
	Visa       Brand = "visa"
	Mastercard Brand = "mastercard"
	Amex       Brand = "amex"
	Discover   Brand = "discover"
	Diners     Brand = "diners"
	JCB        Brand = "jcb"
	Elo        Brand = "elo"
	Hipercard  Brand = "hipercard"
	// Unknown is reported for invalid numbers and for valid numbers that match
	// no brand rule.
	Unknown Brand = "unknown"
)

func (b Brand) String() string {
	return string(b)
}

// IsKnown reports whether b is one of the classified brands.
func (b Brand) IsKnown() bool {
	switch b {
	case Visa, Mastercard, Amex, Discover, Diners, JCB, Elo, Hipercard:
		return true
	}
	return false
}

// ParseBrand converts a label into a Brand. Labels are matched case-insensitively;
// anything unrecognised maps to Unknown.
func ParseBrand(s string) Brand {
	b := Brand(strings.ToLower(strings.TrimSpace(s)))
	if b.IsKnown() {
		return b
	}
	return Unknown
}

// rule pairs a brand with a prefix predicate over a normalized number.
type rule struct {
	brand Brand
	match func(number string) bool
}

// brandTable is consulted in order; the first matching rule wins.
var brandTable = []rule{
	{Visa, hasAnyPrefix("4")},
	{Mastercard, prefixRange(2, 51, 55)},
	{Mastercard, prefixRange(4, 2221, 2720)},
	{Amex, hasAnyPrefix("34", "37")},
	{Discover, hasAnyPrefix("6011")},
	{Discover, hasAnyPrefix("65")},
	{Discover, prefixRange(3, 644, 649)},
	{Discover, prefixRange(6, 622126, 622925)},
	{Diners, anyOf(prefixRange(3, 300, 305), hasAnyPrefix("36", "38", "39"))},
	{JCB, hasAnyPrefix("2131", "1800", "35")},
	{Elo, MatchesElo},
	{Hipercard, hasAnyPrefix("606282", "3841")},
}

// Classify returns the brand of a normalized number using the ordered brand
// table. It does not check length or checksum; Validate only calls it for
// numbers that passed both.
func Classify(number string) Brand {
	for _, r := range brandTable {
		if r.match(number) {
			return r.brand
		}
	}
	return Unknown
}

// Brands lists the known brands in brand table order without duplicates.
func Brands() []Brand {
	seen := make(map[Brand]bool, len(brandTable))
	out := make([]Brand, 0, len(brandTable))
	for _, r := range brandTable {
		if !seen[r.brand] {
			seen[r.brand] = true
			out = append(out, r.brand)
		}
	}
	return out
}

func hasAnyPrefix(prefixes ...string) func(string) bool {
	return func(number string) bool {
		for _, p := range prefixes {
			if strings.HasPrefix(number, p) {
				return true
			}
		}
		return false
	}
}

// prefixRange matches numbers whose first width digits, read as an integer,
// fall within [lo, hi].
func prefixRange(width, lo, hi int) func(string) bool {
	return func(number string) bool {
		v, ok := leading(number, width)
		return ok && v >= lo && v <= hi
	}
}

func anyOf(preds ...func(string) bool) func(string) bool {
	return func(number string) bool {
		for _, p := range preds {
			if p(number) {
				return true
			}
		}
		return false
	}
}

// leading parses the first n digits of number.
func leading(number string, n int) (int, bool) {
	if len(number) < n {
		return 0, false
	}
	v := 0
	for i := 0; i < n; i++ {
		c := number[i]
		if !isDigit(c) {
			return 0, false
		}
		v = v*10 + int(c-'0')
	}
	return v, true
}
