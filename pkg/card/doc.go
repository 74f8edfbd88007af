// Package card validates payment card numbers offline and infers the issuing
// network from the number's structure.
//
// Validation is a pure, total function: every input string, including the
// empty string, produces a well-formed Result and never an error or panic.
//
// # Pipeline
//
// Validate runs three steps in order:
//
//   - Normalize strips every character that is not an ASCII digit.
//   - A plausibility gate requires 13 to 19 digits. Numbers failing the gate
//     are reported invalid with the unknown brand and the checksum is skipped.
//   - Luhn verifies the check digit. Only checksum-valid numbers are passed to
//     Classify, which walks the ordered brand table and returns the first match.
//
// A checksum-valid number that matches no table entry is valid with the
// unknown brand.
//
// # Usage
//
//	res := card.Validate("5555 5555 5555 4444")
//	if res.Valid {
//	    fmt.Println(res.Brand) // mastercard
//	}
//
// # Brand table
//
// The table is an ordered slice, not a map: earlier entries shadow later ones.
// For example every Elo prefix beginning with 4 is reported as visa, and every
// Elo prefix under 650 is reported as discover. Likewise the Hipercard prefix
// 3841 is claimed by the diners 38 rule. MatchesElo exposes the Elo
// predicate on its own for callers that need it.
//
// # Concurrency
//
// The package holds no mutable state. The brand table is built once at package
// initialisation and only read afterwards, so all functions are safe for
// concurrent use.
package card
