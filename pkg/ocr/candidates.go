package ocr

import (
	"strings"

	"golang.org/x/text/width"

	"github.com/dmitrymomot/cardcheck/pkg/card"
)

// span is a run of ASCII digits at text[start:end].
type span struct {
	start, end int
}

// FindCandidates returns digit sequences in text that look like card numbers.
// Groups of ASCII digits may be joined by single spaces or hyphens. Full-width
// digits, which some OCR engines emit, are folded to ASCII first.
//
// A joined run often carries more than the card number, such as an expiry
// date or a reference on the same line. Each run is split into windows of
// whole groups holding card.MinLength to card.MaxLength digits that pass the
// Luhn check, longest first. A run without such a window is returned as is
// when its length is plausible, so invalid numbers still surface.
// Candidates are returned in order of appearance with separators kept.
func FindCandidates(text string) []string {
	text = width.Fold.String(text)

	var (
		out    []string
		groups []span
	)

	flush := func() {
		out = append(out, splitRun(text, groups)...)
		groups = groups[:0]
	}

	for i := 0; i < len(text); {
		c := text[i]
		switch {
		case isDigit(c):
			j := i
			for j < len(text) && isDigit(text[j]) {
				j++
			}
			groups = append(groups, span{i, j})
			i = j
			// A single separator followed by a digit joins the next group.
			if i+1 < len(text) && (text[i] == ' ' || text[i] == '-') && isDigit(text[i+1]) {
				i++
				continue
			}
			flush()
		default:
			i++
		}
	}
	flush()

	return out
}

func splitRun(text string, groups []span) []string {
	if len(groups) == 0 {
		return nil
	}
	if out := validWindows(text, groups); out != nil {
		return out
	}
	if n := len(digitsOf(text, groups)); n >= card.MinLength && n <= card.MaxLength {
		return []string{text[groups[0].start:groups[len(groups)-1].end]}
	}
	return nil
}

// validWindows picks the longest Luhn-valid window of whole groups, the
// earliest one on ties, then searches the groups on either side of it.
func validWindows(text string, groups []span) []string {
	from, to, best := 0, 0, 0
	for i := range groups {
		n := 0
		for j := i; j < len(groups); j++ {
			n += groups[j].end - groups[j].start
			if n > card.MaxLength {
				break
			}
			if n >= card.MinLength && n > best && card.Luhn(digitsOf(text, groups[i:j+1])) {
				from, to, best = i, j, n
			}
		}
	}
	if best == 0 {
		return nil
	}

	out := validWindows(text, groups[:from])
	out = append(out, text[groups[from].start:groups[to].end])
	return append(out, validWindows(text, groups[to+1:])...)
}

func digitsOf(text string, groups []span) string {
	var b strings.Builder
	for _, g := range groups {
		b.WriteString(text[g.start:g.end])
	}
	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
