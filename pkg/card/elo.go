package card

// eloPrefixes are the literal six-digit Elo bins.
var eloPrefixes = []string{
	"401178", "401179",
	"431274", "438935",
	"451416", "457393", "457631", "457632",
	"504175", "506699",
	"627780",
	"636297", "636368",
}

// eloRanges are inclusive ranges over the first six digits.
var eloRanges = [][2]int{
	{506700, 506779},
	{509000, 509999},
	{650030, 650033},
	{650035, 650039},
	{650040, 650049},
	{650050, 650051},
	{650057, 650089},
	{650400, 650439},
	{650485, 650599},
	{650700, 650729},
	{650900, 650978},
}

// MatchesElo reports whether number starts with an Elo bin. It is the Elo
// entry of the brand table; Classify only reaches it for numbers that no
// earlier brand claimed.
func MatchesElo(number string) bool {
	if hasAnyPrefix(eloPrefixes...)(number) {
		return true
	}
	v, ok := leading(number, 6)
	if !ok {
		return false
	}
	for _, r := range eloRanges {
		if v >= r[0] && v <= r[1] {
			return true
		}
	}
	return false
}
