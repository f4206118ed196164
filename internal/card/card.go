package card

// Card represents a card and the tags attached to it
type Card struct {
	Name string   // Card name as written in the source sheet (e.g., Sure Gamble)
	Tags []string // Non-empty tags, in source column order
}
