package tagtable

import (
	"errors"
	"fmt"
)

// ErrMissingCard is matched by errors from Apply when an override names a
// card that is not in the table
var ErrMissingCard = errors.New("card not found")

// MissingCardError reports the override whose card is absent
type MissingCardError struct {
	Override Override
}

func (e *MissingCardError) Error() string {
	return fmt.Sprintf("override %q -> %q: card not found in table", e.Override.Card, e.Override.Tag)
}

func (e *MissingCardError) Is(target error) bool {
	return target == ErrMissingCard
}

// Override adds Tag to the end of Card's tags
type Override struct {
	Card string `toml:"card"`
	Tag  string `toml:"tag"`
}

// DefaultOverrides patches cards known to be missing a tag in the sheet
var DefaultOverrides = []Override{
	{Card: "Sure Gamble", Tag: "Gamble"},
}

// Apply appends each override's tag to its card, in order. Applying the
// same overrides twice appends the tags twice.
func Apply(t *Table, overrides []Override) error {
	for _, o := range overrides {
		tags, ok := t.Get(o.Card)
		if !ok {
			return &MissingCardError{Override: o}
		}
		next := make([]string, len(tags), len(tags)+1)
		copy(next, tags)
		t.Set(o.Card, append(next, o.Tag))
	}
	return nil
}
