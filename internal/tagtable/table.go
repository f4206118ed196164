package tagtable

import (
	"sort"

	"github.com/arcanaland/cardtags/internal/card"
)

// Table maps card names to their tags, keeping the order in which names
// were first set
type Table struct {
	names []string
	tags  map[string][]string
}

// New returns an empty table
func New() *Table {
	return &Table{tags: make(map[string][]string)}
}

// Set assigns tags to name, replacing any earlier value
func (t *Table) Set(name string, tags []string) {
	if _, ok := t.tags[name]; !ok {
		t.names = append(t.names, name)
	}
	if tags == nil {
		tags = []string{}
	}
	t.tags[name] = tags
}

// Get returns the tags for name. Absent names report false and are not
// added to the table.
func (t *Table) Get(name string) ([]string, bool) {
	tags, ok := t.tags[name]
	return tags, ok
}

// Len returns the number of cards in the table
func (t *Table) Len() int {
	return len(t.names)
}

// Names returns card names in insertion order
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Cards returns every card in insertion order
func (t *Table) Cards() []card.Card {
	cards := make([]card.Card, 0, len(t.names))
	for _, name := range t.names {
		cards = append(cards, card.Card{Name: name, Tags: t.tags[name]})
	}
	return cards
}

// TagCount is a distinct tag and the number of cards carrying it
type TagCount struct {
	Tag   string
	Cards int
}

// Tags returns every distinct tag, most used first
func (t *Table) Tags() []TagCount {
	counts := make(map[string]int)
	for _, name := range t.names {
		seen := make(map[string]bool)
		for _, tag := range t.tags[name] {
			if seen[tag] {
				continue
			}
			seen[tag] = true
			counts[tag]++
		}
	}

	out := make([]TagCount, 0, len(counts))
	for tag, n := range counts {
		out = append(out, TagCount{Tag: tag, Cards: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Cards != out[j].Cards {
			return out[i].Cards > out[j].Cards
		}
		return out[i].Tag < out[j].Tag
	})
	return out
}
