package nav

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator compares display labels the way a reader expects them ordered:
// accents and case are secondary to the base letters.
// A Collator is not safe for concurrent use.
type Collator struct {
	c *collate.Collator
}

// NewCollator returns a collator for tag. language.Und selects the root
// collation order.
func NewCollator(tag language.Tag) *Collator {
	return &Collator{c: collate.New(tag)}
}

// Compare returns -1, 0 or +1 comparing a and b.
func (c *Collator) Compare(a, b string) int {
	return c.c.CompareString(a, b)
}
