package rosterparse

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Correction replaces a known-bad extracted name with its proper spelling.
type Correction struct {
	From string
	To   string
}

// Corrections is an ordered table of literal name corrections.
// The zero value is an empty table ready to use.
type Corrections struct {
	pairs []Correction
	index map[string]int // NFC-normalized From -> position in pairs
}

// NewCorrections creates a table from the given pairs, in order.
func NewCorrections(pairs ...Correction) *Corrections {
	c := &Corrections{}
	for _, p := range pairs {
		c.Add(p.From, p.To)
	}
	return c
}

// DefaultCorrections returns the built-in corrections for names the
// roster pages are known to render without their accents.
func DefaultCorrections() *Corrections {
	return NewCorrections(
		Correction{From: "Eduardo Rodriguez", To: "Eduardo Rodríguez"},
	)
}

// Add appends a correction. Adding a From that is already present
// replaces its target while keeping its original position.
func (c *Corrections) Add(from, to string) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	key := norm.NFC.String(from)
	if i, ok := c.index[key]; ok {
		c.pairs[i].To = to
		return
	}
	c.index[key] = len(c.pairs)
	c.pairs = append(c.pairs, Correction{From: from, To: to})
}

// Apply returns the corrected form of name, or name unchanged when no
// correction matches it exactly. Names are compared in NFC form.
func (c *Corrections) Apply(name string) string {
	if c == nil || len(c.pairs) == 0 {
		return name
	}
	if i, ok := c.index[norm.NFC.String(name)]; ok {
		return c.pairs[i].To
	}
	return name
}

// Len returns the number of corrections in the table.
func (c *Corrections) Len() int {
	if c == nil {
		return 0
	}
	return len(c.pairs)
}

// Pairs returns a copy of the corrections in table order.
func (c *Corrections) Pairs() []Correction {
	if c == nil {
		return nil
	}
	out := make([]Correction, len(c.pairs))
	copy(out, c.pairs)
	return out
}

// ParseCorrection parses a "from=to" pair as given on the command line.
func ParseCorrection(s string) (Correction, error) {
	from, to, ok := strings.Cut(s, "=")
	if !ok {
		return Correction{}, Errorf(EINVALID, "correction %q must have the form from=to", s)
	}
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)
	if from == "" || to == "" {
		return Correction{}, Errorf(EINVALID, "correction %q has an empty side", s)
	}
	return Correction{From: from, To: to}, nil
}
