package rules

import (
	"slices"
	"strings"
)

// alternation joins scalar patterns when two tables register the same key.
const alternation = "|"

// Patterns holds one or many regular expressions registered for a key.
// A scalar and a one-element sequence are different values: merging appends
// to a sequence but extends a scalar with an alternation.
type Patterns struct {
	values []string
	multi  bool
}

// One returns a scalar pattern.
func One(pattern string) Patterns {
	return Patterns{values: []string{pattern}}
}

// Many returns a pattern sequence tried in order.
func Many(patterns ...string) Patterns {
	return Patterns{values: slices.Clone(patterns), multi: true}
}

// IsMulti reports whether p is a sequence.
func (p Patterns) IsMulti() bool { return p.multi }

// Values returns a copy of the stored patterns.
func (p Patterns) Values() []string { return slices.Clone(p.values) }

// IsEmpty reports whether p has no non-empty pattern.
func (p Patterns) IsEmpty() bool {
	for _, v := range p.values {
		if v != "" {
			return false
		}
	}
	return true
}

// String renders scalar patterns as-is and sequences joined by alternation.
func (p Patterns) String() string {
	return strings.Join(p.values, alternation)
}

// combine applies the duplicate-key rule: sequences accumulate, scalars are
// widened with an alternation and stay scalar. An empty incoming value is
// dropped: an empty alternative would match every subject.
func (p Patterns) combine(incoming Patterns) Patterns {
	if incoming.IsEmpty() {
		return p
	}
	if p.multi {
		return Patterns{values: append(slices.Clone(p.values), incoming.values...), multi: true}
	}
	return Patterns{values: []string{p.String() + alternation + incoming.String()}}
}

// Entry is a single labeled rule.
type Entry struct {
	Key      string
	Patterns Patterns
}

// Table is an ordered set of rules. Entry order is matching priority.
// A Table is never mutated after construction, so it can be shared freely.
type Table struct {
	entries []Entry
	index   map[string]int
}

// NewTable builds a table from entries. Duplicate keys are combined with
// the same rules Merge uses.
func NewTable(entries ...Entry) Table {
	var b builder
	for _, e := range entries {
		b.add(e)
	}
	return b.table()
}

// Len returns the number of entries.
func (t Table) Len() int { return len(t.entries) }

// Entries returns the entries in priority order.
func (t Table) Entries() []Entry { return slices.Clone(t.entries) }

// Keys returns the keys in priority order.
func (t Table) Keys() []string {
	keys := make([]string, len(t.entries))
	for i, e := range t.entries {
		keys[i] = e.Key
	}
	return keys
}

// Has reports whether key is registered.
func (t Table) Has(key string) bool {
	_, ok := t.index[key]
	return ok
}

// Get returns the patterns registered for key.
func (t Table) Get(key string) (Patterns, bool) {
	i, ok := t.index[key]
	if !ok {
		return Patterns{}, false
	}
	return t.entries[i].Patterns, true
}

// Lookup resolves key exactly first and then case-insensitively. It returns
// the stored key so callers can report the canonical spelling.
func (t Table) Lookup(key string) (string, Patterns, bool) {
	if p, ok := t.Get(key); ok {
		return key, p, true
	}
	for _, e := range t.entries {
		if strings.EqualFold(e.Key, key) {
			return e.Key, e.Patterns, true
		}
	}
	return "", Patterns{}, false
}

// Merge combines tables into a new one. Tables listed first establish the
// priority order; a key seen again keeps its first slot and accumulates the
// later patterns instead of being replaced.
func Merge(tables ...Table) Table {
	size := 0
	for _, t := range tables {
		size += t.Len()
	}
	b := builder{
		entries: make([]Entry, 0, size),
		index:   make(map[string]int, size),
	}
	for _, t := range tables {
		for _, e := range t.entries {
			b.add(e)
		}
	}
	return b.table()
}

type builder struct {
	entries []Entry
	index   map[string]int
}

func (b *builder) add(e Entry) {
	if b.index == nil {
		b.index = make(map[string]int)
	}
	i, ok := b.index[e.Key]
	switch {
	case !ok:
		b.index[e.Key] = len(b.entries)
		b.entries = append(b.entries, e)
	case b.entries[i].Patterns.IsEmpty():
		// an empty slot is overwritten in place
		b.entries[i].Patterns = e.Patterns
	default:
		b.entries[i].Patterns = b.entries[i].Patterns.combine(e.Patterns)
	}
}

func (b *builder) table() Table {
	return Table{entries: b.entries, index: b.index}
}
