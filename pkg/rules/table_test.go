package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uasniff/pkg/rules"
)

func entry(key string, p rules.Patterns) rules.Entry {
	return rules.Entry{Key: key, Patterns: p}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	t.Run("first seen order is kept", func(t *testing.T) {
		t.Parallel()
		a := rules.NewTable(entry("B", rules.One("b")), entry("A", rules.One("a")))
		b := rules.NewTable(entry("C", rules.One("c")), entry("A", rules.One("aa")))

		merged := rules.Merge(a, b)
		assert.Equal(t, []string{"B", "A", "C"}, merged.Keys())
	})

	t.Run("scalar duplicates are joined with alternation", func(t *testing.T) {
		t.Parallel()
		merged := rules.Merge(
			rules.NewTable(entry("Windows", rules.One("Windows"))),
			rules.NewTable(entry("Windows", rules.One("Win32"))),
		)

		p, ok := merged.Get("Windows")
		require.True(t, ok)
		assert.False(t, p.IsMulti())
		assert.Equal(t, []string{"Windows|Win32"}, p.Values())
	})

	t.Run("sequence duplicates are appended", func(t *testing.T) {
		t.Parallel()
		merged := rules.Merge(
			rules.NewTable(entry("Opera", rules.Many(" OPR/[VER]", "Opera Mini/[VER]"))),
			rules.NewTable(entry("Opera", rules.One("Opera [VER]"))),
			rules.NewTable(entry("Opera", rules.Many("Version/[VER]"))),
		)

		p, ok := merged.Get("Opera")
		require.True(t, ok)
		assert.True(t, p.IsMulti())
		assert.Equal(t, []string{" OPR/[VER]", "Opera Mini/[VER]", "Opera [VER]", "Version/[VER]"}, p.Values())
	})

	t.Run("scalar absorbs incoming sequence", func(t *testing.T) {
		t.Parallel()
		merged := rules.Merge(
			rules.NewTable(entry("IE", rules.One("MSIE"))),
			rules.NewTable(entry("IE", rules.Many("IEMobile", "Trident"))),
		)

		p, _ := merged.Get("IE")
		assert.Equal(t, []string{"MSIE|IEMobile|Trident"}, p.Values())
	})

	t.Run("empty pattern is stored for new keys", func(t *testing.T) {
		t.Parallel()
		merged := rules.Merge(rules.NewTable(entry("Nothing", rules.One(""))))

		p, ok := merged.Get("Nothing")
		require.True(t, ok)
		assert.True(t, p.IsEmpty())
	})

	t.Run("empty slot is replaced in place", func(t *testing.T) {
		t.Parallel()
		merged := rules.Merge(
			rules.NewTable(entry("X", rules.One("")), entry("Y", rules.One("y"))),
			rules.NewTable(entry("X", rules.One("x"))),
		)

		assert.Equal(t, []string{"X", "Y"}, merged.Keys())
		p, _ := merged.Get("X")
		assert.Equal(t, []string{"x"}, p.Values())
	})

	t.Run("empty incoming pattern does not widen a scalar", func(t *testing.T) {
		t.Parallel()
		merged := rules.Merge(
			rules.NewTable(entry("X", rules.One("x"))),
			rules.NewTable(entry("X", rules.One(""))),
		)

		p, _ := merged.Get("X")
		assert.Equal(t, []string{"x"}, p.Values())
	})

	t.Run("inputs are not mutated", func(t *testing.T) {
		t.Parallel()
		a := rules.NewTable(entry("K", rules.Many("one")))
		_ = rules.Merge(a, rules.NewTable(entry("K", rules.One("two"))))

		p, _ := a.Get("K")
		assert.Equal(t, []string{"one"}, p.Values())
	})

	t.Run("no tables", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 0, rules.Merge().Len())
	})
}

func TestMergeAssociative(t *testing.T) {
	t.Parallel()

	a := rules.NewTable(entry("X", rules.One("x1")), entry("Y", rules.Many("y1")))
	b := rules.NewTable(entry("Z", rules.One("z1")), entry("X", rules.One("x2")))
	c := rules.NewTable(entry("Y", rules.One("y2")), entry("X", rules.Many("x3", "x4")), entry("W", rules.One("w")))

	flat := rules.Merge(a, b, c)
	nested := rules.Merge(a, rules.Merge(b, c))
	leftNested := rules.Merge(rules.Merge(a, b), c)

	assert.Equal(t, flat.Keys(), nested.Keys())
	assert.Equal(t, flat.Keys(), leftNested.Keys())

	m := rules.NewMatcher()
	for _, subject := range []string{"x1", "x2", "x4", "y2", "z1", "w", "none"} {
		want, wantOK := m.FindCategory(flat, subject)
		got, gotOK := m.FindCategory(nested, subject)
		assert.Equal(t, wantOK, gotOK, subject)
		assert.Equal(t, want, got, subject)
	}
}

func TestNewTableCombinesDuplicates(t *testing.T) {
	t.Parallel()

	table := rules.NewTable(
		entry("A", rules.One("a")),
		entry("A", rules.One("b")),
	)

	assert.Equal(t, 1, table.Len())
	p, _ := table.Get("A")
	assert.Equal(t, "a|b", p.String())
}

func TestTableLookup(t *testing.T) {
	t.Parallel()

	table := rules.NewTable(entry("iPhone", rules.One(`\biPhone\b`)))

	key, _, ok := table.Lookup("iPhone")
	require.True(t, ok)
	assert.Equal(t, "iPhone", key)

	key, _, ok = table.Lookup("IPHONE")
	require.True(t, ok)
	assert.Equal(t, "iPhone", key)

	_, _, ok = table.Lookup("Android")
	assert.False(t, ok)
	assert.False(t, table.Has("iphone"))
}
