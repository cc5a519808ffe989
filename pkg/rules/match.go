package rules

import (
	"log/slog"
	"regexp"

	"github.com/dmitrymomot/uasniff/pkg/logger"
)

// DefaultCacheSize bounds the number of compiled patterns kept by a Matcher.
const DefaultCacheSize = 512

// flags applied to every pattern: case-insensitive, dot matches newline.
const flags = "(?is)"

// Matcher evaluates rule tables against subjects. Compiled patterns are
// cached, so one Matcher should be shared between tables.
// A Matcher is safe for concurrent use.
type Matcher struct {
	cache *regexpCache
	log   *slog.Logger
}

// MatcherOption configures a Matcher.
type MatcherOption func(*Matcher)

// WithCacheSize sets the compiled-pattern cache capacity.
// Non-positive values fall back to DefaultCacheSize.
func WithCacheSize(size int) MatcherOption {
	return func(m *Matcher) {
		m.cache = newRegexpCache(size, compile)
	}
}

// WithLogger sets the logger used to report invalid patterns.
func WithLogger(log *slog.Logger) MatcherOption {
	return func(m *Matcher) {
		if log != nil {
			m.log = log
		}
	}
}

// NewMatcher creates a Matcher.
func NewMatcher(opts ...MatcherOption) *Matcher {
	m := &Matcher{
		cache: newRegexpCache(DefaultCacheSize, compile),
		log:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func compile(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile(flags + pattern)
}

// Match applies a single pattern to subject. On success it returns the
// submatch list: the whole match first, then every capture group.
// Empty and invalid patterns never match.
func (m *Matcher) Match(pattern, subject string) ([]string, bool) {
	re, ok := m.compiled(pattern)
	if !ok {
		return nil, false
	}
	groups := re.FindStringSubmatch(subject)
	if groups == nil {
		return nil, false
	}
	return groups, true
}

// MatchPatterns tries every pattern of p in order and stops at the first hit.
func (m *Matcher) MatchPatterns(p Patterns, subject string) ([]string, bool) {
	for _, pattern := range p.values {
		if groups, ok := m.Match(pattern, subject); ok {
			return groups, true
		}
	}
	return nil, false
}

// FindCategory returns the key of the first entry of t matching subject.
// Entries with empty patterns are skipped. An entry with an empty key
// reports the matched text instead, which lets catch-all rules label the
// result dynamically. The boolean is false when nothing matched.
func (m *Matcher) FindCategory(t Table, subject string) (string, bool) {
	for _, e := range t.entries {
		if e.Patterns.IsEmpty() {
			continue
		}
		groups, ok := m.MatchPatterns(e.Patterns, subject)
		if !ok {
			continue
		}
		if e.Key != "" {
			return e.Key, true
		}
		return groups[0], true
	}
	return "", false
}

// MatchesAny reports whether any entry of t matches subject.
func (m *Matcher) MatchesAny(t Table, subject string) bool {
	_, ok := m.FindCategory(t, subject)
	return ok
}

// MatchKey resolves key in t (case-insensitively as a fallback) and reports
// whether its patterns match subject. Unknown keys never match.
func (m *Matcher) MatchKey(t Table, key, subject string) bool {
	_, p, ok := t.Lookup(key)
	if !ok || p.IsEmpty() {
		return false
	}
	_, ok = m.MatchPatterns(p, subject)
	return ok
}

// ReplaceAll replaces every match of pattern in subject with repl.
// Empty and invalid patterns leave subject unchanged.
func (m *Matcher) ReplaceAll(pattern, subject, repl string) string {
	re, ok := m.compiled(pattern)
	if !ok {
		return subject
	}
	return re.ReplaceAllLiteralString(subject, repl)
}

// compiled returns the cached regexp for pattern. Compile errors are
// logged when first seen.
func (m *Matcher) compiled(pattern string) (*regexp.Regexp, bool) {
	if pattern == "" {
		return nil, false
	}
	re, fresh, err := m.cache.get(pattern)
	if err != nil {
		if fresh {
			m.log.Warn("skipping invalid rule pattern",
				logger.Pattern(pattern),
				logger.Error(err),
			)
		}
		return nil, false
	}
	return re, true
}
