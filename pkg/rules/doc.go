// Package rules implements table-driven user-agent classification.
//
// A Table is an ordered list of labeled regular expressions. Order is
// priority: the first entry whose pattern matches wins, even when a later
// entry would also match. Tables are composed with Merge, which keeps the
// first slot of every key and accumulates patterns registered again under
// the same key instead of overwriting them.
//
// # Matching
//
// Matcher compiles patterns case-insensitively with "." matching newlines
// and keeps them in a bounded LRU cache. Patterns that RE2 cannot compile are
// logged once and treated as non-matching, since signature tables collected
// from the wild are not always well-formed.
//
//	m := rules.NewMatcher()
//	browsers := rules.Merge(extraBrowsers, baseBrowsers)
//	name, ok := m.FindCategory(browsers, r.UserAgent())
//
// # Versions
//
// VersionExtractor maps a category to one or more templates containing the
// [VER] placeholder. The placeholder becomes a capture group; the first
// template that matches provides the version:
//
//	tpl := rules.NewTable(rules.Entry{Key: "Chrome", Patterns: rules.One("Chrome/[VER]")})
//	v := rules.NewVersionExtractor(m, tpl, rules.Table{})
//	v.Version("Chrome", "Mozilla/5.0 Chrome/91.0.4472")      // "91.0.4472"
//	v.VersionFloat("Chrome", "Mozilla/5.0 Chrome/91.0.4472") // 91.0
//
// # Data
//
// Tables decode from YAML mappings (string or list of strings per key) with
// document order preserved.
package rules
