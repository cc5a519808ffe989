package rules

import (
	"strconv"
	"strings"
	"sync"
)

// VersionPlaceholder marks where a version token sits in a template.
const VersionPlaceholder = "[VER]"

// versionGroup replaces VersionPlaceholder: dotted or underscored words.
const versionGroup = `([\w._\+]+)`

// VersionKind selects how an extracted version is reported.
type VersionKind int

const (
	// VersionString reports the normalized version text.
	VersionString VersionKind = iota
	// VersionFloat reports major.minor as a number.
	VersionFloat
)

// VersionValue is an extracted version in both representations.
type VersionValue struct {
	Raw   string
	Float float64
}

// Value returns the representation selected by kind.
func (v VersionValue) Value(kind VersionKind) any {
	if kind == VersionFloat {
		return v.Float
	}
	return v.Raw
}

// VersionExtractor pulls version numbers out of subjects using templates
// keyed by category. Supplementary templates are merged into the base table
// once, on first use, and stay for the extractor's lifetime. A base table
// that already holds every supplementary key is taken as augmented.
type VersionExtractor struct {
	matcher    *Matcher
	base       Table
	supplement Table

	once  sync.Once
	table Table
}

// NewVersionExtractor creates an extractor over base templates. supplement
// is merged after base the first time a version is requested.
func NewVersionExtractor(m *Matcher, base, supplement Table) *VersionExtractor {
	if m == nil {
		m = NewMatcher()
	}
	return &VersionExtractor{matcher: m, base: base, supplement: supplement}
}

// Templates returns the effective template table, augmenting it if needed.
func (v *VersionExtractor) Templates() Table {
	v.once.Do(func() {
		v.table = v.base
		if v.supplement.Len() == 0 {
			return
		}
		if v.base.augmentedBy(v.supplement) {
			return
		}
		v.table = Merge(v.base, v.supplement)
	})
	return v.table
}

// Extract returns the version of category found in subject.
// ok is false when no template is registered or none matched.
func (v *VersionExtractor) Extract(category, subject string) (VersionValue, bool) {
	_, templates, ok := v.Templates().Lookup(category)
	if !ok {
		return VersionValue{}, false
	}
	for _, tpl := range templates.values {
		if tpl == "" {
			continue
		}
		groups, ok := v.matcher.Match(ExpandTemplate(tpl), subject)
		if !ok {
			continue
		}
		// joined templates carry one group per alternative
		for _, g := range groups[1:] {
			if g != "" {
				raw := NormalizeVersion(g)
				return VersionValue{Raw: raw, Float: ParseVersionFloat(raw)}, true
			}
		}
	}
	return VersionValue{}, false
}

// Version returns the normalized version string or "" when not found.
func (v *VersionExtractor) Version(category, subject string) string {
	val, _ := v.Extract(category, subject)
	return val.Raw
}

// VersionFloat returns major.minor as a number or 0 when not found.
func (v *VersionExtractor) VersionFloat(category, subject string) float64 {
	val, _ := v.Extract(category, subject)
	return val.Float
}

// ExpandTemplate turns a version template into a regular expression with a
// single capture group at the placeholder.
func ExpandTemplate(tpl string) string {
	return strings.ReplaceAll(tpl, VersionPlaceholder, versionGroup)
}

// NormalizeVersion rewrites underscore separators as dots.
func NormalizeVersion(raw string) string {
	return strings.ReplaceAll(raw, "_", ".")
}

// ParseVersionFloat joins the first two dot-separated components into a
// number: "10.2.1" is 10.2. Anything that is not plain digits yields 0.
func ParseVersionFloat(version string) float64 {
	parts := strings.SplitN(NormalizeVersion(version), ".", 3)
	if !isDigits(parts[0]) {
		return 0
	}
	num := parts[0]
	if len(parts) > 1 {
		if !isDigits(parts[1]) {
			return 0
		}
		num += "." + parts[1]
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}
	return f
}

// augmentedBy reports whether t already holds every key of supplement.
func (t Table) augmentedBy(supplement Table) bool {
	for _, e := range supplement.entries {
		if !t.Has(e.Key) {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
