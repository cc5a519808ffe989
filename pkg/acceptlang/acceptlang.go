package acceptlang

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// MaxHeaderLength caps the part of an Accept-Language header that is parsed.
const MaxHeaderLength = 4096

// Language is a language tag with its quality value.
type Language struct {
	Tag     string  `json:"tag"`
	Quality float64 `json:"quality"`
}

// ParseWithQuality parses an Accept-Language header into lowercased tags
// sorted by descending quality. Tags with equal quality keep the order in
// which they first appeared. A repeated tag keeps its first position and
// takes the quality of its last occurrence. Only the q parameter is read.
// A missing quality counts as 1, an unreadable one as 0.
func ParseWithQuality(header string) []Language {
	if header == "" {
		return nil
	}
	if len(header) > MaxHeaderLength {
		header = header[:MaxHeaderLength]
	}

	var (
		languages []Language
		seen      = make(map[string]int)
	)
	for part := range strings.SplitSeq(header, ",") {
		tag, params, _ := strings.Cut(part, ";")
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}

		q := parseQuality(params)

		if i, ok := seen[tag]; ok {
			languages[i].Quality = q
			continue
		}
		seen[tag] = len(languages)
		languages = append(languages, Language{Tag: tag, Quality: q})
	}

	slices.SortStableFunc(languages, func(a, b Language) int {
		return cmp.Compare(b.Quality, a.Quality)
	})
	return languages
}

// Parse returns the tags of an Accept-Language header in preference order.
func Parse(header string) []string {
	languages := ParseWithQuality(header)
	if len(languages) == 0 {
		return []string{}
	}
	tags := make([]string, len(languages))
	for i, l := range languages {
		tags[i] = l.Tag
	}
	return tags
}

// Preferred picks the best supported language for an Accept-Language header.
// Exact tag matches win first; after that a regional tag may match its base
// language (fr-CA matches fr). fallback is returned when nothing matches.
func Preferred(header string, supported []string, fallback string) string {
	if header == "" || len(supported) == 0 {
		return fallback
	}

	normalized := make([]string, len(supported))
	for i, s := range supported {
		normalized[i] = strings.ToLower(s)
	}

	languages := ParseWithQuality(header)
	for _, l := range languages {
		if l.Quality > 0 && slices.Contains(normalized, l.Tag) {
			return l.Tag
		}
	}

	for _, l := range languages {
		if l.Quality <= 0 {
			continue
		}
		tag, err := language.Parse(l.Tag)
		if err != nil {
			continue
		}
		base, conf := tag.Base()
		if conf == language.No {
			continue
		}
		if b := base.String(); slices.Contains(normalized, b) {
			return b
		}
	}

	return fallback
}

// parseQuality reads the q parameter out of the ;-separated params that
// follow a tag. Other parameters are ignored.
func parseQuality(params string) float64 {
	for param := range strings.SplitSeq(params, ";") {
		v, ok := strings.CutPrefix(strings.TrimSpace(param), "q=")
		if !ok {
			continue
		}
		q, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return q
	}
	return 1
}
