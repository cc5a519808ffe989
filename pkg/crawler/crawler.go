package crawler

import (
	_ "embed"
	"errors"
	"log/slog"
	"strings"
	"sync"

	mua "github.com/mileusna/useragent"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/uasniff/pkg/rules"
)

//go:embed data/crawlers.yaml
var crawlersYAML []byte

// Signatures holds crawler patterns and the browser fragments removed from
// a user agent before the patterns run.
type Signatures struct {
	Crawlers   []string `yaml:"crawlers"`
	Exclusions []string `yaml:"exclusions"`
}

// ParseSignatures decodes crawler signatures from YAML.
func ParseSignatures(data []byte) (Signatures, error) {
	var s Signatures
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Signatures{}, errors.Join(ErrInvalidSignatures, err)
	}
	if len(s.Crawlers) == 0 {
		return Signatures{}, ErrNoCrawlerPatterns
	}
	return s, nil
}

var (
	defaultSignatures     Signatures
	defaultSignaturesErr  error
	defaultSignaturesOnce sync.Once
)

// DefaultSignatures returns the embedded crawler signatures.
// It panics if the embedded data is malformed.
func DefaultSignatures() Signatures {
	defaultSignaturesOnce.Do(func() {
		defaultSignatures, defaultSignaturesErr = ParseSignatures(crawlersYAML)
	})
	if defaultSignaturesErr != nil {
		panic(defaultSignaturesErr)
	}
	return defaultSignatures
}

// Detector recognizes crawlers, bots and HTTP tools.
// It is safe for concurrent use.
type Detector struct {
	matcher   *rules.Matcher
	log       *slog.Logger
	crawlers  string
	exclusion string
	fallback  bool
}

// Option configures a Detector.
type Option func(*Detector)

// WithSignatures replaces the embedded signatures.
func WithSignatures(s Signatures) Option {
	return func(d *Detector) {
		d.crawlers = alternation(s.Crawlers)
		d.exclusion = alternation(s.Exclusions)
	}
}

// WithMatcher shares a matcher with other detectors.
func WithMatcher(m *rules.Matcher) Option {
	return func(d *Detector) {
		if m != nil {
			d.matcher = m
		}
	}
}

// WithLogger sets the logger for fallback verdicts.
func WithLogger(log *slog.Logger) Option {
	return func(d *Detector) {
		if log != nil {
			d.log = log
		}
	}
}

// WithFallback toggles the secondary parser consulted when no signature
// matches. Enabled by default.
func WithFallback(enabled bool) Option {
	return func(d *Detector) {
		d.fallback = enabled
	}
}

// New creates a Detector.
func New(opts ...Option) *Detector {
	d := &Detector{
		log:      slog.New(slog.DiscardHandler),
		fallback: true,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.crawlers == "" {
		WithSignatures(DefaultSignatures())(d)
	}
	if d.matcher == nil {
		d.matcher = rules.NewMatcher(rules.WithLogger(d.log))
	}
	return d
}

// Match reports whether userAgent belongs to a crawler and returns the
// matched fragment as its label. The label is tied to this call only.
func (d *Detector) Match(userAgent string) (string, bool) {
	userAgent = strings.TrimSpace(userAgent)
	if userAgent == "" {
		return "", false
	}

	stripped := strings.TrimSpace(d.matcher.ReplaceAll(d.exclusion, userAgent, ""))
	if stripped != "" {
		if groups, ok := d.matcher.Match(d.crawlers, stripped); ok {
			return groups[0], true
		}
	}

	if !d.fallback {
		return "", false
	}
	info := mua.Parse(userAgent)
	if !info.Bot {
		return "", false
	}
	label := info.Name
	if label == "" {
		label = "bot"
	}
	d.log.Debug("crawler recognized by fallback parser", slog.String("label", label))
	return label, true
}

// IsCrawler reports whether userAgent belongs to a crawler.
func (d *Detector) IsCrawler(userAgent string) bool {
	_, ok := d.Match(userAgent)
	return ok
}

func alternation(patterns []string) string {
	parts := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, "|") + ")"
}
