package useragent

import (
	"log/slog"
	"net/http"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/uasniff/pkg/acceptlang"
	"github.com/dmitrymomot/uasniff/pkg/crawler"
	"github.com/dmitrymomot/uasniff/pkg/logger"
	"github.com/dmitrymomot/uasniff/pkg/mobiledetect"
	"github.com/dmitrymomot/uasniff/pkg/rules"
)

// BaseDetector answers the raw mobile and tablet questions and exposes the
// signature tables the Detector extends.
type BaseDetector interface {
	IsMobile(userAgent string, headers http.Header) bool
	IsTablet(userAgent string, headers http.Header) bool
	Tables() mobiledetect.Tables
}

// CrawlerDetector recognizes crawlers. The label belongs to the call that
// produced it.
type CrawlerDetector interface {
	Match(userAgent string) (label string, ok bool)
}

// Detector classifies user agents by device, platform, browser and crawler
// identity, and reads versions for the matched categories.
// It is safe for concurrent use.
type Detector struct {
	base     BaseDetector
	crawler  CrawlerDetector
	matcher  *rules.Matcher
	versions *rules.VersionExtractor
	log      *slog.Logger

	devices   rules.Table
	platforms rules.Table
	browsers  rules.Table

	ext          Extensions
	tables       mobiledetect.Tables
	extendedOnce sync.Once
	extended     rules.Table
}

type options struct {
	base            BaseDetector
	crawler         CrawlerDetector
	log             *slog.Logger
	cacheSize       int
	extensions      []Extensions
	crawlerFallback bool
}

// Option configures a Detector.
type Option func(*options)

// WithBase replaces the mobile detection capability.
func WithBase(base BaseDetector) Option {
	return func(o *options) {
		if base != nil {
			o.base = base
		}
	}
}

// WithCrawler replaces the crawler detector.
func WithCrawler(c CrawlerDetector) Option {
	return func(o *options) {
		if c != nil {
			o.crawler = c
		}
	}
}

// WithLogger sets the logger. Detectors log nothing by default.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithCacheSize bounds the number of compiled patterns kept in memory.
func WithCacheSize(size int) Option {
	return func(o *options) {
		o.cacheSize = size
	}
}

// WithExtensions adds extension tables ahead of the built-in ones.
// It may be given several times; earlier calls take priority.
func WithExtensions(ext Extensions) Option {
	return func(o *options) {
		o.extensions = append(o.extensions, ext)
	}
}

// WithCrawlerFallback toggles the secondary crawler parser of the default
// crawler detector. It has no effect together with WithCrawler.
func WithCrawlerFallback(enabled bool) Option {
	return func(o *options) {
		o.crawlerFallback = enabled
	}
}

// New creates a Detector over the embedded signature tables.
func New(opts ...Option) *Detector {
	o := options{
		log:             slog.New(slog.DiscardHandler),
		cacheSize:       rules.DefaultCacheSize,
		crawlerFallback: true,
	}
	for _, opt := range opts {
		opt(&o)
	}

	matcher := rules.NewMatcher(
		rules.WithCacheSize(o.cacheSize),
		rules.WithLogger(o.log.With(logger.Component("rules"))),
	)
	if o.base == nil {
		o.base = mobiledetect.New(mobiledetect.WithMatcher(matcher))
	}
	if o.crawler == nil {
		o.crawler = crawler.New(
			crawler.WithMatcher(matcher),
			crawler.WithLogger(o.log.With(logger.Component("crawler"))),
			crawler.WithFallback(o.crawlerFallback),
		)
	}

	var ext Extensions
	for _, e := range o.extensions {
		ext = ext.Merge(e)
	}
	ext = ext.Merge(DefaultExtensions())

	tables := o.base.Tables()
	return &Detector{
		base:     o.base,
		crawler:  o.crawler,
		matcher:  matcher,
		versions: rules.NewVersionExtractor(matcher, tables.Properties, ext.Properties),
		log:      o.log,

		devices:   rules.Merge(ext.Devices, tables.Phones, tables.Tablets, tables.Utilities),
		platforms: rules.Merge(tables.OperatingSystems, ext.OperatingSystems),
		browsers:  rules.Merge(ext.Browsers, tables.Browsers),

		ext:    ext,
		tables: tables,
	}
}

// Device returns the first matching device category.
func (d *Detector) Device(userAgent string) (string, bool) {
	return d.matcher.FindCategory(d.devices, userAgent)
}

// Platform returns the first matching operating system.
func (d *Detector) Platform(userAgent string) (string, bool) {
	return d.matcher.FindCategory(d.platforms, userAgent)
}

// Browser returns the first matching browser.
func (d *Detector) Browser(userAgent string) (string, bool) {
	return d.matcher.FindCategory(d.browsers, userAgent)
}

// Version returns the version of property found in userAgent, with
// underscores normalized to dots, or "" when none is found.
func (d *Detector) Version(property, userAgent string) string {
	return d.versions.Version(property, userAgent)
}

// VersionFloat returns major.minor of property as a number, or 0.
func (d *Detector) VersionFloat(property, userAgent string) float64 {
	return d.versions.VersionFloat(property, userAgent)
}

// IsMobile reports whether userAgent is a phone or a tablet.
func (d *Detector) IsMobile(userAgent string) bool {
	return d.base.IsMobile(userAgent, nil)
}

// IsTablet reports whether userAgent is a tablet.
func (d *Detector) IsTablet(userAgent string) bool {
	return d.base.IsTablet(userAgent, nil)
}

// IsPhone reports whether userAgent is mobile but not a tablet.
func (d *Detector) IsPhone(userAgent string) bool {
	return d.IsMobile(userAgent) && !d.IsTablet(userAgent)
}

// IsDesktop reports whether userAgent is neither mobile, a tablet nor a robot.
// An empty userAgent matches none of them and so counts as desktop; Parse
// instead reports an empty agent as unclassified.
func (d *Detector) IsDesktop(userAgent string) bool {
	return !d.IsMobile(userAgent) && !d.IsTablet(userAgent) && !d.IsRobot(userAgent)
}

// IsRobot reports whether userAgent belongs to a crawler.
func (d *Detector) IsRobot(userAgent string) bool {
	_, ok := d.crawler.Match(userAgent)
	return ok
}

// Robot returns the crawler name with its first letter capitalized.
func (d *Detector) Robot(userAgent string) (string, bool) {
	label, ok := d.crawler.Match(userAgent)
	if !ok {
		return "", false
	}
	return capitalize(label), true
}

// Languages returns the tags of an Accept-Language header in preference order.
func (d *Detector) Languages(acceptLanguage string) []string {
	return acceptlang.Parse(acceptLanguage)
}

// ExtendedRules returns every category known to the Detector: devices,
// operating systems, browsers and utilities, merged in that order.
func (d *Detector) ExtendedRules() rules.Table {
	d.extendedOnce.Do(func() {
		d.extended = rules.Merge(
			d.ext.Devices,
			d.tables.Phones,
			d.tables.Tablets,
			d.tables.OperatingSystems,
			d.ext.OperatingSystems,
			d.tables.Browsers,
			d.ext.Browsers,
			d.tables.Utilities,
		)
	})
	return d.extended
}

// VersionTemplates returns the effective version templates.
func (d *Detector) VersionTemplates() rules.Table {
	return d.versions.Templates()
}

// capitalize upper-cases the first letter only. A Caser is stateful, so
// one is created per call.
func capitalize(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return cases.Title(language.Und, cases.NoLower).String(s[:size]) + s[size:]
}
