package mobiledetect

import (
	"net/http"
	"strings"
	"sync"

	"github.com/dmitrymomot/uasniff/pkg/rules"
)

// cloudFrontUserAgent is sent by Amazon CloudFront, which reports the
// viewer class in dedicated headers instead.
const cloudFrontUserAgent = "Amazon CloudFront"

// mobileHeaders are request headers whose presence marks a mobile client.
// A non-empty value list means the header must contain one of the values.
var mobileHeaders = []struct {
	name   string
	values []string
}{
	{name: "Accept", values: []string{
		"application/x-obml2d",
		"application/vnd.rim.html",
		"text/vnd.wap.wml",
		"application/vnd.wap.xhtml+xml",
	}},
	{name: "X-Wap-Profile"},
	{name: "X-Wap-Clientid"},
	{name: "Wap-Connection"},
	{name: "Profile"},
	{name: "X-Operamini-Phone-Ua"},
	{name: "X-Nokia-Gateway-Id"},
	{name: "X-Orange-Id"},
	{name: "X-Vodafone-3gpdpcontext"},
	{name: "X-Huawei-Userid"},
	{name: "Ua-Os"},
	{name: "X-Mobile-Gateway"},
	{name: "X-Att-Deviceid"},
	{name: "Ua-Cpu", values: []string{"ARM"}},
}

// Detector answers the raw mobile and tablet questions from signature
// tables. It is safe for concurrent use.
type Detector struct {
	tables    Tables
	hasTables bool
	matcher   *rules.Matcher

	mobileOnce  sync.Once
	mobileRules rules.Table
}

// Option configures a Detector.
type Option func(*Detector)

// WithTables replaces the embedded signature tables.
func WithTables(t Tables) Option {
	return func(d *Detector) {
		d.tables = t
		d.hasTables = true
	}
}

// WithMatcher shares a matcher (and its compiled pattern cache).
func WithMatcher(m *rules.Matcher) Option {
	return func(d *Detector) {
		if m != nil {
			d.matcher = m
		}
	}
}

// New creates a Detector backed by the embedded tables unless WithTables
// is given.
func New(opts ...Option) *Detector {
	d := &Detector{}
	for _, opt := range opts {
		opt(d)
	}
	if d.matcher == nil {
		d.matcher = rules.NewMatcher()
	}
	if !d.hasTables {
		d.tables = DefaultTables()
	}
	return d
}

// Tables returns the signature tables in use.
func (d *Detector) Tables() Tables { return d.tables }

// Matcher returns the matcher in use.
func (d *Detector) Matcher() *rules.Matcher { return d.matcher }

// IsMobile reports whether the client is a phone or a tablet.
// headers may be nil.
func (d *Detector) IsMobile(userAgent string, headers http.Header) bool {
	if userAgent == cloudFrontUserAgent && headers != nil {
		return headers.Get("CloudFront-Is-Mobile-Viewer") == "true" ||
			headers.Get("CloudFront-Is-Tablet-Viewer") == "true"
	}
	if hasMobileHeaders(headers) {
		return true
	}
	if userAgent == "" {
		return false
	}
	d.mobileOnce.Do(func() {
		d.mobileRules = d.tables.MobileRules()
	})
	return d.matcher.MatchesAny(d.mobileRules, userAgent)
}

// IsTablet reports whether the client is a tablet. headers may be nil.
func (d *Detector) IsTablet(userAgent string, headers http.Header) bool {
	if userAgent == cloudFrontUserAgent && headers != nil {
		return headers.Get("CloudFront-Is-Tablet-Viewer") == "true"
	}
	if userAgent == "" {
		return false
	}
	return d.matcher.MatchesAny(d.tables.Tablets, userAgent)
}

func hasMobileHeaders(headers http.Header) bool {
	if len(headers) == 0 {
		return false
	}
	for _, mh := range mobileHeaders {
		values := headers.Values(mh.name)
		if len(values) == 0 {
			continue
		}
		if len(mh.values) == 0 {
			return true
		}
		for _, v := range values {
			for _, want := range mh.values {
				if strings.Contains(v, want) {
					return true
				}
			}
		}
	}
	return false
}
