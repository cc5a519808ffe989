package useragent

import (
	"net/http"
	"strings"
	"unicode/utf8"
)

// MaxUserAgentLength caps the user agent assembled from request headers,
// in bytes. A rune is never split.
const MaxUserAgentLength = 500

// UserAgentHeaders lists, in priority order, the CGI-style names of the
// headers that may carry a user agent. Proxies and transcoders such as
// Opera Mini keep the device's original string in the extra headers.
var UserAgentHeaders = []string{
	"HTTP_USER_AGENT",
	"HTTP_X_OPERAMINI_PHONE_UA",
	"HTTP_X_DEVICE_USER_AGENT",
	"HTTP_X_ORIGINAL_USER_AGENT",
	"HTTP_X_SKYFIRE_PHONE",
	"HTTP_X_BOLT_PHONE_UA",
	"HTTP_DEVICE_STOCK_UA",
	"HTTP_X_UCBROWSER_DEVICE_UA",
	// some crawlers keep the original agent and put their address here
	"HTTP_FROM",
}

// HeaderName converts a CGI variable name into an HTTP header name:
// HTTP_X_OPERAMINI_PHONE_UA becomes X-Operamini-Phone-Ua.
func HeaderName(cgi string) string {
	name := strings.TrimPrefix(cgi, "HTTP_")
	return http.CanonicalHeaderKey(strings.ReplaceAll(name, "_", "-"))
}

// FromHeaders assembles the user agent from every present header of
// UserAgentHeaders, joined by spaces in priority order and truncated to
// MaxUserAgentLength.
func FromHeaders(h http.Header) string {
	if len(h) == 0 {
		return ""
	}
	var parts []string
	for _, cgi := range UserAgentHeaders {
		if v := strings.TrimSpace(h.Get(HeaderName(cgi))); v != "" {
			parts = append(parts, v)
		}
	}
	return truncate(strings.Join(parts, " "))
}

func truncate(ua string) string {
	ua = strings.TrimSpace(ua)
	if len(ua) <= MaxUserAgentLength {
		return ua
	}
	n := MaxUserAgentLength
	for n > 0 && !utf8.RuneStart(ua[n]) {
		n--
	}
	return ua[:n]
}
