package useragent

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/dmitrymomot/uasniff/pkg/acceptlang"
	"github.com/dmitrymomot/uasniff/pkg/logger"
)

// UserAgent is the classification of one client.
type UserAgent struct {
	userAgent string

	device          string
	platform        string
	platformVersion string
	browser         string
	browserVersion  string
	robot           string

	mobile  bool
	tablet  bool
	desktop bool

	languages []string
}

// String returns the user agent as a string
func (ua UserAgent) String() string { return ua.userAgent }

// UserAgent returns the full user agent string
func (ua UserAgent) UserAgent() string { return ua.userAgent }

// Device returns the matched device category, such as "iPhone" or "Macintosh"
func (ua UserAgent) Device() string { return ua.device }

// Platform returns the matched operating system
func (ua UserAgent) Platform() string { return ua.platform }

// PlatformVersion returns the operating system version
func (ua UserAgent) PlatformVersion() string { return ua.platformVersion }

// Browser returns the matched browser
func (ua UserAgent) Browser() string { return ua.browser }

// BrowserVersion returns the browser version
func (ua UserAgent) BrowserVersion() string { return ua.browserVersion }

// Robot returns the crawler name, empty for regular clients
func (ua UserAgent) Robot() string { return ua.robot }

// Languages returns the accepted languages in preference order
func (ua UserAgent) Languages() []string { return ua.languages }

func (ua UserAgent) IsMobile() bool  { return ua.mobile }
func (ua UserAgent) IsTablet() bool  { return ua.tablet }
func (ua UserAgent) IsPhone() bool   { return ua.mobile && !ua.tablet }
func (ua UserAgent) IsDesktop() bool { return ua.desktop }
func (ua UserAgent) IsBot() bool     { return ua.robot != "" }

// DeviceType returns the device class (bot, tablet, mobile, desktop, unknown)
func (ua UserAgent) DeviceType() string {
	switch {
	case ua.userAgent == "":
		return DeviceTypeUnknown
	case ua.IsBot():
		return DeviceTypeBot
	case ua.tablet:
		return DeviceTypeTablet
	case ua.mobile:
		return DeviceTypeMobile
	default:
		return DeviceTypeDesktop
	}
}

// ShortIdentifier returns a short human-readable description of the client.
// Format: Browser/Version (Platform, DeviceType) or Bot: Name for crawlers
func (ua UserAgent) ShortIdentifier() string {
	if ua.IsBot() {
		return "Bot: " + ua.robot
	}
	if ua.browser == "" && ua.platform == "" {
		return "Unknown device"
	}

	platform := ua.platform
	if platform == "" {
		platform = "Unknown OS"
	}
	if ua.browser == "" {
		return fmt.Sprintf("%s %s", platform, ua.DeviceType())
	}

	version := ua.browserVersion
	if version == "" {
		version = "?"
	}
	return fmt.Sprintf("%s/%s (%s, %s)", ua.browser, version, platform, ua.DeviceType())
}

type userAgentJSON struct {
	UserAgent       string   `json:"user_agent"`
	DeviceType      string   `json:"device_type"`
	Device          string   `json:"device,omitempty"`
	Platform        string   `json:"platform,omitempty"`
	PlatformVersion string   `json:"platform_version,omitempty"`
	Browser         string   `json:"browser,omitempty"`
	BrowserVersion  string   `json:"browser_version,omitempty"`
	Robot           string   `json:"robot,omitempty"`
	Mobile          bool     `json:"mobile"`
	Tablet          bool     `json:"tablet"`
	Phone           bool     `json:"phone"`
	Desktop         bool     `json:"desktop"`
	Languages       []string `json:"languages,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (ua UserAgent) MarshalJSON() ([]byte, error) {
	return json.Marshal(userAgentJSON{
		UserAgent:       ua.userAgent,
		DeviceType:      ua.DeviceType(),
		Device:          ua.device,
		Platform:        ua.platform,
		PlatformVersion: ua.platformVersion,
		Browser:         ua.browser,
		BrowserVersion:  ua.browserVersion,
		Robot:           ua.robot,
		Mobile:          ua.mobile,
		Tablet:          ua.tablet,
		Phone:           ua.IsPhone(),
		Desktop:         ua.desktop,
		Languages:       ua.languages,
	})
}

// Parse classifies a single user agent string.
// An empty string yields ErrEmptyUserAgent and an unclassified UserAgent:
// its DeviceType is unknown and IsDesktop is false, unlike Detector.IsDesktop.
func (d *Detector) Parse(userAgent string) (UserAgent, error) {
	return d.detect(truncate(userAgent), nil)
}

// Detect classifies a client from its request headers: the user agent
// headers, the mobile hint headers and Accept-Language.
// A request without a user agent yields ErrEmptyUserAgent; the returned
// UserAgent still carries the languages and header-based mobile verdict.
func (d *Detector) Detect(h http.Header) (UserAgent, error) {
	return d.detect(FromHeaders(h), h)
}

// DetectRequest is Detect applied to r.Header.
func (d *Detector) DetectRequest(r *http.Request) (UserAgent, error) {
	return d.Detect(r.Header)
}

func (d *Detector) detect(userAgent string, h http.Header) (UserAgent, error) {
	ua := UserAgent{
		userAgent: userAgent,
		mobile:    d.base.IsMobile(userAgent, h),
		tablet:    d.base.IsTablet(userAgent, h),
		languages: acceptlang.Parse(h.Get("Accept-Language")),
	}
	if userAgent == "" {
		return ua, ErrEmptyUserAgent
	}

	ua.device, _ = d.Device(userAgent)
	ua.platform, _ = d.Platform(userAgent)
	ua.browser, _ = d.Browser(userAgent)
	if ua.platform != "" {
		ua.platformVersion = d.Version(ua.platform, userAgent)
	}
	if ua.browser != "" {
		ua.browserVersion = d.Version(ua.browser, userAgent)
	}
	ua.robot, _ = d.Robot(userAgent)
	ua.desktop = !ua.mobile && !ua.tablet && ua.robot == ""

	d.log.Debug("user agent classified",
		logger.UserAgent(userAgent),
		slog.String("device_type", ua.DeviceType()),
		slog.String("platform", ua.platform),
		slog.String("browser", ua.browser),
	)
	return ua, nil
}

var defaultDetector = sync.OnceValue(func() *Detector { return New() })

// Default returns the shared Detector used by the package-level functions.
func Default() *Detector { return defaultDetector() }

// Parse classifies userAgent with the default Detector.
func Parse(userAgent string) (UserAgent, error) {
	return Default().Parse(userAgent)
}

// Detect classifies request headers with the default Detector.
func Detect(h http.Header) (UserAgent, error) {
	return Default().Detect(h)
}

// NewUserAgent builds a UserAgent from known values, for tests and for
// restoring stored classifications.
func NewUserAgent(userAgent, device, platform, browser, robot string, mobile, tablet bool) UserAgent {
	userAgent = strings.TrimSpace(userAgent)
	return UserAgent{
		userAgent: userAgent,
		device:    device,
		platform:  platform,
		browser:   browser,
		robot:     robot,
		mobile:    mobile,
		tablet:    tablet,
		desktop:   userAgent != "" && !mobile && !tablet && robot == "",
	}
}
