package useragent

// Device classes reported by UserAgent.DeviceType.
const (
	// DeviceTypeBot identifies crawlers, monitors and HTTP tools
	DeviceTypeBot = "bot"

	// DeviceTypeMobile identifies phones
	DeviceTypeMobile = "mobile"

	// DeviceTypeTablet identifies tablets
	DeviceTypeTablet = "tablet"

	// DeviceTypeDesktop identifies everything else
	DeviceTypeDesktop = "desktop"

	// DeviceTypeUnknown is used for an empty user agent
	DeviceTypeUnknown = "unknown"
)

// Categories of the built-in tables that callers commonly branch on.
const (
	PlatformIOS      = "iOS"
	PlatformAndroid  = "AndroidOS"
	PlatformWindows  = "Windows"
	PlatformOSX      = "OS X"
	PlatformLinux    = "Linux"
	PlatformChromeOS = "ChromeOS"
	BrowserChrome    = "Chrome"
	BrowserSafari    = "Safari"
	BrowserFirefox   = "Firefox"
	BrowserEdge      = "Edge"
	BrowserOpera     = "Opera"
	BrowserIE        = "IE"
)
