// Package useragent classifies HTTP clients by device, operating system,
// browser, crawler identity and accepted languages, and reads version
// numbers for the matched categories.
//
// A Detector layers desktop-oriented extension tables over the mobile
// signature tables of package mobiledetect and delegates crawler
// recognition to package crawler. Every axis is an ordered rules.Table:
// the first matching category wins.
//
//	Device:   extension devices, phones, tablets, utilities
//	Platform: mobile operating systems, extension operating systems
//	Browser:  extension browsers, mobile browsers
//
// # Usage
//
// Classify a single string:
//
//	d := useragent.New()
//	platform, _ := d.Platform(ua)       // "iOS"
//	version := d.Version(platform, ua)  // "14.4"
//	if d.IsPhone(ua) {
//		// serve the phone layout
//	}
//
// Or take a snapshot of a whole request, which also consults the mobile
// hint headers and Accept-Language:
//
//	ua, err := d.DetectRequest(r)
//	if errors.Is(err, useragent.ErrEmptyUserAgent) {
//		// no user agent header
//	}
//	log.Printf("client=%s", ua.ShortIdentifier())
//
// Any category of ExtendedRules can be queried by name, either directly or
// through an "isXxx" method name:
//
//	ok, err := d.Is("AndroidOS", ua)
//	ok, err = d.Call("isiPad", ua)
//
// Unknown categories return ErrUnknownCategory, names without the "is"
// prefix return ErrInvalidOperation.
//
// # HTTP integration
//
// Middleware stores the snapshot in the request context; GetFromContext
// reads it back and LogExtractor feeds it to the logger decorator:
//
//	log := logger.New(logger.WithContextExtractors(useragent.LogExtractor()))
//	r.Use(useragent.Middleware(d))
//
// # Extensions
//
// Additional categories and version templates are plain YAML, loaded with
// LoadExtensions or through Config.ExtensionsFile, and take priority over
// the built-in extensions:
//
//	browsers:
//	  Brave: 'Brave'
//	properties:
//	  Brave: 'Brave/[VER]'
package useragent
