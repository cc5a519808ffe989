// Package mobiledetect is the base mobile detection capability: ordered
// signature tables for phones, tablets, mobile operating systems, mobile
// browsers and utility categories, plus the [VER] property templates used
// to read versions.
//
// The tables ship as embedded YAML (data/rules.yaml). Mapping order is
// matching priority, so the data is decoded through rules.Table rather
// than a Go map.
//
// A Detector decides whether a client is mobile or a tablet from the user
// agent and, when available, the request headers:
//
//	d := mobiledetect.New()
//	if d.IsMobile(r.UserAgent(), r.Header) {
//		// serve the mobile layout
//	}
//
// Requests proxied by Amazon CloudFront are classified by the
// CloudFront-Is-Mobile-Viewer and CloudFront-Is-Tablet-Viewer headers.
package mobiledetect
