// Package crawler recognizes web crawlers, monitoring agents and HTTP
// client libraries from their user agent.
//
// Browser tokens listed as exclusions are removed from the user agent
// first, then a single alternation of crawler patterns is applied. The
// leftmost match becomes the crawler label:
//
//	d := crawler.New()
//	label, ok := d.Match("Mozilla/5.0 (compatible; bingbot/2.0; +http://www.bing.com/bingbot.htm)")
//	// label == "bingbot", ok == true
//
// User agents no signature recognizes are passed to
// github.com/mileusna/useragent as a second opinion unless WithFallback(false)
// is given.
package crawler
