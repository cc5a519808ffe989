// Package acceptlang parses Accept-Language headers.
//
//	acceptlang.Parse("fr-CH, fr;q=0.9, en;q=0.8, de;q=0.7, *;q=0.5")
//	// []string{"fr-ch", "fr", "en", "de", "*"}
//
// Preferred negotiates against a list of supported languages with a base
// language fallback resolved through golang.org/x/text/language.
package acceptlang
