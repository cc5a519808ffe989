package useragent

import (
	"fmt"
	"strings"
)

// methodPrefix starts every name accepted by Call.
const methodPrefix = "is"

// Is reports whether userAgent matches category. category is any key of
// ExtendedRules, compared case-insensitively: "iPhone", "AndroidOS",
// "Chrome", "Bot" and so on.
func (d *Detector) Is(category, userAgent string) (bool, error) {
	_, patterns, ok := d.ExtendedRules().Lookup(category)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	_, matched := d.matcher.MatchPatterns(patterns, userAgent)
	return matched, nil
}

// Call resolves a method name of the form "isXxx". The class checks
// isMobile, isTablet, isPhone, isDesktop and isRobot are answered first;
// any other name is handed to Is with the prefix removed.
func (d *Detector) Call(method, userAgent string) (bool, error) {
	if len(method) <= len(methodPrefix) || !strings.EqualFold(method[:len(methodPrefix)], methodPrefix) {
		return false, fmt.Errorf("%w: %q", ErrInvalidOperation, method)
	}
	name := method[len(methodPrefix):]

	switch strings.ToLower(name) {
	case "mobile":
		return d.IsMobile(userAgent), nil
	case "tablet":
		return d.IsTablet(userAgent), nil
	case "phone":
		return d.IsPhone(userAgent), nil
	case "desktop":
		return d.IsDesktop(userAgent), nil
	case "robot":
		return d.IsRobot(userAgent), nil
	}
	return d.Is(name, userAgent)
}
