package asset

import "strings"

// Scheme is the opaque locator prefix that resolves against the configured
// assets root.
const Scheme = "asset://"

// Resolve maps a locator to a fetchable URL.
//
// Locators under Scheme are joined onto assetsRoot with exactly one
// separating slash; resolution fails when assetsRoot is empty. Absolute
// http(s) locators pass through unchanged. Anything else fails.
// Pure function, no side effects.
func Resolve(locator, assetsRoot string) (string, bool) {
	if rest, ok := strings.CutPrefix(locator, Scheme); ok {
		if assetsRoot == "" {
			return "", false
		}
		return strings.TrimSuffix(assetsRoot, "/") + "/" + rest, true
	}
	if strings.HasPrefix(locator, "http://") || strings.HasPrefix(locator, "https://") {
		return locator, true
	}
	return "", false
}
