package browser

import (
	"regexp"
	"strings"
)

var (
	mobilePattern = regexp.MustCompile(`Mobile|mini|Fennec|Android|iP(ad|od|hone)`)
	chromePattern = regexp.MustCompile(`chrome/\d+`)
)

// IsInBrowser reports whether browser globals are present on h.
func IsInBrowser(h Host) bool { return h.Window }

// IsServer reports whether h lacks browser globals. It is always the negation
// of IsInBrowser.
func IsServer(h Host) bool { return !h.Window }

// GetUA returns the lower-cased user agent, or "" when h is not a browser.
func GetUA(h Host) string {
	if IsInBrowser(h) {
		return strings.ToLower(h.UserAgent)
	}
	return ""
}

// IsMobile matches the raw-case app version against common handheld tokens.
func IsMobile(h Host) bool {
	return mobilePattern.MatchString(h.AppVersion)
}

// IsOpera reports whether the raw-case user agent carries the "Opera" token.
func IsOpera(h Host) bool {
	return strings.Contains(h.UserAgent, "Opera")
}

func IsIE(h Host) bool {
	return indexAfterStart(GetUA(h), "msie")
}

func IsIE9(h Host) bool {
	return indexAfterStart(GetUA(h), "msie 9.0")
}

func IsEdge(h Host) bool {
	return indexAfterStart(GetUA(h), "edge/")
}

// IsChrome reports a Chrome user agent. Legacy Edge includes a "Chrome/" token
// and is excluded.
func IsChrome(h Host) bool {
	ua := GetUA(h)
	return ua != "" && chromePattern.MatchString(ua) && !IsEdge(h)
}

func IsPhantomJS(h Host) bool {
	ua := GetUA(h)
	return ua != "" && strings.Contains(ua, "phantomjs")
}

func IsFirefox(h Host) bool {
	ua := GetUA(h)
	return ua != "" && strings.Contains(ua, "firefox")
}

// indexAfterStart reports whether token occurs in ua past its first byte.
// A match at position 0 does not count.
func indexAfterStart(ua, token string) bool {
	return ua != "" && strings.Index(ua, token) > 0
}
