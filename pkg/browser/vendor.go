package browser

import (
	"regexp"
	"strings"
)

// Vendor names returned by ParseVendor.
const (
	VendorEdge      = "edge"
	VendorOpera     = "opera"
	VendorSamsung   = "samsung"
	VendorYandex    = "yandex"
	VendorVivaldi   = "vivaldi"
	VendorPhantomJS = "phantomjs"
	VendorChrome    = "chrome"
	VendorFirefox   = "firefox"
	VendorSafari    = "safari"
	VendorIE        = "ie"
	VendorUnknown   = "unknown"
)

// Vendor is the engine or browser family a user agent belongs to.
type Vendor struct {
	Name    string
	Version string
}

type vendorPattern struct {
	name     string
	keywords []string // any keyword matches
	excludes []string
	version  *regexp.Regexp
}

// Checked in order; more specific vendors come before the engines they embed.
var vendorPatterns = []vendorPattern{
	{
		name:     VendorEdge,
		keywords: []string{"edg/", "edge/"},
		version:  regexp.MustCompile(`(?:edge|edg)/([\d.]+)`),
	},
	{
		name:     VendorOpera,
		keywords: []string{"opr/", "opera"},
		version:  regexp.MustCompile(`(?:opr|opera)[/\s]([\d.]+)`),
	},
	{
		name:     VendorSamsung,
		keywords: []string{"samsungbrowser"},
		version:  regexp.MustCompile(`samsungbrowser/([\d.]+)`),
	},
	{
		name:     VendorYandex,
		keywords: []string{"yabrowser", "yandexbrowser"},
		version:  regexp.MustCompile(`(?:yabrowser|yandexbrowser)/([\d.]+)`),
	},
	{
		name:     VendorVivaldi,
		keywords: []string{"vivaldi"},
		version:  regexp.MustCompile(`vivaldi/([\d.]+)`),
	},
	{
		name:     VendorPhantomJS,
		keywords: []string{"phantomjs"},
		version:  regexp.MustCompile(`phantomjs/([\d.]+)`),
	},
	{
		name:     VendorChrome,
		keywords: []string{"chrome/", "crios/"},
		version:  regexp.MustCompile(`(?:chrome|crios)/([\d.]+)`),
	},
	{
		name:     VendorFirefox,
		keywords: []string{"firefox/", "fxios/"},
		version:  regexp.MustCompile(`(?:firefox|fxios)/([\d.]+)`),
	},
	{
		name:     VendorSafari,
		keywords: []string{"safari/"},
		excludes: []string{"chrome", "chromium", "android"},
		version:  regexp.MustCompile(`version/([\d.]+)`),
	},
	{
		name:     VendorIE,
		keywords: []string{"msie ", "trident/"},
		version:  regexp.MustCompile(`(?:msie |rv:)([\d.]+)`),
	},
}

// maxVersionLength caps extracted versions so hostile headers cannot bloat
// log lines.
const maxVersionLength = 20

// ParseVendor classifies a lower-cased user agent into a vendor and version.
// Unknown agents yield VendorUnknown with an empty version.
func ParseVendor(lowerUA string) Vendor {
	for _, p := range vendorPatterns {
		if p.matches(lowerUA) {
			return Vendor{Name: p.name, Version: extractVersion(lowerUA, p.version)}
		}
	}
	return Vendor{Name: VendorUnknown}
}

func (p vendorPattern) matches(ua string) bool {
	for _, exclude := range p.excludes {
		if strings.Contains(ua, exclude) {
			return false
		}
	}
	for _, keyword := range p.keywords {
		if strings.Contains(ua, keyword) {
			return true
		}
	}
	return false
}

func extractVersion(ua string, re *regexp.Regexp) string {
	matches := re.FindStringSubmatch(ua)
	if len(matches) < 2 {
		return ""
	}
	version := matches[1]
	if len(version) > maxVersionLength {
		version = version[:maxVersionLength]
	}
	return version
}
