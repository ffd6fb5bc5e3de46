package browser

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Info is a snapshot of every detection result for one host.
type Info struct {
	InBrowser bool
	UA        string
	Mobile    bool
	Opera     bool
	IE        bool
	IE9       bool
	Edge      bool
	Chrome    bool
	PhantomJS bool
	Firefox   bool
	Vendor    Vendor
}

// Detect evaluates all predicates against h.
func Detect(h Host) Info {
	ua := GetUA(h)
	vendor := Vendor{Name: VendorUnknown}
	if ua != "" {
		vendor = ParseVendor(ua)
	}

	return Info{
		InBrowser: IsInBrowser(h),
		UA:        ua,
		Mobile:    IsMobile(h),
		Opera:     IsOpera(h),
		IE:        IsIE(h),
		IE9:       IsIE9(h),
		Edge:      IsEdge(h),
		Chrome:    IsChrome(h),
		PhantomJS: IsPhantomJS(h),
		Firefox:   IsFirefox(h),
		Vendor:    vendor,
	}
}

// Identifier returns a short label such as "Chrome/91.0 (mobile)",
// "Unknown (desktop)" or "server".
func (i Info) Identifier() string {
	if !i.InBrowser {
		return "server"
	}

	device := "desktop"
	if i.Mobile {
		device = "mobile"
	}

	if i.Vendor.Name == "" || i.Vendor.Name == VendorUnknown {
		return fmt.Sprintf("Unknown (%s)", device)
	}

	name := vendorTitle(i.Vendor.Name)
	version := i.Vendor.Version
	if version == "" {
		version = "?"
	}
	return fmt.Sprintf("%s/%s (%s)", name, version, device)
}

func vendorTitle(name string) string {
	switch name {
	case VendorIE:
		return "IE"
	case VendorPhantomJS:
		return "PhantomJS"
	default:
		return cases.Title(language.English).String(name)
	}
}
