package logic

import (
	"strconv"
	"strings"

	"github.com/avct/uasurfer"

	"github.com/patrickwarner/gitdrills/internal/models"
)

const unknownClient = "Unknown"

var deviceLabels = map[uasurfer.DeviceType]string{
	uasurfer.DeviceComputer: "desktop",
	uasurfer.DevicePhone:    "mobile",
	uasurfer.DeviceTablet:   "tablet",
}

// ResolveClientFromUA classifies the caller of a drill endpoint. Browsers
// are reported by name and major version; command-line tools that
// uasurfer does not know (curl, httpie, Go test clients) are reported by
// their product token, e.g. "curl/8.4.0".
func ResolveClientFromUA(ua string) models.ClientContext {
	u := uasurfer.Parse(ua)

	device, ok := deviceLabels[u.DeviceType]
	if !ok {
		device = "other"
	}

	browser := productToken(ua)
	if u.Browser.Name != uasurfer.BrowserUnknown {
		browser = strings.TrimPrefix(u.Browser.Name.String(), "Browser")
		if major := u.Browser.Version.Major; major > 0 {
			browser += " " + strconv.Itoa(major)
		}
	}

	return models.ClientContext{
		DeviceType: device,
		OS:         strings.TrimPrefix(u.OS.Name.String(), "OS"),
		Browser:    browser,
		IsBot:      u.IsBot(),
	}
}

// productToken returns the leading product/version token of a User-Agent
// that uasurfer could not place, or "Unknown" for browser-shaped strings.
func productToken(ua string) string {
	fields := strings.Fields(ua)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "Mozilla/") {
		return unknownClient
	}
	return fields[0]
}
