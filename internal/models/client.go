package models

// ClientContext holds what the drill server can tell about a caller from its
// User-Agent header. It is logged with each request so learners can see
// which tool (browser, curl, test runner) issued it.
type ClientContext struct {
	DeviceType string // "desktop", "mobile", "tablet" or "other"
	OS         string
	Browser    string
	IsBot      bool
}
