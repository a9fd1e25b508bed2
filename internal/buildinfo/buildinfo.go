// Package buildinfo holds version metadata stamped at link time.
package buildinfo

import "fmt"

// Overridden with -ldflags "-X github.com/lexfrei/go-meraki/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent is the User-Agent header value sent with every Dashboard API call.
func UserAgent() string {
	return "go-meraki/" + Version
}

// String renders the build metadata for `merakictl version`.
func String() string {
	return fmt.Sprintf("merakictl %s (commit=%s, date=%s)", Version, Commit, Date)
}
