// Package version exposes build metadata injected through -ldflags.
package version

var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// String returns the full human-readable version line.
func String() string {
	return Version + " (" + Commit + ") built at " + BuildTime
}
