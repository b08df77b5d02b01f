// Package version reports the listkit build version.
package version

// version is set at build time with
// -ldflags "-X github.com/rshade/listkit/pkg/version.version=1.2.3".
var version = "0.0.0-dev" //nolint:gochecknoglobals // Overridden via ldflags

// GetVersion returns the build version string.
func GetVersion() string {
	return version
}
