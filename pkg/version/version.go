// Package version exposes the build version stamped at link time.
package version

// version is set at build time:
//
//	-ldflags "-X github.com/chromabatch/chromabatch/pkg/version.version=v1.2.3"
//
//nolint:gochecknoglobals // Link-time injection target.
var version = ""

// GetVersion returns the stamped build version, or "dev" for unstamped
// builds.
func GetVersion() string {
	if version == "" {
		return "dev"
	}
	return version
}
