// Package version exposes the build version, set at link time via
// -ldflags "-X github.com/Verderen/MoneyHiver/internal/version.Version=...".
package version

// Version is the build version string. "dev" when built without ldflags.
var Version = "dev"
