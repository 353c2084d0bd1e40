// Package version exposes the build version, set at link time with
// -ldflags "-X github.com/kwanzafolio/kwanzafolio-backend/internal/version.Version=v1.2.3".
package version

var Version = "dev"
