// Package version reports the version of folio.
package version

import "runtime/debug"

// Version is set at build time via -ldflags, e.g.
//
//	-ldflags "-X github.com/amiigood/folio/internal/version.Version=v0.1.0"
var Version = "unknown"

func init() {
	if v, ok := installed(); ok {
		Version = v
	}
}

// installed returns the module version embedded when folio is installed with
// `go install github.com/amiigood/folio@latest`. Binaries built with `go
// build` carry no such version.
func installed() (string, bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}
	switch v := info.Main.Version; v {
	case "", "(devel)":
		return "", false
	default:
		return v, true
	}
}
