// Package version holds build version information.
package version

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/mod/semver"
)

// Build information, set with -ldflags "-X ...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info contains version information about the extractor.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	GoVer   string `json:"go_version"`
}

// Get returns the Info of the running binary.
func Get() *Info {
	return &Info{
		Version: Canonical(Version),
		Commit:  Commit,
		Date:    Date,
		GoVer:   runtime.Version(),
	}
}

// Canonical normalizes a release tag like `1.2` or `v1.2.0+meta` to `v1.2.0`.
// Versions that are not semver, like `dev`, are returned unchanged.
func Canonical(v string) string {
	tagged := v
	if !strings.HasPrefix(tagged, "v") {
		tagged = "v" + tagged
	}
	if !semver.IsValid(tagged) {
		return v
	}
	return semver.Canonical(tagged)
}

// String returns a formatted version string.
func (i *Info) String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s, %s)", i.Version, i.Commit, i.Date, i.GoVer)
}
