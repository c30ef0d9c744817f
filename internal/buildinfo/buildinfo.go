// Package buildinfo exposes version metadata stamped at build time via
// -ldflags. The cli package variables are honored as fallbacks so release
// scripts that set cli.Version and cli.Date keep working.
package buildinfo

import (
	"strings"

	"github.com/flarebyte/anubis-hooks/cli"
)

var (
	// Version is the semantic version string. Falls back to cli.Version, then "dev".
	Version = "dev"
	// Commit is the VCS commit hash.
	Commit = ""
	// Date is the build date. Falls back to cli.Date.
	Date = ""
	// BuiltBy names the builder.
	BuiltBy = ""
)

// Summary returns a concise single-line version string.
func Summary() string {
	v := firstNonEmpty(Version, cli.Version, "dev")

	extras := make([]string, 0, 2)
	if Commit != "" {
		extras = append(extras, "commit="+shortCommit(Commit))
	}
	if d := firstNonEmpty(Date, cli.Date); d != "" {
		extras = append(extras, "date="+d)
	}
	if len(extras) == 0 {
		return v
	}
	return v + " (" + strings.Join(extras, ", ") + ")"
}

func shortCommit(c string) string {
	if len(c) > 7 {
		return c[:7]
	}
	return c
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
