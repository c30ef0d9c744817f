package cli

// Version and Date should be set at build time using ldflags, e.g.:
//
//	-ldflags "-X 'github.com/flarebyte/anubis-hooks/cli.Version=1.2.3' -X 'github.com/flarebyte/anubis-hooks/cli.Date=2026-08-25'"
var (
	Version string
	Date    string
)
