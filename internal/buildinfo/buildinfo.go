package buildinfo

// Set at build time via -ldflags "-X vkpad/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for the window title and boot banner.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		if len(Commit) > 7 {
			return Commit[:7]
		}
		return Commit
	}
	return "dev"
}

// Describe returns every known build field, for the startup log.
func Describe() []any {
	return []any{"version", Version, "commit", Commit, "date", Date}
}
