package version

const Version = "0.1.0"

var (
	// Commit and Date are set with -ldflags at build time.
	Commit string
	Date   string

	VersionWithMeta = Version + "-dev"
)
