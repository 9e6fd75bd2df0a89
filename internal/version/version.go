// Where: cli/internal/version/version.go
// What: Version information retrieval.
// Why: Provide build-time version information (module version or Git commit) to the CLI.
package version

import (
	"runtime/debug"
)

// Get returns the CLI version derived from build info: the module
// version when installed via `go install`, otherwise the short VCS
// revision, otherwise "dev".
func Get() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}

	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	if revision == "" {
		return "dev"
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	if modified {
		return revision + " (dirty)"
	}
	return revision
}
