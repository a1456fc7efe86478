package context

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// VersionInfo describes the build of the running binary.
type VersionInfo struct {
	Semantic string
	Commit   string
	Dirty    bool
	Go       string
}

// GetVersion returns the version information embedded in the binary by the Go
// toolchain.
func GetVersion() *VersionInfo {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return &VersionInfo{Semantic: "(devel)", Go: runtime.Version()}
	}

	vi := &VersionInfo{Semantic: bi.Main.Version, Go: bi.GoVersion}
	if vi.Semantic == "" {
		vi.Semantic = "(devel)"
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			vi.Commit = s.Value
		case "vcs.modified":
			vi.Dirty = s.Value == "true"
		}
	}

	return vi
}

// String returns the version in a human-readable format.
func (vi *VersionInfo) String() string {
	if vi.Commit == "" {
		return fmt.Sprintf("%s (%s)", vi.Semantic, vi.Go)
	}

	commit := vi.Commit
	if len(commit) > 12 {
		commit = commit[:12]
	}
	if vi.Dirty {
		commit += "-dirty"
	}

	return fmt.Sprintf("%s (commit %s, %s)", vi.Semantic, commit, vi.Go)
}
