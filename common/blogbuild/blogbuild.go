// Package blogbuild describes the running blogbuild binary.
package blogbuild

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// CurrentVersion is the version of blogbuild.
const CurrentVersion = "0.1.0"

// Info contains information about the current blogbuild binary.
type Info struct {
	Version string

	// Taken from the VCS stamp of the binary, empty when not built from a
	// checkout.
	CommitHash string
	BuildDate  string

	// version of go that the binary was built with
	GoVersion string
}

// GetInfo returns the Info of the running binary.
func GetInfo() Info {
	info := Info{
		Version:   CurrentVersion,
		GoVersion: runtime.Version(),
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.CommitHash = s.Value
		case "vcs.time":
			info.BuildDate = s.Value
		}
	}

	return info
}

func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "blogbuild v%s", i.Version)
	if i.CommitHash != "" {
		hash := i.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		fmt.Fprintf(&b, "-%s", hash)
	}
	fmt.Fprintf(&b, " %s/%s", runtime.GOOS, runtime.GOARCH)
	if i.BuildDate != "" {
		fmt.Fprintf(&b, " BuildDate=%s", i.BuildDate)
	}
	return b.String()
}
