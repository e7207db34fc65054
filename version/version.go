package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

// Set at build time via -ldflags.
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// Info describes the running binary. It is printed by `voicerouter version`
// and reported on the receiver's /health endpoint.
type Info struct {
	Version   string     `json:"version"`
	Commit    string     `json:"commit,omitempty"`
	BuildTime *time.Time `json:"build_time,omitempty"`
	GoVersion string     `json:"go_version"`
	Platform  string     `json:"platform"`
	Dirty     bool       `json:"dirty,omitempty"`
}

// Get collects the stamped values, filling gaps from the embedded build info.
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    shortCommit(Commit),
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if t, ok := parseTime(BuildTime); ok {
		info.BuildTime = &t
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = shortCommit(s.Value)
			}
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		case "vcs.time":
			if info.BuildTime == nil {
				if t, ok := parseTime(s.Value); ok {
					info.BuildTime = &t
				}
			}
		}
	}
	return info
}

// Short renders "version[-commit][-dirty]".
func (i Info) Short() string {
	s := i.Version
	if i.Commit != "" {
		s += "-" + i.Commit
	}
	if i.Dirty {
		s += "-dirty"
	}
	return s
}

// String renders the one-line banner used by the CLI.
func (i Info) String() string {
	s := fmt.Sprintf("voicerouter %s (%s, %s)", i.Short(), i.GoVersion, i.Platform)
	if i.BuildTime != nil {
		s += " built " + i.BuildTime.UTC().Format(time.RFC3339)
	}
	return s
}

func shortCommit(c string) string {
	if len(c) > 7 {
		return c[:7]
	}
	return c
}

func parseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
