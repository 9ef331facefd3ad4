// Package compileinfo reports which commit a binary was built from, so that
// figures can be traced back to the code that drew them.
package compileinfo

import (
	"fmt"
	"os"
	"path"
	"runtime/debug"
)

type CompileInfo struct {
	Package    string
	GoVersion  string
	Commit     string
	CommitTime string
	Modified   bool
}

func (c CompileInfo) String() string {
	if c.Package == "" {
		return "No build information is embedded in this binary."
	}

	mod := ""
	if c.Modified {
		mod = " (with uncommitted changes)"
	}

	commit := c.Commit
	if commit == "" {
		commit = "unknown"
	}

	return fmt.Sprintf("%s built with %s from commit %s%s at %s.", path.Base(c.Package), c.GoVersion, commit, mod, c.CommitTime)
}

// FromBuildInfo extracts the fields we report from runtime build info.
func FromBuildInfo(z *debug.BuildInfo) CompileInfo {
	out := CompileInfo{}
	if z == nil {
		return out
	}

	out.GoVersion = z.GoVersion
	out.Package = z.Path
	for _, s := range z.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.CommitTime = s.Value
		case "vcs.modified":
			out.Modified = s.Value == "true"
		}
	}

	return out
}

func Get() CompileInfo {
	z, ok := debug.ReadBuildInfo()
	if !ok {
		return CompileInfo{}
	}

	return FromBuildInfo(z)
}

func PrintToStdErr() {
	fmt.Fprintln(os.Stderr, Get())
}
