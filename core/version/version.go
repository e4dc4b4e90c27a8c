// Package version returns build version information.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Version records build version information.
type Version struct {
	Version string    `json:"version"`
	Commit  string    `json:"commit"`
	Date    time.Time `json:"date"`
	Dirty   bool      `json:"dirty"`
}

func (v Version) String() string {
	return v.Version
}

// V contains version information of the running binary.
var V = Version{
	Version: "development",
	Commit:  "unknown",
	Dirty:   true,
}

func init() {
	if bi, ok := debug.ReadBuildInfo(); ok {
		V = fromBuildInfo(bi)
	}
}

func fromBuildInfo(bi *debug.BuildInfo) (v Version) {
	v = Version{
		Version: "development",
		Commit:  "unknown",
		Dirty:   true,
	}
	if mv := bi.Main.Version; mv != "" && mv != "(devel)" {
		v.Version = mv
	}

	bs := map[string]string{}
	for _, kv := range bi.Settings {
		bs[kv.Key] = kv.Value
	}
	dt, e := time.Parse(time.RFC3339, bs["vcs.time"])
	if bs["vcs"] != "git" || len(bs["vcs.revision"]) != 40 || e != nil {
		return v
	}

	v.Commit = bs["vcs.revision"]
	v.Date = dt
	v.Dirty = bs["vcs.modified"] == "true"
	if v.Version == "development" {
		dirtySuffix := ""
		if v.Dirty {
			dirtySuffix = "-dirty"
		}
		v.Version = fmt.Sprintf("v0.0.0-%s-%s%s", v.Date.UTC().Format("20060102150405"), v.Commit[:12], dirtySuffix)
	}
	return v
}
