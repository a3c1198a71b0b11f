package version

import (
	"encoding/json"
	"runtime"
	"runtime/debug"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Info describes the running binary
type Info struct {
	Name      string `json:"name" yaml:"name"`
	Version   string `json:"version" yaml:"version"`
	Compiler  string `json:"compiler" yaml:"compiler"`
	Tag       string `json:"tag,omitempty" yaml:"tag,omitempty"`
	Branch    string `json:"branch,omitempty" yaml:"branch,omitempty"`
	Source    string `json:"source,omitempty" yaml:"source,omitempty"`
	Hash      string `json:"hash,omitempty" yaml:"hash,omitempty"`
	BuildTime string `json:"build_time,omitempty" yaml:"build_time,omitempty"`
	Modified  bool   `json:"modified,omitempty" yaml:"modified,omitempty"`
	Platform  string `json:"platform,omitempty" yaml:"platform,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Set with -ldflags "-X github.com/mutablelogic/go-news/pkg/version.GitTag=..."
var (
	GitTag    string
	GitBranch string
)

const (
	shortHash = 12
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Version returns the tag, branch or short revision of the binary, or "dev"
func Version() string {
	return Get("").Version
}

// Get returns build information for the named executable
func Get(execName string) Info {
	info := Info{
		Name:     execName,
		Compiler: runtime.Version(),
		Tag:      GitTag,
		Branch:   GitBranch,
	}

	var goos, goarch string
	if build, ok := debug.ReadBuildInfo(); ok {
		info.Source = build.Main.Path
		for _, s := range build.Settings {
			switch s.Key {
			case "vcs.revision":
				info.Hash = s.Value
			case "vcs.time":
				info.BuildTime = s.Value
			case "vcs.modified":
				info.Modified = s.Value == "true"
			case "GOOS":
				goos = s.Value
			case "GOARCH":
				goarch = s.Value
			}
		}
	}
	if goos != "" && goarch != "" {
		info.Platform = goos + "/" + goarch
	}

	// Prefer the ldflags values over the revision
	switch {
	case info.Tag != "":
		info.Version = info.Tag
	case info.Branch != "":
		info.Version = info.Branch
	case len(info.Hash) > shortHash:
		info.Version = info.Hash[:shortHash]
	case info.Hash != "":
		info.Version = info.Hash
	default:
		info.Version = "dev"
	}
	return info
}

// JSON returns the build information as indented JSON
func JSON(execName string) []byte {
	data, err := json.MarshalIndent(Get(execName), "", "  ")
	if err != nil {
		panic(err)
	}
	return data
}
