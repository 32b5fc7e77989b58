// Package config resolves the page configuration from environment variables.
//
// Every resolver falls back to a default instead of failing: an unknown
// ENVIRONMENT becomes development, a missing VERSION falls back to the sidecar
// VERSION file and then to "dev".
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Environment is the deployment stage the service runs in.
type Environment string

const (
	Development Environment = "development"
	UAT         Environment = "uat"
	Production  Environment = "production"
)

const (
	DefaultAppName = "Hello World Streamlit"
	DefaultVersion = "dev"

	// VersionFileName is the sidecar file consulted when VERSION is unset.
	VersionFileName = "VERSION"
)

// Config is an immutable snapshot of the page configuration. Build it once
// with Load and pass it by value.
type Config struct {
	Environment Environment `yaml:"environment"`
	AppName     string      `yaml:"app_name"`
	Version     string      `yaml:"version"`
	GitCommit   string      `yaml:"git_commit"`
	GitHubRepo  string      `yaml:"github_repo"`
}

// Load resolves every setting from p. log receives diagnostics about
// fallbacks; none of them are errors.
func Load(p Provider, log logrus.FieldLogger) Config {
	return Config{
		Environment: ResolveEnvironment(p),
		AppName:     ResolveAppName(p),
		Version:     ResolveVersion(p, log),
		GitCommit:   ResolveGitCommit(p),
		GitHubRepo:  ResolveGitHubRepo(p),
	}
}

// ResolveEnvironment reads ENVIRONMENT case-insensitively. Anything other than
// the three known stages resolves to Development.
func ResolveEnvironment(p Provider) Environment {
	return ParseEnvironment(lookupOr(p, "ENVIRONMENT", string(Development)))
}

// ParseEnvironment maps s onto a known Environment, defaulting to Development.
func ParseEnvironment(s string) Environment {
	switch env := Environment(strings.ToLower(s)); env {
	case Development, UAT, Production:
		return env
	default:
		return Development
	}
}

// ResolveAppName reads APP_NAME. Only an unset variable yields DefaultAppName.
func ResolveAppName(p Provider) string {
	return lookupOr(p, "APP_NAME", DefaultAppName)
}

// ResolveVersion reads VERSION, then the version file, then returns
// DefaultVersion. The version file path comes from VERSION_FILE when set,
// otherwise it sits beside the executable.
func ResolveVersion(p Provider, log logrus.FieldLogger) string {
	if v, _ := p.Lookup("VERSION"); v != "" {
		return v
	}
	path, ok := p.Lookup("VERSION_FILE")
	if !ok || path == "" {
		path = defaultVersionFile()
	}
	if v := readVersionFile(path, log); v != "" {
		return v
	}
	return DefaultVersion
}

// ResolveGitCommit reads GIT_COMMIT.
func ResolveGitCommit(p Provider) string {
	return lookupOr(p, "GIT_COMMIT", "")
}

// ResolveGitHubRepo reads GITHUB_REPO.
func ResolveGitHubRepo(p Provider) string {
	return lookupOr(p, "GITHUB_REPO", "")
}

// readVersionFile returns the trimmed file contents, or "" on any read error.
func readVersionFile(path string, log logrus.FieldLogger) string {
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.WithFields(logrus.Fields{"path": path, "error": err}).Debug("version file not readable")
		return ""
	}
	return strings.TrimSpace(string(data))
}

func defaultVersionFile() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Join(filepath.Dir(exe), VersionFileName)
}

func (c Config) IsDevelopment() bool { return c.Environment == Development }
func (c Config) IsUAT() bool         { return c.Environment == UAT }
func (c Config) IsProduction() bool  { return c.Environment == Production }

// CommitURL links GitCommit inside GitHubRepo. It is empty unless both are set.
// A trailing ".git" on the repository URL is dropped.
func (c Config) CommitURL() string {
	if c.GitHubRepo == "" || c.GitCommit == "" {
		return ""
	}
	return strings.TrimSuffix(c.GitHubRepo, ".git") + "/commit/" + c.GitCommit
}

// Snapshot is Config plus its derived values, for display and export.
type Snapshot struct {
	Config        `yaml:",inline"`
	IsDevelopment bool   `yaml:"is_development"`
	IsUAT         bool   `yaml:"is_uat"`
	IsProduction  bool   `yaml:"is_production"`
	CommitURL     string `yaml:"commit_url"`
}

// Snapshot expands c with its derived flags and commit URL.
func (c Config) Snapshot() Snapshot {
	return Snapshot{
		Config:        c,
		IsDevelopment: c.IsDevelopment(),
		IsUAT:         c.IsUAT(),
		IsProduction:  c.IsProduction(),
		CommitURL:     c.CommitURL(),
	}
}
