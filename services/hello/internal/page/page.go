// Package page renders the greeting page onto a Surface.
//
// Rendering is a single linear pass over an immutable config.Config. Text,
// captions and alerts carry inline markdown; the Surface decides how to
// display it.
package page

import (
	"strings"

	"github.com/jredh-dev/hello/services/hello/config"
)

// AlertKind selects the styling of an alert region.
type AlertKind string

const (
	AlertInfo    AlertKind = "info"
	AlertWarning AlertKind = "warning"
	AlertSuccess AlertKind = "success"
)

const (
	Icon    = "👋"
	Layout  = "centered"
	Title   = "👋 Hello World!"
	Welcome = "Welcome to the Hello World Streamlit application!"

	shortCommitLen = 7
)

// Meta describes the browser-level page settings.
type Meta struct {
	Title  string
	Icon   string
	Layout string
}

// Surface is the display toolkit the page is drawn on.
type Surface interface {
	SetMeta(Meta)
	Title(text string)
	Subheader(text string)
	Text(markdown string)
	Alert(kind AlertKind, text string)
	Divider()
	Caption(markdown string)
}

// Render draws the page for cfg onto s in a fixed order: title, app name,
// environment line, welcome line, environment alert and, when there is
// anything to show, a divider followed by the version footer.
func Render(cfg config.Config, s Surface) {
	s.SetMeta(Meta{Title: cfg.AppName, Icon: Icon, Layout: Layout})
	s.Title(Title)
	s.Subheader(cfg.AppName)
	s.Text("**Environment:** " + strings.ToUpper(string(cfg.Environment)))
	s.Text(Welcome)

	if kind, text := EnvironmentMessage(cfg); kind != "" {
		s.Alert(kind, text)
	}

	if footer := FormatVersionFooter(cfg); footer != "" {
		s.Divider()
		s.Caption(footer)
	}
}

// EnvironmentMessage returns the alert for the configured environment. A
// Config whose Environment is none of the known stages gets no alert, reported
// as an empty kind.
func EnvironmentMessage(cfg config.Config) (AlertKind, string) {
	switch {
	case cfg.IsDevelopment():
		return AlertInfo, "🔧 Running in Development mode"
	case cfg.IsUAT():
		return AlertWarning, "🧪 Running in UAT mode"
	case cfg.IsProduction():
		return AlertSuccess, "🚀 Running in Production mode"
	default:
		return "", ""
	}
}

// FormatVersionFooter builds the "Version | Commit" caption. It returns ""
// when neither a version nor a commit is configured. The commit is shortened
// to seven characters and linked to cfg.CommitURL when one is available.
func FormatVersionFooter(cfg config.Config) string {
	var parts []string
	if cfg.Version != "" {
		parts = append(parts, "**Version:** "+cfg.Version)
	}
	if cfg.GitCommit != "" {
		short := ShortCommit(cfg.GitCommit)
		if url := cfg.CommitURL(); url != "" {
			parts = append(parts, "**Commit:** ["+short+"]("+url+")")
		} else {
			parts = append(parts, "**Commit:** "+short)
		}
	}
	return strings.Join(parts, " | ")
}

// ShortCommit returns the first seven characters of sha, or sha itself when
// it is shorter. Characters are counted as runes.
func ShortCommit(sha string) string {
	if r := []rune(sha); len(r) > shortCommitLen {
		return string(r[:shortCommitLen])
	}
	return sha
}
