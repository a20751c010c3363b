package ui

import (
	"os"

	"golang.org/x/term"
)

// Mode selects how reports are rendered.
type Mode int

const (
	// ModePlain is used for CI/CD pipelines, scripts, and redirected output.
	ModePlain Mode = iota
	// ModeStyled is used when a human is reading the terminal.
	ModeStyled
)

// DetectMode determines whether reports written to out should be styled.
//
// Returns ModePlain if:
//   - OMARCHIVE_PLAIN=1 is set
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set (accessibility/automation indicator)
//   - out is not a terminal
//
// Returns ModeStyled otherwise.
func DetectMode(out *os.File) Mode {
	if os.Getenv("OMARCHIVE_PLAIN") == "1" {
		return ModePlain
	}
	if os.Getenv("CI") != "" {
		return ModePlain
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModePlain
	}
	if out == nil || !term.IsTerminal(int(out.Fd())) {
		return ModePlain
	}
	return ModeStyled
}
