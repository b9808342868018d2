// Package detector picks how a launch is displayed.
package detector

import (
	"os"
	"strings"

	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// OutputMode is how relayed BuildTools output is displayed.
type OutputMode int

const (
	// ModeAuto picks ModeTUI on an interactive terminal and ModeLinear otherwise.
	ModeAuto OutputMode = iota
	// ModeTUI shows the interactive log view.
	ModeTUI
	// ModeLinear prints lines to stdout as they arrive.
	ModeLinear
)

// String returns the flag spelling of the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeTUI:
		return "tui"
	case ModeLinear:
		return "linear"
	default:
		return "auto"
	}
}

// ParseMode resolves a flag value. "ci" is accepted as an alias of "linear".
func ParseMode(s string) (OutputMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ModeAuto, nil
	case "tui":
		return ModeTUI, nil
	case "linear", "ci":
		return ModeLinear, nil
	default:
		return ModeAuto, zerr.With(zerr.New("unknown output mode"), "mode", s)
	}
}

// DetectEnvironment returns ModeLinear when stdout is not a terminal or CI is set.
func DetectEnvironment() OutputMode {
	if isCI() || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModeLinear
	}
	return ModeTUI
}

// Resolve turns ModeAuto into a concrete mode using detect.
func Resolve(requested OutputMode, detect func() OutputMode) OutputMode {
	if requested != ModeAuto {
		return requested
	}
	return detect()
}

func isCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}
