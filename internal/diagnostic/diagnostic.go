// Package diagnostic renders the outcome of checking one or more paths in
// text, JSON, or YAML, with optional ANSI colorization of the text form.
package diagnostic

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	saddle "github.com/radbuglet/saddle-go"
	"github.com/radbuglet/saddle-go/internal/run"
)

// Verdict is the serializable outcome of checking a single path.
type Verdict struct {
	Path    string `json:"path" yaml:"path"`
	Success bool   `json:"success" yaml:"success"`
	Kind    string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// FromResult converts a run.Result into its serializable form.
func FromResult(r run.Result) Verdict {
	if r.Err == nil {
		return Verdict{Path: r.Path, Success: true}
	}

	var serr *saddle.Error
	if errors.As(r.Err, &serr) {
		return Verdict{Path: r.Path, Success: false, Kind: serr.Kind.String(), Message: serr.Error()}
	}
	return Verdict{Path: r.Path, Success: false, Kind: "IoFailure", Message: r.Err.Error()}
}

// RenderText writes one human-readable line (or diagnostic block) per
// verdict, colorized unless useColor is false.
func RenderText(w io.Writer, verdicts []Verdict, useColor bool) error {
	success := color.New(color.FgGreen).SprintFunc()
	failure := color.New(color.FgRed, color.Bold).SprintFunc()
	kindLabel := color.New(color.FgYellow).SprintFunc()

	if !useColor {
		success = fmt.Sprint
		failure = fmt.Sprint
		kindLabel = fmt.Sprint
	}

	for _, v := range verdicts {
		if v.Success {
			if _, err := fmt.Fprintf(w, "%s: %s\n", v.Path, success("binary is valid")); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s: %s (%s)\n%s\n", v.Path, failure("invalid"), kindLabel(v.Kind), v.Message); err != nil {
			return err
		}
	}
	return nil
}

// RenderJSON writes verdicts as a JSON array.
func RenderJSON(w io.Writer, verdicts []Verdict) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(verdicts)
}

// RenderYAML writes verdicts as a YAML sequence.
func RenderYAML(w io.Writer, verdicts []Verdict) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(verdicts)
}

// ExitCode maps a Kind name to the process exit code cmd/saddlecheck uses
// to report it, so scripts invoking the CLI can branch on failure class
// without parsing the diagnostic text.
func ExitCode(kind string) int {
	switch kind {
	case "":
		return 0
	case "IoFailure":
		return 2
	case "Malformed":
		return 3
	case "NoDirectives":
		return 4
	case "Cycle":
		return 5
	case "BorrowConflict":
		return 6
	default:
		return 1
	}
}
