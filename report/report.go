// SPDX-License-Identifier: MIT

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fpassoc/experiment"
)

// Format selects the rendering.
type Format string

// Supported formats.
const (
	Text Format = "text"
	YAML Format = "yaml"
	JSON Format = "json"
)

// ErrUnknownFormat is returned for a format name other than text, yaml or json.
var ErrUnknownFormat = errors.New("report: unknown format")

// ParseFormat maps a case-insensitive name onto a Format. Empty means Text.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return Text, nil
	case Text, YAML, JSON:
		return f, nil
	default:
		return "", fmt.Errorf("ParseFormat: %q: %w", name, ErrUnknownFormat)
	}
}

// Options tune rendering. The zero value prints the plain text contract.
type Options struct {
	Format  Format
	Verbose bool // text only: deviation per trial, seed and a summary line
}

// Render writes rep to w in the requested format.
func Render(w io.Writer, rep experiment.Report, opts Options) error {
	switch opts.Format {
	case Text, "":
		return renderText(w, rep, opts.Verbose)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newDocument(rep)); err != nil {
			return fmt.Errorf("report: encode yaml: %w", err)
		}
		return enc.Close()
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(newDocument(rep)); err != nil {
			return fmt.Errorf("report: encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("Render: %q: %w", opts.Format, ErrUnknownFormat)
	}
}

// renderText writes:
//
//	Running tests (size: N, offset: X)
//
//	Expected output: X
//		1: r1
//		...
func renderText(w io.Writer, rep experiment.Report, verbose bool) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Running tests (size: %d, offset: %s)\n\n", rep.Size, FormatFloat(rep.Offset))
	if verbose && rep.Seed != nil {
		fmt.Fprintf(&b, "Seed: %d\n", *rep.Seed)
	}
	fmt.Fprintf(&b, "Expected output: %s\n", FormatFloat(rep.Expected))

	dev := rep.Deviations()
	for i, v := range rep.Results {
		if verbose {
			fmt.Fprintf(&b, "\t%d: %s (deviation: %s)\n", i+1, FormatFloat(v), FormatFloat(dev[i]))
			continue
		}
		fmt.Fprintf(&b, "\t%d: %s\n", i+1, FormatFloat(v))
	}
	if verbose {
		fmt.Fprintf(&b, "Distinct: %d/%d, spread: %s\n", rep.Distinct(), len(rep.Results), FormatFloat(rep.Spread()))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// FormatFloat prints the shortest representation that round-trips.
// Magnitudes in [1e-5, 1e15) are written in plain decimal, everything
// else in exponent form.
func FormatFloat(v float64) string {
	abs := math.Abs(v)
	if v == 0 || (abs >= 1e-5 && abs < 1e15) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
