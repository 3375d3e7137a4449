// SPDX-License-Identifier: AGPL-3.0-or-later

/*
validate-commit - validate-commit checks commit messages against the conventional commit header convention.
It parses the header line, applies the message rules, and reports the exact line and column of the first violation.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package diagnostic turns validation errors into user-facing output:
// caret-annotated text for terminals, or JSON/YAML reports for tooling.
package diagnostic

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/bartekus/validate-commit/internal/commit"
)

// Format selects how results are written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be 'text', 'json' or 'yaml')", s)
	}
}

// Report is the serializable outcome of validating one message.
type Report struct {
	Valid   bool   `json:"valid" yaml:"valid"`
	Kind    string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
	Line    int    `json:"line,omitempty" yaml:"line,omitempty"`
	// Column is nil for faults without a position; 0 is a valid column.
	Column *int   `json:"column,omitempty" yaml:"column,omitempty"`
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
}

// FromError builds the report for a validation result. A nil error is a
// valid report.
func FromError(err error) Report {
	if err == nil {
		return Report{Valid: true}
	}

	var fe *commit.FormatError
	if errors.As(err, &fe) {
		r := Report{Kind: fe.Kind.String(), Message: fe.Message()}
		if fe.Span != nil {
			col := fe.Span.Column
			r.Line = fe.Span.LineNumber
			r.Column = &col
			r.Source = fe.Span.Line
		}
		return r
	}

	var ioErr *commit.IOError
	if errors.As(err, &ioErr) {
		return Report{Kind: ioErr.Kind.String(), Message: err.Error()}
	}

	return Report{Kind: "error", Message: err.Error()}
}

// Encode writes v as an indented JSON or YAML document.
func Encode(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		data = append(data, '\n')
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("writing JSON output: %w", err)
		}
		return nil

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()

	default:
		return fmt.Errorf("format %s is not a structured format", format)
	}
}

var errorPrefix = color.New(color.FgRed, color.Bold)

// WriteText writes err as "error: <rendered error>" with a colored prefix.
// Color follows color.NoColor.
func WriteText(w io.Writer, err error) error {
	if _, werr := errorPrefix.Fprint(w, "error: "); werr != nil {
		return werr
	}
	_, werr := fmt.Fprintln(w, err)
	return werr
}
