// SPDX-License-Identifier: AGPL-3.0-or-later

/*
validate-commit - validate-commit checks commit messages against the conventional commit header convention.
It parses the header line, applies the message rules, and reports the exact line and column of the first violation.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package history audits the commit messages of an existing history.
package history

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bartekus/validate-commit/internal/commit"
	"github.com/bartekus/validate-commit/internal/diagnostic"
	"github.com/bartekus/validate-commit/internal/projection"
)

// CommitMetadata represents a single commit's metadata.
type CommitMetadata struct {
	SHA         string
	Message     string
	AuthorName  string
	AuthorEmail string
}

// Source provides commit history for analysis.
type Source interface {
	Commits(ctx context.Context) ([]CommitMetadata, error)
}

// Finding is a commit whose message was rejected.
type Finding struct {
	SHA               string `json:"sha" yaml:"sha"`
	Author            string `json:"author" yaml:"author"`
	Subject           string `json:"subject" yaml:"subject"`
	diagnostic.Report `yaml:",inline"`
}

// Report summarizes an audit. Findings keep the order of the source.
type Report struct {
	Total    int       `json:"total" yaml:"total"`
	Valid    int       `json:"valid" yaml:"valid"`
	Bypassed int       `json:"bypassed" yaml:"bypassed"`
	Findings []Finding `json:"findings" yaml:"findings"`
}

// OK reports whether every audited message was accepted.
func (r *Report) OK() bool {
	return len(r.Findings) == 0
}

// Analyze validates the message of every commit returned by src.
func Analyze(ctx context.Context, src Source) (*Report, error) {
	commits, err := src.Commits(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading commit history: %w", err)
	}

	report := &Report{Total: len(commits), Findings: []Finding{}}
	for _, c := range commits {
		if err := commit.ValidateMessage(c.Message); err != nil {
			report.Findings = append(report.Findings, Finding{
				SHA:     c.SHA,
				Author:  c.AuthorName,
				Subject: subjectLine(c.Message),
				Report:  diagnostic.FromError(err),
			})
			continue
		}
		report.Valid++
		if commit.Bypassed(c.Message) {
			report.Bypassed++
		}
	}
	return report, nil
}

// Table renders the findings as a Markdown table.
func (r *Report) Table() string {
	rows := make([][]string, 0, len(r.Findings))
	for _, f := range r.Findings {
		col := "-"
		if f.Column != nil {
			col = strconv.Itoa(*f.Column)
		}
		rows = append(rows, []string{
			shortSHA(f.SHA),
			strconv.Itoa(f.Line),
			col,
			f.Kind,
			escapeCell(f.Subject),
		})
	}
	return projection.RenderTable([]string{"Commit", "Line", "Column", "Kind", "Subject"}, rows)
}

func subjectLine(message string) string {
	lines := commit.Lines(message)
	if len(lines) == 0 {
		return ""
	}
	return lines[0]
}

func shortSHA(sha string) string {
	if len(sha) > 8 {
		return sha[:8]
	}
	return sha
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
