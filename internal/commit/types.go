// SPDX-License-Identifier: AGPL-3.0-or-later

/*
validate-commit - validate-commit checks commit messages against the conventional commit header convention.
It parses the header line, applies the message rules, and reports the exact line and column of the first violation.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package commit parses and validates conventional commit messages.
//
// The entry points are ParseHeader for a single header line and
// ValidateMessage for a whole message. Both are pure and safe for
// concurrent use.
package commit

import "unicode/utf8"

// Type is the closed set of conventional commit types.
type Type int

const (
	Feat Type = iota + 1
	Fix
	Docs
	Style
	Refactor
	Perf
	Test
	Chore
)

var typeNames = [...]string{
	Feat:     "feat",
	Fix:      "fix",
	Docs:     "docs",
	Style:    "style",
	Refactor: "refactor",
	Perf:     "perf",
	Test:     "test",
	Chore:    "chore",
}

// Types returns every commit type in declaration order.
func Types() []Type {
	return []Type{Feat, Fix, Docs, Style, Refactor, Perf, Test, Chore}
}

// String returns the canonical lowercase token of the type.
func (t Type) String() string {
	if t < Feat || t > Chore {
		return ""
	}
	return typeNames[t]
}

// ParseType resolves a header token to its Type.
// Only the exact lowercase tokens are accepted.
func ParseType(s string) (Type, bool) {
	for _, t := range Types() {
		if typeNames[t] == s {
			return t, true
		}
	}
	return 0, false
}

// Header is the decomposed first line of a commit message.
type Header struct {
	Type Type
	// Scope is nil when the header has no parenthesized scope.
	// An empty scope "()" yields a non-nil pointer to "".
	Scope   *string
	Subject string
}

// String reassembles the header as "type(scope): subject" or "type: subject".
func (h Header) String() string {
	if h.Scope != nil {
		return h.Type.String() + "(" + *h.Scope + "): " + h.Subject
	}
	return h.Type.String() + ": " + h.Subject
}

// SubjectColumn is the character offset of the subject within the header line,
// autosquash prefix excluded.
func (h Header) SubjectColumn() int {
	col := utf8.RuneCountInString(h.Type.String())
	if h.Scope != nil {
		col += utf8.RuneCountInString(*h.Scope) + 2
	}
	return col + 2
}

// Message is a parsed commit message. Only the header is modelled.
type Message struct {
	Header Header
}
