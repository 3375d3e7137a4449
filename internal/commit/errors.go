// SPDX-License-Identifier: AGPL-3.0-or-later

package commit

import (
	"fmt"
	"strings"
)

// Kind identifies why a commit message was rejected.
type Kind int

const (
	NoColumn Kind = iota + 1
	EmptyCommitType
	InvalidCommitType
	MissingWhitespace
	EmptyCommitSubject
	MisplacedWhitespace
	MissingParenthesis
	NonEmptySecondLine
	LineTooLong
	CapitalizedFirstLetter
)

var kindCodes = [...]string{
	NoColumn:               "no-column",
	EmptyCommitType:        "empty-commit-type",
	InvalidCommitType:      "invalid-commit-type",
	MissingWhitespace:      "missing-whitespace",
	EmptyCommitSubject:     "empty-commit-subject",
	MisplacedWhitespace:    "misplaced-whitespace",
	MissingParenthesis:     "missing-parenthesis",
	NonEmptySecondLine:     "non-empty-second-line",
	LineTooLong:            "line-too-long",
	CapitalizedFirstLetter: "capitalized-first-letter",
}

// String returns the stable kebab-case code of the kind (e.g. "no-column").
func (k Kind) String() string {
	if k < NoColumn || k > CapitalizedFirstLetter {
		return "unknown"
	}
	return kindCodes[k]
}

func (k Kind) describe(limit int) string {
	switch k {
	case NoColumn:
		return "first line must contain a column"
	case EmptyCommitType:
		return "empty commit type"
	case InvalidCommitType:
		return "invalid commit type"
	case MissingWhitespace:
		return "the column must be followed by a space"
	case EmptyCommitSubject:
		return "empty commit subject"
	case MisplacedWhitespace:
		return "misplaced whitespace"
	case MissingParenthesis:
		return "missing parenthesis"
	case NonEmptySecondLine:
		return "second line must be empty"
	case LineTooLong:
		return fmt.Sprintf("line must not be longer than %d characters", limit)
	case CapitalizedFirstLetter:
		return "first letter of subject must not be capitalized"
	default:
		return "invalid commit message"
	}
}

func (k Kind) at(line string, column int) *FormatError {
	return &FormatError{Kind: k, Span: &Span{Line: line, Column: column}}
}

func (k Kind) unpositioned() *FormatError {
	return &FormatError{Kind: k}
}

// Sentinels for errors.Is. They match any FormatError of the same kind.
var (
	ErrNoColumn               error = NoColumn.unpositioned()
	ErrEmptyCommitType        error = EmptyCommitType.unpositioned()
	ErrInvalidCommitType      error = InvalidCommitType.unpositioned()
	ErrMissingWhitespace      error = MissingWhitespace.unpositioned()
	ErrEmptyCommitSubject     error = EmptyCommitSubject.unpositioned()
	ErrMisplacedWhitespace    error = MisplacedWhitespace.unpositioned()
	ErrMissingParenthesis     error = MissingParenthesis.unpositioned()
	ErrNonEmptySecondLine     error = NonEmptySecondLine.unpositioned()
	ErrLineTooLong            error = LineTooLong.unpositioned()
	ErrCapitalizedFirstLetter error = CapitalizedFirstLetter.unpositioned()
)

// Span locates a fault in the validated text.
type Span struct {
	Line string
	// LineNumber is 1-based; 0 when the fault came from ParseHeader directly.
	LineNumber int
	// Column is a character offset into Line.
	Column int
}

// String renders the line followed by a caret under Column.
func (s Span) String() string {
	return s.Line + "\n" + strings.Repeat(" ", s.Column) + "^"
}

// FormatError is a rule violation, optionally positioned.
type FormatError struct {
	Kind Kind
	// Limit is only set for LineTooLong.
	Limit int
	Span  *Span
}

// Message is the one-line description of the fault without position.
func (e *FormatError) Message() string {
	return e.Kind.describe(e.Limit)
}

func (e *FormatError) Error() string {
	msg := e.Message()
	if e.Span == nil {
		return msg
	}
	if e.Span.LineNumber > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Span.LineNumber, msg)
	}
	return msg + "\n" + e.Span.String()
}

// Is reports whether target is a FormatError of the same kind.
func (e *FormatError) Is(target error) bool {
	t, ok := target.(*FormatError)
	return ok && t.Kind == e.Kind
}

func (e *FormatError) onLine(n int) *FormatError {
	if e.Span != nil {
		e.Span.LineNumber = n
	}
	return e
}

// IOKind identifies which file access step failed.
type IOKind int

const (
	OpenFileFailed IOKind = iota + 1
	ReadFailed
)

func (k IOKind) String() string {
	switch k {
	case OpenFileFailed:
		return "open-file-failed"
	case ReadFailed:
		return "read-failed"
	default:
		return "unknown"
	}
}

// IOError reports that the commit message could not be read at all.
type IOError struct {
	Kind IOKind
	Path string
	Err  error
}

func (e *IOError) Error() string {
	switch e.Kind {
	case OpenFileFailed:
		return fmt.Sprintf("opening commit file %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("reading commit file %s: %v", e.Path, e.Err)
	}
}

func (e *IOError) Unwrap() error { return e.Err }
