// SPDX-License-Identifier: AGPL-3.0-or-later

package commit

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// autosquashPrefixes are prepended by `git commit --fixup/--squash`.
var autosquashPrefixes = []string{"fixup! ", "squash! "}

func stripAutosquash(line string) string {
	for _, p := range autosquashPrefixes {
		if rest, ok := strings.CutPrefix(line, p); ok {
			return rest
		}
	}
	return line
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// ParseHeader decomposes a header line into type, scope and subject.
//
// A leading autosquash prefix is dropped first; every position reported in
// the returned *FormatError refers to the stripped line, which is also the
// line carried by its Span.
func ParseHeader(line string) (Header, error) {
	line = stripAutosquash(line)

	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		return Header{}, NoColumn.at(line, runeLen(line))
	}

	typ, scope, err := splitTypeAndScope(line, line[:colon])
	if err != nil {
		return Header{}, err
	}

	commitType, ok := ParseType(typ)
	if !ok {
		return Header{}, InvalidCommitType.at(line, 0)
	}

	rest := line[colon+1:]
	if !strings.HasPrefix(rest, " ") {
		return Header{}, MissingWhitespace.at(line, runeLen(line[:colon+1]))
	}

	subjectCol := runeLen(line[:colon+2])
	subject := rest[1:]
	if subject == "" {
		return Header{}, EmptyCommitSubject.at(line, subjectCol)
	}
	if subject != strings.TrimSpace(subject) {
		col := subjectCol
		if r, _ := utf8.DecodeRuneInString(subject); !unicode.IsSpace(r) {
			col += runeLen(strings.TrimRightFunc(subject, unicode.IsSpace))
		}
		return Header{}, MisplacedWhitespace.at(line, col)
	}

	return Header{Type: commitType, Scope: scope, Subject: subject}, nil
}

// splitTypeAndScope splits the text before the colon into the type token and
// the optional scope. Offsets in seg and line coincide since seg is a prefix.
func splitTypeAndScope(line, seg string) (string, *string, error) {
	if seg == "" {
		return "", nil, EmptyCommitType.unpositioned()
	}

	first, _ := utf8.DecodeRuneInString(seg)
	if unicode.IsSpace(first) {
		return "", nil, MisplacedWhitespace.at(line, 0)
	}

	last, _ := utf8.DecodeLastRuneInString(seg)
	lastCol := runeLen(seg) - 1
	if unicode.IsSpace(last) {
		return "", nil, MisplacedWhitespace.at(line, lastCol)
	}

	if last != ')' {
		return seg, nil, nil
	}

	open := strings.IndexByte(seg, '(')
	if open < 0 {
		return "", nil, MissingParenthesis.at(line, lastCol)
	}
	scope := seg[open+1 : len(seg)-1]
	return seg[:open], &scope, nil
}
