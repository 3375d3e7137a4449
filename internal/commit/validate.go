// SPDX-License-Identifier: AGPL-3.0-or-later

package commit

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxLineLength is the longest line, in characters, a message may contain.
const MaxLineLength = 100

// bypassPrefixes mark generated or in-progress messages that skip validation.
var bypassPrefixes = []string{"Merge ", "WIP"}

// scissorsLine is the marker git writes above the diff of `git commit -v`.
// Everything from it to the end of the message is discarded.
const scissorsLine = "# ------------------------ >8 ------------------------"

// Lines splits a message into lines and drops comment lines starting with '#'.
// A trailing newline does not produce an empty last line and a trailing '\r'
// is removed from every line. Lines from the scissors marker on are dropped.
func Lines(input string) []string {
	var lines []string
	for _, line := range rawLines(input) {
		if line == scissorsLine {
			break
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// DroppedLines returns how many lines of input Lines discards.
func DroppedLines(input string) int {
	return len(rawLines(input)) - len(Lines(input))
}

func rawLines(input string) []string {
	input = strings.TrimSuffix(input, "\n")
	if input == "" {
		return nil
	}
	lines := strings.Split(input, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Bypassed reports whether the message is exempt from validation because its
// first non-comment line is a merge or work-in-progress marker.
func Bypassed(input string) bool {
	lines := Lines(input)
	return len(lines) > 0 && isBypassLine(lines[0])
}

func isBypassLine(line string) bool {
	for _, p := range bypassPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// ValidateMessage checks a whole commit message and returns the first
// violation found, or nil. Rule violations are *FormatError values whose Span
// line numbers count non-comment lines starting at 1.
func ValidateMessage(input string) error {
	_, err := parseMessage(input)
	return err
}

// ParseMessage validates input like ValidateMessage and returns the parsed
// message. Bypassed messages yield ok == false and a nil error.
func ParseMessage(input string) (msg Message, ok bool, err error) {
	m, err := parseMessage(input)
	if err != nil || m == nil {
		return Message{}, false, err
	}
	return *m, true, nil
}

func parseMessage(input string) (*Message, error) {
	lines := Lines(input)

	if len(lines) > 0 && isBypassLine(lines[0]) {
		return nil, nil
	}

	if len(lines) > 1 && lines[1] != "" {
		return nil, NonEmptySecondLine.at(lines[1], 0).onLine(2)
	}

	var first string
	if len(lines) > 0 {
		first = lines[0]
	}

	header, err := ParseHeader(first)
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			fe.onLine(1)
		}
		return nil, err
	}

	for i, line := range lines {
		if runeLen(line) > MaxLineLength {
			fe := LineTooLong.at(line, MaxLineLength).onLine(i + 1)
			fe.Limit = MaxLineLength
			return nil, fe
		}
	}

	if r, _ := utf8.DecodeRuneInString(header.Subject); unicode.IsUpper(r) {
		return nil, CapitalizedFirstLetter.at(stripAutosquash(first), header.SubjectColumn()).onLine(1)
	}

	return &Message{Header: header}, nil
}
