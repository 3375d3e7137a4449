// SPDX-License-Identifier: AGPL-3.0-or-later

package commit

import (
	"io"
	"os"
)

// ValidateFile reads the commit message stored at path and validates it.
// Failures to open or read the file are returned as *IOError.
func ValidateFile(path string) error {
	text, err := ReadFile(path)
	if err != nil {
		return err
	}
	return ValidateMessage(text)
}

// ValidateReader validates the message read from r. name identifies the
// source in *IOError values.
func ValidateReader(r io.Reader, name string) error {
	text, err := ReadMessage(r, name)
	if err != nil {
		return err
	}
	return ValidateMessage(text)
}

// ReadFile returns the commit message stored at path.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // G304: the path is the hook argument
	if err != nil {
		return "", &IOError{Kind: OpenFileFailed, Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	return ReadMessage(f, path)
}

// ReadMessage returns everything read from r as a message.
func ReadMessage(r io.Reader, name string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", &IOError{Kind: ReadFailed, Path: name, Err: err}
	}
	return string(data), nil
}
