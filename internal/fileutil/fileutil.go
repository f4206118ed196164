package fileutil

import (
	"errors"
	"fmt"
	"os"
)

// ErrFileAccess is returned when a source or destination file cannot be used
var ErrFileAccess = errors.New("file access error")

// WriteFile writes data to path, creating or truncating it. Failures wrap
// ErrFileAccess.
func WriteFile(path string, data []byte) error {
	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", ErrFileAccess, path, err)
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrFileAccess, path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %v", ErrFileAccess, path, err)
	}
	return nil
}

// ReadFile reads path. Failures wrap ErrFileAccess.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrFileAccess, path, err)
	}
	return data, nil
}
