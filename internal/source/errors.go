package source

import (
	"errors"
	"io/fs"
)

var (
	// ErrNotFound reports a document that does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrPermission reports a document that cannot be read.
	ErrPermission = errors.New("permission denied")
	// ErrUnsupportedURI reports a uri whose scheme has no reader.
	ErrUnsupportedURI = errors.New("unsupported uri")
)

// classify maps an os error onto the package sentinels, keeping the cause.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return errors.Join(ErrNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return errors.Join(ErrPermission, err)
	default:
		return err
	}
}
