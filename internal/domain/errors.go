// Path: internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrCatalogNotReady is returned when the catalog is read before the initial load finished.
	ErrCatalogNotReady = errors.New("catalog not loaded")
	// ErrAlreadyLoaded is returned when the catalog is populated a second time.
	ErrAlreadyLoaded = errors.New("catalog already loaded")
	// ErrUnexpectedStatus is wrapped when the remote API answers with a non-200 status.
	ErrUnexpectedStatus = errors.New("unexpected status code")
	// ErrNotFound is wrapped when the remote API answers 404.
	ErrNotFound = errors.New("pokemon not found")
)

// LoadError reports a failed startup batch load. Any single failing fetch
// fails the whole batch.
type LoadError struct {
	Op  string // "list" or "record"
	URL string
	Err error
}

func (e *LoadError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("load %s %s: %v", e.Op, e.URL, e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Op, e.Err)
}

// Unwrap returns the wrapped error.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// DetailFetchError reports a failed on-demand detail fetch.
type DetailFetchError struct {
	ID  int
	Err error
}

func (e *DetailFetchError) Error() string {
	return fmt.Sprintf("fetch detail for pokemon %d: %v", e.ID, e.Err)
}

// Unwrap returns the wrapped error.
func (e *DetailFetchError) Unwrap() error {
	return e.Err
}

// IsLoadError reports whether err is, or wraps, a LoadError.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}

// IsDetailFetchError reports whether err is, or wraps, a DetailFetchError.
func IsDetailFetchError(err error) bool {
	var de *DetailFetchError
	return errors.As(err, &de)
}
