package files

import (
	"errors"
)

var (
	ErrInvalidRoot   = errors.New("invalid root directory")
	ErrListAccess    = errors.New("directory is not readable")
	ErrNotADirectory = errors.New("not a directory")
	ErrNotFound      = errors.New("no such file or directory")
	ErrAlreadyExists = errors.New("already exists")
	ErrEmptyName     = errors.New("name is empty")
	ErrIOFailure     = errors.New("filesystem operation failed")
)

var kinds = []error{
	ErrInvalidRoot,
	ErrListAccess,
	ErrNotADirectory,
	ErrNotFound,
	ErrAlreadyExists,
	ErrEmptyName,
	ErrIOFailure,
}

// OpError reports a failed operation on a path.
// Kind is one of the Err* sentinels, Err is the underlying cause if any.
type OpError struct {
	Op   string
	Path string
	Kind error
	Err  error
}

func NewOpError(op, path string, kind, err error) *OpError {
	return &OpError{Op: op, Path: path, Kind: kind, Err: err}
}

func (e *OpError) Error() string {
	s := e.Op + " " + e.Path + ": " + e.Kind.Error()
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *OpError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// KindOf returns the sentinel describing err, or nil if err is not one of ours.
func KindOf(err error) error {
	if err == nil {
		return nil
	}
	var opErr *OpError
	if errors.As(err, &opErr) {
		return opErr.Kind
	}
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
