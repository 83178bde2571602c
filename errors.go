package fssim

import "errors"

// Sentinel errors for expected domain failures. Match with errors.Is.
var (
	ErrNotFound      = errors.New("not found")
	ErrNotADirectory = errors.New("not a directory")
	ErrAlreadyExists = errors.New("already exists")
	ErrNotEmpty      = errors.New("directory not empty")
	ErrInvalidName   = errors.New("invalid name")
	ErrInvalidMove   = errors.New("invalid move")
)

// OpError is an expected failure of a file system operation.
// Msg is the message presented to the user and Err the sentinel cause.
type OpError struct {
	Op   string // Operation that failed i.e. "mkdir"
	Name string // Name or path the operation was given
	Msg  string
	Err  error
}

func (e *OpError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return e.Op + " " + e.Name + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error {
	return e.Err
}
