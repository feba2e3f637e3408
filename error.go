package sll

import (
	"errors"
	"fmt"
)

// ErrorCode classifies the errors returned by the list package.
type ErrorCode int

const (
	Unknown ErrorCode = iota
	TypeMismatch
	NotFound
)

var (
	// ErrTypeMismatch is wrapped when a node's successor is set to something that is neither a node nor nil.
	ErrTypeMismatch = errors.New("successor must be a node of the same element type or nil")
	// ErrNotFound is wrapped when a lookup by value finds no matching node.
	ErrNotFound = errors.New("item not found in list")
)

// Error is the list library's custom error.
type Error struct {
	Code     ErrorCode
	Err      error
	UserData any
}

func (e Error) Error() string {
	return fmt.Errorf("error code: %d, user data: %v, details: %w", e.Code, e.UserData, e.Err).Error()
}

// Unwrap returns the wrapped error so errors.Is matches the sentinels.
func (e Error) Unwrap() error {
	return e.Err
}
