package domain

import "fmt"

// NotFoundError represents a failed lookup for a resource such as a
// function or a configured IO handler.
type NotFoundError struct {
	// ID is the key used when looking for the resource.
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("resource (%s) not found", e.ID)
}

// BinaryFileNotFoundError is emitted by IO handlers when the file with the
// given ID is not stored.
type BinaryFileNotFoundError struct {
	ID string
}

func (e BinaryFileNotFoundError) Error() string {
	return fmt.Sprintf("binary file (%s) not found", e.ID)
}

// InvalidArgumentError represents input that cannot be processed.
type InvalidArgumentError struct {
	Argument string
	Reason   string
}

func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Argument, e.Reason)
}

// NotConfiguredError is emitted when a migration is attempted before the
// IO handlers it works with have been resolved.
type NotConfiguredError struct{}

func (NotConfiguredError) Error() string {
	return "io handlers have not been configured"
}

// UserNotResolvedError is emitted when the full user behind a reference is
// requested before it was loaded.
type UserNotResolvedError struct {
	Reference UserReference
}

func (e UserNotResolvedError) Error() string {
	return fmt.Sprintf("user (%d) has not been resolved", e.Reference.UserID)
}
