package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized indicates that supplied credentials did not match a user.
var ErrUnauthorized = errors.New("invalid credentials")

// ErrPersistence indicates that a collection could not be read from or written to stable storage.
// The store logs these and keeps serving from memory.
var ErrPersistence = errors.New("persistence error")
