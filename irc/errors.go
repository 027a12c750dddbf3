// Copyright (c) 2023 Shivaram Lingamneni
// released under the MIT license

package irc

import "errors"

// Runtime Errors
var (
	errReadQ = errors.New("ReadQ Exceeded")
)

// Config Errors
var (
	ErrColorIndexNegative    = errors.New("Palette color indices cannot be negative")
	ErrColorNameEmpty        = errors.New("Palette color names cannot be empty")
	ErrLoggerExcludeEmpty    = errors.New("Encountered logging type '-' with no type to exclude")
	ErrLoggerFilenameMissing = errors.New("Logging configuration specifies 'file' method but 'filename' is empty")
	ErrLoggerHasNoTypes      = errors.New("Logger has no types to log")
	ErrMaxLineBytesTooSmall  = errors.New("Maximum line size must be a positive number of bytes")
)
