package catalog

import "errors"

// Sentinel errors for catalog lookups and validation. Use errors.Is to check.
var (
	ErrToolNotFound = errors.New("tool not found")
	ErrArgsInvalid  = errors.New("arguments do not satisfy parameter schema")
)
