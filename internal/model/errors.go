package model

import "errors"

// Validation errors for domain values.
var (
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidJar         = errors.New("invalid jar")
	ErrInvalidRule        = errors.New("invalid category rule")
)
