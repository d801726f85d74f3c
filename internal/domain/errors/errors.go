package errors

import "errors"

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidClaim  = errors.New("invalid payment claim")
	ErrUpstream      = errors.New("upstream failure")
)
