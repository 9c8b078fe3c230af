package config

import "errors"

// ErrMissingToken indicates that a required TOKEN_A/TOKEN_B variable is not
// set in the environment.
var ErrMissingToken = errors.New("missing token environment variable")

// ErrInvalidTokenAddress indicates that a token variable is not a valid hex
// address.
var ErrInvalidTokenAddress = errors.New("invalid token address")
