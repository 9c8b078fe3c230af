package service

import "errors"

// ErrUnknownToken is returned when a token argument matches neither of the
// pool's two asset ledgers.
var ErrUnknownToken = errors.New("token not served by this pool")
