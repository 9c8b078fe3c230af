package pool

import "errors"

var (
	// ErrIdenticalTokens is returned by New when both token identities are equal.
	ErrIdenticalTokens = errors.New("pool tokens must differ")

	// ErrNilLedger is returned by New when a ledger collaborator is missing.
	ErrNilLedger = errors.New("missing ledger collaborator")

	// ErrInvalidToken is returned when a token argument is not one of the two
	// registered pool tokens.
	ErrInvalidToken = errors.New("token not registered in pool")

	// ErrSameToken is returned when a swap names the same token on both sides.
	ErrSameToken = errors.New("src and dst tokens are equal")

	// ErrInvalidAmount is returned for zero, negative or missing amounts.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrEmptyReserves is returned when a swap is attempted against a pool
	// that holds no liquidity yet.
	ErrEmptyReserves = errors.New("empty reserves")

	// ErrInsufficientLiquidity is returned when a withdrawal names more
	// shares than the caller holds.
	ErrInsufficientLiquidity = errors.New("insufficient liquidity")

	// ErrInsufficientLiquidityMinted is returned when a deposit is too small
	// to mint any shares against the current reserves.
	ErrInsufficientLiquidityMinted = errors.New("insufficient liquidity minted")

	// ErrTransferFailed wraps a ledger error raised while moving assets.
	// The operation it aborted left no state change behind.
	ErrTransferFailed = errors.New("ledger transfer failed")
)
