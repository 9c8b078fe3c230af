package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/nulln0ne/liquidity-pool/internal/service"
	"github.com/nulln0ne/liquidity-pool/pkg/ledger"
	"github.com/nulln0ne/liquidity-pool/pkg/pool"
)

// ErrInvalidQueryParameters indicates that the request query string could not
// be parsed into the expected structure.
var ErrInvalidQueryParameters = fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")

// ErrSameAddresses is returned when src and dst addresses are identical.
var ErrSameAddresses = fiber.NewError(fiber.StatusBadRequest, "src and dst addresses cannot be the same")

// ErrOperationFailedInternal signals a generic server-side failure.
var ErrOperationFailedInternal = fiber.NewError(fiber.StatusInternalServerError, "operation failed")

// NewAddressRequired returns a 400 Bad Request for a missing address field.
func NewAddressRequired(field string) error {
	return fiber.NewError(fiber.StatusBadRequest, field+" address is required")
}

// NewInvalidAddress returns a 400 Bad Request for an invalid address format.
func NewInvalidAddress(field string) error {
	return fiber.NewError(fiber.StatusBadRequest, "invalid "+field+" address")
}

// NewAmountRequired returns a 400 Bad Request for a missing amount field.
func NewAmountRequired(field string) error {
	return fiber.NewError(fiber.StatusBadRequest, field+" is required")
}

// NewInvalidAmountFormat returns a 400 Bad Request when an amount is not a
// base-10 integer.
func NewInvalidAmountFormat(field string) error {
	return fiber.NewError(fiber.StatusBadRequest, "invalid "+field+" format")
}

// NewAmountNonPositive returns a 400 Bad Request for a zero or negative
// amount.
func NewAmountNonPositive(field string) error {
	return fiber.NewError(fiber.StatusBadRequest, field+" must be greater than zero")
}

// mapDomainError translates pool, ledger and service errors into fiber
// responses. Anything unrecognized is logged and reported as a 500.
func mapDomainError(logger *slog.Logger, err error) error {
	switch {
	case errors.Is(err, pool.ErrSameToken):
		return fiber.NewError(fiber.StatusBadRequest, "src and dst tokens cannot be the same")
	case errors.Is(err, pool.ErrInvalidToken), errors.Is(err, service.ErrUnknownToken):
		return fiber.NewError(fiber.StatusBadRequest, "token is not part of this pool")
	case errors.Is(err, pool.ErrInvalidAmount):
		return fiber.NewError(fiber.StatusBadRequest, "amount must be greater than zero")
	case errors.Is(err, pool.ErrEmptyReserves):
		return fiber.NewError(fiber.StatusBadRequest, "pool has no liquidity")
	case errors.Is(err, pool.ErrInsufficientLiquidity):
		return fiber.NewError(fiber.StatusBadRequest, "insufficient liquidity")
	case errors.Is(err, pool.ErrInsufficientLiquidityMinted):
		return fiber.NewError(fiber.StatusBadRequest, "deposit too small to mint shares")
	case errors.Is(err, ledger.ErrInsufficientBalance), errors.Is(err, pool.ErrTransferFailed):
		return fiber.NewError(fiber.StatusBadRequest, "ledger transfer failed: "+err.Error())
	default:
		logger.Error("pool operation failed", "err", err)
		return ErrOperationFailedInternal
	}
}
