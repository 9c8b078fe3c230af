// Package handler defines HTTP request handlers and related utilities.
package handler

import (
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// BaseHandler provides common dependencies and parsing helpers for HTTP
// handlers.
type BaseHandler struct {
	logger *slog.Logger
}

func (h *BaseHandler) parseAddress(field, value string) (common.Address, error) {
	if value == "" {
		return common.Address{}, NewAddressRequired(field)
	}
	if !common.IsHexAddress(value) {
		return common.Address{}, NewInvalidAddress(field)
	}
	return common.HexToAddress(value), nil
}

func (h *BaseHandler) parseAmount(field, value string) (*big.Int, error) {
	if value == "" {
		return nil, NewAmountRequired(field)
	}
	amount, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, NewInvalidAmountFormat(field)
	}
	if amount.Sign() <= 0 {
		return nil, NewAmountNonPositive(field)
	}
	return amount, nil
}
