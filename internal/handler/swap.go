package handler

import (
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gofiber/fiber/v3"

	"github.com/nulln0ne/liquidity-pool/internal/service"
)

type SwapHandler struct {
	BaseHandler
	service *service.PoolService
}

func NewSwapHandler(logger *slog.Logger, svc *service.PoolService) *SwapHandler {
	return &SwapHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
	}
}

type SwapRequest struct {
	Caller   string `query:"caller" json:"caller"`
	Src      string `query:"src" json:"src"`
	Dst      string `query:"dst" json:"dst"`
	AmountIn string `query:"amount" json:"amount_in"`
}

// Swap executes a swap for the caller and returns the output amount.
func (h *SwapHandler) Swap() fiber.Handler {
	return func(c fiber.Ctx) error {
		caller, src, dst, amountIn, err := h.parseSwapRequest(c, true)
		if err != nil {
			return err
		}

		amountOut, err := h.service.Swap(caller, src, dst, amountIn)
		if err != nil {
			return mapDomainError(h.logger, err)
		}

		return c.JSON(fiber.Map{"amount_out": amountOut.String()})
	}
}

// Quote prices a swap without executing it.
func (h *SwapHandler) Quote() fiber.Handler {
	return func(c fiber.Ctx) error {
		_, src, dst, amountIn, err := h.parseSwapRequest(c, false)
		if err != nil {
			return err
		}

		amountOut, err := h.service.Quote(src, dst, amountIn)
		if err != nil {
			return mapDomainError(h.logger, err)
		}

		return c.SendString(amountOut.String())
	}
}

func (h *SwapHandler) parseSwapRequest(c fiber.Ctx, needCaller bool) (caller, src, dst common.Address, amountIn *big.Int, err error) {
	var req SwapRequest
	if err := c.Bind().Query(&req); err != nil {
		h.logger.Debug("failed to bind query parameters", "err", err)
		return common.Address{}, common.Address{}, common.Address{}, nil, ErrInvalidQueryParameters
	}

	if needCaller {
		caller, err = h.parseAddress("caller", req.Caller)
		if err != nil {
			return common.Address{}, common.Address{}, common.Address{}, nil, err
		}
	}
	src, err = h.parseAddress("src", req.Src)
	if err != nil {
		return common.Address{}, common.Address{}, common.Address{}, nil, err
	}
	dst, err = h.parseAddress("dst", req.Dst)
	if err != nil {
		return common.Address{}, common.Address{}, common.Address{}, nil, err
	}
	if req.Src == req.Dst {
		return common.Address{}, common.Address{}, common.Address{}, nil, ErrSameAddresses
	}
	amountIn, err = h.parseAmount("amount", req.AmountIn)
	if err != nil {
		return common.Address{}, common.Address{}, common.Address{}, nil, err
	}
	return caller, src, dst, amountIn, nil
}
