package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/nulln0ne/liquidity-pool/internal/service"
)

type LiquidityHandler struct {
	BaseHandler
	service *service.PoolService
}

func NewLiquidityHandler(logger *slog.Logger, svc *service.PoolService) *LiquidityHandler {
	return &LiquidityHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
	}
}

type AddLiquidityRequest struct {
	Caller  string `query:"caller" json:"caller"`
	AmountA string `query:"amount_a" json:"amount_a"`
	AmountB string `query:"amount_b" json:"amount_b"`
}

type RemoveLiquidityRequest struct {
	Caller    string `query:"caller" json:"caller"`
	Liquidity string `query:"liquidity" json:"liquidity"`
}

// Add deposits up to the declared pair amounts and mints shares. The
// response carries the amounts actually consumed, which can be less than
// declared on an already-priced pool.
func (h *LiquidityHandler) Add() fiber.Handler {
	return func(c fiber.Ctx) error {
		var req AddLiquidityRequest
		if err := c.Bind().Query(&req); err != nil {
			h.logger.Debug("failed to bind query parameters", "err", err)
			return ErrInvalidQueryParameters
		}

		caller, err := h.parseAddress("caller", req.Caller)
		if err != nil {
			return err
		}
		amountA, err := h.parseAmount("amount_a", req.AmountA)
		if err != nil {
			return err
		}
		amountB, err := h.parseAmount("amount_b", req.AmountB)
		if err != nil {
			return err
		}

		usedA, usedB, liquidity, err := h.service.AddLiquidity(caller, amountA, amountB)
		if err != nil {
			return mapDomainError(h.logger, err)
		}

		return c.JSON(fiber.Map{
			"amount_a":  usedA.String(),
			"amount_b":  usedB.String(),
			"liquidity": liquidity.String(),
		})
	}
}

// Remove burns shares and pays out the proportional reserves.
func (h *LiquidityHandler) Remove() fiber.Handler {
	return func(c fiber.Ctx) error {
		var req RemoveLiquidityRequest
		if err := c.Bind().Query(&req); err != nil {
			h.logger.Debug("failed to bind query parameters", "err", err)
			return ErrInvalidQueryParameters
		}

		caller, err := h.parseAddress("caller", req.Caller)
		if err != nil {
			return err
		}
		liquidity, err := h.parseAmount("liquidity", req.Liquidity)
		if err != nil {
			return err
		}

		amountA, amountB, err := h.service.RemoveLiquidity(caller, liquidity)
		if err != nil {
			return mapDomainError(h.logger, err)
		}

		return c.JSON(fiber.Map{
			"amount_a": amountA.String(),
			"amount_b": amountB.String(),
		})
	}
}

// Shares reports a holder's share balance and the total supply.
func (h *LiquidityHandler) Shares() fiber.Handler {
	return func(c fiber.Ctx) error {
		caller, err := h.parseAddress("caller", c.Query("caller"))
		if err != nil {
			return err
		}

		balance, total := h.service.SharesOf(caller)
		return c.JSON(fiber.Map{
			"balance":      balance.String(),
			"total_supply": total.String(),
		})
	}
}
