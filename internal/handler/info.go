package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/nulln0ne/liquidity-pool/internal/service"
)

type InfoHandler struct {
	BaseHandler
	service *service.PoolService
}

func NewInfoHandler(logger *slog.Logger, svc *service.PoolService) *InfoHandler {
	return &InfoHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
	}
}

// Reserves reports the current reserves in canonical token order.
func (h *InfoHandler) Reserves() fiber.Handler {
	return func(c fiber.Ctx) error {
		reserveA, reserveB := h.service.Reserves()
		return c.JSON(fiber.Map{
			"reserve_a": reserveA.String(),
			"reserve_b": reserveB.String(),
		})
	}
}

// Tokens reports the pool's token pair in canonical order.
func (h *InfoHandler) Tokens() fiber.Handler {
	return func(c fiber.Ctx) error {
		tokenA, tokenB := h.service.Tokens()
		return c.JSON(fiber.Map{
			"token_a": tokenA.Hex(),
			"token_b": tokenB.Hex(),
		})
	}
}

// Balance reports an account balance on one of the two asset ledgers.
func (h *InfoHandler) Balance() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, err := h.parseAddress("token", c.Query("token"))
		if err != nil {
			return err
		}
		owner, err := h.parseAddress("owner", c.Query("owner"))
		if err != nil {
			return err
		}

		balance, err := h.service.AssetBalance(token, owner)
		if err != nil {
			return mapDomainError(h.logger, err)
		}
		return c.SendString(balance.String())
	}
}
