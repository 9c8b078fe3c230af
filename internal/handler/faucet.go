package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/nulln0ne/liquidity-pool/internal/service"
)

// FaucetHandler funds accounts on the in-memory asset ledgers. Development
// surface only; the pool itself never creates assets.
type FaucetHandler struct {
	BaseHandler
	service *service.PoolService
}

func NewFaucetHandler(logger *slog.Logger, svc *service.PoolService) *FaucetHandler {
	return &FaucetHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
	}
}

type FaucetRequest struct {
	Token  string `query:"token" json:"token"`
	To     string `query:"to" json:"to"`
	Amount string `query:"amount" json:"amount"`
}

func (h *FaucetHandler) Handle() fiber.Handler {
	return func(c fiber.Ctx) error {
		var req FaucetRequest
		if err := c.Bind().Query(&req); err != nil {
			h.logger.Debug("failed to bind query parameters", "err", err)
			return ErrInvalidQueryParameters
		}

		token, err := h.parseAddress("token", req.Token)
		if err != nil {
			return err
		}
		to, err := h.parseAddress("to", req.To)
		if err != nil {
			return err
		}
		amount, err := h.parseAmount("amount", req.Amount)
		if err != nil {
			return err
		}

		if err := h.service.Fund(token, to, amount); err != nil {
			return mapDomainError(h.logger, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
