package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/joho/godotenv"

	"github.com/nulln0ne/liquidity-pool/internal/config"
	"github.com/nulln0ne/liquidity-pool/internal/handler"
	"github.com/nulln0ne/liquidity-pool/internal/logging"
	"github.com/nulln0ne/liquidity-pool/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	app := fiber.New()
	logger := logging.NewLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	poolService, err := service.NewPoolService(logger, cfg.TokenA, cfg.TokenB)
	if err != nil {
		return fmt.Errorf("failed to set up pool: %w", err)
	}

	swapHandler := handler.NewSwapHandler(logger, poolService)
	liquidityHandler := handler.NewLiquidityHandler(logger, poolService)
	infoHandler := handler.NewInfoHandler(logger, poolService)
	faucetHandler := handler.NewFaucetHandler(logger, poolService)

	app.Post("/swap", swapHandler.Swap())
	app.Get("/quote", swapHandler.Quote())
	app.Post("/liquidity/add", liquidityHandler.Add())
	app.Post("/liquidity/remove", liquidityHandler.Remove())
	app.Get("/shares", liquidityHandler.Shares())
	app.Get("/reserves", infoHandler.Reserves())
	app.Get("/tokens", infoHandler.Tokens())
	app.Get("/balance", infoHandler.Balance())
	app.Post("/faucet", faucetHandler.Handle())

	tokenA, tokenB := poolService.Tokens()
	logger.Info("pool ready", "tokenA", tokenA.Hex(), "tokenB", tokenB.Hex(), "addr", cfg.Addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.Addr)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			_ = app.Shutdown()
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_ = app.Shutdown()

	<-shutdownCtx.Done()
	return nil
}
