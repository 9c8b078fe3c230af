package service

import (
	"errors"
	"io"
	"log/slog"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/nulln0ne/liquidity-pool/pkg/pool"
)

var (
	tokenA = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	tokenB = common.HexToAddress("0x00000000000000000000000000000000000000bb")
	alice  = common.HexToAddress("0x0000000000000000000000000000000000000a11")
)

func newTestService(t *testing.T) *PoolService {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := NewPoolService(logger, tokenA, tokenB)
	if err != nil {
		t.Fatalf("NewPoolService: %v", err)
	}
	return svc
}

func TestPoolService_FullCycle(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	if err := svc.Fund(tokenA, alice, big.NewInt(1100)); err != nil {
		t.Fatalf("fund A: %v", err)
	}
	if err := svc.Fund(tokenB, alice, big.NewInt(4000)); err != nil {
		t.Fatalf("fund B: %v", err)
	}

	_, _, liquidity, err := svc.AddLiquidity(alice, big.NewInt(1000), big.NewInt(4000))
	if err != nil {
		t.Fatalf("AddLiquidity: %v", err)
	}
	if liquidity.Int64() != 2000 {
		t.Fatalf("minted liquidity: %s", liquidity)
	}

	out, err := svc.Swap(alice, tokenA, tokenB, big.NewInt(100))
	if err != nil {
		t.Fatalf("Swap: %v", err)
	}
	if out.Int64() != 363 {
		t.Fatalf("amountOut: %s", out)
	}

	reserveA, reserveB := svc.Reserves()
	if reserveA.Int64() != 1100 || reserveB.Int64() != 3637 {
		t.Fatalf("reserves after swap: %s / %s", reserveA, reserveB)
	}

	amountA, amountB, err := svc.RemoveLiquidity(alice, big.NewInt(1000))
	if err != nil {
		t.Fatalf("RemoveLiquidity: %v", err)
	}
	if amountA.Int64() != 550 || amountB.Int64() != 1818 {
		t.Fatalf("withdrawn amounts: %s / %s", amountA, amountB)
	}

	balance, total := svc.SharesOf(alice)
	if balance.Int64() != 1000 || total.Int64() != 1000 {
		t.Fatalf("share accounting: balance %s total %s", balance, total)
	}
}

func TestPoolService_CanonicalTokens(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := NewPoolService(logger, tokenB, tokenA)
	if err != nil {
		t.Fatalf("NewPoolService: %v", err)
	}

	gotA, gotB := svc.Tokens()
	if gotA != tokenA || gotB != tokenB {
		t.Fatalf("tokens not canonically ordered: %s / %s", gotA.Hex(), gotB.Hex())
	}
}

func TestPoolService_IdenticalTokens(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	_, err := NewPoolService(logger, tokenA, tokenA)
	if !errors.Is(err, pool.ErrIdenticalTokens) {
		t.Fatalf("expected ErrIdenticalTokens, got %v", err)
	}
}

func TestPoolService_FundUnknownToken(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	wrong := common.HexToAddress("0x00000000000000000000000000000000000000cc")

	err := svc.Fund(wrong, alice, big.NewInt(1))
	if !errors.Is(err, ErrUnknownToken) {
		t.Fatalf("expected ErrUnknownToken, got %v", err)
	}
	if _, err := svc.AssetBalance(wrong, alice); !errors.Is(err, ErrUnknownToken) {
		t.Fatalf("expected ErrUnknownToken, got %v", err)
	}
}

func TestPoolService_QuoteLeavesStateAlone(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	_ = svc.Fund(tokenA, alice, big.NewInt(1000))
	_ = svc.Fund(tokenB, alice, big.NewInt(4000))
	if _, _, _, err := svc.AddLiquidity(alice, big.NewInt(1000), big.NewInt(4000)); err != nil {
		t.Fatalf("AddLiquidity: %v", err)
	}

	out, err := svc.Quote(tokenA, tokenB, big.NewInt(100))
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if out.Int64() != 363 {
		t.Fatalf("quote: %s", out)
	}

	reserveA, reserveB := svc.Reserves()
	if reserveA.Int64() != 1000 || reserveB.Int64() != 4000 {
		t.Fatalf("reserves changed by quote: %s / %s", reserveA, reserveB)
	}
}
