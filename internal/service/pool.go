package service

import (
	"bytes"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/nulln0ne/liquidity-pool/pkg/ledger"
	"github.com/nulln0ne/liquidity-pool/pkg/pool"
)

// PoolService owns one constant-product pool together with the in-memory
// ledgers of its two assets and its share supply. It is the single writer
// behind the HTTP surface.
type PoolService struct {
	BaseService
	pool   *pool.Pool
	assets map[common.Address]*ledger.Asset
	shares *ledger.Shares
}

// NewPoolService wires an empty pool for the given token pair. The pool's
// ledger account is derived from the pair so it is stable across restarts.
func NewPoolService(logger *slog.Logger, tokenA, tokenB common.Address) (*PoolService, error) {
	poolAddr := poolAccount(tokenA, tokenB)

	shares := ledger.NewShares(func(from, to common.Address, amount *big.Int) {
		logger.Debug("share transfer", "from", from.Hex(), "to", to.Hex(), "amount", amount.String())
	})
	assetA := ledger.NewAsset(tokenA, poolAddr)
	assetB := ledger.NewAsset(tokenB, poolAddr)

	p, err := pool.New(poolAddr, tokenA, tokenB, assetA, assetB, shares, &slogSink{logger: logger})
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	return &PoolService{
		BaseService: BaseService{logger: logger},
		pool:        p,
		assets: map[common.Address]*ledger.Asset{
			tokenA: assetA,
			tokenB: assetB,
		},
		shares: shares,
	}, nil
}

// Pool exposes the underlying pool for read-only queries.
func (s *PoolService) Pool() *pool.Pool { return s.pool }

// Quote prices a swap without executing it.
func (s *PoolService) Quote(src, dst common.Address, amountIn *big.Int) (*big.Int, error) {
	return s.pool.Quote(src, dst, amountIn)
}

// Swap executes a swap on behalf of caller.
func (s *PoolService) Swap(caller, src, dst common.Address, amountIn *big.Int) (*big.Int, error) {
	s.logger.Debug("swap requested", "caller", caller.Hex(), "src", src.Hex(), "dst", dst.Hex(), "in", amountIn.String())
	return s.pool.Swap(caller, src, dst, amountIn)
}

// AddLiquidity deposits into the pool on behalf of caller and returns the
// consumed amounts and minted shares.
func (s *PoolService) AddLiquidity(caller common.Address, amountAIn, amountBIn *big.Int) (amountA, amountB, liquidity *big.Int, err error) {
	s.logger.Debug("add liquidity requested", "caller", caller.Hex(), "a", amountAIn.String(), "b", amountBIn.String())
	return s.pool.AddLiquidity(caller, amountAIn, amountBIn)
}

// RemoveLiquidity burns caller shares and returns the withdrawn amounts.
func (s *PoolService) RemoveLiquidity(caller common.Address, liquidity *big.Int) (amountA, amountB *big.Int, err error) {
	s.logger.Debug("remove liquidity requested", "caller", caller.Hex(), "liquidity", liquidity.String())
	return s.pool.RemoveLiquidity(caller, liquidity)
}

// Reserves returns the current reserves in canonical token order.
func (s *PoolService) Reserves() (reserveA, reserveB *big.Int) {
	return s.pool.Reserves()
}

// Tokens returns the pool's token pair in canonical order.
func (s *PoolService) Tokens() (tokenA, tokenB common.Address) {
	return s.pool.TokenA(), s.pool.TokenB()
}

// SharesOf returns a holder's share balance and the total supply.
func (s *PoolService) SharesOf(owner common.Address) (balance, total *big.Int) {
	return s.shares.BalanceOf(owner), s.shares.TotalSupply()
}

// AssetBalance returns an account balance on one of the two asset ledgers.
func (s *PoolService) AssetBalance(token, owner common.Address) (*big.Int, error) {
	a, ok := s.assets[token]
	if !ok {
		return nil, ErrUnknownToken
	}
	return a.BalanceOf(owner), nil
}

// Fund mints amount of token to an account. Development helper backing the
// faucet endpoint; the pool itself never mints assets.
func (s *PoolService) Fund(token, to common.Address, amount *big.Int) error {
	a, ok := s.assets[token]
	if !ok {
		return ErrUnknownToken
	}
	if err := a.Mint(to, amount); err != nil {
		return err
	}
	s.logger.Debug("account funded", "token", token.Hex(), "to", to.Hex(), "amount", amount.String())
	return nil
}

// poolAccount derives the pool's ledger account from its token pair. Tokens
// are sorted first so both orderings produce the same account.
func poolAccount(tokenA, tokenB common.Address) common.Address {
	if bytes.Compare(tokenA.Bytes(), tokenB.Bytes()) > 0 {
		tokenA, tokenB = tokenB, tokenA
	}
	return common.BytesToAddress(crypto.Keccak256(tokenA.Bytes(), tokenB.Bytes())[12:])
}

// slogSink forwards pool events to the service logger.
type slogSink struct {
	logger *slog.Logger
}

func (l *slogSink) SwapExecuted(e pool.SwapEvent) {
	l.logger.Info("swap",
		"caller", e.Caller.Hex(),
		"tokenIn", e.TokenIn.Hex(),
		"tokenOut", e.TokenOut.Hex(),
		"amountIn", e.AmountIn.String(),
		"amountOut", e.AmountOut.String(),
	)
}

func (l *slogSink) LiquidityAdded(e pool.AddLiquidityEvent) {
	l.logger.Info("liquidity added",
		"caller", e.Caller.Hex(),
		"amountA", e.AmountA.String(),
		"amountB", e.AmountB.String(),
		"liquidity", e.Liquidity.String(),
	)
}

func (l *slogSink) LiquidityRemoved(e pool.RemoveLiquidityEvent) {
	l.logger.Info("liquidity removed",
		"caller", e.Caller.Hex(),
		"amountA", e.AmountA.String(),
		"amountB", e.AmountB.String(),
		"liquidity", e.Liquidity.String(),
	)
}
