// Package pool implements a two-token constant-product liquidity pool:
// swaps priced by x*y=k with rounding in the pool's favor, and
// proportional share issuance for deposits and withdrawals.
package pool

import (
	"bytes"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// AssetLedger is the external fungible-asset ledger for one pool token.
// TransferFrom moves owner funds into any account; Transfer moves funds out
// of the pool's account. Both are atomic: they either apply fully or return
// an error and apply nothing.
type AssetLedger interface {
	TransferFrom(owner, recipient common.Address, amount *big.Int) error
	Transfer(recipient common.Address, amount *big.Int) error
}

// ShareLedger tracks the pool's liquidity shares as a generic
// fungible-balance ledger.
type ShareLedger interface {
	Mint(to common.Address, amount *big.Int) error
	Burn(from common.Address, amount *big.Int) error
	BalanceOf(owner common.Address) *big.Int
	TotalSupply() *big.Int
}

// Pool owns the reserves of a single two-token pair. All public operations
// are serialized by an internal mutex and commit their reserve updates only
// after every ledger call has succeeded, so a failed operation leaves no
// partial state behind.
type Pool struct {
	mu sync.Mutex

	addr   common.Address
	tokenA common.Address
	tokenB common.Address

	ledgerA AssetLedger
	ledgerB AssetLedger
	shares  ShareLedger

	reserveA *big.Int
	reserveB *big.Int

	sink EventSink
}

// New constructs an empty pool for the given token pair. The pair is stored
// in canonical order (smaller address becomes token A) together with its
// ledgers; the order is fixed for the pool's lifetime. addr is the pool's
// own account on the asset ledgers. sink may be nil.
func New(addr, tokenA, tokenB common.Address, ledgerA, ledgerB AssetLedger, shares ShareLedger, sink EventSink) (*Pool, error) {
	if tokenA == tokenB {
		return nil, ErrIdenticalTokens
	}
	if ledgerA == nil || ledgerB == nil || shares == nil {
		return nil, ErrNilLedger
	}

	if bytes.Compare(tokenA.Bytes(), tokenB.Bytes()) > 0 {
		tokenA, tokenB = tokenB, tokenA
		ledgerA, ledgerB = ledgerB, ledgerA
	}

	return &Pool{
		addr:     addr,
		tokenA:   tokenA,
		tokenB:   tokenB,
		ledgerA:  ledgerA,
		ledgerB:  ledgerB,
		shares:   shares,
		reserveA: new(big.Int),
		reserveB: new(big.Int),
		sink:     sink,
	}, nil
}

// TokenA returns the canonically smaller token of the pair.
func (p *Pool) TokenA() common.Address { return p.tokenA }

// TokenB returns the canonically larger token of the pair.
func (p *Pool) TokenB() common.Address { return p.tokenB }

// Address returns the pool's own ledger account.
func (p *Pool) Address() common.Address { return p.addr }

// Reserves returns copies of the current reserves in canonical token order.
func (p *Pool) Reserves() (reserveA, reserveB *big.Int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return new(big.Int).Set(p.reserveA), new(big.Int).Set(p.reserveB)
}

// TotalShares returns the outstanding liquidity-share supply.
func (p *Pool) TotalShares() *big.Int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.shares.TotalSupply()
}

// Quote prices a swap against current reserves without moving any funds.
func (p *Pool) Quote(tokenIn, tokenOut common.Address, amountIn *big.Int) (*big.Int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, _, reserveIn, reserveOut, err := p.side(tokenIn, tokenOut)
	if err != nil {
		return nil, err
	}
	if err := validateAmount(amountIn); err != nil {
		return nil, err
	}
	if reserveIn.Sign() == 0 || reserveOut.Sign() == 0 {
		return nil, ErrEmptyReserves
	}

	var out, t1, t2 big.Int
	SwapOutput(&out, &t1, &t2, amountIn, reserveIn, reserveOut)
	return &out, nil
}

// Swap exchanges amountIn of tokenIn for tokenOut at the constant-product
// price. The input is pulled from caller, the output is sent to caller, and
// the reserves are updated by +amountIn/-amountOut in one atomic step.
func (p *Pool) Swap(caller, tokenIn, tokenOut common.Address, amountIn *big.Int) (*big.Int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ledgerIn, ledgerOut, reserveIn, reserveOut, err := p.side(tokenIn, tokenOut)
	if err != nil {
		return nil, err
	}
	if err := validateAmount(amountIn); err != nil {
		return nil, err
	}
	if reserveIn.Sign() == 0 || reserveOut.Sign() == 0 {
		return nil, ErrEmptyReserves
	}

	var t1, t2 big.Int
	amountOut := new(big.Int)
	SwapOutput(amountOut, &t1, &t2, amountIn, reserveIn, reserveOut)

	if err := ledgerIn.TransferFrom(caller, p.addr, amountIn); err != nil {
		return nil, fmt.Errorf("%w: pull %s: %w", ErrTransferFailed, tokenIn, err)
	}
	if amountOut.Sign() > 0 {
		if err := ledgerOut.Transfer(caller, amountOut); err != nil {
			// Undo the pull so the caller observes no change.
			if rerr := ledgerIn.Transfer(caller, amountIn); rerr != nil {
				return nil, fmt.Errorf("%w: push %s: %w (refund also failed: %v)", ErrTransferFailed, tokenOut, err, rerr)
			}
			return nil, fmt.Errorf("%w: push %s: %w", ErrTransferFailed, tokenOut, err)
		}
	}

	reserveIn.Add(reserveIn, amountIn)
	reserveOut.Sub(reserveOut, amountOut)

	if p.sink != nil {
		p.sink.SwapExecuted(SwapEvent{
			Caller:    caller,
			TokenIn:   tokenIn,
			TokenOut:  tokenOut,
			AmountIn:  new(big.Int).Set(amountIn),
			AmountOut: new(big.Int).Set(amountOut),
		})
	}
	return amountOut, nil
}

// AddLiquidity deposits up to (amountAIn, amountBIn) into the pool and mints
// proportional shares. On the first deposit the caller sets the price ratio
// and receives floor(sqrt(amountAIn*amountBIn)) shares. On later deposits the
// mint is the largest share count covered by both declared inputs, and only
// the proportional amounts actually needed are pulled from the caller.
// Returns the consumed amounts and the minted share count.
func (p *Pool) AddLiquidity(caller common.Address, amountAIn, amountBIn *big.Int) (amountA, amountB, liquidity *big.Int, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := validateAmount(amountAIn); err != nil {
		return nil, nil, nil, err
	}
	if err := validateAmount(amountBIn); err != nil {
		return nil, nil, nil, err
	}

	total := p.shares.TotalSupply()
	if total.Sign() == 0 {
		liquidity = new(big.Int).Mul(amountAIn, amountBIn)
		liquidity.Sqrt(liquidity)
		amountA = new(big.Int).Set(amountAIn)
		amountB = new(big.Int).Set(amountBIn)
	} else {
		// liquidity = min(amountAIn*total/reserveA, amountBIn*total/reserveB)
		la := new(big.Int).Mul(amountAIn, total)
		la.Div(la, p.reserveA)
		lb := new(big.Int).Mul(amountBIn, total)
		lb.Div(lb, p.reserveB)
		liquidity = la
		if lb.Cmp(la) < 0 {
			liquidity = lb
		}
		// Back-compute the amounts the mint actually consumes.
		amountA = new(big.Int).Mul(liquidity, p.reserveA)
		amountA.Div(amountA, total)
		amountB = new(big.Int).Mul(liquidity, p.reserveB)
		amountB.Div(amountB, total)
	}
	if liquidity.Sign() == 0 {
		return nil, nil, nil, ErrInsufficientLiquidityMinted
	}

	if amountA.Sign() > 0 {
		if err := p.ledgerA.TransferFrom(caller, p.addr, amountA); err != nil {
			return nil, nil, nil, fmt.Errorf("%w: pull %s: %w", ErrTransferFailed, p.tokenA, err)
		}
	}
	if amountB.Sign() > 0 {
		if err := p.ledgerB.TransferFrom(caller, p.addr, amountB); err != nil {
			if amountA.Sign() > 0 {
				if rerr := p.ledgerA.Transfer(caller, amountA); rerr != nil {
					return nil, nil, nil, fmt.Errorf("%w: pull %s: %w (refund also failed: %v)", ErrTransferFailed, p.tokenB, err, rerr)
				}
			}
			return nil, nil, nil, fmt.Errorf("%w: pull %s: %w", ErrTransferFailed, p.tokenB, err)
		}
	}
	if err := p.shares.Mint(caller, liquidity); err != nil {
		// Ledger pulls succeeded; hand everything back.
		if amountA.Sign() > 0 {
			_ = p.ledgerA.Transfer(caller, amountA)
		}
		if amountB.Sign() > 0 {
			_ = p.ledgerB.Transfer(caller, amountB)
		}
		return nil, nil, nil, fmt.Errorf("mint shares: %w", err)
	}

	p.reserveA.Add(p.reserveA, amountA)
	p.reserveB.Add(p.reserveB, amountB)

	if p.sink != nil {
		p.sink.LiquidityAdded(AddLiquidityEvent{
			Caller:    caller,
			AmountA:   new(big.Int).Set(amountA),
			AmountB:   new(big.Int).Set(amountB),
			Liquidity: new(big.Int).Set(liquidity),
		})
	}
	return amountA, amountB, liquidity, nil
}

// RemoveLiquidity burns the caller's shares and pays out the proportional
// slice of both reserves, floored. Amounts are evaluated against the
// reserves before the burn.
func (p *Pool) RemoveLiquidity(caller common.Address, liquidity *big.Int) (amountA, amountB *big.Int, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if liquidity == nil || liquidity.Sign() <= 0 {
		return nil, nil, ErrInsufficientLiquidity
	}
	if p.shares.BalanceOf(caller).Cmp(liquidity) < 0 {
		return nil, nil, ErrInsufficientLiquidity
	}
	total := p.shares.TotalSupply()

	amountA = new(big.Int).Mul(liquidity, p.reserveA)
	amountA.Div(amountA, total)
	amountB = new(big.Int).Mul(liquidity, p.reserveB)
	amountB.Div(amountB, total)

	// Burn first: the share ledger enforces the balance precondition and the
	// payouts below cannot legitimately fail once the pool owes them.
	if err := p.shares.Burn(caller, liquidity); err != nil {
		return nil, nil, ErrInsufficientLiquidity
	}
	if amountA.Sign() > 0 {
		if err := p.ledgerA.Transfer(caller, amountA); err != nil {
			_ = p.shares.Mint(caller, liquidity)
			return nil, nil, fmt.Errorf("%w: push %s: %w", ErrTransferFailed, p.tokenA, err)
		}
	}
	if amountB.Sign() > 0 {
		if err := p.ledgerB.Transfer(caller, amountB); err != nil {
			if amountA.Sign() > 0 {
				_ = p.ledgerA.TransferFrom(caller, p.addr, amountA)
			}
			_ = p.shares.Mint(caller, liquidity)
			return nil, nil, fmt.Errorf("%w: push %s: %w", ErrTransferFailed, p.tokenB, err)
		}
	}

	p.reserveA.Sub(p.reserveA, amountA)
	p.reserveB.Sub(p.reserveB, amountB)

	if p.sink != nil {
		p.sink.LiquidityRemoved(RemoveLiquidityEvent{
			Caller:    caller,
			AmountA:   new(big.Int).Set(amountA),
			AmountB:   new(big.Int).Set(amountB),
			Liquidity: new(big.Int).Set(liquidity),
		})
	}
	return amountA, amountB, nil
}

// side resolves a (tokenIn, tokenOut) pair to its ledgers and reserves.
// The returned reserves alias pool state; callers hold p.mu.
func (p *Pool) side(tokenIn, tokenOut common.Address) (ledgerIn, ledgerOut AssetLedger, reserveIn, reserveOut *big.Int, err error) {
	if tokenIn == tokenOut {
		return nil, nil, nil, nil, ErrSameToken
	}
	switch {
	case tokenIn == p.tokenA && tokenOut == p.tokenB:
		return p.ledgerA, p.ledgerB, p.reserveA, p.reserveB, nil
	case tokenIn == p.tokenB && tokenOut == p.tokenA:
		return p.ledgerB, p.ledgerA, p.reserveB, p.reserveA, nil
	default:
		return nil, nil, nil, nil, ErrInvalidToken
	}
}

func validateAmount(amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	return nil
}
