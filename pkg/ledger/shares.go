package ledger

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// ZeroAddress is the burn destination reported to the transfer hook.
var ZeroAddress = common.Address{}

// TransferHook observes share movements. Burns are reported as transfers to
// ZeroAddress, mints as transfers from ZeroAddress.
type TransferHook func(from, to common.Address, amount *big.Int)

// Shares is an in-memory fungible ledger for liquidity shares. The sum of
// all balances always equals the total supply: supply only moves through
// Mint and Burn, which adjust both sides together.
type Shares struct {
	mu       sync.RWMutex
	balances map[common.Address]*big.Int
	total    *big.Int
	onXfer   TransferHook
}

// NewShares creates an empty share ledger. hook may be nil.
func NewShares(hook TransferHook) *Shares {
	return &Shares{
		balances: make(map[common.Address]*big.Int),
		total:    new(big.Int),
		onXfer:   hook,
	}
}

// Mint credits newly issued shares to an account.
func (s *Shares) Mint(to common.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	s.mu.Lock()
	if b, ok := s.balances[to]; ok {
		b.Add(b, amount)
	} else {
		s.balances[to] = new(big.Int).Set(amount)
	}
	s.total.Add(s.total, amount)
	s.mu.Unlock()

	if s.onXfer != nil {
		s.onXfer(ZeroAddress, to, new(big.Int).Set(amount))
	}
	return nil
}

// Burn destroys amount shares held by from. The hook sees the burn as a
// transfer to the zero address.
func (s *Shares) Burn(from common.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	s.mu.Lock()
	b, ok := s.balances[from]
	if !ok || b.Cmp(amount) < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s holds fewer than %s shares", ErrInsufficientBalance, from, amount)
	}
	b.Sub(b, amount)
	s.total.Sub(s.total, amount)
	s.mu.Unlock()

	if s.onXfer != nil {
		s.onXfer(from, ZeroAddress, new(big.Int).Set(amount))
	}
	return nil
}

// Transfer moves shares between holders without changing the supply.
func (s *Shares) Transfer(from, to common.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	s.mu.Lock()
	b, ok := s.balances[from]
	if !ok || b.Cmp(amount) < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s holds fewer than %s shares", ErrInsufficientBalance, from, amount)
	}
	b.Sub(b, amount)
	if tb, ok := s.balances[to]; ok {
		tb.Add(tb, amount)
	} else {
		s.balances[to] = new(big.Int).Set(amount)
	}
	s.mu.Unlock()

	if s.onXfer != nil {
		s.onXfer(from, to, new(big.Int).Set(amount))
	}
	return nil
}

// BalanceOf returns a copy of the holder's share balance.
func (s *Shares) BalanceOf(owner common.Address) *big.Int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if b, ok := s.balances[owner]; ok {
		return new(big.Int).Set(b)
	}
	return new(big.Int)
}

// TotalSupply returns a copy of the outstanding share count.
func (s *Shares) TotalSupply() *big.Int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return new(big.Int).Set(s.total)
}
