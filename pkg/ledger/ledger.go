// Package ledger provides in-memory fungible-balance ledgers: one per pool
// asset and one for the pool's own liquidity shares.
package ledger

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// Asset is an in-memory fungible-asset ledger for a single token. It knows
// the pool's account so that Transfer can debit the pool side implicitly,
// matching the asset-ledger contract the pool engine expects.
type Asset struct {
	token common.Address
	pool  common.Address

	mu       sync.RWMutex
	balances map[common.Address]*big.Int
}

// NewAsset creates an empty ledger for token with pool as the pool account.
func NewAsset(token, pool common.Address) *Asset {
	return &Asset{
		token:    token,
		pool:     pool,
		balances: make(map[common.Address]*big.Int),
	}
}

// Token returns the asset identity this ledger tracks.
func (a *Asset) Token() common.Address { return a.token }

// Mint credits amount to the given account. Used to fund accounts; the pool
// engine never mints.
func (a *Asset) Mint(to common.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.credit(to, amount)
	return nil
}

// BalanceOf returns a copy of the account balance.
func (a *Asset) BalanceOf(owner common.Address) *big.Int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if b, ok := a.balances[owner]; ok {
		return new(big.Int).Set(b)
	}
	return new(big.Int)
}

// TransferFrom moves amount from owner to recipient. All-or-nothing: an
// insufficient owner balance leaves both accounts untouched.
func (a *Asset) TransferFrom(owner, recipient common.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return ErrInvalidAmount
	}
	if amount.Sign() == 0 {
		return nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	b, ok := a.balances[owner]
	if !ok || b.Cmp(amount) < 0 {
		return fmt.Errorf("%w: %s has %s of %s, needs %s",
			ErrInsufficientBalance, owner, a.balanceLocked(owner), a.token, amount)
	}
	b.Sub(b, amount)
	a.credit(recipient, amount)
	return nil
}

// Transfer moves amount out of the pool account to recipient.
func (a *Asset) Transfer(recipient common.Address, amount *big.Int) error {
	return a.TransferFrom(a.pool, recipient, amount)
}

func (a *Asset) credit(to common.Address, amount *big.Int) {
	if b, ok := a.balances[to]; ok {
		b.Add(b, amount)
		return
	}
	a.balances[to] = new(big.Int).Set(amount)
}

func (a *Asset) balanceLocked(owner common.Address) *big.Int {
	if b, ok := a.balances[owner]; ok {
		return b
	}
	return new(big.Int)
}
