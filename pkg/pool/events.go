package pool

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// SwapEvent records an executed swap.
type SwapEvent struct {
	Caller    common.Address
	TokenIn   common.Address
	TokenOut  common.Address
	AmountIn  *big.Int
	AmountOut *big.Int
}

// AddLiquidityEvent records a deposit. AmountA/AmountB are the amounts
// actually pulled from the caller, not the declared maximums.
type AddLiquidityEvent struct {
	Caller    common.Address
	AmountA   *big.Int
	AmountB   *big.Int
	Liquidity *big.Int
}

// RemoveLiquidityEvent records a withdrawal.
type RemoveLiquidityEvent struct {
	Caller    common.Address
	AmountA   *big.Int
	AmountB   *big.Int
	Liquidity *big.Int
}

// EventSink receives pool events after the state change they describe has
// committed. Events exist for observability; a nil sink disables them.
type EventSink interface {
	SwapExecuted(SwapEvent)
	LiquidityAdded(AddLiquidityEvent)
	LiquidityRemoved(RemoveLiquidityEvent)
}
