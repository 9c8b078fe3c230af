package pool

import "math/big"

// SwapOutput computes the constant-product output amount for a swap of
// amountIn against (reserveIn, reserveOut):
//
//	amountOut = reserveOut - ceil(reserveIn*reserveOut / (reserveIn+amountIn))
//
// The ceiling keeps the post-swap reserve product at or above the pre-swap
// product, so rounding always favors the pool. All inputs must be positive;
// callers validate before calling. dst/t1/t2 are re-used temporaries, the
// result is stored in dst and returned.
func SwapOutput(dst, t1, t2 *big.Int, amountIn, reserveIn, reserveOut *big.Int) *big.Int {
	// t1 = reserveIn * reserveOut (the invariant k)
	t1.Mul(reserveIn, reserveOut)
	// t2 = reserveIn + amountIn
	t2.Add(reserveIn, amountIn)
	// t1 = ceil(k / t2)
	ceilDiv(t1, t1, t2)
	// dst = reserveOut - t1
	return dst.Sub(reserveOut, t1)
}

// ceilDiv stores ceil(x/d) in dst for x > 0, d > 0, computed exactly as
// floor((x-1)/d) + 1. dst may alias x.
func ceilDiv(dst, x, d *big.Int) *big.Int {
	dst.Sub(x, oneInt)
	dst.Div(dst, d)
	return dst.Add(dst, oneInt)
}

var oneInt = big.NewInt(1)
