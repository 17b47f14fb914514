package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/pondlabs/pond/x/amm/types"
)

// QuoteOutput computes the constant-product output for an exact input.
// The fee is taken from the input side first, then the invariant is
// solved for the output, flooring at every division:
//
//	afterFee = amountIn * (feeDen - feeNum) / feeDen
//	amountOut = afterFee * reserveOut / (reserveIn + afterFee)
//
// The result is strictly less than reserveOut, so a swap can never
// drain a pool. Pure function, no state access.
func QuoteOutput(amountIn, reserveIn, reserveOut math.Int, feeNum, feeDen uint64) (math.Int, error) {
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.Int{}, types.ErrInvalidAmount.Wrap("amount in must be positive")
	}
	if reserveIn.IsNil() || reserveOut.IsNil() || !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.Int{}, types.ErrNoLiquidity.Wrap("cannot quote against empty reserves")
	}
	if feeDen == 0 || feeNum >= feeDen {
		return math.Int{}, types.ErrInvalidAmount.Wrapf("invalid fee %d/%d", feeNum, feeDen)
	}

	keep := math.NewIntFromUint64(feeDen - feeNum)
	afterFee, err := SafeMulDiv(amountIn, keep, math.NewIntFromUint64(feeDen))
	if err != nil {
		return math.Int{}, err
	}
	if afterFee.IsZero() {
		return math.ZeroInt(), nil
	}

	denominator, err := SafeAdd(reserveIn, afterFee)
	if err != nil {
		return math.Int{}, err
	}

	return SafeMulDiv(afterFee, reserveOut, denominator)
}

// SpotPrice returns the marginal price of the input token in units of
// the output token, ignoring fees and price impact.
func SpotPrice(reserveIn, reserveOut math.Int) (math.LegacyDec, error) {
	if reserveIn.IsNil() || reserveOut.IsNil() || !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.LegacyDec{}, types.ErrNoLiquidity.Wrap("cannot price empty reserves")
	}
	return math.LegacyNewDecFromInt(reserveOut).Quo(math.LegacyNewDecFromInt(reserveIn)), nil
}

// GetSpotPrice returns the spot price for selling denomIn into a pool.
func (k Keeper) GetSpotPrice(ctx context.Context, poolID uint64, denomIn string) (math.LegacyDec, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.LegacyDec{}, err
	}
	if !pool.HasDenom(denomIn) {
		return math.LegacyDec{}, types.ErrInvalidTokenPair.Wrapf("denom %s not in pool %d", denomIn, poolID)
	}

	reserveIn, reserveOut := pool.Reserves(denomIn)
	return SpotPrice(reserveIn, reserveOut)
}
