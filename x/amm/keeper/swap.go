package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pondlabs/pond/x/amm/types"
)

// SwapExactIn sells an exact amount of tokenIn for the opposite pool
// token. The full input, fee included, is added to the input reserve
// so the fee accrues to liquidity providers. Funds are pulled before
// they are pushed, and a post-trade constant product check backs the
// pricing math.
func (k Keeper) SwapExactIn(
	ctx context.Context,
	trader sdk.AccAddress,
	poolID uint64,
	tokenIn string,
	amountIn math.Int,
	minAmountOut math.Int,
	deadline int64,
) (amountOut math.Int, err error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.Int{}, types.ErrInvalidAmount.Wrap("amount in must be positive")
	}
	if minAmountOut.IsNil() || minAmountOut.IsNegative() {
		return math.Int{}, types.ErrInvalidAmount.Wrap("min amount out cannot be negative")
	}
	if err := checkDeadline(sdkCtx, deadline); err != nil {
		return math.Int{}, err
	}

	err = k.WithReentrancyGuard(ctx, poolID, "swap", func() error {
		pool, err := k.GetPool(ctx, poolID)
		if err != nil {
			return err
		}
		if err := k.ValidatePoolState(pool); err != nil {
			return err
		}
		if !pool.HasDenom(tokenIn) {
			return types.ErrInvalidTokenPair.Wrapf("denom %s not in pool %d", tokenIn, poolID)
		}
		if !pool.HasLiquidity() {
			return types.ErrNoLiquidity.Wrapf("pool %d has no liquidity", poolID)
		}

		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}

		tokenOut := pool.OtherDenom(tokenIn)
		reserveIn, reserveOut := pool.Reserves(tokenIn)

		oldK, err := SafeMul(pool.ReserveA, pool.ReserveB)
		if err != nil {
			return err
		}

		amountOut, err = QuoteOutput(amountIn, reserveIn, reserveOut, params.FeeNumerator, params.FeeDenominator)
		if err != nil {
			return err
		}
		if amountOut.IsZero() {
			return types.ErrInsufficientLiquidity.Wrap("swap output rounds to zero")
		}
		if amountOut.LT(minAmountOut) {
			return types.ErrSlippageExceeded.Wrapf(
				"amount out %s below minimum %s", amountOut, minAmountOut,
			)
		}

		// Pull the input before pushing the output.
		if err := k.bankKeeper.SendCoinsFromAccountToModule(
			ctx, trader, types.ModuleName, sdk.NewCoins(sdk.NewCoin(tokenIn, amountIn)),
		); err != nil {
			return types.ErrInsufficientLiquidity.Wrapf("failed to transfer input: %v", err)
		}

		// The whole input, fee included, joins the reserve.
		newReserveIn, err := SafeAdd(reserveIn, amountIn)
		if err != nil {
			return err
		}
		newReserveOut, err := SafeSub(reserveOut, amountOut)
		if err != nil {
			return err
		}

		if tokenIn == pool.TokenA {
			pool.ReserveA, pool.ReserveB = newReserveIn, newReserveOut
		} else {
			pool.ReserveA, pool.ReserveB = newReserveOut, newReserveIn
		}

		if err := k.ValidatePoolInvariant(pool, oldK); err != nil {
			GetAMMMetrics().InvariantFailures.WithLabelValues(fmt.Sprintf("%d", poolID)).Inc()
			return err
		}

		if err := k.SetPool(ctx, pool); err != nil {
			return err
		}

		if err := k.bankKeeper.SendCoinsFromModuleToAccount(
			ctx, types.ModuleName, trader, sdk.NewCoins(sdk.NewCoin(tokenOut, amountOut)),
		); err != nil {
			return fmt.Errorf("SwapExactIn: payout: %w", err)
		}

		poolLabel := fmt.Sprintf("%d", poolID)
		m := GetAMMMetrics()
		m.SwapsTotal.WithLabelValues(poolLabel, tokenIn, tokenOut).Inc()
		m.SwapVolume.WithLabelValues(poolLabel, tokenIn).Add(metricAmount(amountIn))
		m.PoolReserves.WithLabelValues(poolLabel, pool.TokenA).Set(metricAmount(pool.ReserveA))
		m.PoolReserves.WithLabelValues(poolLabel, pool.TokenB).Set(metricAmount(pool.ReserveB))

		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeSwap,
				sdk.NewAttribute(types.AttributeKeyPoolID, poolLabel),
				sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
				sdk.NewAttribute(types.AttributeKeyTokenIn, tokenIn),
				sdk.NewAttribute(types.AttributeKeyTokenOut, tokenOut),
				sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
				sdk.NewAttribute(types.AttributeKeyAmountOut, amountOut.String()),
			),
		)

		k.Logger(sdkCtx).Info("swap executed",
			"pool_id", poolID,
			"trader", trader.String(),
			"token_in", tokenIn,
			"amount_in", amountIn.String(),
			"token_out", tokenOut,
			"amount_out", amountOut.String(),
		)

		return nil
	})
	if err != nil {
		return math.Int{}, err
	}

	return amountOut, nil
}

// SimulateSwap quotes a swap against current reserves without touching
// state or funds.
func (k Keeper) SimulateSwap(ctx context.Context, poolID uint64, tokenIn string, amountIn math.Int) (math.Int, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.Int{}, err
	}
	if !pool.HasDenom(tokenIn) {
		return math.Int{}, types.ErrInvalidTokenPair.Wrapf("denom %s not in pool %d", tokenIn, poolID)
	}
	if !pool.HasLiquidity() {
		return math.Int{}, types.ErrNoLiquidity.Wrapf("pool %d has no liquidity", poolID)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.Int{}, err
	}

	reserveIn, reserveOut := pool.Reserves(tokenIn)
	return QuoteOutput(amountIn, reserveIn, reserveOut, params.FeeNumerator, params.FeeDenominator)
}
