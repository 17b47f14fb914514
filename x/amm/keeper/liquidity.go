package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pondlabs/pond/x/amm/types"
)

// checkDeadline rejects operations past their caller-supplied deadline.
// A zero deadline means no deadline.
func checkDeadline(ctx sdk.Context, deadline int64) error {
	if deadline > 0 && ctx.BlockTime().Unix() > deadline {
		return types.ErrDeadlineExceeded.Wrapf(
			"deadline %d passed at block time %d", deadline, ctx.BlockTime().Unix(),
		)
	}
	return nil
}

// AddLiquidity deposits both pool tokens in exchange for shares.
//
// For the first deposit into an empty pool the desired amounts are
// taken as-is and the share mint is floor(sqrt(amountA * amountB)).
// For later deposits the amounts are locked to the current reserve
// ratio: one desired amount is used in full and the other is scaled
// down, never up. Each actual amount must clear its min bound.
//
// Shares are minted at min(dA*S/rA, dB*S/rB) so rounding can never
// favor the depositor.
func (k Keeper) AddLiquidity(
	ctx context.Context,
	provider sdk.AccAddress,
	poolID uint64,
	amountADesired, amountBDesired math.Int,
	amountAMin, amountBMin math.Int,
	deadline int64,
) (amountA, amountB, shares math.Int, err error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if amountADesired.IsNil() || !amountADesired.IsPositive() {
		return math.Int{}, math.Int{}, math.Int{}, types.ErrInvalidAmount.Wrap("desired amount A must be positive")
	}
	if amountBDesired.IsNil() || !amountBDesired.IsPositive() {
		return math.Int{}, math.Int{}, math.Int{}, types.ErrInvalidAmount.Wrap("desired amount B must be positive")
	}
	if amountAMin.IsNil() || amountAMin.IsNegative() || amountBMin.IsNil() || amountBMin.IsNegative() {
		return math.Int{}, math.Int{}, math.Int{}, types.ErrInvalidAmount.Wrap("min amounts cannot be negative")
	}
	if err := checkDeadline(sdkCtx, deadline); err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}

	err = k.WithReentrancyGuard(ctx, poolID, "add_liquidity", func() error {
		pool, err := k.GetPool(ctx, poolID)
		if err != nil {
			return err
		}
		if err := k.ValidatePoolState(pool); err != nil {
			return err
		}

		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}

		if pool.IsEmpty() {
			// First deposit sets the price; the declared amounts are
			// accepted as-is.
			amountA, amountB = amountADesired, amountBDesired

			product, err := SafeMul(amountA, amountB)
			if err != nil {
				return err
			}
			shares, err = IntSqrt(product)
			if err != nil {
				return err
			}
			if shares.IsZero() || shares.LT(params.MinInitialShares) {
				return types.ErrMintFailed.Wrapf(
					"initial deposit mints %s shares, minimum is %s",
					shares, params.MinInitialShares,
				)
			}
		} else {
			// Lock the deposit to the current reserve ratio. Scale one
			// side down, never up.
			amountBOptimal, err := SafeMulDiv(amountADesired, pool.ReserveB, pool.ReserveA)
			if err != nil {
				return err
			}
			if amountBOptimal.LTE(amountBDesired) {
				if amountADesired.LT(amountAMin) {
					return types.ErrSlippageExceeded.Wrapf(
						"amount A %s below minimum %s", amountADesired, amountAMin,
					)
				}
				if amountBOptimal.LT(amountBMin) {
					return types.ErrSlippageExceeded.Wrapf(
						"amount B %s below minimum %s", amountBOptimal, amountBMin,
					)
				}
				amountA, amountB = amountADesired, amountBOptimal
			} else {
				amountAOptimal, err := SafeMulDiv(amountBDesired, pool.ReserveA, pool.ReserveB)
				if err != nil {
					return err
				}
				if amountAOptimal.GT(amountADesired) {
					return types.ErrInvalidAmount.Wrap("optimal amounts exceed both desired amounts")
				}
				if amountAOptimal.LT(amountAMin) {
					return types.ErrSlippageExceeded.Wrapf(
						"amount A %s below minimum %s", amountAOptimal, amountAMin,
					)
				}
				if amountBDesired.LT(amountBMin) {
					return types.ErrSlippageExceeded.Wrapf(
						"amount B %s below minimum %s", amountBDesired, amountBMin,
					)
				}
				amountA, amountB = amountAOptimal, amountBDesired
			}

			if !amountA.IsPositive() || !amountB.IsPositive() {
				return types.ErrInvalidAmount.Wrap("deposit rounds to zero on one side")
			}

			sharesFromA, err := SafeMulDiv(amountA, pool.TotalShares, pool.ReserveA)
			if err != nil {
				return err
			}
			sharesFromB, err := SafeMulDiv(amountB, pool.TotalShares, pool.ReserveB)
			if err != nil {
				return err
			}
			shares = math.MinInt(sharesFromA, sharesFromB)
			if shares.IsZero() {
				return types.ErrMintFailed.Wrap("deposit too small to mint shares")
			}
		}

		// Pull funds before touching the ledger.
		coins := sdk.NewCoins(
			sdk.NewCoin(pool.TokenA, amountA),
			sdk.NewCoin(pool.TokenB, amountB),
		)
		if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, provider, types.ModuleName, coins); err != nil {
			return types.ErrInsufficientLiquidity.Wrapf("failed to transfer tokens: %v", err)
		}

		// Reserves are updated arithmetically, never re-read from the
		// bank, so donations cannot skew the ledger.
		pool.ReserveA, err = SafeAdd(pool.ReserveA, amountA)
		if err != nil {
			return err
		}
		pool.ReserveB, err = SafeAdd(pool.ReserveB, amountB)
		if err != nil {
			return err
		}
		pool.TotalShares, err = SafeAdd(pool.TotalShares, shares)
		if err != nil {
			return err
		}

		position, err := k.GetLiquidity(ctx, poolID, provider)
		if err != nil {
			return err
		}
		newPosition, err := SafeAdd(position, shares)
		if err != nil {
			return err
		}

		if err := k.SetPool(ctx, pool); err != nil {
			return err
		}
		if err := k.SetLiquidity(ctx, poolID, provider, newPosition); err != nil {
			return err
		}

		poolLabel := fmt.Sprintf("%d", poolID)
		m := GetAMMMetrics()
		m.LiquidityAdded.WithLabelValues(poolLabel, pool.TokenA).Add(metricAmount(amountA))
		m.LiquidityAdded.WithLabelValues(poolLabel, pool.TokenB).Add(metricAmount(amountB))
		m.ShareSupply.WithLabelValues(poolLabel).Set(metricAmount(pool.TotalShares))

		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeAddLiquidity,
				sdk.NewAttribute(types.AttributeKeyPoolID, poolLabel),
				sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
				sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
				sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
				sdk.NewAttribute(types.AttributeKeySharesMinted, shares.String()),
			),
		)

		k.Logger(sdkCtx).Info("liquidity added",
			"pool_id", poolID,
			"provider", provider.String(),
			"amount_a", amountA.String(),
			"amount_b", amountB.String(),
			"shares", shares.String(),
		)

		return nil
	})
	if err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}

	return amountA, amountB, shares, nil
}

// RemoveLiquidity burns shares and pays out the proportional reserves.
// Output amounts floor, so value rounds toward the remaining
// providers. State is written before coins leave the module account.
func (k Keeper) RemoveLiquidity(
	ctx context.Context,
	provider sdk.AccAddress,
	poolID uint64,
	shares math.Int,
	amountAMin, amountBMin math.Int,
	deadline int64,
) (amountA, amountB math.Int, err error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if shares.IsNil() || !shares.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrInvalidAmount.Wrap("shares must be positive")
	}
	if amountAMin.IsNil() || amountAMin.IsNegative() || amountBMin.IsNil() || amountBMin.IsNegative() {
		return math.Int{}, math.Int{}, types.ErrInvalidAmount.Wrap("min amounts cannot be negative")
	}
	if err := checkDeadline(sdkCtx, deadline); err != nil {
		return math.Int{}, math.Int{}, err
	}

	err = k.WithReentrancyGuard(ctx, poolID, "remove_liquidity", func() error {
		pool, err := k.GetPool(ctx, poolID)
		if err != nil {
			return err
		}
		if err := k.ValidatePoolState(pool); err != nil {
			return err
		}
		if pool.IsEmpty() {
			return types.ErrNoLiquidity.Wrapf("pool %d has no liquidity", poolID)
		}

		position, err := k.GetLiquidity(ctx, poolID, provider)
		if err != nil {
			return err
		}
		if shares.GT(position) {
			return types.ErrInsufficientShares.Wrapf(
				"requested %s shares, position holds %s", shares, position,
			)
		}

		amountA, err = SafeMulDiv(shares, pool.ReserveA, pool.TotalShares)
		if err != nil {
			return err
		}
		amountB, err = SafeMulDiv(shares, pool.ReserveB, pool.TotalShares)
		if err != nil {
			return err
		}
		if amountA.IsZero() && amountB.IsZero() {
			return types.ErrInsufficientLiquidity.Wrap("shares round to zero output")
		}

		if amountA.LT(amountAMin) {
			return types.ErrSlippageExceeded.Wrapf("amount A %s below minimum %s", amountA, amountAMin)
		}
		if amountB.LT(amountBMin) {
			return types.ErrSlippageExceeded.Wrapf("amount B %s below minimum %s", amountB, amountBMin)
		}

		pool.ReserveA, err = SafeSub(pool.ReserveA, amountA)
		if err != nil {
			return err
		}
		pool.ReserveB, err = SafeSub(pool.ReserveB, amountB)
		if err != nil {
			return err
		}
		pool.TotalShares, err = SafeSub(pool.TotalShares, shares)
		if err != nil {
			return err
		}
		newPosition, err := SafeSub(position, shares)
		if err != nil {
			return err
		}

		// Full exit must leave a clean empty pool.
		if pool.TotalShares.IsZero() && (!pool.ReserveA.IsZero() || !pool.ReserveB.IsZero()) {
			return types.ErrInvariantViolation.Wrapf(
				"pool %d left with reserves %s/%s and no shares",
				poolID, pool.ReserveA, pool.ReserveB,
			)
		}

		if err := k.SetPool(ctx, pool); err != nil {
			return err
		}
		if err := k.SetLiquidity(ctx, poolID, provider, newPosition); err != nil {
			return err
		}

		// Push after all state writes.
		coins := sdk.Coins{}
		if amountA.IsPositive() {
			coins = coins.Add(sdk.NewCoin(pool.TokenA, amountA))
		}
		if amountB.IsPositive() {
			coins = coins.Add(sdk.NewCoin(pool.TokenB, amountB))
		}
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, provider, coins); err != nil {
			return fmt.Errorf("RemoveLiquidity: payout: %w", err)
		}

		poolLabel := fmt.Sprintf("%d", poolID)
		m := GetAMMMetrics()
		m.LiquidityRemoved.WithLabelValues(poolLabel, pool.TokenA).Add(metricAmount(amountA))
		m.LiquidityRemoved.WithLabelValues(poolLabel, pool.TokenB).Add(metricAmount(amountB))
		m.ShareSupply.WithLabelValues(poolLabel).Set(metricAmount(pool.TotalShares))

		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeRemoveLiquidity,
				sdk.NewAttribute(types.AttributeKeyPoolID, poolLabel),
				sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
				sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
				sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
				sdk.NewAttribute(types.AttributeKeySharesBurned, shares.String()),
			),
		)

		k.Logger(sdkCtx).Info("liquidity removed",
			"pool_id", poolID,
			"provider", provider.String(),
			"amount_a", amountA.String(),
			"amount_b", amountB.String(),
			"shares", shares.String(),
		)

		return nil
	})
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	return amountA, amountB, nil
}
