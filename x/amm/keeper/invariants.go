package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pondlabs/pond/x/amm/types"
)

// RegisterInvariants registers all AMM invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "reserve-backing", ReserveBackingInvariant(k))
	ir.RegisterRoute(types.ModuleName, "share-conservation", ShareConservationInvariant(k))
	ir.RegisterRoute(types.ModuleName, "pool-state", PoolStateInvariant(k))
}

// AllInvariants runs all invariants of the AMM module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := ReserveBackingInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = ShareConservationInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return PoolStateInvariant(k)(ctx)
	}
}

// ReserveBackingInvariant checks that the module account holds at least
// the sum of all pool reserves per denom. The balance may exceed the
// sum when coins are donated directly to the module address.
func ReserveBackingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		totalReserves := make(map[string]math.Int)
		pools, err := k.GetAllPools(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "reserve-backing", err.Error()), true
		}

		for _, pool := range pools {
			for _, side := range []struct {
				denom  string
				amount math.Int
			}{
				{pool.TokenA, pool.ReserveA},
				{pool.TokenB, pool.ReserveB},
			} {
				if existing, ok := totalReserves[side.denom]; ok {
					totalReserves[side.denom] = existing.Add(side.amount)
				} else {
					totalReserves[side.denom] = side.amount
				}
			}
		}

		moduleAddr := k.GetModuleAddress()
		for denom, required := range totalReserves {
			balance := k.bankKeeper.GetBalance(ctx, moduleAddr, denom)
			if balance.Amount.LT(required) {
				count++
				msg += fmt.Sprintf("token %s: module balance (%s) < total reserves (%s)\n",
					denom, balance.Amount.String(), required.String())
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "reserve-backing",
			fmt.Sprintf("found %d tokens with insufficient module balance\n%s", count, msg),
		), broken
	}
}

// ShareConservationInvariant checks that position shares of every pool
// sum exactly to its total share supply.
func ShareConservationInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		pools, err := k.GetAllPools(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "share-conservation", err.Error()), true
		}

		for _, pool := range pools {
			sum := math.ZeroInt()
			err := k.IteratePoolPositions(ctx, pool.Id, func(_ sdk.AccAddress, shares math.Int) bool {
				sum = sum.Add(shares)
				return false
			})
			if err != nil {
				return sdk.FormatInvariant(types.ModuleName, "share-conservation", err.Error()), true
			}

			if !sum.Equal(pool.TotalShares) {
				count++
				msg += fmt.Sprintf("pool %d: position shares (%s) != total shares (%s)\n",
					pool.Id, sum.String(), pool.TotalShares.String())
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "share-conservation",
			fmt.Sprintf("found %d pools with share mismatch\n%s", count, msg),
		), broken
	}
}

// PoolStateInvariant checks structural pool integrity: canonical token
// order, non-negative amounts, and shares present exactly when
// reserves are.
func PoolStateInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		pools, err := k.GetAllPools(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "pool-state", err.Error()), true
		}

		for _, pool := range pools {
			pool := pool
			if pool.Id == 0 {
				count++
				msg += "pool has zero ID\n"
			}
			if err := pool.Validate(); err != nil {
				count++
				msg += fmt.Sprintf("pool %d: %v\n", pool.Id, err)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "pool-state",
			fmt.Sprintf("found %d invalid pools\n%s", count, msg),
		), broken
	}
}
