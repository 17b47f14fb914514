package keeper

import (
	"encoding/json"
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pondlabs/pond/x/amm/types"
)

// Query endpoint names routed under custom/amm/
const (
	QueryParams       = "params"
	QueryPool         = "pool"
	QueryPools        = "pools"
	QueryPoolByPair   = "pool-by-pair"
	QueryLiquidity    = "liquidity"
	QuerySimulateSwap = "simulate-swap"
	QuerySpotPrice    = "spot-price"
)

// NewQuerier returns a legacy ABCI query handler for the amm module.
// Responses are JSON-encoded module types.
func NewQuerier(k Keeper) func(ctx sdk.Context, path []string) ([]byte, error) {
	return func(ctx sdk.Context, path []string) ([]byte, error) {
		if len(path) == 0 {
			return nil, types.ErrInvalidAmount.Wrap("empty query path")
		}

		switch path[0] {
		case QueryParams:
			return queryParams(ctx, k)
		case QueryPool:
			return queryPool(ctx, k, path[1:])
		case QueryPools:
			return queryPools(ctx, k)
		case QueryPoolByPair:
			return queryPoolByPair(ctx, k, path[1:])
		case QueryLiquidity:
			return queryLiquidity(ctx, k, path[1:])
		case QuerySimulateSwap:
			return querySimulateSwap(ctx, k, path[1:])
		case QuerySpotPrice:
			return querySpotPrice(ctx, k, path[1:])
		default:
			return nil, fmt.Errorf("unknown %s query endpoint: %s", types.ModuleName, path[0])
		}
	}
}

func queryParams(ctx sdk.Context, k Keeper) ([]byte, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	return json.Marshal(params)
}

func queryPool(ctx sdk.Context, k Keeper, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, types.ErrInvalidAmount.Wrap("expected pool id")
	}
	poolID, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return nil, types.ErrInvalidAmount.Wrapf("invalid pool id: %s", args[0])
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return nil, err
	}
	return json.Marshal(pool)
}

func queryPools(ctx sdk.Context, k Keeper) ([]byte, error) {
	pools, err := k.GetAllPools(ctx)
	if err != nil {
		return nil, err
	}
	return json.Marshal(pools)
}

func queryPoolByPair(ctx sdk.Context, k Keeper, args []string) ([]byte, error) {
	if len(args) != 2 {
		return nil, types.ErrInvalidAmount.Wrap("expected two denoms")
	}

	pool, err := k.GetPoolByDenoms(ctx, args[0], args[1])
	if err != nil {
		return nil, err
	}
	return json.Marshal(pool)
}

func queryLiquidity(ctx sdk.Context, k Keeper, args []string) ([]byte, error) {
	if len(args) != 2 {
		return nil, types.ErrInvalidAmount.Wrap("expected pool id and address")
	}
	poolID, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return nil, types.ErrInvalidAmount.Wrapf("invalid pool id: %s", args[0])
	}
	provider, err := sdk.AccAddressFromBech32(args[1])
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid provider address: %s", err)
	}

	shares, err := k.GetLiquidity(ctx, poolID, provider)
	if err != nil {
		return nil, err
	}
	return json.Marshal(types.Position{PoolId: poolID, Address: provider.String(), Shares: shares})
}

func querySimulateSwap(ctx sdk.Context, k Keeper, args []string) ([]byte, error) {
	if len(args) != 3 {
		return nil, types.ErrInvalidAmount.Wrap("expected pool id, token in, and amount in")
	}
	poolID, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return nil, types.ErrInvalidAmount.Wrapf("invalid pool id: %s", args[0])
	}
	amountIn, ok := math.NewIntFromString(args[2])
	if !ok {
		return nil, types.ErrInvalidAmount.Wrapf("invalid amount in: %s", args[2])
	}

	amountOut, err := k.SimulateSwap(ctx, poolID, args[1], amountIn)
	if err != nil {
		return nil, err
	}
	return json.Marshal(types.MsgSwapExactInResponse{AmountOut: amountOut})
}

func querySpotPrice(ctx sdk.Context, k Keeper, args []string) ([]byte, error) {
	if len(args) != 2 {
		return nil, types.ErrInvalidAmount.Wrap("expected pool id and denom in")
	}
	poolID, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return nil, types.ErrInvalidAmount.Wrapf("invalid pool id: %s", args[0])
	}

	price, err := k.GetSpotPrice(ctx, poolID, args[1])
	if err != nil {
		return nil, err
	}
	return json.Marshal(price)
}
