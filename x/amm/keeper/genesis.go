package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pondlabs/pond/x/amm/types"
)

// InitGenesis initializes the amm module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	if genState.NextPoolId > 0 {
		k.SetNextPoolID(ctx, genState.NextPoolId)
	}

	for _, pool := range genState.Pools {
		pool := pool
		if err := pool.Validate(); err != nil {
			return fmt.Errorf("invalid pool %d: %w", pool.Id, err)
		}
		if err := k.SetPool(ctx, &pool); err != nil {
			return fmt.Errorf("failed to set pool %d: %w", pool.Id, err)
		}
		if err := k.SetPoolByDenoms(ctx, pool.TokenA, pool.TokenB, pool.Id); err != nil {
			return fmt.Errorf("failed to index pool %d: %w", pool.Id, err)
		}
	}

	for _, pos := range genState.Positions {
		provider, err := sdk.AccAddressFromBech32(pos.Address)
		if err != nil {
			return fmt.Errorf("invalid position address %s: %w", pos.Address, err)
		}
		if err := k.SetLiquidity(ctx, pos.PoolId, provider, pos.Shares); err != nil {
			return fmt.Errorf("failed to set position for pool %d, provider %s: %w",
				pos.PoolId, pos.Address, err)
		}
	}

	return nil
}

// ExportGenesis exports the amm module's state to a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get params: %w", err)
	}

	pools, err := k.GetAllPools(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get pools: %w", err)
	}

	positions, err := k.GetAllPositions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get positions: %w", err)
	}
	if positions == nil {
		positions = []types.Position{}
	}

	return &types.GenesisState{
		Params:     params,
		Pools:      pools,
		Positions:  positions,
		NextPoolId: k.PeekNextPoolID(ctx),
	}, nil
}
