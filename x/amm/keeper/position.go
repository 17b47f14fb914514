package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pondlabs/pond/x/amm/types"
)

// GetLiquidity returns the share balance of a provider in a pool.
// Returns zero for providers without a position.
func (k Keeper) GetLiquidity(ctx context.Context, poolID uint64, provider sdk.AccAddress) (math.Int, error) {
	store := k.getStore(ctx)
	bz := store.Get(PositionKey(poolID, provider))
	if bz == nil {
		return math.ZeroInt(), nil
	}

	var shares math.Int
	if err := shares.Unmarshal(bz); err != nil {
		return math.Int{}, fmt.Errorf("GetLiquidity: unmarshal shares: %w", err)
	}
	return shares, nil
}

// SetLiquidity stores a provider's share balance. A zero balance
// deletes the position so iteration only sees live positions.
func (k Keeper) SetLiquidity(ctx context.Context, poolID uint64, provider sdk.AccAddress, shares math.Int) error {
	store := k.getStore(ctx)
	key := PositionKey(poolID, provider)

	if shares.IsNegative() {
		return types.ErrInvalidAmount.Wrapf("negative shares %s", shares)
	}
	if shares.IsZero() {
		store.Delete(key)
		return nil
	}

	bz, err := shares.Marshal()
	if err != nil {
		return fmt.Errorf("SetLiquidity: marshal shares: %w", err)
	}
	store.Set(key, bz)
	return nil
}

// IteratePoolPositions iterates positions of one pool
func (k Keeper) IteratePoolPositions(ctx context.Context, poolID uint64, cb func(provider sdk.AccAddress, shares math.Int) (stop bool)) error {
	store := k.getStore(ctx)
	prefix := PositionKeyByPoolPrefix(poolID)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		provider := sdk.AccAddress(iterator.Key()[len(prefix):])

		var shares math.Int
		if err := shares.Unmarshal(iterator.Value()); err != nil {
			return fmt.Errorf("IteratePoolPositions: unmarshal shares: %w", err)
		}
		if cb(provider, shares) {
			break
		}
	}
	return nil
}

// GetAllPositions returns every position across all pools, ordered by
// pool id then provider address. Used by genesis export and invariants.
func (k Keeper) GetAllPositions(ctx context.Context) ([]types.Position, error) {
	pools, err := k.GetAllPools(ctx)
	if err != nil {
		return nil, err
	}

	var positions []types.Position
	for _, pool := range pools {
		err := k.IteratePoolPositions(ctx, pool.Id, func(provider sdk.AccAddress, shares math.Int) bool {
			positions = append(positions, types.Position{
				PoolId:  pool.Id,
				Address: provider.String(),
				Shares:  shares,
			})
			return false
		})
		if err != nil {
			return nil, err
		}
	}
	return positions, nil
}
