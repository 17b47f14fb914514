package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/pondlabs/pond/testutil/keeper"
	"github.com/pondlabs/pond/x/amm/types"
)

func TestGenesisRoundTrip(t *testing.T) {
	k, bk, ctx, poolID := seedPool(t, 1000, 2000)

	other := sdk.AccAddress([]byte("provider000000000002"))
	testkeeper.FundAccount(t, ctx, bk, other, sdk.NewCoins(
		sdk.NewCoin(denomA, math.NewInt(1_000_000)),
		sdk.NewCoin(denomB, math.NewInt(1_000_000)),
	))
	_, _, _, err := k.AddLiquidity(ctx, other, poolID,
		math.NewInt(500), math.NewInt(1000),
		math.ZeroInt(), math.ZeroInt(), 0)
	require.NoError(t, err)

	exported, err := k.ExportGenesis(ctx)
	require.NoError(t, err)
	require.NoError(t, exported.Validate())
	require.Len(t, exported.Pools, 1)
	require.Len(t, exported.Positions, 2)
	require.Equal(t, poolID+1, exported.NextPoolId)

	// Replay the export into a fresh keeper.
	k2, _, ctx2 := testkeeper.AMMKeeper(t)
	require.NoError(t, k2.InitGenesis(ctx2, *exported))

	reexported, err := k2.ExportGenesis(ctx2)
	require.NoError(t, err)
	require.Equal(t, exported, reexported)

	pool, err := k2.GetPool(ctx2, poolID)
	require.NoError(t, err)
	require.Equal(t, int64(1500), pool.ReserveA.Int64())
	require.Equal(t, int64(3000), pool.ReserveB.Int64())

	// The pair index survives the round trip.
	byPair, err := k2.GetPoolByDenoms(ctx2, denomA, denomB)
	require.NoError(t, err)
	require.Equal(t, poolID, byPair.Id)

	shares, err := k2.GetLiquidity(ctx2, poolID, provider)
	require.NoError(t, err)
	require.Equal(t, int64(1414), shares.Int64())
}

func TestGenesisDefault(t *testing.T) {
	k, _, ctx := testkeeper.AMMKeeper(t)

	genesis := types.DefaultGenesis()
	require.NoError(t, genesis.Validate())
	require.NoError(t, k.InitGenesis(ctx, *genesis))

	exported, err := k.ExportGenesis(ctx)
	require.NoError(t, err)
	require.Empty(t, exported.Pools)
	require.Empty(t, exported.Positions)
	require.Equal(t, types.DefaultParams(), exported.Params)
}

func TestGenesisRejectsInvalidPool(t *testing.T) {
	k, _, ctx := testkeeper.AMMKeeper(t)

	genesis := types.DefaultGenesis()
	genesis.NextPoolId = 2
	genesis.Pools = []types.Pool{{
		Id:          1,
		TokenA:      denomA,
		TokenB:      denomA,
		ReserveA:    math.ZeroInt(),
		ReserveB:    math.ZeroInt(),
		TotalShares: math.ZeroInt(),
	}}
	require.Error(t, k.InitGenesis(ctx, *genesis))
}
