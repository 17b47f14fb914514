package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/pondlabs/pond/testutil/keeper"
	"github.com/pondlabs/pond/x/amm/keeper"
	"github.com/pondlabs/pond/x/amm/types"
)

func TestMsgServerLifecycle(t *testing.T) {
	k, bk, ctx := testkeeper.AMMKeeper(t)
	srv := keeper.NewMsgServerImpl(*k)

	testkeeper.FundAccount(t, ctx, bk, provider, sdk.NewCoins(
		sdk.NewCoin(denomA, math.NewInt(1_000_000_000)),
		sdk.NewCoin(denomB, math.NewInt(1_000_000_000)),
	))
	testkeeper.FundAccount(t, ctx, bk, trader, sdk.NewCoins(
		sdk.NewCoin(denomA, math.NewInt(10_000)),
	))

	created, err := srv.CreatePool(ctx, types.NewMsgCreatePool(provider.String(), denomA, denomB))
	require.NoError(t, err)
	require.Equal(t, uint64(1), created.PoolId)

	added, err := srv.AddLiquidity(ctx, types.NewMsgAddLiquidity(
		provider.String(), created.PoolId,
		math.NewInt(1_000_000), math.NewInt(1_000_000),
		math.ZeroInt(), math.ZeroInt(), 0))
	require.NoError(t, err)
	require.Equal(t, int64(1_000_000), added.Shares.Int64())

	swapped, err := srv.SwapExactIn(ctx, types.NewMsgSwapExactIn(
		trader.String(), created.PoolId,
		denomA, math.NewInt(1000), math.NewInt(990), 0))
	require.NoError(t, err)
	require.Equal(t, int64(996), swapped.AmountOut.Int64())

	removed, err := srv.RemoveLiquidity(ctx, types.NewMsgRemoveLiquidity(
		provider.String(), created.PoolId,
		math.NewInt(500_000), math.ZeroInt(), math.ZeroInt(), 0))
	require.NoError(t, err)
	require.True(t, removed.AmountA.IsPositive())
	require.True(t, removed.AmountB.IsPositive())
}

func TestMsgServerRejectsInvalidMsg(t *testing.T) {
	k, _, ctx := testkeeper.AMMKeeper(t)
	srv := keeper.NewMsgServerImpl(*k)

	_, err := srv.CreatePool(ctx, types.NewMsgCreatePool("bad-address", denomA, denomB))
	require.ErrorIs(t, err, types.ErrInvalidAddress)

	_, err = srv.SwapExactIn(ctx, types.NewMsgSwapExactIn(
		provider.String(), 1, denomA, math.ZeroInt(), math.ZeroInt(), 0))
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}
