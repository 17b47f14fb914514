package keeper_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pondlabs/pond/x/amm/keeper"
	"github.com/pondlabs/pond/x/amm/types"
)

func TestQuerier(t *testing.T) {
	k, _, ctx, poolID := seedPool(t, 1000, 2000)
	querier := keeper.NewQuerier(*k)

	bz, err := querier(ctx, []string{keeper.QueryParams})
	require.NoError(t, err)
	var params types.Params
	require.NoError(t, json.Unmarshal(bz, &params))
	require.Equal(t, types.DefaultParams(), params)

	bz, err = querier(ctx, []string{keeper.QueryPool, "1"})
	require.NoError(t, err)
	var pool types.Pool
	require.NoError(t, json.Unmarshal(bz, &pool))
	require.Equal(t, poolID, pool.Id)
	require.Equal(t, int64(1000), pool.ReserveA.Int64())

	bz, err = querier(ctx, []string{keeper.QueryPools})
	require.NoError(t, err)
	var pools []types.Pool
	require.NoError(t, json.Unmarshal(bz, &pools))
	require.Len(t, pools, 1)

	bz, err = querier(ctx, []string{keeper.QueryPoolByPair, denomB, denomA})
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(bz, &pool))
	require.Equal(t, poolID, pool.Id)

	bz, err = querier(ctx, []string{keeper.QueryLiquidity, "1", provider.String()})
	require.NoError(t, err)
	var position types.Position
	require.NoError(t, json.Unmarshal(bz, &position))
	require.Equal(t, int64(1414), position.Shares.Int64())

	bz, err = querier(ctx, []string{keeper.QuerySimulateSwap, "1", denomA, "100"})
	require.NoError(t, err)
	var quote types.MsgSwapExactInResponse
	require.NoError(t, json.Unmarshal(bz, &quote))
	require.True(t, quote.AmountOut.IsPositive())

	bz, err = querier(ctx, []string{keeper.QuerySpotPrice, "1", denomA})
	require.NoError(t, err)

	_, err = querier(ctx, []string{"nope"})
	require.Error(t, err)

	_, err = querier(ctx, []string{keeper.QueryPool, "999"})
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}
