package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/pondlabs/pond/x/amm/types"
)

func validGenesis() *types.GenesisState {
	addr1 := sdk.AccAddress([]byte("provider000000000001")).String()
	addr2 := sdk.AccAddress([]byte("provider000000000002")).String()

	return &types.GenesisState{
		Params: types.DefaultParams(),
		Pools: []types.Pool{{
			Id:          1,
			TokenA:      "upond",
			TokenB:      "uusdt",
			ReserveA:    math.NewInt(1000),
			ReserveB:    math.NewInt(2000),
			TotalShares: math.NewInt(1414),
		}},
		Positions: []types.Position{
			{PoolId: 1, Address: addr1, Shares: math.NewInt(1000)},
			{PoolId: 1, Address: addr2, Shares: math.NewInt(414)},
		},
		NextPoolId: 2,
	}
}

func TestGenesisStateValidate(t *testing.T) {
	require.NoError(t, types.DefaultGenesis().Validate())
	require.NoError(t, validGenesis().Validate())

	tests := []struct {
		name   string
		mutate func(*types.GenesisState)
	}{
		{
			name:   "zero next pool id",
			mutate: func(gs *types.GenesisState) { gs.NextPoolId = 0 },
		},
		{
			name: "pool id beyond counter",
			mutate: func(gs *types.GenesisState) {
				gs.Pools[0].Id = 5
				gs.Positions[0].PoolId = 5
				gs.Positions[1].PoolId = 5
			},
		},
		{
			name: "duplicate pool id",
			mutate: func(gs *types.GenesisState) {
				dup := gs.Pools[0]
				dup.TokenA, dup.TokenB = "uatom", "upond"
				gs.Pools = append(gs.Pools, dup)
				gs.NextPoolId = 3
			},
		},
		{
			name: "duplicate pair",
			mutate: func(gs *types.GenesisState) {
				dup := gs.Pools[0]
				dup.Id = 2
				gs.Pools = append(gs.Pools, dup)
				gs.Positions = append(gs.Positions, types.Position{
					PoolId:  2,
					Address: gs.Positions[0].Address,
					Shares:  dup.TotalShares,
				})
				gs.NextPoolId = 3
			},
		},
		{
			name:   "invalid pool",
			mutate: func(gs *types.GenesisState) { gs.Pools[0].ReserveA = math.NewInt(-1) },
		},
		{
			name: "position for unknown pool",
			mutate: func(gs *types.GenesisState) {
				gs.Positions = append(gs.Positions, types.Position{
					PoolId:  9,
					Address: gs.Positions[0].Address,
					Shares:  math.NewInt(1),
				})
			},
		},
		{
			name: "duplicate position",
			mutate: func(gs *types.GenesisState) {
				gs.Positions = append(gs.Positions, gs.Positions[0])
			},
		},
		{
			name:   "shares do not sum to total",
			mutate: func(gs *types.GenesisState) { gs.Positions[1].Shares = math.NewInt(400) },
		},
		{
			name:   "pool with shares but no positions",
			mutate: func(gs *types.GenesisState) { gs.Positions = nil },
		},
		{
			name:   "invalid params",
			mutate: func(gs *types.GenesisState) { gs.Params.FeeDenominator = 0 },
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gs := validGenesis()
			tc.mutate(gs)
			require.Error(t, gs.Validate())
		})
	}
}
