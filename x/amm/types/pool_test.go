package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/pondlabs/pond/x/amm/types"
)

func validPool() types.Pool {
	return types.Pool{
		Id:          1,
		TokenA:      "upond",
		TokenB:      "uusdt",
		ReserveA:    math.NewInt(1000),
		ReserveB:    math.NewInt(2000),
		TotalShares: math.NewInt(1414),
	}
}

func TestNewPoolCanonicalOrder(t *testing.T) {
	pool := types.NewPool(1, "uusdt", "upond", "")
	require.Equal(t, "upond", pool.TokenA)
	require.Equal(t, "uusdt", pool.TokenB)
	require.True(t, pool.IsEmpty())
	require.False(t, pool.HasLiquidity())
}

func TestPoolOrientation(t *testing.T) {
	pool := validPool()

	require.True(t, pool.HasDenom("upond"))
	require.True(t, pool.HasDenom("uusdt"))
	require.False(t, pool.HasDenom("uatom"))
	require.Equal(t, "uusdt", pool.OtherDenom("upond"))
	require.Equal(t, "upond", pool.OtherDenom("uusdt"))

	in, out := pool.Reserves("upond")
	require.Equal(t, pool.ReserveA, in)
	require.Equal(t, pool.ReserveB, out)

	in, out = pool.Reserves("uusdt")
	require.Equal(t, pool.ReserveB, in)
	require.Equal(t, pool.ReserveA, out)
}

func TestPoolValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.Pool)
		err    error
	}{
		{name: "valid", mutate: func(*types.Pool) {}},
		{
			name:   "bad denom",
			mutate: func(p *types.Pool) { p.TokenA = "" },
			err:    types.ErrInvalidTokenDenom,
		},
		{
			name:   "identical tokens",
			mutate: func(p *types.Pool) { p.TokenB = p.TokenA },
			err:    types.ErrInvalidTokenPair,
		},
		{
			name:   "out of canonical order",
			mutate: func(p *types.Pool) { p.TokenA, p.TokenB = p.TokenB, p.TokenA },
			err:    types.ErrInvalidPoolState,
		},
		{
			name:   "nil reserve",
			mutate: func(p *types.Pool) { p.ReserveA = math.Int{} },
			err:    types.ErrInvalidPoolState,
		},
		{
			name:   "negative reserve",
			mutate: func(p *types.Pool) { p.ReserveB = math.NewInt(-1) },
			err:    types.ErrInvalidPoolState,
		},
		{
			name:   "shares without reserves",
			mutate: func(p *types.Pool) { p.ReserveA, p.ReserveB = math.ZeroInt(), math.ZeroInt() },
			err:    types.ErrInvalidPoolState,
		},
		{
			name:   "reserves without shares",
			mutate: func(p *types.Pool) { p.TotalShares = math.ZeroInt() },
			err:    types.ErrInvalidPoolState,
		},
		{
			name:   "bad creator",
			mutate: func(p *types.Pool) { p.Creator = "not-an-address" },
			err:    types.ErrInvalidAddress,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pool := validPool()
			tc.mutate(&pool)
			err := pool.Validate()
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestPositionValidate(t *testing.T) {
	addr := sdk.AccAddress([]byte("provider000000000001")).String()

	require.NoError(t, types.Position{PoolId: 1, Address: addr, Shares: math.NewInt(5)}.Validate())
	require.ErrorIs(t,
		types.Position{PoolId: 1, Address: "x", Shares: math.NewInt(5)}.Validate(),
		types.ErrInvalidAddress)
	require.ErrorIs(t,
		types.Position{PoolId: 1, Address: addr, Shares: math.ZeroInt()}.Validate(),
		types.ErrInvalidAmount)
}

func TestParamsValidate(t *testing.T) {
	params := types.DefaultParams()
	require.NoError(t, params.Validate())
	require.Equal(t, uint64(3), params.FeeNumerator)
	require.Equal(t, uint64(1000), params.FeeDenominator)

	params = types.DefaultParams()
	params.FeeDenominator = 0
	require.Error(t, params.Validate())

	params = types.DefaultParams()
	params.FeeNumerator = params.FeeDenominator
	require.Error(t, params.Validate())

	params = types.DefaultParams()
	params.MinInitialShares = math.ZeroInt()
	require.Error(t, params.Validate())
}
