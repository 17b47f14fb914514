package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/pondlabs/pond/x/amm/types"
)

var (
	validAddr = sdk.AccAddress([]byte("signer00000000000001")).String()
)

func TestMsgCreatePoolValidateBasic(t *testing.T) {
	tests := []struct {
		name string
		msg  *types.MsgCreatePool
		err  error
	}{
		{
			name: "valid",
			msg:  types.NewMsgCreatePool(validAddr, "upond", "uusdt"),
		},
		{
			name: "invalid creator",
			msg:  types.NewMsgCreatePool("not-bech32", "upond", "uusdt"),
			err:  types.ErrInvalidAddress,
		},
		{
			name: "bad denom",
			msg:  types.NewMsgCreatePool(validAddr, "x", "uusdt"),
			err:  types.ErrInvalidTokenDenom,
		},
		{
			name: "identical denoms",
			msg:  types.NewMsgCreatePool(validAddr, "upond", "upond"),
			err:  types.ErrInvalidTokenPair,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.ValidateBasic()
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMsgAddLiquidityValidateBasic(t *testing.T) {
	valid := func() *types.MsgAddLiquidity {
		return types.NewMsgAddLiquidity(validAddr, 1,
			math.NewInt(1000), math.NewInt(2000),
			math.NewInt(900), math.NewInt(1800), 0)
	}

	tests := []struct {
		name   string
		mutate func(*types.MsgAddLiquidity)
		err    error
	}{
		{name: "valid", mutate: func(*types.MsgAddLiquidity) {}},
		{
			name:   "invalid provider",
			mutate: func(m *types.MsgAddLiquidity) { m.Provider = "" },
			err:    types.ErrInvalidAddress,
		},
		{
			name:   "zero desired amount",
			mutate: func(m *types.MsgAddLiquidity) { m.AmountADesired = math.ZeroInt() },
			err:    types.ErrInvalidAmount,
		},
		{
			name:   "nil desired amount",
			mutate: func(m *types.MsgAddLiquidity) { m.AmountBDesired = math.Int{} },
			err:    types.ErrInvalidAmount,
		},
		{
			name:   "negative min amount",
			mutate: func(m *types.MsgAddLiquidity) { m.AmountAMin = math.NewInt(-1) },
			err:    types.ErrInvalidAmount,
		},
		{
			name:   "min exceeds desired",
			mutate: func(m *types.MsgAddLiquidity) { m.AmountBMin = math.NewInt(2001) },
			err:    types.ErrInvalidAmount,
		},
		{
			name:   "negative deadline",
			mutate: func(m *types.MsgAddLiquidity) { m.Deadline = -1 },
			err:    types.ErrInvalidAmount,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := valid()
			tc.mutate(msg)
			err := msg.ValidateBasic()
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMsgRemoveLiquidityValidateBasic(t *testing.T) {
	valid := func() *types.MsgRemoveLiquidity {
		return types.NewMsgRemoveLiquidity(validAddr, 1,
			math.NewInt(500), math.ZeroInt(), math.ZeroInt(), 100)
	}

	require.NoError(t, valid().ValidateBasic())

	msg := valid()
	msg.Shares = math.ZeroInt()
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAmount)

	msg = valid()
	msg.AmountBMin = math.NewInt(-5)
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAmount)

	msg = valid()
	msg.Provider = "oops"
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAddress)
}

func TestMsgSwapExactInValidateBasic(t *testing.T) {
	valid := func() *types.MsgSwapExactIn {
		return types.NewMsgSwapExactIn(validAddr, 1,
			"upond", math.NewInt(1000), math.NewInt(990), 0)
	}

	require.NoError(t, valid().ValidateBasic())

	msg := valid()
	msg.TokenIn = "!"
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidTokenDenom)

	msg = valid()
	msg.AmountIn = math.NewInt(0)
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAmount)

	msg = valid()
	msg.MinAmountOut = math.NewInt(-1)
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAmount)

	msg = valid()
	msg.Deadline = -10
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAmount)
}

func TestMsgGetSigners(t *testing.T) {
	addr := sdk.AccAddress([]byte("signer00000000000001"))
	msg := types.NewMsgSwapExactIn(addr.String(), 1, "upond", math.NewInt(1), math.ZeroInt(), 0)
	require.Equal(t, []sdk.AccAddress{addr}, msg.GetSigners())

	require.Panics(t, func() {
		types.MsgSwapExactIn{Trader: "bad"}.GetSigners()
	})
}
