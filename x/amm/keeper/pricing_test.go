package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/pondlabs/pond/x/amm/keeper"
	"github.com/pondlabs/pond/x/amm/types"
)

func TestQuoteOutput(t *testing.T) {
	tests := []struct {
		name       string
		amountIn   int64
		reserveIn  int64
		reserveOut int64
		feeNum     uint64
		feeDen     uint64
		expected   int64
		expErr     error
	}{
		{
			name:       "no fee balanced pool",
			amountIn:   100,
			reserveIn:  1000,
			reserveOut: 1000,
			feeNum:     0,
			feeDen:     1000,
			expected:   90, // floor(100*1000/1100)
		},
		{
			name:       "standard fee balanced pool",
			amountIn:   100,
			reserveIn:  1000,
			reserveOut: 1000,
			feeNum:     3,
			feeDen:     1000,
			expected:   90, // afterFee = 99, floor(99*1000/1099)
		},
		{
			name:       "asymmetric reserves",
			amountIn:   1000,
			reserveIn:  10000,
			reserveOut: 20000,
			feeNum:     3,
			feeDen:     1000,
			expected:   1813, // afterFee = 997, floor(997*20000/10997)
		},
		{
			name:       "tiny input rounds to zero",
			amountIn:   1,
			reserveIn:  1000000,
			reserveOut: 1000000,
			feeNum:     0,
			feeDen:     1000,
			expected:   0,
		},
		{
			name:       "input below fee floor",
			amountIn:   1,
			reserveIn:  1000,
			reserveOut: 1000,
			feeNum:     500,
			feeDen:     1000,
			expected:   0, // afterFee = floor(1*500/1000) = 0
		},
		{
			name:      "zero input",
			amountIn:  0,
			reserveIn: 1000, reserveOut: 1000,
			feeNum: 3, feeDen: 1000,
			expErr: types.ErrInvalidAmount,
		},
		{
			name:      "negative input",
			amountIn:  -5,
			reserveIn: 1000, reserveOut: 1000,
			feeNum: 3, feeDen: 1000,
			expErr: types.ErrInvalidAmount,
		},
		{
			name:      "empty input reserve",
			amountIn:  100,
			reserveIn: 0, reserveOut: 1000,
			feeNum: 3, feeDen: 1000,
			expErr: types.ErrNoLiquidity,
		},
		{
			name:      "empty output reserve",
			amountIn:  100,
			reserveIn: 1000, reserveOut: 0,
			feeNum: 3, feeDen: 1000,
			expErr: types.ErrNoLiquidity,
		},
		{
			name:      "fee eats everything",
			amountIn:  100,
			reserveIn: 1000, reserveOut: 1000,
			feeNum: 1000, feeDen: 1000,
			expErr: types.ErrInvalidAmount,
		},
		{
			name:      "zero fee denominator",
			amountIn:  100,
			reserveIn: 1000, reserveOut: 1000,
			feeNum: 0, feeDen: 0,
			expErr: types.ErrInvalidAmount,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := keeper.QuoteOutput(
				math.NewInt(tc.amountIn),
				math.NewInt(tc.reserveIn),
				math.NewInt(tc.reserveOut),
				tc.feeNum, tc.feeDen,
			)

			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.expected, out.Int64())
		})
	}
}

func TestQuoteOutputNeverDrainsPool(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		amountIn := math.NewInt(rapid.Int64Range(1, 1_000_000_000_000).Draw(t, "amountIn"))
		reserveIn := math.NewInt(rapid.Int64Range(1, 1_000_000_000_000).Draw(t, "reserveIn"))
		reserveOut := math.NewInt(rapid.Int64Range(1, 1_000_000_000_000).Draw(t, "reserveOut"))
		feeNum := rapid.Uint64Range(0, 999).Draw(t, "feeNum")

		out, err := keeper.QuoteOutput(amountIn, reserveIn, reserveOut, feeNum, 1000)
		require.NoError(t, err)

		// Output is bounded by the reserve.
		require.True(t, out.LT(reserveOut),
			"output %s >= reserve %s", out, reserveOut)

		// Applying the trade never decreases k.
		oldK := reserveIn.Mul(reserveOut)
		newK := reserveIn.Add(amountIn).Mul(reserveOut.Sub(out))
		require.True(t, newK.GTE(oldK),
			"k decreased: old %s new %s", oldK, newK)
	})
}

func TestQuoteOutputMonotonicInInput(t *testing.T) {
	reserveIn := math.NewInt(1_000_000)
	reserveOut := math.NewInt(2_000_000)

	prev := math.ZeroInt()
	for _, amountIn := range []int64{10, 100, 1000, 10_000, 100_000} {
		out, err := keeper.QuoteOutput(math.NewInt(amountIn), reserveIn, reserveOut, 3, 1000)
		require.NoError(t, err)
		require.True(t, out.GTE(prev), "larger input produced smaller output")
		prev = out
	}
}

func TestSpotPrice(t *testing.T) {
	price, err := keeper.SpotPrice(math.NewInt(1000), math.NewInt(2000))
	require.NoError(t, err)
	require.Equal(t, math.LegacyNewDec(2), price)

	price, err = keeper.SpotPrice(math.NewInt(2000), math.NewInt(1000))
	require.NoError(t, err)
	require.Equal(t, math.LegacyNewDecWithPrec(5, 1), price)

	_, err = keeper.SpotPrice(math.ZeroInt(), math.NewInt(1000))
	require.ErrorIs(t, err, types.ErrNoLiquidity)

	_, err = keeper.SpotPrice(math.NewInt(1000), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrNoLiquidity)
}

func TestIntSqrt(t *testing.T) {
	tests := []struct {
		in       int64
		expected int64
	}{
		{0, 0},
		{1, 1},
		{3, 1},
		{4, 2},
		{2_000_000, 1414}, // floor(sqrt(1000*2000))
		{1_000_000_000_000, 1_000_000},
	}

	for _, tc := range tests {
		out, err := keeper.IntSqrt(math.NewInt(tc.in))
		require.NoError(t, err)
		require.Equal(t, tc.expected, out.Int64(), "sqrt(%d)", tc.in)
	}

	_, err := keeper.IntSqrt(math.NewInt(-1))
	require.ErrorIs(t, err, types.ErrOverflow)
}
