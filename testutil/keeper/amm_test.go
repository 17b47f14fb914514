package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/pondlabs/pond/testutil/keeper"
)

// Funding walks mint -> module account creation -> send, so this covers
// the account interface registration the fixture's codec needs.
func TestFundAccount(t *testing.T) {
	_, bk, ctx := testkeeper.AMMKeeper(t)

	addr := sdk.AccAddress([]byte("funded00000000000001"))
	coins := sdk.NewCoins(
		sdk.NewCoin("upond", math.NewInt(1_000_000)),
		sdk.NewCoin("uusdt", math.NewInt(2_000_000)),
	)
	testkeeper.FundAccount(t, ctx, bk, addr, coins)

	require.Equal(t, int64(1_000_000), bk.GetBalance(ctx, addr, "upond").Amount.Int64())
	require.Equal(t, int64(2_000_000), bk.GetBalance(ctx, addr, "uusdt").Amount.Int64())
}
