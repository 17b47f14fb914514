package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pondlabs/pond/x/amm/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the amm MsgServer
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// CreatePool registers a new empty pool for a token pair
func (k msgServer) CreatePool(goCtx context.Context, msg *types.MsgCreatePool) (*types.MsgCreatePoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid creator address: %s", err)
	}

	pool, err := k.Keeper.CreatePool(goCtx, creator, msg.TokenA, msg.TokenB)
	if err != nil {
		return nil, err
	}

	return &types.MsgCreatePoolResponse{PoolId: pool.Id}, nil
}

// AddLiquidity deposits both pool tokens for liquidity shares
func (k msgServer) AddLiquidity(goCtx context.Context, msg *types.MsgAddLiquidity) (*types.MsgAddLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid provider address: %s", err)
	}

	amountA, amountB, shares, err := k.Keeper.AddLiquidity(
		goCtx, provider, msg.PoolId,
		msg.AmountADesired, msg.AmountBDesired,
		msg.AmountAMin, msg.AmountBMin,
		msg.Deadline,
	)
	if err != nil {
		return nil, err
	}

	return &types.MsgAddLiquidityResponse{
		AmountA: amountA,
		AmountB: amountB,
		Shares:  shares,
	}, nil
}

// RemoveLiquidity burns shares for the proportional reserves
func (k msgServer) RemoveLiquidity(goCtx context.Context, msg *types.MsgRemoveLiquidity) (*types.MsgRemoveLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid provider address: %s", err)
	}

	amountA, amountB, err := k.Keeper.RemoveLiquidity(
		goCtx, provider, msg.PoolId,
		msg.Shares,
		msg.AmountAMin, msg.AmountBMin,
		msg.Deadline,
	)
	if err != nil {
		return nil, err
	}

	return &types.MsgRemoveLiquidityResponse{
		AmountA: amountA,
		AmountB: amountB,
	}, nil
}

// SwapExactIn sells an exact input amount for the opposite pool token
func (k msgServer) SwapExactIn(goCtx context.Context, msg *types.MsgSwapExactIn) (*types.MsgSwapExactInResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid trader address: %s", err)
	}

	amountOut, err := k.Keeper.SwapExactIn(
		goCtx, trader, msg.PoolId,
		msg.TokenIn, msg.AmountIn,
		msg.MinAmountOut, msg.Deadline,
	)
	if err != nil {
		return nil, err
	}

	return &types.MsgSwapExactInResponse{AmountOut: amountOut}, nil
}
