package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgSwapExactIn{}

// MsgSwapExactIn defines a message to sell an exact amount of TokenIn
// for as much of the opposite pool token as the pool will give,
// subject to MinAmountOut.
type MsgSwapExactIn struct {
	Trader       string   `json:"trader"`
	PoolId       uint64   `json:"pool_id"`
	TokenIn      string   `json:"token_in"`
	AmountIn     math.Int `json:"amount_in"`
	MinAmountOut math.Int `json:"min_amount_out"`
	Deadline     int64    `json:"deadline"`
}

// NewMsgSwapExactIn creates a new MsgSwapExactIn instance
func NewMsgSwapExactIn(trader string, poolID uint64, tokenIn string, amountIn, minAmountOut math.Int, deadline int64) *MsgSwapExactIn {
	return &MsgSwapExactIn{
		Trader:       trader,
		PoolId:       poolID,
		TokenIn:      tokenIn,
		AmountIn:     amountIn,
		MinAmountOut: minAmountOut,
		Deadline:     deadline,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSwapExactIn) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgSwapExactIn) Type() string {
	return "swap_exact_in"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgSwapExactIn) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSwapExactIn) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSwapExactIn) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Trader); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid trader address: %s", err)
	}

	if err := sdk.ValidateDenom(msg.TokenIn); err != nil {
		return sdkerrors.Wrapf(ErrInvalidTokenDenom, "token in: %s", err)
	}

	if msg.AmountIn.IsNil() || !msg.AmountIn.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "amount in must be positive")
	}

	if msg.MinAmountOut.IsNil() || msg.MinAmountOut.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min amount out cannot be negative")
	}

	if msg.Deadline < 0 {
		return sdkerrors.Wrap(ErrInvalidAmount, "deadline cannot be negative")
	}

	return nil
}

// Reset implements the proto.Message interface
func (msg *MsgSwapExactIn) Reset() { *msg = MsgSwapExactIn{} }

// String implements the proto.Message interface
func (msg *MsgSwapExactIn) String() string { return fmt.Sprintf("%+v", *msg) }

// ProtoMessage implements the proto.Message interface
func (*MsgSwapExactIn) ProtoMessage() {}

// XXX_MessageName returns the message type URL name
func (*MsgSwapExactIn) XXX_MessageName() string { return "pond.amm.v1.MsgSwapExactIn" }
