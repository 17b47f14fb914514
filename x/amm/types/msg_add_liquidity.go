package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgAddLiquidity{}

// MsgAddLiquidity defines a message to deposit both pool tokens in
// exchange for liquidity shares. The desired amounts are upper bounds,
// the min amounts are slippage floors, and Deadline is a unix time
// after which the deposit is rejected (zero means no deadline).
type MsgAddLiquidity struct {
	Provider       string   `json:"provider"`
	PoolId         uint64   `json:"pool_id"`
	AmountADesired math.Int `json:"amount_a_desired"`
	AmountBDesired math.Int `json:"amount_b_desired"`
	AmountAMin     math.Int `json:"amount_a_min"`
	AmountBMin     math.Int `json:"amount_b_min"`
	Deadline       int64    `json:"deadline"`
}

// NewMsgAddLiquidity creates a new MsgAddLiquidity instance
func NewMsgAddLiquidity(provider string, poolID uint64, amountADesired, amountBDesired, amountAMin, amountBMin math.Int, deadline int64) *MsgAddLiquidity {
	return &MsgAddLiquidity{
		Provider:       provider,
		PoolId:         poolID,
		AmountADesired: amountADesired,
		AmountBDesired: amountBDesired,
		AmountAMin:     amountAMin,
		AmountBMin:     amountBMin,
		Deadline:       deadline,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgAddLiquidity) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgAddLiquidity) Type() string {
	return "add_liquidity"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgAddLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgAddLiquidity) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgAddLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}

	if msg.AmountADesired.IsNil() || !msg.AmountADesired.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "desired amount A must be positive")
	}
	if msg.AmountBDesired.IsNil() || !msg.AmountBDesired.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "desired amount B must be positive")
	}

	if msg.AmountAMin.IsNil() || msg.AmountAMin.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min amount A cannot be negative")
	}
	if msg.AmountBMin.IsNil() || msg.AmountBMin.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min amount B cannot be negative")
	}

	if msg.AmountAMin.GT(msg.AmountADesired) {
		return sdkerrors.Wrap(ErrInvalidAmount, "min amount A exceeds desired amount A")
	}
	if msg.AmountBMin.GT(msg.AmountBDesired) {
		return sdkerrors.Wrap(ErrInvalidAmount, "min amount B exceeds desired amount B")
	}

	if msg.Deadline < 0 {
		return sdkerrors.Wrap(ErrInvalidAmount, "deadline cannot be negative")
	}

	return nil
}

// Reset implements the proto.Message interface
func (msg *MsgAddLiquidity) Reset() { *msg = MsgAddLiquidity{} }

// String implements the proto.Message interface
func (msg *MsgAddLiquidity) String() string { return fmt.Sprintf("%+v", *msg) }

// ProtoMessage implements the proto.Message interface
func (*MsgAddLiquidity) ProtoMessage() {}

// XXX_MessageName returns the message type URL name
func (*MsgAddLiquidity) XXX_MessageName() string { return "pond.amm.v1.MsgAddLiquidity" }
