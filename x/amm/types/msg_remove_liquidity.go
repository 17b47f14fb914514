package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgRemoveLiquidity{}

// MsgRemoveLiquidity defines a message to burn liquidity shares and
// withdraw the proportional reserves.
type MsgRemoveLiquidity struct {
	Provider   string   `json:"provider"`
	PoolId     uint64   `json:"pool_id"`
	Shares     math.Int `json:"shares"`
	AmountAMin math.Int `json:"amount_a_min"`
	AmountBMin math.Int `json:"amount_b_min"`
	Deadline   int64    `json:"deadline"`
}

// NewMsgRemoveLiquidity creates a new MsgRemoveLiquidity instance
func NewMsgRemoveLiquidity(provider string, poolID uint64, shares, amountAMin, amountBMin math.Int, deadline int64) *MsgRemoveLiquidity {
	return &MsgRemoveLiquidity{
		Provider:   provider,
		PoolId:     poolID,
		Shares:     shares,
		AmountAMin: amountAMin,
		AmountBMin: amountBMin,
		Deadline:   deadline,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) Type() string {
	return "remove_liquidity"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}

	if msg.Shares.IsNil() || !msg.Shares.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "shares must be positive")
	}

	if msg.AmountAMin.IsNil() || msg.AmountAMin.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min amount A cannot be negative")
	}
	if msg.AmountBMin.IsNil() || msg.AmountBMin.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min amount B cannot be negative")
	}

	if msg.Deadline < 0 {
		return sdkerrors.Wrap(ErrInvalidAmount, "deadline cannot be negative")
	}

	return nil
}

// Reset implements the proto.Message interface
func (msg *MsgRemoveLiquidity) Reset() { *msg = MsgRemoveLiquidity{} }

// String implements the proto.Message interface
func (msg *MsgRemoveLiquidity) String() string { return fmt.Sprintf("%+v", *msg) }

// ProtoMessage implements the proto.Message interface
func (*MsgRemoveLiquidity) ProtoMessage() {}

// XXX_MessageName returns the message type URL name
func (*MsgRemoveLiquidity) XXX_MessageName() string { return "pond.amm.v1.MsgRemoveLiquidity" }
