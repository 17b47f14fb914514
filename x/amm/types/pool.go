package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Pool is the state of a single constant-product market. TokenA and
// TokenB are stored in lexicographic order so a pair has exactly one
// canonical pool.
type Pool struct {
	Id          uint64   `json:"id"`
	TokenA      string   `json:"token_a"`
	TokenB      string   `json:"token_b"`
	ReserveA    math.Int `json:"reserve_a"`
	ReserveB    math.Int `json:"reserve_b"`
	TotalShares math.Int `json:"total_shares"`
	Creator     string   `json:"creator"`
}

// NewPool returns an empty pool for the given pair. Denoms are
// canonicalized before storage.
func NewPool(id uint64, tokenA, tokenB, creator string) Pool {
	tokenA, tokenB = OrderDenoms(tokenA, tokenB)
	return Pool{
		Id:          id,
		TokenA:      tokenA,
		TokenB:      tokenB,
		ReserveA:    math.ZeroInt(),
		ReserveB:    math.ZeroInt(),
		TotalShares: math.ZeroInt(),
		Creator:     creator,
	}
}

// OrderDenoms returns the pair in canonical (lexicographic) order.
func OrderDenoms(a, b string) (string, string) {
	if a > b {
		return b, a
	}
	return a, b
}

// HasLiquidity reports whether the pool holds reserves on both sides.
func (p Pool) HasLiquidity() bool {
	return p.ReserveA.IsPositive() && p.ReserveB.IsPositive()
}

// IsEmpty reports whether the pool has no outstanding shares.
func (p Pool) IsEmpty() bool {
	return p.TotalShares.IsZero()
}

// HasDenom reports whether denom is one of the pool's two tokens.
func (p Pool) HasDenom(denom string) bool {
	return denom == p.TokenA || denom == p.TokenB
}

// OtherDenom returns the pool token opposite denom. The caller must
// check HasDenom first.
func (p Pool) OtherDenom(denom string) string {
	if denom == p.TokenA {
		return p.TokenB
	}
	return p.TokenA
}

// Reserves returns the reserves oriented as (in, out) for a swap that
// sells denomIn.
func (p Pool) Reserves(denomIn string) (reserveIn, reserveOut math.Int) {
	if denomIn == p.TokenA {
		return p.ReserveA, p.ReserveB
	}
	return p.ReserveB, p.ReserveA
}

// Validate checks structural integrity of the pool record.
func (p Pool) Validate() error {
	if err := sdk.ValidateDenom(p.TokenA); err != nil {
		return ErrInvalidTokenDenom.Wrapf("token_a: %s", err)
	}
	if err := sdk.ValidateDenom(p.TokenB); err != nil {
		return ErrInvalidTokenDenom.Wrapf("token_b: %s", err)
	}
	if p.TokenA == p.TokenB {
		return ErrInvalidTokenPair.Wrap("pool tokens must differ")
	}
	if p.TokenA > p.TokenB {
		return ErrInvalidPoolState.Wrap("pool tokens out of canonical order")
	}
	if p.ReserveA.IsNil() || p.ReserveB.IsNil() || p.TotalShares.IsNil() {
		return ErrInvalidPoolState.Wrap("nil pool amounts")
	}
	if p.ReserveA.IsNegative() || p.ReserveB.IsNegative() {
		return ErrInvalidPoolState.Wrap("negative reserves")
	}
	if p.TotalShares.IsNegative() {
		return ErrInvalidPoolState.Wrap("negative total shares")
	}
	// Shares exist exactly when reserves do.
	if p.TotalShares.IsZero() != (p.ReserveA.IsZero() && p.ReserveB.IsZero()) {
		return ErrInvalidPoolState.Wrap("shares and reserves out of sync")
	}
	if p.Creator != "" {
		if _, err := sdk.AccAddressFromBech32(p.Creator); err != nil {
			return ErrInvalidAddress.Wrapf("creator: %s", err)
		}
	}
	return nil
}

// Position records one provider's share balance in one pool.
type Position struct {
	PoolId  uint64   `json:"pool_id"`
	Address string   `json:"address"`
	Shares  math.Int `json:"shares"`
}

// Validate checks structural integrity of the position record.
func (pos Position) Validate() error {
	if _, err := sdk.AccAddressFromBech32(pos.Address); err != nil {
		return ErrInvalidAddress.Wrapf("position address: %s", err)
	}
	if pos.Shares.IsNil() || !pos.Shares.IsPositive() {
		return ErrInvalidAmount.Wrap("position shares must be positive")
	}
	return nil
}
