package keeper

import (
	"math/big"

	"cosmossdk.io/math"

	"github.com/pondlabs/pond/x/amm/types"
)

// Overflow-safe arithmetic for AMM calculations. All results stay below
// 2^256 to match the math.Int range.

var maxInt256 = new(big.Int).Exp(big.NewInt(2), big.NewInt(256), nil)

// SafeAdd adds two math.Int values with overflow checking
func SafeAdd(a, b math.Int) (math.Int, error) {
	result := new(big.Int).Add(a.BigInt(), b.BigInt())
	if result.Cmp(maxInt256) >= 0 {
		return math.Int{}, types.ErrOverflow.Wrap("addition result exceeds maximum value")
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeSub subtracts two math.Int values with underflow checking
func SafeSub(a, b math.Int) (math.Int, error) {
	if a.LT(b) {
		return math.Int{}, types.ErrOverflow.Wrapf("underflow: cannot subtract %s from %s", b, a)
	}
	return math.NewIntFromBigInt(new(big.Int).Sub(a.BigInt(), b.BigInt())), nil
}

// SafeMul multiplies two math.Int values with overflow checking
func SafeMul(a, b math.Int) (math.Int, error) {
	if a.IsZero() || b.IsZero() {
		return math.ZeroInt(), nil
	}
	result := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if result.Cmp(maxInt256) >= 0 {
		return math.Int{}, types.ErrOverflow.Wrap("multiplication result exceeds maximum value")
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeMulDiv performs floor((a * b) / c) with overflow protection. The
// intermediate product works on big.Int, so it only fails when the
// final quotient leaves the math.Int range.
func SafeMulDiv(a, b, c math.Int) (math.Int, error) {
	if c.IsZero() {
		return math.Int{}, types.ErrOverflow.Wrap("division by zero")
	}
	intermediate := new(big.Int).Mul(a.BigInt(), b.BigInt())
	result := new(big.Int).Quo(intermediate, c.BigInt())
	if result.Cmp(maxInt256) >= 0 {
		return math.Int{}, types.ErrOverflow.Wrap("quotient exceeds maximum value")
	}
	return math.NewIntFromBigInt(result), nil
}

// IntSqrt returns floor(sqrt(v)) for a non-negative value.
func IntSqrt(v math.Int) (math.Int, error) {
	if v.IsNegative() {
		return math.Int{}, types.ErrOverflow.Wrap("square root of negative value")
	}
	return math.NewIntFromBigInt(new(big.Int).Sqrt(v.BigInt())), nil
}
