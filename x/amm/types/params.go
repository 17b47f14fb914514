package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// Default parameter values. The default fee is 0.3%, matching the
// numerator/denominator pair 3/1000.
const (
	DefaultFeeNumerator   = uint64(3)
	DefaultFeeDenominator = uint64(1000)
)

// Params defines the parameters for the AMM module.
type Params struct {
	// FeeNumerator and FeeDenominator express the swap fee as an exact
	// rational. The fee stays in the pool and accrues to liquidity
	// providers.
	FeeNumerator   uint64 `json:"fee_numerator"`
	FeeDenominator uint64 `json:"fee_denominator"`
	// MinInitialShares is the smallest share supply an initial deposit
	// may mint. Guards against pools seeded with dust.
	MinInitialShares math.Int `json:"min_initial_shares"`
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return Params{
		FeeNumerator:     DefaultFeeNumerator,
		FeeDenominator:   DefaultFeeDenominator,
		MinInitialShares: math.NewInt(1),
	}
}

// Validate validates the set of params
func (p Params) Validate() error {
	if p.FeeDenominator == 0 {
		return fmt.Errorf("fee denominator must be positive")
	}
	if p.FeeNumerator >= p.FeeDenominator {
		return fmt.Errorf("fee numerator %d must be less than denominator %d", p.FeeNumerator, p.FeeDenominator)
	}
	if p.MinInitialShares.IsNil() || !p.MinInitialShares.IsPositive() {
		return fmt.Errorf("min initial shares must be positive")
	}
	return nil
}
