package types

import (
	"cosmossdk.io/errors"
)

// AMM module sentinel errors
var (
	ErrPoolNotFound          = errors.Register(ModuleName, 2, "pool not found")
	ErrPoolAlreadyExists     = errors.Register(ModuleName, 3, "pool already exists")
	ErrInvalidTokenDenom     = errors.Register(ModuleName, 4, "invalid token denomination")
	ErrInvalidTokenPair      = errors.Register(ModuleName, 5, "token pair does not match pool")
	ErrInvalidAmount         = errors.Register(ModuleName, 6, "invalid amount")
	ErrInsufficientLiquidity = errors.Register(ModuleName, 7, "insufficient liquidity in pool")
	ErrNoLiquidity           = errors.Register(ModuleName, 8, "pool has no liquidity")
	ErrSlippageExceeded      = errors.Register(ModuleName, 9, "amount worse than caller minimum")
	ErrMintFailed            = errors.Register(ModuleName, 10, "deposit too small to mint shares")
	ErrInsufficientShares    = errors.Register(ModuleName, 11, "insufficient liquidity shares")
	ErrDeadlineExceeded      = errors.Register(ModuleName, 12, "operation deadline exceeded")
	ErrReentrancy            = errors.Register(ModuleName, 13, "reentrant call rejected")
	ErrInvalidPoolState      = errors.Register(ModuleName, 14, "invalid pool state")
	ErrOverflow              = errors.Register(ModuleName, 15, "arithmetic overflow")
	ErrInvariantViolation    = errors.Register(ModuleName, 16, "pool invariant violated")
	ErrInvalidAddress        = errors.Register(ModuleName, 17, "invalid address")
	ErrUnauthorized          = errors.Register(ModuleName, 18, "unauthorized")
)
