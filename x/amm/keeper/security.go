package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"

	"github.com/pondlabs/pond/x/amm/types"
)

// WithReentrancyGuard executes fn with per-pool reentrancy protection.
// The lock lives in the KVStore so it holds across nested contexts; it
// is released on return even if fn panics.
func (k Keeper) WithReentrancyGuard(ctx context.Context, poolID uint64, operation string, fn func() error) error {
	lockKey := fmt.Sprintf("%d:%s", poolID, operation)

	if err := k.acquireReentrancyLock(ctx, poolID); err != nil {
		GetAMMMetrics().ReentrancyRejections.WithLabelValues(fmt.Sprintf("%d", poolID), operation).Inc()
		return types.ErrReentrancy.Wrapf("operation %s rejected", lockKey)
	}
	defer k.releaseReentrancyLock(ctx, poolID)

	return fn()
}

// acquireReentrancyLock sets the pool's lock marker, failing if held.
// The lock is per pool, not per operation: a swap callback must not be
// able to add liquidity to the same pool mid-flight.
func (k Keeper) acquireReentrancyLock(ctx context.Context, poolID uint64) error {
	store := k.getStore(ctx)
	key := ReentrancyLockKey(fmt.Sprintf("%d", poolID))

	if store.Has(key) {
		return types.ErrReentrancy.Wrapf("pool %d is locked", poolID)
	}

	store.Set(key, []byte{0x01})
	return nil
}

// releaseReentrancyLock clears the pool's lock marker
func (k Keeper) releaseReentrancyLock(ctx context.Context, poolID uint64) {
	store := k.getStore(ctx)
	store.Delete(ReentrancyLockKey(fmt.Sprintf("%d", poolID)))
}

// ValidatePoolInvariant checks that the constant product k = x * y did
// not decrease across an operation. A failure here is a state bug, not
// a user error.
func (k Keeper) ValidatePoolInvariant(pool *types.Pool, oldK math.Int) error {
	if pool.ReserveA.IsZero() || pool.ReserveB.IsZero() {
		return nil
	}

	newK, err := SafeMul(pool.ReserveA, pool.ReserveB)
	if err != nil {
		return err
	}

	if newK.LT(oldK) {
		return types.ErrInvariantViolation.Wrapf(
			"constant product invariant violated: old_k=%s, new_k=%s",
			oldK.String(), newK.String(),
		)
	}

	return nil
}

// ValidatePoolState performs pool state validation before an operation
// touches funds.
func (k Keeper) ValidatePoolState(pool *types.Pool) error {
	if pool.ReserveA.IsNegative() {
		return types.ErrInvalidPoolState.Wrapf("negative reserve A: %s", pool.ReserveA)
	}
	if pool.ReserveB.IsNegative() {
		return types.ErrInvalidPoolState.Wrapf("negative reserve B: %s", pool.ReserveB)
	}
	if pool.TotalShares.IsNegative() {
		return types.ErrInvalidPoolState.Wrapf("negative total shares: %s", pool.TotalShares)
	}

	if (!pool.ReserveA.IsZero() || !pool.ReserveB.IsZero()) && pool.TotalShares.IsZero() {
		return types.ErrInvalidPoolState.Wrap("pool has reserves but no shares")
	}

	if !pool.TotalShares.IsZero() && (pool.ReserveA.IsZero() || pool.ReserveB.IsZero()) {
		return types.ErrInvalidPoolState.Wrap("pool has shares but missing reserves")
	}

	return nil
}
