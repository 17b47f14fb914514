package keeper

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"

	ammtypes "github.com/pondlabs/pond/x/amm/types"
)

var (
	// PoolKeyPrefix is the prefix for pool store keys
	PoolKeyPrefix = []byte{0x01}

	// PoolCountKey is the key for the next pool ID counter
	PoolCountKey = []byte{0x02}

	// PoolByTokensKeyPrefix is the prefix for indexing pools by token pair
	PoolByTokensKeyPrefix = []byte{0x03}

	// PositionKeyPrefix is the prefix for liquidity position store keys
	PositionKeyPrefix = []byte{0x04}

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x05}

	// ReentrancyLockKeyPrefix is the prefix for reentrancy protection locks
	ReentrancyLockKeyPrefix = []byte{0x06}
)

// PoolKey returns the store key for a pool by ID
func PoolKey(poolID uint64) []byte {
	poolIDBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(poolIDBytes, poolID)
	return append(PoolKeyPrefix, poolIDBytes...)
}

// PoolByTokensKey returns the store key for indexing a pool by its
// token pair. The first denom is length-prefixed so denoms containing
// "/" (e.g. ibc vouchers) cannot make distinct pairs collide.
func PoolByTokensKey(tokenA, tokenB string) []byte {
	tokenA, tokenB = ammtypes.OrderDenoms(tokenA, tokenB)
	key := append(PoolByTokensKeyPrefix, byte(len(tokenA)))
	key = append(key, []byte(tokenA)...)
	key = append(key, []byte(tokenB)...)
	return key
}

// PositionKey returns the store key for a liquidity position
func PositionKey(poolID uint64, provider sdk.AccAddress) []byte {
	poolIDBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(poolIDBytes, poolID)
	key := append(PositionKeyPrefix, poolIDBytes...)
	key = append(key, provider.Bytes()...)
	return key
}

// PositionKeyByPoolPrefix returns the prefix for all positions in a pool
func PositionKeyByPoolPrefix(poolID uint64) []byte {
	poolIDBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(poolIDBytes, poolID)
	return append(PositionKeyPrefix, poolIDBytes...)
}

// ReentrancyLockKey returns the store key for a reentrancy lock
func ReentrancyLockKey(lockKey string) []byte {
	return append(ReentrancyLockKeyPrefix, []byte(lockKey)...)
}
