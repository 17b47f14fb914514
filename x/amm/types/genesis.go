package types

import (
	"fmt"
)

// GenesisState holds the AMM module's full exported state.
type GenesisState struct {
	Params     Params     `json:"params"`
	Pools      []Pool     `json:"pools"`
	Positions  []Position `json:"positions"`
	NextPoolId uint64     `json:"next_pool_id"`
}

// DefaultGenesis returns the default genesis state for the AMM module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:     DefaultParams(),
		Pools:      []Pool{},
		Positions:  []Position{},
		NextPoolId: 1,
	}
}

// Validate ensures the genesis state is well-formed: params are valid,
// pool ids are unique and below the counter, pairs are unique, and the
// position shares of every pool sum exactly to its total share supply.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	if gs.NextPoolId == 0 {
		return fmt.Errorf("next pool id must be positive")
	}

	poolIDs := make(map[uint64]Pool, len(gs.Pools))
	pairs := make(map[string]struct{}, len(gs.Pools))
	for _, pool := range gs.Pools {
		if pool.Id == 0 || pool.Id >= gs.NextPoolId {
			return fmt.Errorf("pool id %d outside [1, %d)", pool.Id, gs.NextPoolId)
		}
		if _, ok := poolIDs[pool.Id]; ok {
			return fmt.Errorf("duplicate pool id %d", pool.Id)
		}
		if err := pool.Validate(); err != nil {
			return fmt.Errorf("pool %d: %w", pool.Id, err)
		}
		pair := pool.TokenA + "/" + pool.TokenB
		if _, ok := pairs[pair]; ok {
			return fmt.Errorf("duplicate pool for pair %s", pair)
		}
		poolIDs[pool.Id] = pool
		pairs[pair] = struct{}{}
	}

	seen := make(map[string]struct{}, len(gs.Positions))
	accumulated := make(map[uint64]*Position)
	for _, pos := range gs.Positions {
		if err := pos.Validate(); err != nil {
			return err
		}
		if _, ok := poolIDs[pos.PoolId]; !ok {
			return fmt.Errorf("position references unknown pool %d", pos.PoolId)
		}
		key := fmt.Sprintf("%d/%s", pos.PoolId, pos.Address)
		if _, ok := seen[key]; ok {
			return fmt.Errorf("duplicate position for %s in pool %d", pos.Address, pos.PoolId)
		}
		seen[key] = struct{}{}

		acc, ok := accumulated[pos.PoolId]
		if !ok {
			p := pos
			accumulated[pos.PoolId] = &p
		} else {
			acc.Shares = acc.Shares.Add(pos.Shares)
		}
	}

	for id, pool := range poolIDs {
		acc, ok := accumulated[id]
		if !ok {
			if !pool.TotalShares.IsZero() {
				return fmt.Errorf("pool %d has shares but no positions", id)
			}
			continue
		}
		if !acc.Shares.Equal(pool.TotalShares) {
			return fmt.Errorf("pool %d position shares %s do not sum to total shares %s", id, acc.Shares, pool.TotalShares)
		}
	}

	return nil
}
