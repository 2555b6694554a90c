package engine

import (
	"sync"

	"github.com/zeebo/xxh3"

	"unitengine/internal/quantity"
	"unitengine/internal/units"
)

// maxResolved bounds the cache; composites arriving over the API are
// client-controlled.
const maxResolved = 4096

type resolved struct {
	key  string
	unit units.Unit
}

// Resolver memoizes quantity.Resolve. Lookups are keyed by the xxh3 hash of
// Units.Key; the full key is kept to rule out collisions. Failures are not
// cached.
type Resolver struct {
	reg   *units.Registry
	mu    sync.RWMutex
	cache map[uint64]resolved
}

func NewResolver(reg *units.Registry) *Resolver {
	return &Resolver{reg: reg, cache: make(map[uint64]resolved)}
}

func (r *Resolver) Resolve(u quantity.Units) (units.Unit, error) {
	key := u.Key()
	h := xxh3.HashString(key)

	r.mu.RLock()
	hit, ok := r.cache[h]
	r.mu.RUnlock()
	if ok && hit.key == key {
		return hit.unit, nil
	}

	unit, err := quantity.Resolve(r.reg, u)
	if err != nil {
		return units.Unit{}, err
	}

	r.mu.Lock()
	if _, taken := r.cache[h]; !taken && len(r.cache) < maxResolved {
		r.cache[h] = resolved{key: key, unit: unit}
	}
	r.mu.Unlock()
	return unit, nil
}

// Convert returns the factor taking values in from to values in to.
func (r *Resolver) Convert(from, to quantity.Units) (float64, error) {
	fromUnit, err := r.Resolve(from)
	if err != nil {
		return 0, err
	}
	toUnit, err := r.Resolve(to)
	if err != nil {
		return 0, err
	}
	return units.ConvertUnits(fromUnit, toUnit)
}

// Len reports how many composites are cached.
func (r *Resolver) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cache)
}
