// Package registry keeps named read-write handles in process. It is a
// convenience around the vars algebra, not a storage engine: the registry
// stores the wrappers, never the values behind them, and the handles keep
// exactly the guarantees they had when registered.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/on-the-ground/var_ive_go/shared/helper"
	"github.com/on-the-ground/var_ive_go/vars"

	"github.com/cespare/xxhash/v2"
)

// ErrNoSuchVar indicates no handle is registered under the key.
var ErrNoSuchVar = errors.New("no var registered under key")

// Registry maps string keys to Var handles, sharded by key hash so that
// unrelated keys do not contend on one map.
type Registry struct {
	shards []*sync.Map
}

// NewRegistry builds a registry with the given shard count. Counts below
// one are rounded up to one.
func NewRegistry(numShards int) *Registry {
	if numShards < 1 {
		numShards = 1
	}
	shards := make([]*sync.Map, numShards)
	for i := range shards {
		shards[i] = &sync.Map{}
	}
	return &Registry{shards: shards}
}

func (r *Registry) shardOf(key string) *sync.Map {
	return r.shards[int(xxhash.Sum64String(key)%uint64(len(r.shards)))]
}

// Register stores v under key unless the key is already taken. The first
// registration wins; Register reports whether this call was it.
func Register[T any](r *Registry, key string, v vars.Var[T]) bool {
	_, loaded := r.shardOf(key).LoadOrStore(key, v)
	return !loaded
}

// Lookup returns the handle registered under key. It fails with ErrNoSuchVar
// when the key is absent and with helper.ErrTypeMismatch when the key holds
// a Var of another value type.
func Lookup[T any](r *Registry, key string) (vars.Var[T], error) {
	raw, ok := r.shardOf(key).Load(key)
	if !ok {
		return vars.Var[T]{}, fmt.Errorf("%w: %q", ErrNoSuchVar, key)
	}
	v, err := helper.Typed[vars.Var[T]](raw)
	if err != nil {
		return vars.Var[T]{}, fmt.Errorf("key %q: %w", key, err)
	}
	return v, nil
}

// Drop removes the handle under key and reports whether one was present.
func Drop(r *Registry, key string) bool {
	_, loaded := r.shardOf(key).LoadAndDelete(key)
	return loaded
}
