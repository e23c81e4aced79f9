// Copyright © 2024 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cache

import (
	"sync/atomic"
	"time"

	cacheimpl "github.com/Code-Hex/go-generics-cache"
	"github.com/Code-Hex/go-generics-cache/policy/lru"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/confutil"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtconf"
)

type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Set(key K, val V)
	Delete(key K)
	Capacity() int
	TTL() time.Duration
	Clear()
}

type cache[K comparable, V any] struct {
	cache    atomic.Pointer[cacheimpl.Cache[K, V]]
	capacity int
	ttl      time.Duration
}

// NewCache returns an LRU cache. Entries also expire after the TTL, unless it is zero.
func NewCache[K comparable, V any](conf *rmtconf.CacheConfig, defs *rmtconf.CacheConfig) Cache[K, V] {
	c := &cache[K, V]{
		capacity: confutil.IntMin(conf.Capacity, 1, *defs.Capacity),
		ttl:      confutil.DurationMin(conf.TTL, 0, *defs.TTL),
	}
	// go-generics-cache has its own locking, and a janitor for expired entries.
	// It has no clear, so we swap in a new instance.
	c.Clear()
	return c
}

func (c *cache[K, V]) Get(key K) (V, bool) {
	return c.cache.Load().Get(key)
}

func (c *cache[K, V]) Set(key K, val V) {
	if c.ttl > 0 {
		c.cache.Load().Set(key, val, cacheimpl.WithExpiration(c.ttl))
		return
	}
	c.cache.Load().Set(key, val)
}

func (c *cache[K, V]) Delete(key K) {
	c.cache.Load().Delete(key)
}

func (c *cache[K, V]) Clear() {
	newCache := cacheimpl.New[K, V](cacheimpl.AsLRU[K, V](
		lru.WithCapacity(c.capacity),
	))
	c.cache.Store(newCache)
}

func (c *cache[K, V]) Capacity() int {
	return c.capacity
}

func (c *cache[K, V]) TTL() time.Duration {
	return c.ttl
}
