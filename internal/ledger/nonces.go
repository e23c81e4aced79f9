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

package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/hyperledger/firefly-signer/pkg/ethtypes"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/log"
)

type NextNonceCallback func(ctx context.Context, signer ethtypes.Address0xHex) (uint64, error)

type NonceAssignmentIntent interface {
	AssignNextNonce(ctx context.Context) uint64
	Address() ethtypes.Address0xHex
	// Complete keeps the nonces assigned, once the transaction is accepted by the node
	Complete(ctx context.Context)
	// Rollback returns the nonces for reuse, when the transaction was never submitted
	Rollback(ctx context.Context)
	// Reset discards the cached nonce, so the next intent queries the node. Used when
	// we do not know whether the node accepted the transaction.
	Reset(ctx context.Context)
}

type NonceCache interface {
	IntentToAssignNonce(ctx context.Context, signer ethtypes.Address0xHex) (NonceAssignmentIntent, error)
	Stop()
}

type nonceCacheStruct struct {
	nextNonceBySigner map[ethtypes.Address0xHex]*cachedNonce
	nextNonceCB       NextNonceCallback
	nonceStateTimeout time.Duration
	reaperLock        sync.RWMutex
	inserterLock      sync.Mutex // only taken while holding a read lock on the reaperLock
	mapMux            sync.Mutex // never take another lock while holding this one
	stopChannel       chan struct{}
	reaperDone        chan struct{}
}

func newNonceCache(nonceStateTimeout time.Duration, nextNonceCB NextNonceCallback) NonceCache {
	n := &nonceCacheStruct{
		nextNonceBySigner: make(map[ethtypes.Address0xHex]*cachedNonce),
		nonceStateTimeout: nonceStateTimeout,
		stopChannel:       make(chan struct{}),
		reaperDone:        make(chan struct{}),
		nextNonceCB:       nextNonceCB,
	}
	go n.reap()
	return n
}

func (nc *nonceCacheStruct) Stop() {
	close(nc.stopChannel)
	<-nc.reaperDone
}

type cachedNonce struct {
	nonceMux    sync.Mutex
	signer      ethtypes.Address0xHex
	value       uint64
	updatedTime time.Time
}

func (nc *nonceCacheStruct) reap() {
	defer close(nc.reaperDone)
	ctx := log.WithLogField(context.Background(), "role", "nonce-reaper")
	ticker := time.NewTicker(nc.nonceStateTimeout)
	defer ticker.Stop()
	for {
		select {
		case <-nc.stopChannel:
			return
		case <-ticker.C:
			nc.reapExpired(ctx)
		}
	}
}

func (nc *nonceCacheStruct) reapExpired(ctx context.Context) {
	nc.reaperLock.Lock()
	defer nc.reaperLock.Unlock()
	now := time.Now()
	nc.mapMux.Lock()
	defer nc.mapMux.Unlock()
	for signer, cn := range nc.nextNonceBySigner {
		if now.Sub(cn.updatedTime) > nc.nonceStateTimeout {
			delete(nc.nextNonceBySigner, signer)
		}
	}
	log.L(ctx).Debug("nonce cache reaper completed on ticker")
}

func (nc *nonceCacheStruct) getNextNonceBySigner(signer ethtypes.Address0xHex) (*cachedNonce, bool) {
	nc.mapMux.Lock()
	defer nc.mapMux.Unlock()
	result, found := nc.nextNonceBySigner[signer]
	return result, found
}

func (nc *nonceCacheStruct) setNextNonceBySigner(signer ethtypes.Address0xHex, record *cachedNonce) {
	nc.mapMux.Lock()
	defer nc.mapMux.Unlock()
	nc.nextNonceBySigner[signer] = record
}

func (nc *nonceCacheStruct) removeNextNonceBySigner(signer ethtypes.Address0xHex, record *cachedNonce) {
	nc.mapMux.Lock()
	defer nc.mapMux.Unlock()
	if nc.nextNonceBySigner[signer] == record {
		delete(nc.nextNonceBySigner, signer)
	}
}

// IntentToAssignNonce makes sure we have the next nonce in memory, and blocks the reaper
// from removing it until the intent is completed or rolled back.
//
// The caller must call Complete, Rollback or Reset on the returned intent, on all code paths.
func (nc *nonceCacheStruct) IntentToAssignNonce(ctx context.Context, signer ethtypes.Address0xHex) (NonceAssignmentIntent, error) {
	nc.reaperLock.RLock()

	cachedNonceRecord, isCached := nc.getNextNonceBySigner(signer)
	if !isCached {
		nc.inserterLock.Lock()
		defer nc.inserterLock.Unlock()

		// double check, in case another routine got in while we waited for the inserterLock
		cachedNonceRecord, isCached = nc.getNextNonceBySigner(signer)
		if !isCached {
			nextNonce, err := nc.nextNonceCB(ctx, signer)
			if err != nil {
				log.L(ctx).Errorf("failed to get next nonce for %s: %s", signer, err)
				nc.reaperLock.RUnlock()
				return nil, err
			}
			log.L(ctx).Debugf("nonce for %s loaded from node: %d", signer, nextNonce)
			cachedNonceRecord = &cachedNonce{
				value:       nextNonce,
				signer:      signer,
				updatedTime: time.Now(),
			}
			nc.setNextNonceBySigner(signer, cachedNonceRecord)
		}
	}
	return &nonceAssignmentIntent{
		addr:        signer,
		cachedNonce: cachedNonceRecord,
		nonceCache:  nc,
	}, nil
}

type nonceAssignmentIntent struct {
	addr         ethtypes.Address0xHex
	locked       bool
	completed    bool
	cachedNonce  *cachedNonce
	nonceCache   *nonceCacheStruct
	initialValue uint64
}

func (i *nonceAssignmentIntent) Address() ethtypes.Address0xHex {
	return i.addr
}

// AssignNextNonce locks the nonce for the signer, until Complete, Rollback or Reset.
// It can be called multiple times on one intent, to sequence multiple transactions.
func (i *nonceAssignmentIntent) AssignNextNonce(ctx context.Context) uint64 {
	if !i.locked {
		i.cachedNonce.nonceMux.Lock()
		i.initialValue = i.cachedNonce.value
		i.locked = true
	}
	value := i.cachedNonce.value
	i.cachedNonce.value++
	return value
}

func (i *nonceAssignmentIntent) finish(fn func()) {
	if !i.completed && i.locked {
		fn()
		i.cachedNonce.nonceMux.Unlock()
	}
	if !i.completed {
		i.nonceCache.reaperLock.RUnlock()
	}
	i.completed = true
}

func (i *nonceAssignmentIntent) Complete(ctx context.Context) {
	i.finish(func() {
		i.cachedNonce.updatedTime = time.Now()
	})
}

// Rollback is a no-op after Complete, so it is safe to defer
func (i *nonceAssignmentIntent) Rollback(ctx context.Context) {
	i.finish(func() {
		i.cachedNonce.value = i.initialValue
	})
}

func (i *nonceAssignmentIntent) Reset(ctx context.Context) {
	if !i.completed {
		log.L(ctx).Warnf("discarding cached nonce for %s", i.addr)
		i.nonceCache.removeNextNonceBySigner(i.addr, i.cachedNonce)
	}
	i.Rollback(ctx)
}
