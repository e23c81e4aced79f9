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
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/hyperledger/firefly-signer/pkg/ethtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSigner = *ethtypes.MustNewAddress("0xfb75836dc4130a9462fafa3ec8c1c1ac4ea8a8a0")

func TestNonceCacheSequence(t *testing.T) {
	ctx := context.Background()
	calls := 0
	nc := newNonceCache(1*time.Hour, func(ctx context.Context, signer ethtypes.Address0xHex) (uint64, error) {
		calls++
		return 10, nil
	})
	defer nc.Stop()

	intent, err := nc.IntentToAssignNonce(ctx, testSigner)
	require.NoError(t, err)
	assert.Equal(t, testSigner, intent.Address())
	assert.Equal(t, uint64(10), intent.AssignNextNonce(ctx))
	assert.Equal(t, uint64(11), intent.AssignNextNonce(ctx))
	intent.Complete(ctx)
	intent.Rollback(ctx) // no-op

	intent, err = nc.IntentToAssignNonce(ctx, testSigner)
	require.NoError(t, err)
	assert.Equal(t, uint64(12), intent.AssignNextNonce(ctx))
	intent.Rollback(ctx)

	intent, err = nc.IntentToAssignNonce(ctx, testSigner)
	require.NoError(t, err)
	assert.Equal(t, uint64(12), intent.AssignNextNonce(ctx))
	intent.Complete(ctx)

	assert.Equal(t, 1, calls)
}

func TestNonceCacheReset(t *testing.T) {
	ctx := context.Background()
	next := uint64(5)
	nc := newNonceCache(1*time.Hour, func(ctx context.Context, signer ethtypes.Address0xHex) (uint64, error) {
		return next, nil
	})
	defer nc.Stop()

	intent, err := nc.IntentToAssignNonce(ctx, testSigner)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), intent.AssignNextNonce(ctx))
	next = 6
	intent.Reset(ctx)

	intent, err = nc.IntentToAssignNonce(ctx, testSigner)
	require.NoError(t, err)
	assert.Equal(t, uint64(6), intent.AssignNextNonce(ctx))
	intent.Complete(ctx)
	intent.Reset(ctx) // no-op once complete

	intent, err = nc.IntentToAssignNonce(ctx, testSigner)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), intent.AssignNextNonce(ctx))
	intent.Complete(ctx)
}

func TestNonceCacheLoadFail(t *testing.T) {
	ctx := context.Background()
	nc := newNonceCache(1*time.Hour, func(ctx context.Context, signer ethtypes.Address0xHex) (uint64, error) {
		return 0, fmt.Errorf("pop")
	})
	defer nc.Stop()

	_, err := nc.IntentToAssignNonce(ctx, testSigner)
	assert.Regexp(t, "pop", err)

	// read lock was released, so the reaper can still take the write lock
	nc.(*nonceCacheStruct).reapExpired(ctx)
}

func TestNonceCacheSerializesAssignment(t *testing.T) {
	ctx := context.Background()
	nc := newNonceCache(1*time.Hour, func(ctx context.Context, signer ethtypes.Address0xHex) (uint64, error) {
		return 0, nil
	})
	defer nc.Stop()

	var mux sync.Mutex
	assigned := map[uint64]bool{}
	wg := new(sync.WaitGroup)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			intent, err := nc.IntentToAssignNonce(ctx, testSigner)
			assert.NoError(t, err)
			n := intent.AssignNextNonce(ctx)
			mux.Lock()
			assigned[n] = true
			mux.Unlock()
			intent.Complete(ctx)
		}()
	}
	wg.Wait()
	assert.Len(t, assigned, 20)
}

func TestNonceCacheReaper(t *testing.T) {
	ctx := context.Background()
	nc := newNonceCache(10*time.Millisecond, func(ctx context.Context, signer ethtypes.Address0xHex) (uint64, error) {
		return 0, nil
	})
	defer nc.Stop()

	intent, err := nc.IntentToAssignNonce(ctx, testSigner)
	require.NoError(t, err)
	intent.AssignNextNonce(ctx)
	intent.Complete(ctx)

	assert.Eventually(t, func() bool {
		_, found := nc.(*nonceCacheStruct).getNextNonceBySigner(testSigner)
		return !found
	}, 2*time.Second, 5*time.Millisecond)
}
