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

package rmtapi

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/msgs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChain(t *testing.T, actions ...string) (context.Context, *AuditChain) {
	ctx := context.Background()
	ac := NewAuditChain(uuid.New(), nil)
	for _, a := range actions {
		p, err := DetailPayload(map[string]string{"action": a})
		require.NoError(t, err)
		_, err = ac.Append(ctx, a, p)
		require.NoError(t, err)
	}
	return ctx, ac
}

func TestAuditChainAppendAndWalk(t *testing.T) {
	ctx, ac := newTestChain(t, "init", "create_on_chain", "funded")

	assert.Equal(t, 3, ac.Len())
	events := ac.Events()
	assert.Nil(t, events[0].PrevEventID)
	assert.Equal(t, events[0].ID, *events[1].PrevEventID)
	assert.Equal(t, events[1].ID, *events[2].PrevEventID)
	assert.Equal(t, "funded", ac.Last().Action)
	assert.Equal(t, int64(2), ac.Last().Seq)

	fwd, err := ac.Forward(ctx)
	require.NoError(t, err)
	bwd, err := ac.Backward(ctx)
	require.NoError(t, err)
	require.Len(t, fwd, 3)
	require.Len(t, bwd, 3)
	for i := range fwd {
		assert.Same(t, fwd[i], bwd[2-i])
	}

	require.NoError(t, ac.Verify(ctx))
}

func TestAuditChainEmpty(t *testing.T) {
	ctx, ac := newTestChain(t)
	assert.Nil(t, ac.Last())
	fwd, err := ac.Forward(ctx)
	require.NoError(t, err)
	assert.Empty(t, fwd)
	bwd, err := ac.Backward(ctx)
	require.NoError(t, err)
	assert.Empty(t, bwd)
	require.NoError(t, ac.Verify(ctx))
}

func TestAuditChainTimestampNeverGoesBackwards(t *testing.T) {
	ctx, ac := newTestChain(t)
	clock := []Timestamp{2000, 1000}
	ac.now = func() Timestamp {
		ts := clock[0]
		clock = clock[1:]
		return ts
	}
	_, err := ac.Append(ctx, "init", &AuditPayload{Kind: PayloadKindDetail, Detail: []byte(`{}`)})
	require.NoError(t, err)
	ev, err := ac.Append(ctx, "create_failed", ErrorPayload(fmt.Errorf("pop"), nil))
	require.NoError(t, err)
	assert.Equal(t, Timestamp(2000), ev.Timestamp)
	require.NoError(t, ac.Verify(ctx))
}

func TestAuditChainRejectsBadPayload(t *testing.T) {
	ctx, ac := newTestChain(t)

	_, err := ac.Append(ctx, "init", nil)
	assert.Regexp(t, "PT011705", err)

	_, err = ac.Append(ctx, "init", &AuditPayload{
		Kind:   PayloadKindDetail,
		Detail: []byte(`{}`),
		Error:  &AuditError{Message: "both"},
	})
	assert.Regexp(t, "PT011705", err)

	_, err = ac.Append(ctx, "init", &AuditPayload{Kind: PayloadKindError})
	assert.Regexp(t, "PT011705", err)

	_, err = ac.Append(ctx, "init", &AuditPayload{Kind: "other", Detail: []byte(`{}`)})
	assert.Regexp(t, "PT011705", err)

	assert.Equal(t, 0, ac.Len())
}

func TestAuditChainVerifyTwoRoots(t *testing.T) {
	ctx, ac := newTestChain(t, "init", "create_on_chain")
	ac.events[1].PrevEventID = nil
	assert.Regexp(t, "PT011700.*2", ac.Verify(ctx))
}

func TestAuditChainVerifyMissingPrev(t *testing.T) {
	ctx, ac := newTestChain(t, "init", "create_on_chain")
	missing := uuid.New()
	ac.events[1].PrevEventID = &missing
	assert.Regexp(t, "PT011701", ac.Verify(ctx))
}

func TestAuditChainVerifyFork(t *testing.T) {
	ctx, ac := newTestChain(t, "init", "create_on_chain", "funded")
	ac.events[2].PrevEventID = &ac.events[0].ID
	assert.Regexp(t, "PT011702", ac.Verify(ctx))

	_, err := ac.Backward(ctx)
	assert.Regexp(t, "PT011702", err)
}

func TestAuditChainVerifyCycle(t *testing.T) {
	ctx, ac := newTestChain(t, "init", "a", "b", "c")
	// b and c point at each other, detached from the root
	ac.events[2].PrevEventID = &ac.events[3].ID
	assert.Regexp(t, "PT011703", ac.Verify(ctx))
}

func TestAuditChainVerifyTampered(t *testing.T) {
	ctx, ac := newTestChain(t, "init", "create_on_chain")
	ac.events[1].Action = "funded"
	assert.Regexp(t, "PT011704", ac.Verify(ctx))
}

func TestAuditChainVerifyReordered(t *testing.T) {
	ctx, ac := newTestChain(t, "init", "create_on_chain")
	ac.events[1].Seq = 5
	assert.Regexp(t, "PT011706", ac.Verify(ctx))
}

func TestAuditChainVerifyBadStoredPayload(t *testing.T) {
	ctx, ac := newTestChain(t, "init")
	ac.events[0].Payload = &AuditPayload{Kind: PayloadKindError}
	assert.Regexp(t, "PT011705", ac.Verify(ctx))
}

func TestErrorPayload(t *testing.T) {
	ledgerErr := NewError(ErrorKindLedgerError, i18n.NewError(context.Background(), msgs.MsgLedgerConfirmTimeout, "0x1234", "deposit", "60s")).
		WithAmbiguous(true)
	p := ErrorPayload(ledgerErr, map[string]string{"approveTxHash": "0xabcd"})
	assert.Equal(t, PayloadKindError, p.Kind)
	assert.Empty(t, p.Detail)
	assert.Regexp(t, "PT011407", p.Error.Message)
	assert.Equal(t, ErrorKindLedgerError, p.Error.ErrorKind)
	assert.True(t, p.Error.Ambiguous)
	assert.Equal(t, "0xabcd", p.Error.Progress["approveTxHash"])

	p = ErrorPayload(fmt.Errorf("pop"), map[string]string{})
	assert.Nil(t, p.Error.Progress)
	assert.Empty(t, p.Error.Trace)
	assert.Equal(t, ErrorKind(""), p.Error.ErrorKind)
}

func TestDetailPayloadMarshalFail(t *testing.T) {
	_, err := DetailPayload(map[bool]interface{}{true: func() {}})
	assert.Error(t, err)
}
