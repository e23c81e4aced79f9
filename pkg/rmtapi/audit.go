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
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-signer/pkg/ethtypes"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/msgs"
	"golang.org/x/crypto/sha3"
)

type PayloadKind string

const (
	PayloadKindDetail PayloadKind = "detail"
	PayloadKindError  PayloadKind = "error"
)

// AuditError describes a failed attempt
type AuditError struct {
	Message   string    `docstruct:"AuditError" json:"message"`
	Trace     string    `docstruct:"AuditError" json:"trace,omitempty"`
	ErrorKind ErrorKind `docstruct:"AuditError" json:"errorKind,omitempty"`
	Ambiguous bool      `docstruct:"AuditError" json:"ambiguous,omitempty"`
	// Sub-steps that completed on the ledger before the failure, for manual reconciliation
	Progress map[string]string `docstruct:"AuditError" json:"progress,omitempty"`
}

// AuditPayload is either a detail object, or an error - never both
type AuditPayload struct {
	Kind   PayloadKind     `docstruct:"AuditPayload" json:"kind"`
	Detail json.RawMessage `docstruct:"AuditPayload" json:"detail,omitempty"`
	Error  *AuditError     `docstruct:"AuditPayload" json:"error,omitempty"`
}

func DetailPayload(detail interface{}) (*AuditPayload, error) {
	b, err := json.Marshal(detail)
	if err != nil {
		return nil, err
	}
	return &AuditPayload{Kind: PayloadKindDetail, Detail: b}, nil
}

func ErrorPayload(err error, progress map[string]string) *AuditPayload {
	ae := &AuditError{
		Message:   err.Error(),
		ErrorKind: KindOf(err),
		Ambiguous: IsAmbiguous(err),
	}
	if len(progress) > 0 {
		ae.Progress = progress
	}
	if trace := fmt.Sprintf("%+v", err); trace != ae.Message {
		ae.Trace = trace
	}
	return &AuditPayload{Kind: PayloadKindError, Error: ae}
}

func (p *AuditPayload) Validate(ctx context.Context, eventID uuid.UUID) error {
	if p == nil {
		return i18n.NewError(ctx, msgs.MsgAuditEventPayloadInvalid, eventID)
	}
	switch p.Kind {
	case PayloadKindDetail:
		if len(p.Detail) > 0 && p.Error == nil {
			return nil
		}
	case PayloadKindError:
		if p.Error != nil && len(p.Detail) == 0 {
			return nil
		}
	}
	return i18n.NewError(ctx, msgs.MsgAuditEventPayloadInvalid, eventID)
}

type AuditEvent struct {
	ID           uuid.UUID                 `docstruct:"AuditEvent" json:"eventId"`
	RemittanceID uuid.UUID                 `docstruct:"AuditEvent" json:"remittanceId"`
	Seq          int64                     `docstruct:"AuditEvent" json:"seq"`
	PrevEventID  *uuid.UUID                `docstruct:"AuditEvent" json:"prevEventId"`
	Action       string                    `docstruct:"AuditEvent" json:"action"`
	Timestamp    Timestamp                 `docstruct:"AuditEvent" json:"timestamp"`
	Payload      *AuditPayload             `docstruct:"AuditEvent" json:"payload"`
	Hash         ethtypes.HexBytes0xPrefix `docstruct:"AuditEvent" json:"hash"`
}

// ComputeEventHash chains the hash of the predecessor into the hash of the event content
func ComputeEventHash(prevHash []byte, ev *AuditEvent) (ethtypes.HexBytes0xPrefix, error) {
	payload, err := json.Marshal(ev.Payload)
	if err != nil {
		return nil, err
	}
	h := sha3.NewLegacyKeccak256()
	h.Write(prevHash)
	h.Write(ev.RemittanceID[:])
	h.Write(ev.ID[:])
	h.Write([]byte(ev.Action))
	h.Write([]byte{0})
	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(ev.Timestamp))
	h.Write(ts[:])
	h.Write(payload)
	return h.Sum(nil), nil
}

// AuditChain is the append-only, hash-linked list of events for one remittance
type AuditChain struct {
	remittanceID uuid.UUID
	events       []*AuditEvent
	now          func() Timestamp
}

// NewAuditChain wraps the events of a remittance, in sequence order
func NewAuditChain(remittanceID uuid.UUID, events []*AuditEvent) *AuditChain {
	return &AuditChain{
		remittanceID: remittanceID,
		events:       events,
		now:          TimestampNow,
	}
}

func (ac *AuditChain) Len() int {
	return len(ac.events)
}

func (ac *AuditChain) Events() []*AuditEvent {
	return append([]*AuditEvent{}, ac.events...)
}

func (ac *AuditChain) Last() *AuditEvent {
	if len(ac.events) == 0 {
		return nil
	}
	return ac.events[len(ac.events)-1]
}

// Append links a new event to the current last event. The timestamp never goes backwards
// within the chain, even if the clock does.
func (ac *AuditChain) Append(ctx context.Context, action string, payload *AuditPayload) (*AuditEvent, error) {
	ev := &AuditEvent{
		ID:           uuid.New(),
		RemittanceID: ac.remittanceID,
		Seq:          int64(len(ac.events)),
		Action:       action,
		Timestamp:    ac.now(),
		Payload:      payload,
	}
	if err := payload.Validate(ctx, ev.ID); err != nil {
		return nil, err
	}
	var prevHash []byte
	if last := ac.Last(); last != nil {
		ev.PrevEventID = &last.ID
		prevHash = last.Hash
		if ev.Timestamp < last.Timestamp {
			ev.Timestamp = last.Timestamp
		}
	}
	hash, err := ComputeEventHash(prevHash, ev)
	if err != nil {
		return nil, err
	}
	ev.Hash = hash
	ac.events = append(ac.events, ev)
	return ev, nil
}

type chainIndex struct {
	byID     map[uuid.UUID]*AuditEvent
	children map[uuid.UUID]*AuditEvent
	root     *AuditEvent
}

func (ac *AuditChain) index(ctx context.Context) (*chainIndex, error) {
	ci := &chainIndex{
		byID:     make(map[uuid.UUID]*AuditEvent, len(ac.events)),
		children: make(map[uuid.UUID]*AuditEvent, len(ac.events)),
	}
	roots := 0
	for _, ev := range ac.events {
		ci.byID[ev.ID] = ev
		if ev.PrevEventID == nil {
			roots++
			ci.root = ev
		}
	}
	if roots != 1 {
		return nil, i18n.NewError(ctx, msgs.MsgAuditChainRoots, roots)
	}
	for _, ev := range ac.events {
		if ev.PrevEventID == nil {
			continue
		}
		if _, ok := ci.byID[*ev.PrevEventID]; !ok {
			return nil, i18n.NewError(ctx, msgs.MsgAuditChainMissingPrev, ev.ID, ev.PrevEventID)
		}
		if _, dup := ci.children[*ev.PrevEventID]; dup {
			return nil, i18n.NewError(ctx, msgs.MsgAuditChainFork, ev.PrevEventID)
		}
		ci.children[*ev.PrevEventID] = ev
	}
	return ci, nil
}

// Forward walks from the root, following successor links
func (ac *AuditChain) Forward(ctx context.Context) ([]*AuditEvent, error) {
	if len(ac.events) == 0 {
		return []*AuditEvent{}, nil
	}
	ci, err := ac.index(ctx)
	if err != nil {
		return nil, err
	}
	walk := make([]*AuditEvent, 0, len(ac.events))
	visited := make(map[uuid.UUID]bool, len(ac.events))
	for ev := ci.root; ev != nil && !visited[ev.ID]; ev = ci.children[ev.ID] {
		visited[ev.ID] = true
		walk = append(walk, ev)
	}
	return walk, nil
}

// Backward walks from the event that has no successor, following predecessor links
func (ac *AuditChain) Backward(ctx context.Context) ([]*AuditEvent, error) {
	if len(ac.events) == 0 {
		return []*AuditEvent{}, nil
	}
	ci, err := ac.index(ctx)
	if err != nil {
		return nil, err
	}
	var tail *AuditEvent
	for _, ev := range ac.events {
		if ci.children[ev.ID] == nil {
			tail = ev
			break
		}
	}
	walk := make([]*AuditEvent, 0, len(ac.events))
	visited := make(map[uuid.UUID]bool, len(ac.events))
	for ev := tail; ev != nil && !visited[ev.ID]; {
		visited[ev.ID] = true
		walk = append(walk, ev)
		if ev.PrevEventID == nil {
			break
		}
		ev = ci.byID[*ev.PrevEventID]
	}
	return walk, nil
}

// Verify checks the chain is a single linked list that reads the same in both directions,
// with every sequence number and hash matching the content
func (ac *AuditChain) Verify(ctx context.Context) error {
	forward, err := ac.Forward(ctx)
	if err != nil {
		return err
	}
	backward, err := ac.Backward(ctx)
	if err != nil {
		return err
	}
	total := len(ac.events)
	if len(forward) != total || len(backward) != total {
		return i18n.NewError(ctx, msgs.MsgAuditChainWalkMismatch, len(forward), len(backward), total)
	}
	var prevHash []byte
	for i, ev := range forward {
		if backward[total-1-i] != ev {
			return i18n.NewError(ctx, msgs.MsgAuditChainWalkMismatch, len(forward), len(backward), total)
		}
		if ev.Seq != int64(i) {
			return i18n.NewError(ctx, msgs.MsgAuditChainSeqMismatch, ev.ID, i, ev.Seq)
		}
		if err := ev.Payload.Validate(ctx, ev.ID); err != nil {
			return err
		}
		hash, err := ComputeEventHash(prevHash, ev)
		if err != nil {
			return err
		}
		if !hash.Equals(ev.Hash) {
			return i18n.NewError(ctx, msgs.MsgAuditChainHashMismatch, ev.ID)
		}
		prevHash = ev.Hash
	}
	return nil
}
