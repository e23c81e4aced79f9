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

package remittances

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-signer/pkg/ethtypes"
	"github.com/shopspring/decimal"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/msgs"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtapi"
)

// Field names avoid CreatedAt/UpdatedAt, so gorm does not manage them as seconds
type persistedRemittance struct {
	ID             uuid.UUID               `gorm:"column:id;primaryKey"`
	SenderID       string                  `gorm:"column:sender_id"`
	RecipientID    string                  `gorm:"column:recipient_id"`
	RecipientName  string                  `gorm:"column:recipient_name"`
	AmountUSDC     decimal.Decimal         `gorm:"column:amount_usdc"`
	AmountCOP      decimal.Decimal         `gorm:"column:amount_cop"`
	ExchangeRate   decimal.Decimal         `gorm:"column:exchange_rate"`
	RateAsOf       rmtapi.Timestamp        `gorm:"column:rate_as_of"`
	Status         rmtapi.RemittanceStatus `gorm:"column:status"`
	BlockchainID   *string                 `gorm:"column:blockchain_id"`
	TxHashCreate   *string                 `gorm:"column:tx_hash_create"`
	TxHashFund     *string                 `gorm:"column:tx_hash_fund"`
	TxHashComplete *string                 `gorm:"column:tx_hash_complete"`
	Created        rmtapi.Timestamp        `gorm:"column:created_at"`
	Funded         *rmtapi.Timestamp       `gorm:"column:funded_at"`
	Completed      *rmtapi.Timestamp       `gorm:"column:completed_at"`
	Updated        rmtapi.Timestamp        `gorm:"column:updated_at"`
	Version        int64                   `gorm:"column:version"`
}

func (persistedRemittance) TableName() string {
	return "remittances"
}

type persistedEvent struct {
	ID           uuid.UUID          `gorm:"column:id;primaryKey"`
	RemittanceID uuid.UUID          `gorm:"column:remittance_id"`
	Seq          int64              `gorm:"column:seq"`
	PrevEventID  *uuid.UUID         `gorm:"column:prev_event_id"`
	Action       string             `gorm:"column:action"`
	Timestamp    rmtapi.Timestamp   `gorm:"column:timestamp"`
	PayloadKind  rmtapi.PayloadKind `gorm:"column:payload_kind"`
	Payload      string             `gorm:"column:payload"`
	Hash         string             `gorm:"column:hash"`
}

func (persistedEvent) TableName() string {
	return "remittance_events"
}

type persistedReceivedRecord struct {
	ID           uuid.UUID        `gorm:"column:id;primaryKey"`
	RemittanceID uuid.UUID        `gorm:"column:remittance_id"`
	IPAddress    string           `gorm:"column:ip_address"`
	UserAgent    string           `gorm:"column:user_agent"`
	ReceivedAt   rmtapi.Timestamp `gorm:"column:received_at"`
}

func (persistedReceivedRecord) TableName() string {
	return "received_records"
}

func mapPersistedRemittance(pr *persistedRemittance) *rmtapi.Remittance {
	return &rmtapi.Remittance{
		ID:             pr.ID,
		BlockchainID:   pr.BlockchainID,
		SenderID:       pr.SenderID,
		RecipientID:    pr.RecipientID,
		RecipientName:  pr.RecipientName,
		AmountUSDC:     pr.AmountUSDC,
		AmountCOP:      pr.AmountCOP,
		ExchangeRate:   pr.ExchangeRate,
		RateAsOf:       pr.RateAsOf,
		Status:         pr.Status,
		TxHashCreate:   pr.TxHashCreate,
		TxHashFund:     pr.TxHashFund,
		TxHashComplete: pr.TxHashComplete,
		CreatedAt:      pr.Created,
		FundedAt:       pr.Funded,
		CompletedAt:    pr.Completed,
		UpdatedAt:      pr.Updated,
		Version:        pr.Version,
	}
}

func newPersistedRemittance(r *rmtapi.Remittance) *persistedRemittance {
	return &persistedRemittance{
		ID:             r.ID,
		SenderID:       r.SenderID,
		RecipientID:    r.RecipientID,
		RecipientName:  r.RecipientName,
		AmountUSDC:     r.AmountUSDC,
		AmountCOP:      r.AmountCOP,
		ExchangeRate:   r.ExchangeRate,
		RateAsOf:       r.RateAsOf,
		Status:         r.Status,
		BlockchainID:   r.BlockchainID,
		TxHashCreate:   r.TxHashCreate,
		TxHashFund:     r.TxHashFund,
		TxHashComplete: r.TxHashComplete,
		Created:        r.CreatedAt,
		Funded:         r.FundedAt,
		Completed:      r.CompletedAt,
		Updated:        r.UpdatedAt,
		Version:        r.Version,
	}
}

// mutableColumns are the only columns a transition writes. The parties, the amounts,
// and the rate are never in this list.
func mutableColumns(r *rmtapi.Remittance) map[string]interface{} {
	return map[string]interface{}{
		"status":           r.Status,
		"blockchain_id":    r.BlockchainID,
		"tx_hash_create":   r.TxHashCreate,
		"tx_hash_fund":     r.TxHashFund,
		"tx_hash_complete": r.TxHashComplete,
		"funded_at":        r.FundedAt,
		"completed_at":     r.CompletedAt,
		"updated_at":       r.UpdatedAt,
		"version":          r.Version,
	}
}

// The payload column holds the detail object, or the error descriptor, depending on payload_kind
func newPersistedEvent(ev *rmtapi.AuditEvent) (*persistedEvent, error) {
	pe := &persistedEvent{
		ID:           ev.ID,
		RemittanceID: ev.RemittanceID,
		Seq:          ev.Seq,
		PrevEventID:  ev.PrevEventID,
		Action:       ev.Action,
		Timestamp:    ev.Timestamp,
		PayloadKind:  ev.Payload.Kind,
		Hash:         ev.Hash.String(),
	}
	switch ev.Payload.Kind {
	case rmtapi.PayloadKindError:
		b, err := json.Marshal(ev.Payload.Error)
		if err != nil {
			return nil, err
		}
		pe.Payload = string(b)
	default:
		pe.Payload = string(ev.Payload.Detail)
	}
	return pe, nil
}

func mapPersistedEvent(ctx context.Context, pe *persistedEvent) (*rmtapi.AuditEvent, error) {
	hash, err := ethtypes.NewHexBytes0xPrefix(pe.Hash)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, msgs.MsgTypesRestoreFailed, pe.Hash, hash)
	}
	payload := &rmtapi.AuditPayload{Kind: pe.PayloadKind}
	switch pe.PayloadKind {
	case rmtapi.PayloadKindError:
		payload.Error = &rmtapi.AuditError{}
		if err := json.Unmarshal([]byte(pe.Payload), payload.Error); err != nil {
			return nil, i18n.WrapError(ctx, err, msgs.MsgTypesRestoreFailed, pe.Payload, payload.Error)
		}
	default:
		payload.Detail = json.RawMessage(pe.Payload)
	}
	return &rmtapi.AuditEvent{
		ID:           pe.ID,
		RemittanceID: pe.RemittanceID,
		Seq:          pe.Seq,
		PrevEventID:  pe.PrevEventID,
		Action:       pe.Action,
		Timestamp:    pe.Timestamp,
		Payload:      payload,
		Hash:         hash,
	}, nil
}

func mapPersistedReceivedRecord(pr *persistedReceivedRecord) *rmtapi.ReceivedRecord {
	return &rmtapi.ReceivedRecord{
		ID:           pr.ID,
		RemittanceID: pr.RemittanceID,
		IPAddress:    pr.IPAddress,
		UserAgent:    pr.UserAgent,
		ReceivedAt:   pr.ReceivedAt,
	}
}
