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

	"github.com/google/uuid"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/msgs"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/log"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/persistence"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtapi"
)

func lockName(id uuid.UUID) string {
	return "remittance:" + id.String()
}

func (rm *remittanceManager) getRemittanceByID(ctx context.Context, dbTX persistence.DBTX, id uuid.UUID) (*rmtapi.Remittance, error) {
	var prs []*persistedRemittance
	err := dbTX.DB().
		WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&prs).
		Error
	if err != nil {
		return nil, err
	}
	if len(prs) == 0 {
		return nil, rmtapi.NewError(rmtapi.ErrorKindNotFound, i18n.NewError(ctx, msgs.MsgRemittanceNotFound, id))
	}
	return mapPersistedRemittance(prs[0]), nil
}

func (rm *remittanceManager) getEvents(ctx context.Context, dbTX persistence.DBTX, id uuid.UUID) ([]*rmtapi.AuditEvent, error) {
	var pes []*persistedEvent
	err := dbTX.DB().
		WithContext(ctx).
		Where("remittance_id = ?", id).
		Order("seq").
		Find(&pes).
		Error
	if err != nil {
		return nil, err
	}
	events := make([]*rmtapi.AuditEvent, len(pes))
	for i, pe := range pes {
		if events[i], err = mapPersistedEvent(ctx, pe); err != nil {
			return nil, err
		}
	}
	return events, nil
}

func (rm *remittanceManager) appendEvent(ctx context.Context, dbTX persistence.DBTX, id uuid.UUID, action string, payload *rmtapi.AuditPayload) (*rmtapi.AuditEvent, error) {
	events, err := rm.getEvents(ctx, dbTX, id)
	if err != nil {
		return nil, err
	}
	chain := rmtapi.NewAuditChain(id, events)
	ev, err := chain.Append(ctx, action, payload)
	if err != nil {
		return nil, err
	}
	pe, err := newPersistedEvent(ev)
	if err != nil {
		return nil, err
	}
	if err := dbTX.DB().WithContext(ctx).Create(pe).Error; err != nil {
		return nil, err
	}
	log.L(ctx).Debugf("Audit event %s seq=%d action=%s", ev.ID, ev.Seq, ev.Action)
	return ev, nil
}

// insertNew persists a new record with the root of its audit chain
func (rm *remittanceManager) insertNew(ctx context.Context, r *rmtapi.Remittance, payload *rmtapi.AuditPayload) error {
	return rm.p.Transaction(ctx, func(ctx context.Context, dbTX persistence.DBTX) error {
		if err := dbTX.DB().WithContext(ctx).Create(newPersistedRemittance(r)).Error; err != nil {
			return err
		}
		_, err := rm.appendEvent(ctx, dbTX, r.ID, ActionInit, payload)
		return err
	})
}

// commit writes the next version of the record and appends one event, in one DB transaction.
// The update only applies if nobody else has committed a version since prev was loaded.
func (rm *remittanceManager) commit(ctx context.Context, prev, next *rmtapi.Remittance, action string, payload *rmtapi.AuditPayload, received *persistedReceivedRecord) error {
	return rm.p.Transaction(ctx, func(ctx context.Context, dbTX persistence.DBTX) error {
		if err := rm.p.TakeNamedLock(ctx, dbTX, lockName(prev.ID)); err != nil {
			return err
		}
		res := dbTX.DB().
			WithContext(ctx).
			Table(persistedRemittance{}.TableName()).
			Where("id = ?", prev.ID).
			Where("version = ?", prev.Version).
			Updates(mutableColumns(next))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return i18n.NewError(ctx, msgs.MsgRemittanceConcurrentUpdate, prev.ID, prev.Version)
		}
		if _, err := rm.appendEvent(ctx, dbTX, prev.ID, action, payload); err != nil {
			return err
		}
		if received != nil {
			return dbTX.DB().WithContext(ctx).Create(received).Error
		}
		return nil
	})
}
