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
	"fmt"

	"github.com/google/uuid"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/shopspring/decimal"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/msgs"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/log"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtapi"
)

func (rm *remittanceManager) ListRemittances(ctx context.Context, ownerID string) ([]*rmtapi.Remittance, error) {
	var prs []*persistedRemittance
	err := rm.p.DB().
		WithContext(ctx).
		Where("sender_id = ?", ownerID).
		Order("created_at DESC").
		Find(&prs).
		Error
	if err != nil {
		return nil, err
	}
	results := make([]*rmtapi.Remittance, len(prs))
	for i, pr := range prs {
		results[i] = mapPersistedRemittance(pr)
	}
	return results, nil
}

// GetRemittance returns the record with its audit chain
func (rm *remittanceManager) GetRemittance(ctx context.Context, id uuid.UUID, requesterID *string) (*rmtapi.Remittance, error) {
	r, err := rm.getRemittanceByID(ctx, rm.p.NOTX(), id)
	if err != nil {
		return nil, err
	}
	if requesterID != nil && *requesterID != r.SenderID {
		return nil, rmtapi.NewError(rmtapi.ErrorKindAccessDenied, i18n.NewError(ctx, msgs.MsgRemittanceAccessDenied, id))
	}
	if r.Logs, err = rm.getEvents(ctx, rm.p.NOTX(), id); err != nil {
		return nil, err
	}
	return r, nil
}

func (rm *remittanceManager) ListAllAdmin(ctx context.Context) ([]*rmtapi.AdminRemittance, error) {
	var prs []*persistedRemittance
	err := rm.p.DB().
		WithContext(ctx).
		Order("created_at DESC").
		Find(&prs).
		Error
	if err != nil {
		return nil, err
	}

	var owners map[string]*rmtapi.OwnerIdentity
	if rm.owners != nil && len(prs) > 0 {
		ownerIDs := make([]string, 0, len(prs))
		seen := make(map[string]bool, len(prs))
		for _, pr := range prs {
			if !seen[pr.SenderID] {
				seen[pr.SenderID] = true
				ownerIDs = append(ownerIDs, pr.SenderID)
			}
		}
		if owners, err = rm.owners.LookupOwners(ctx, ownerIDs); err != nil {
			return nil, err
		}
	}

	results := make([]*rmtapi.AdminRemittance, len(prs))
	for i, pr := range prs {
		results[i] = &rmtapi.AdminRemittance{
			Remittance: mapPersistedRemittance(pr),
			Sender:     owners[pr.SenderID],
		}
	}
	return results, nil
}

// GetAuditChain returns the events in chain order, after verifying the links and hashes
func (rm *remittanceManager) GetAuditChain(ctx context.Context, id uuid.UUID) ([]*rmtapi.AuditEvent, error) {
	if _, err := rm.getRemittanceByID(ctx, rm.p.NOTX(), id); err != nil {
		return nil, err
	}
	events, err := rm.getEvents(ctx, rm.p.NOTX(), id)
	if err != nil {
		return nil, err
	}
	chain := rmtapi.NewAuditChain(id, events)
	if err := chain.Verify(ctx); err != nil {
		log.L(ctx).Errorf("Audit chain of remittance %s failed verification: %s", id, err)
		return nil, err
	}
	return chain.Forward(ctx)
}

func (rm *remittanceManager) GetReceivedRecord(ctx context.Context, id uuid.UUID) (*rmtapi.ReceivedRecord, error) {
	var prs []*persistedReceivedRecord
	err := rm.p.DB().
		WithContext(ctx).
		Where("remittance_id = ?", id).
		Limit(1).
		Find(&prs).
		Error
	if err != nil {
		return nil, err
	}
	if len(prs) == 0 {
		return nil, rmtapi.NewError(rmtapi.ErrorKindNotFound, i18n.NewError(ctx, msgs.MsgRemittanceNotFound, id))
	}
	return mapPersistedReceivedRecord(prs[0]), nil
}

// ReconcileRemittance compares the local record with the escrow on the ledger. It reports
// differences, and never changes either side.
func (rm *remittanceManager) ReconcileRemittance(ctx context.Context, id uuid.UUID) (*rmtapi.ReconciliationReport, error) {
	r, err := rm.getRemittanceByID(ctx, rm.p.NOTX(), id)
	if err != nil {
		return nil, err
	}
	if r.BlockchainID == nil {
		return nil, rmtapi.NewError(rmtapi.ErrorKindInvalidState, i18n.NewError(ctx, msgs.MsgRemittanceNoLedgerID, id)).WithRemittance(r)
	}
	snapshot, err := rm.ledger.GetEscrow(ctx, *r.BlockchainID)
	if err != nil {
		kind := rmtapi.KindOf(err)
		if !rmtapi.IsLedgerFailure(kind) {
			kind = rmtapi.ErrorKindLedgerError
		}
		return nil, rmtapi.NewError(kind, i18n.WrapError(ctx, err, msgs.MsgRemittanceLedgerReadFailed, id)).WithRemittance(r)
	}

	report := &rmtapi.ReconciliationReport{
		RemittanceID: id.String(),
		LedgerID:     *r.BlockchainID,
		LocalStatus:  r.Status,
		LedgerStatus: snapshot.Status.RemittanceStatus(),
		Snapshot:     snapshot,
	}
	if report.LocalStatus != report.LedgerStatus {
		report.Discrepancies = append(report.Discrepancies,
			fmt.Sprintf("status: local=%s ledger=%s", report.LocalStatus, report.LedgerStatus))
	}
	compare := func(field string, local, ledger decimal.Decimal) {
		if !local.Equal(ledger) {
			report.Discrepancies = append(report.Discrepancies,
				fmt.Sprintf("%s: local=%s ledger=%s", field, local, ledger))
		}
	}
	compare("amountUsdc", r.AmountUSDC, snapshot.AmountUSDC)
	compare("amountCop", r.AmountCOP, snapshot.TargetAmountCOP)
	compare("exchangeRate", r.ExchangeRate, snapshot.ExchangeRate)
	report.Consistent = len(report.Discrepancies) == 0
	if !report.Consistent {
		log.L(ctx).Warnf("Remittance %s differs from ledger %s: %v", id, report.LedgerID, report.Discrepancies)
	}
	return report, nil
}

func (rm *remittanceManager) ContractConfig(ctx context.Context) (*rmtapi.ContractConfig, error) {
	return rm.ledger.ContractInfo(ctx)
}
