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

	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/components"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtapi"
)

const (
	opCreate  = "create"
	opFund    = "fund"
	opRelease = "release"
	opReceive = "receive"
	opRefund  = "refund"
)

const (
	ActionInit           = "init"
	ActionCreateOnChain  = "create_on_chain"
	ActionCreateFailed   = "create_failed"
	ActionFunded         = "funded"
	ActionFundFailed     = "fund_failed"
	ActionReleaseSuccess = "release_success"
	ActionReleaseFailed  = "release_failed"
	ActionReceiveSuccess = "receive_success"
	ActionReceiveFailed  = "receive_failed"
	ActionRefunded       = "refunded"
	ActionRefundFailed   = "refund_failed"
)

// ledgerOutcome is what a ledger call reports back. On failure, progress holds
// any sub-steps that completed before the failing one.
type ledgerOutcome struct {
	LedgerID      string `json:"ledgerId,omitempty"`
	TxHash        string `json:"txHash,omitempty"`
	ApproveTxHash string `json:"approveTxHash,omitempty"`
}

func (lo *ledgerOutcome) progress() map[string]string {
	if lo == nil || lo.ApproveTxHash == "" {
		return nil
	}
	return map[string]string{"approveTxHash": lo.ApproveTxHash}
}

type ledgerCall func(ctx context.Context, el components.EscrowLedger, r *rmtapi.Remittance) (*ledgerOutcome, error)

// transitionPolicy is one row of the state machine. Every ledger-driven transition
// is described here, including what happens to the status when the ledger call fails.
type transitionPolicy struct {
	operation string
	from      []rmtapi.RemittanceStatus
	call      ledgerCall

	successStatus rmtapi.RemittanceStatus
	successAction string
	// applies the ledger outcome to the copy of the record that will be committed
	applySuccess func(r *rmtapi.Remittance, lo *ledgerOutcome, now rmtapi.Timestamp)

	// empty to retain the current status
	failureStatus rmtapi.RemittanceStatus
	failureAction string
}

func (tp *transitionPolicy) permits(status rmtapi.RemittanceStatus) bool {
	for _, s := range tp.from {
		if s == status {
			return true
		}
	}
	return false
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func tsPtr(ts rmtapi.Timestamp) *rmtapi.Timestamp {
	return &ts
}

func completeOutcome(r *rmtapi.Remittance, lo *ledgerOutcome, now rmtapi.Timestamp) {
	r.TxHashComplete = strPtr(lo.TxHash)
	r.CompletedAt = tsPtr(now)
}

func completeCall(ctx context.Context, el components.EscrowLedger, r *rmtapi.Remittance) (*ledgerOutcome, error) {
	receipt, err := el.CompleteEscrow(ctx, *r.BlockchainID)
	if err != nil {
		return nil, err
	}
	return &ledgerOutcome{TxHash: receipt.TxHash}, nil
}

var (
	createPolicy = &transitionPolicy{
		operation: opCreate,
		from:      []rmtapi.RemittanceStatus{rmtapi.RemittanceStatusPending},
		call: func(ctx context.Context, el components.EscrowLedger, r *rmtapi.Remittance) (*ledgerOutcome, error) {
			receipt, err := el.CreateEscrow(ctx, r.RecipientID, r.AmountUSDC, r.ExchangeRate)
			if err != nil {
				return nil, err
			}
			return &ledgerOutcome{LedgerID: receipt.LedgerID, TxHash: receipt.TxHash}, nil
		},
		successStatus: rmtapi.RemittanceStatusCreated,
		successAction: ActionCreateOnChain,
		applySuccess: func(r *rmtapi.Remittance, lo *ledgerOutcome, now rmtapi.Timestamp) {
			r.BlockchainID = strPtr(lo.LedgerID)
			r.TxHashCreate = strPtr(lo.TxHash)
		},
		// terminal, a retry is a new remittance
		failureStatus: rmtapi.RemittanceStatusFailed,
		failureAction: ActionCreateFailed,
	}

	fundPolicy = &transitionPolicy{
		operation: opFund,
		from:      []rmtapi.RemittanceStatus{rmtapi.RemittanceStatusCreated},
		call: func(ctx context.Context, el components.EscrowLedger, r *rmtapi.Remittance) (*ledgerOutcome, error) {
			receipt, err := el.FundEscrow(ctx, *r.BlockchainID, r.AmountUSDC)
			lo := &ledgerOutcome{}
			if receipt != nil {
				lo.TxHash = receipt.TxHash
				lo.ApproveTxHash = receipt.ApproveTxHash
			}
			return lo, err
		},
		successStatus: rmtapi.RemittanceStatusFunded,
		successAction: ActionFunded,
		applySuccess: func(r *rmtapi.Remittance, lo *ledgerOutcome, now rmtapi.Timestamp) {
			r.TxHashFund = strPtr(lo.TxHash)
			r.FundedAt = tsPtr(now)
		},
		failureAction: ActionFundFailed,
	}

	releasePolicy = &transitionPolicy{
		operation:     opRelease,
		from:          []rmtapi.RemittanceStatus{rmtapi.RemittanceStatusFunded},
		call:          completeCall,
		successStatus: rmtapi.RemittanceStatusCompleted,
		successAction: ActionReleaseSuccess,
		applySuccess:  completeOutcome,
		failureAction: ActionReleaseFailed,
	}

	receivePolicy = &transitionPolicy{
		operation:     opReceive,
		from:          []rmtapi.RemittanceStatus{rmtapi.RemittanceStatusFunded},
		call:          completeCall,
		successStatus: rmtapi.RemittanceStatusCompleted,
		successAction: ActionReceiveSuccess,
		applySuccess:  completeOutcome,
		failureAction: ActionReceiveFailed,
	}

	refundPolicy = &transitionPolicy{
		operation: opRefund,
		from:      []rmtapi.RemittanceStatus{rmtapi.RemittanceStatusFunded},
		call: func(ctx context.Context, el components.EscrowLedger, r *rmtapi.Remittance) (*ledgerOutcome, error) {
			receipt, err := el.RefundEscrow(ctx, *r.BlockchainID)
			if err != nil {
				return nil, err
			}
			return &ledgerOutcome{TxHash: receipt.TxHash}, nil
		},
		successStatus: rmtapi.RemittanceStatusRefunded,
		successAction: ActionRefunded,
		applySuccess:  completeOutcome,
		failureAction: ActionRefundFailed,
	}
)
