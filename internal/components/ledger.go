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

package components

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtapi"
)

type LedgerReceipt struct {
	LedgerID string
	TxHash   string
}

// FundReceipt records both sub-steps of funding an escrow
type FundReceipt struct {
	ApproveTxHash string
	TxHash        string
}

// EscrowLedger submits transactions to the escrow contract as the single operator identity,
// and waits for each to be mined before returning.
//
// Errors are *rmtapi.Error with kind ledger_error (retryable, and Ambiguous when the
// transaction was submitted but no receipt was observed) or ledger_rejected.
type EscrowLedger interface {
	ManagerLifecycle

	CreateEscrow(ctx context.Context, recipientRef string, amount, rate decimal.Decimal) (*LedgerReceipt, error)
	// Approves the escrow to transfer the amount, then deposits. Returns the receipt of
	// the approval alongside the error, if the deposit fails after the approval succeeded.
	FundEscrow(ctx context.Context, ledgerID string, amount decimal.Decimal) (*FundReceipt, error)
	CompleteEscrow(ctx context.Context, ledgerID string) (*LedgerReceipt, error)
	RefundEscrow(ctx context.Context, ledgerID string) (*LedgerReceipt, error)
	// Read-only, for consistency checks
	GetEscrow(ctx context.Context, ledgerID string) (*rmtapi.EscrowSnapshot, error)
	ContractInfo(ctx context.Context) (*rmtapi.ContractConfig, error)
}
