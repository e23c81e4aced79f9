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
	"github.com/shopspring/decimal"
)

// EscrowStatus is the status enum of the escrow contract
type EscrowStatus uint8

const (
	EscrowStatusCreated EscrowStatus = iota
	EscrowStatusFunded
	EscrowStatusCompleted
	EscrowStatusRefunded
)

func (s EscrowStatus) String() string {
	switch s {
	case EscrowStatusCreated:
		return "created"
	case EscrowStatusFunded:
		return "funded"
	case EscrowStatusCompleted:
		return "completed"
	case EscrowStatusRefunded:
		return "refunded"
	default:
		return "unknown"
	}
}

func (s EscrowStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// RemittanceStatus is the local status an escrow in this state corresponds to
func (s EscrowStatus) RemittanceStatus() RemittanceStatus {
	switch s {
	case EscrowStatusCreated:
		return RemittanceStatusCreated
	case EscrowStatusFunded:
		return RemittanceStatusFunded
	case EscrowStatusCompleted:
		return RemittanceStatusCompleted
	case EscrowStatusRefunded:
		return RemittanceStatusRefunded
	default:
		return ""
	}
}

// EscrowSnapshot is a read-only view of the escrow on the ledger. It is only
// used for consistency checks, never to drive a transition.
type EscrowSnapshot struct {
	LedgerID        string          `docstruct:"EscrowSnapshot" json:"ledgerId"`
	Sender          string          `docstruct:"EscrowSnapshot" json:"sender"`
	RecipientID     string          `docstruct:"EscrowSnapshot" json:"recipientId"`
	AmountUSDC      decimal.Decimal `docstruct:"EscrowSnapshot" json:"amountUsdc"`
	TargetAmountCOP decimal.Decimal `docstruct:"EscrowSnapshot" json:"targetAmountCop"`
	ExchangeRate    decimal.Decimal `docstruct:"EscrowSnapshot" json:"exchangeRate"`
	Status          EscrowStatus    `docstruct:"EscrowSnapshot" json:"status"`
	CreatedAt       Timestamp       `docstruct:"EscrowSnapshot" json:"createdAt"`
	FundedAt        *Timestamp      `docstruct:"EscrowSnapshot" json:"fundedAt,omitempty"`
	CompletedAt     *Timestamp      `docstruct:"EscrowSnapshot" json:"completedAt,omitempty"`
}

type ReconciliationReport struct {
	RemittanceID  string           `docstruct:"ReconciliationReport" json:"remittanceId"`
	LedgerID      string           `docstruct:"ReconciliationReport" json:"ledgerId"`
	LocalStatus   RemittanceStatus `docstruct:"ReconciliationReport" json:"localStatus"`
	LedgerStatus  RemittanceStatus `docstruct:"ReconciliationReport" json:"ledgerStatus"`
	Consistent    bool             `docstruct:"ReconciliationReport" json:"consistent"`
	Discrepancies []string         `docstruct:"ReconciliationReport" json:"discrepancies,omitempty"`
	Snapshot      *EscrowSnapshot  `docstruct:"ReconciliationReport" json:"snapshot"`
}
