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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// Fixed point precision of the monetary fields
	AmountUSDCDecimals   = 6
	AmountCOPDecimals    = 2
	ExchangeRateDecimals = 4
)

type Remittance struct {
	ID             uuid.UUID        `docstruct:"Remittance" json:"id"`
	BlockchainID   *string          `docstruct:"Remittance" json:"blockchainId,omitempty"`
	SenderID       string           `docstruct:"Remittance" json:"senderId"`
	RecipientID    string           `docstruct:"Remittance" json:"recipientId"`
	RecipientName  string           `docstruct:"Remittance" json:"recipientName"`
	AmountUSDC     decimal.Decimal  `docstruct:"Remittance" json:"amountUsdc"`
	AmountCOP      decimal.Decimal  `docstruct:"Remittance" json:"amountCop"`
	ExchangeRate   decimal.Decimal  `docstruct:"Remittance" json:"exchangeRate"`
	RateAsOf       Timestamp        `docstruct:"Remittance" json:"rateAsOf"`
	Status         RemittanceStatus `docstruct:"Remittance" json:"status"`
	TxHashCreate   *string          `docstruct:"Remittance" json:"txHashCreate,omitempty"`
	TxHashFund     *string          `docstruct:"Remittance" json:"txHashFund,omitempty"`
	// Set by release, receive, or refund
	TxHashComplete *string          `docstruct:"Remittance" json:"txHashComplete,omitempty"`
	CreatedAt      Timestamp        `docstruct:"Remittance" json:"createdAt"`
	FundedAt       *Timestamp       `docstruct:"Remittance" json:"fundedAt,omitempty"`
	CompletedAt    *Timestamp       `docstruct:"Remittance" json:"completedAt,omitempty"`
	UpdatedAt      Timestamp        `docstruct:"Remittance" json:"updatedAt"`
	Version        int64            `docstruct:"Remittance" json:"version"`
	Logs           []*AuditEvent    `docstruct:"Remittance" json:"logs,omitempty"`
}

// DestinationAmount computes the amount received from the source amount and rate,
// which is how AmountCOP is frozen at creation
func DestinationAmount(sourceAmount, rate decimal.Decimal) decimal.Decimal {
	return sourceAmount.Mul(rate).Round(AmountCOPDecimals)
}

type ClaimMetadata struct {
	IPAddress string `docstruct:"ClaimMetadata" json:"ipAddress"`
	UserAgent string `docstruct:"ClaimMetadata" json:"userAgent"`
}

// ReceivedRecord is written once, in the same unit of work as the funded->completed
// transition of a receive, and never updated
type ReceivedRecord struct {
	ID           uuid.UUID `docstruct:"ReceivedRecord" json:"id"`
	RemittanceID uuid.UUID `docstruct:"ReceivedRecord" json:"remittanceId"`
	IPAddress    string    `docstruct:"ReceivedRecord" json:"ipAddress"`
	UserAgent    string    `docstruct:"ReceivedRecord" json:"userAgent"`
	ReceivedAt   Timestamp `docstruct:"ReceivedRecord" json:"receivedAt"`
}

type OwnerIdentity struct {
	ID    string `docstruct:"OwnerIdentity" json:"id"`
	Email string `docstruct:"OwnerIdentity" json:"email,omitempty"`
	Name  string `docstruct:"OwnerIdentity" json:"name,omitempty"`
}

type AdminRemittance struct {
	*Remittance
	Sender *OwnerIdentity `docstruct:"AdminRemittance" json:"sender,omitempty"`
}

type ContractConfig struct {
	EscrowAddress string `docstruct:"ContractConfig" json:"escrowAddress"`
	USDCAddress   string `docstruct:"ContractConfig" json:"usdcAddress"`
	ChainID       int64  `docstruct:"ContractConfig" json:"chainId"`
}
