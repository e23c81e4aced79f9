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

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtapi"
)

// OwnerDirectory resolves the identity of remittance owners, for admin views
type OwnerDirectory interface {
	LookupOwners(ctx context.Context, ownerIDs []string) (map[string]*rmtapi.OwnerIdentity, error)
}

type RemittanceManager interface {
	ManagerLifecycle

	CreateRemittance(ctx context.Context, ownerID, recipientRef, recipientName string, sourceAmount decimal.Decimal) (*rmtapi.Remittance, error)
	ListRemittances(ctx context.Context, ownerID string) ([]*rmtapi.Remittance, error)
	// The ownership check is skipped when requesterID is nil
	GetRemittance(ctx context.Context, id uuid.UUID, requesterID *string) (*rmtapi.Remittance, error)
	FundRemittance(ctx context.Context, id uuid.UUID) (*rmtapi.Remittance, error)
	ReleaseRemittance(ctx context.Context, id uuid.UUID) (*rmtapi.Remittance, error)
	ReceiveRemittance(ctx context.Context, id uuid.UUID, claim *rmtapi.ClaimMetadata) (*rmtapi.Remittance, error)
	RefundRemittance(ctx context.Context, id uuid.UUID) (*rmtapi.Remittance, error)
	ListAllAdmin(ctx context.Context) ([]*rmtapi.AdminRemittance, error)

	GetAuditChain(ctx context.Context, id uuid.UUID) ([]*rmtapi.AuditEvent, error)
	GetReceivedRecord(ctx context.Context, id uuid.UUID) (*rmtapi.ReceivedRecord, error)
	ReconcileRemittance(ctx context.Context, id uuid.UUID) (*rmtapi.ReconciliationReport, error)
	ContractConfig(ctx context.Context) (*rmtapi.ContractConfig, error)
	SetOwnerDirectory(od OwnerDirectory)
}
