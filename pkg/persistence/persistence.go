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

package persistence

import (
	"context"
	"hash/fnv"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/msgs"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtconf"
	"gorm.io/gorm"
)

type Persistence interface {
	DB() *gorm.DB
	Close()

	// Transaction wraps a gorm transaction, with hooks that components can attach
	// to run before the commit, after the commit, or after a rollback
	Transaction(ctx context.Context, fn func(ctx context.Context, dbTX DBTX) error) (err error)
	// NOTX gives a DBTX for reads outside of a transaction. Attaching hooks to it panics.
	NOTX() DBTX

	// TakeNamedLock takes a lock that is held until the transaction ends
	TakeNamedLock(ctx context.Context, dbTX DBTX, lockName string) error
}

const (
	TypePostgres = "postgres"
	TypeSQLite   = "sqlite"
)

func NewPersistence(ctx context.Context, conf *rmtconf.DBConfig) (Persistence, error) {
	switch conf.Type {
	case "", TypeSQLite:
		return newSQLiteProvider(ctx, conf)
	case TypePostgres:
		return newPostgresProvider(ctx, conf)
	default:
		return nil, i18n.NewError(ctx, msgs.MsgPersistenceInvalidType, conf.Type)
	}
}

func hashCode(s string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	v := int64(h.Sum64())
	if v < 0 {
		return -v
	}
	return v
}
