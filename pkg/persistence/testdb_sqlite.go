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

	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/confutil"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtconf"
)

// NewUnitTestPersistence returns an in-memory SQLite DB with all migrations applied,
// for tests in packages two levels below the module root.
func NewUnitTestPersistence(ctx context.Context) (Persistence, func(), error) {
	p, err := newSQLiteProvider(ctx, &rmtconf.DBConfig{
		Type: TypeSQLite,
		SQLite: rmtconf.SQLiteConfig{
			SQLDBConfig: rmtconf.SQLDBConfig{
				DSN:           ":memory:",
				AutoMigrate:   confutil.P(true),
				MigrationsDir: "../../db/migrations/sqlite",
			},
		},
	})
	if err != nil {
		return nil, func() {}, err
	}
	return p, p.Close, nil
}
