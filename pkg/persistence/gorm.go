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
	"database/sql"
	"os"
	"runtime/debug"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/google/uuid"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/msgs"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/confutil"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/log"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtconf"
	"gorm.io/gorm"

	// Import migrate file source
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

type provider struct {
	p    SQLDBProvider
	gdb  *gorm.DB
	db   *sql.DB
	conf *rmtconf.SQLDBConfig
}

type SQLDBProvider interface {
	DBName() string
	Open(uri string) gorm.Dialector
	GetMigrationDriver(*sql.DB) (migratedb.Driver, error)
	TakeNamedLock(ctx context.Context, dbTX DBTX, lockName string) error
}

func NewSQLProvider(ctx context.Context, p SQLDBProvider, conf *rmtconf.SQLDBConfig, defs *rmtconf.SQLDBConfig) (_ Persistence, err error) {
	dsn, err := resolveDSN(ctx, conf)
	if err != nil {
		return nil, err
	}

	var gp *provider
	gdb, err := gorm.Open(p.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            confutil.Bool(conf.StatementCache, *defs.StatementCache),
	})
	if err == nil {
		gp = &provider{
			p:    p,
			gdb:  gdb,
			conf: conf,
		}
		gp.db, err = gdb.DB()
	}
	if err != nil {
		return nil, i18n.WrapError(ctx, err, msgs.MsgPersistenceInitFailed)
	}
	if conf.DebugQueries {
		gp.gdb = gp.gdb.Debug()
	}
	gp.db.SetMaxOpenConns(confutil.IntMin(conf.MaxOpenConns, 1, *defs.MaxOpenConns))
	gp.db.SetMaxIdleConns(confutil.Int(conf.MaxIdleConns, *defs.MaxIdleConns))
	gp.db.SetConnMaxIdleTime(confutil.DurationMin(conf.ConnMaxIdleTime, 0, *defs.ConnMaxIdleTime))
	gp.db.SetConnMaxLifetime(confutil.DurationMin(conf.ConnMaxLifetime, 0, *defs.ConnMaxLifetime))

	if confutil.Bool(conf.AutoMigrate, false) {
		if err = gp.runMigration(ctx, func(m *migrate.Migrate) error { return m.Up() }); err != nil {
			return nil, err
		}
	}
	return gp, nil
}

// The DSN can be supplied from a file, such as a mounted secret
func resolveDSN(ctx context.Context, conf *rmtconf.SQLDBConfig) (string, error) {
	if conf.DSN == "" && conf.DSNFile != "" {
		b, err := os.ReadFile(conf.DSNFile)
		if err != nil {
			return "", i18n.WrapError(ctx, err, msgs.MsgPersistenceDSNFileReadFailed, conf.DSNFile)
		}
		return strings.TrimSpace(string(b)), nil
	}
	if conf.DSN == "" {
		return "", i18n.NewError(ctx, msgs.MsgPersistenceMissingDSN)
	}
	return conf.DSN, nil
}

func (gp *provider) runMigration(ctx context.Context, mig func(m *migrate.Migrate) error) error {
	m, err := gp.getMigrate(ctx)
	if err == nil {
		err = mig(m)
	}
	if err != nil && err != migrate.ErrNoChange {
		return i18n.WrapError(ctx, err, msgs.MsgPersistenceMigrationFailed)
	}
	version, dirty, _ := m.Version()
	log.L(ctx).Infof("Migrations now at: v=%d dirty=%t", version, dirty)
	return nil
}

func (gp *provider) getMigrate(ctx context.Context) (m *migrate.Migrate, err error) {
	if gp.conf.MigrationsDir == "" {
		return nil, i18n.NewError(ctx, msgs.MsgPersistenceMissingMigrationDir)
	}
	driver, err := gp.p.GetMigrationDriver(gp.db)
	if err == nil {
		fileURL := "file://" + gp.conf.MigrationsDir
		log.L(ctx).Infof("Running migrations in: %s", fileURL)
		m, err = migrate.NewWithDatabaseInstance(fileURL, gp.p.DBName(), driver)
	}
	return m, err
}

func (gp *provider) DB() *gorm.DB {
	return gp.gdb
}

func (gp *provider) Close() {
	err := gp.db.Close()
	log.L(context.Background()).Infof("DB closed (err=%v)", err)
}

func (gp *provider) TakeNamedLock(ctx context.Context, dbTX DBTX, lockName string) error {
	return gp.p.TakeNamedLock(ctx, dbTX, lockName)
}

func (gp *provider) Transaction(parentCtx context.Context, fn func(ctx context.Context, tx DBTX) error) (err error) {

	completed := false
	tx := &transaction{txCtx: log.WithLogField(parentCtx, "dbtx", uuid.NewString()[0:8])}
	defer func() {
		if !completed {
			panicData := recover()
			log.L(tx.txCtx).Errorf("Panic within database transaction: %v\n%s", panicData, debug.Stack())
			if err == nil {
				err = i18n.NewError(tx.txCtx, msgs.MsgPersistenceErrorInDBTransaction, panicData)
			}
		}
		for _, fn := range tx.finalizers {
			fn(tx.txCtx, err)
		}
		if err == nil {
			for _, fn := range tx.postCommits {
				fn(tx.txCtx)
			}
		}
		if !completed {
			panic(err)
		}
	}()

	err = gp.gdb.Transaction(func(gormTX *gorm.DB) error {
		tx.gdb = gormTX.WithContext(tx.txCtx)
		innerErr := fn(tx.txCtx, tx)
		for _, fn := range tx.preCommits {
			if innerErr == nil {
				innerErr = fn(tx.txCtx, tx)
			}
		}
		return innerErr
	})

	if err != nil {
		for _, fn := range tx.postRollbacks {
			err = fn(tx.txCtx, err)
		}
	}

	completed = true
	return err
}

func (gp *provider) NOTX() DBTX {
	return &noTransaction{gdb: gp.gdb}
}
