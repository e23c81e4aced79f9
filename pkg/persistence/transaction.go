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

	"gorm.io/gorm"
)

type DBTX interface {
	DB() *gorm.DB
	// Runs before commit. An error rolls back the whole transaction.
	AddPreCommit(func(ctx context.Context, tx DBTX) error)
	// Runs only after a successful commit
	AddPostCommit(func(ctx context.Context))
	// Runs after a rollback, and can replace the error returned
	AddPostRollback(func(ctx context.Context, err error) error)
	// Runs in all cases at the end of the transaction. A non-nil err means rollback.
	AddFinalizer(func(ctx context.Context, err error))
	FullTransaction() bool
}

type transaction struct {
	txCtx         context.Context
	gdb           *gorm.DB
	preCommits    []func(ctx context.Context, tx DBTX) error
	postCommits   []func(ctx context.Context)
	postRollbacks []func(ctx context.Context, err error) error
	finalizers    []func(ctx context.Context, err error)
}

func (t *transaction) DB() *gorm.DB {
	return t.gdb
}

func (t *transaction) AddPreCommit(fn func(ctx context.Context, tx DBTX) error) {
	t.preCommits = append(t.preCommits, fn)
}

func (t *transaction) AddPostCommit(fn func(ctx context.Context)) {
	t.postCommits = append(t.postCommits, fn)
}

func (t *transaction) AddPostRollback(fn func(ctx context.Context, err error) error) {
	t.postRollbacks = append(t.postRollbacks, fn)
}

func (t *transaction) AddFinalizer(fn func(ctx context.Context, err error)) {
	t.finalizers = append(t.finalizers, fn)
}

func (t *transaction) FullTransaction() bool {
	return true
}

type noTransaction struct {
	gdb *gorm.DB
}

func (t *noTransaction) DB() *gorm.DB {
	return t.gdb
}

func (t *noTransaction) AddPreCommit(fn func(ctx context.Context, tx DBTX) error) {
	panic("pre-commit hook added outside of a transaction")
}

func (t *noTransaction) AddPostCommit(fn func(ctx context.Context)) {
	panic("post-commit hook added outside of a transaction")
}

func (t *noTransaction) AddPostRollback(fn func(ctx context.Context, err error) error) {
	panic("post-rollback hook added outside of a transaction")
}

func (t *noTransaction) AddFinalizer(fn func(ctx context.Context, err error)) {
	panic("finalizer added outside of a transaction")
}

func (t *noTransaction) FullTransaction() bool {
	return false
}
