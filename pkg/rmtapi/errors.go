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
	"errors"
)

type ErrorKind string

const (
	ErrorKindNotFound     ErrorKind = "not_found"
	ErrorKindAccessDenied ErrorKind = "access_denied"
	ErrorKindInvalidState ErrorKind = "invalid_state"
	// Transient failure calling the ledger, the caller may retry the same operation
	ErrorKindLedgerError ErrorKind = "ledger_error"
	// The ledger rejected the operation, retrying without fixing the cause will fail again
	ErrorKindLedgerRejected ErrorKind = "ledger_rejected"
	// The outcome of a ledger call could not be recorded. Fatal for the request.
	ErrorKindAuditWriteFailed ErrorKind = "audit_write_failed"
	// The caller stopped waiting, but the transition continues and records its outcome
	ErrorKindTransitionInProgress ErrorKind = "transition_in_progress"
	ErrorKindValidation           ErrorKind = "validation"
)

// Error classifies a coded error for callers of the orchestrator. The remittance
// is attached where the operation got far enough to have one to report.
type Error struct {
	Kind ErrorKind
	// The ledger call may have succeeded, even though no outcome was observed
	Ambiguous  bool
	Remittance *Remittance

	err   error
	cause error
}

func NewError(kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, err: err}
}

func (e *Error) WithRemittance(r *Remittance) *Error {
	e.Remittance = r
	return e
}

func (e *Error) WithAmbiguous(ambiguous bool) *Error {
	e.Ambiguous = ambiguous
	return e
}

// WithCause keeps an underlying error reachable through errors.Is/errors.As,
// when the primary error is a different failure that happened afterwards
func (e *Error) WithCause(cause error) *Error {
	e.cause = cause
	return e
}

func (e *Error) Error() string {
	return e.err.Error()
}

func (e *Error) Unwrap() []error {
	if e.cause != nil {
		return []error{e.err, e.cause}
	}
	return []error{e.err}
}

// KindOf returns the kind of the outermost classified error in the chain, or "" if unclassified
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsAmbiguous(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Ambiguous
}

func IsLedgerFailure(kind ErrorKind) bool {
	return kind == ErrorKindLedgerError || kind == ErrorKindLedgerRejected
}
