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
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/components"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/internal/msgs"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/confutil"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/log"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/persistence"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtapi"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtconf"
)

type remittanceManager struct {
	bgCtx           context.Context
	callerTimeout   time.Duration
	shutdownTimeout time.Duration

	p       persistence.Persistence
	metrics remittanceMetrics
	ledger  components.EscrowLedger
	rates   components.RateProvider
	owners  components.OwnerDirectory

	locksMux sync.Mutex
	locks    map[uuid.UUID]*remittanceLock

	inflightMux sync.Mutex
	inflight    sync.WaitGroup
	stopping    bool
}

type remittanceLock struct {
	sync.Mutex
	refs int
}

var _ components.RemittanceManager = &remittanceManager{}

func NewRemittanceManager(bgCtx context.Context, conf *rmtconf.OrchestratorConfig) components.RemittanceManager {
	return &remittanceManager{
		bgCtx:           log.WithLogField(bgCtx, "component", "remittances"),
		callerTimeout:   confutil.DurationMin(conf.CallerTimeout, 10*time.Millisecond, *rmtconf.OrchestratorDefaults.CallerTimeout),
		shutdownTimeout: confutil.DurationMin(conf.ShutdownTimeout, 0, *rmtconf.OrchestratorDefaults.ShutdownTimeout),
		locks:           make(map[uuid.UUID]*remittanceLock),
	}
}

func (rm *remittanceManager) PreInit(c components.PreInitComponents) (err error) {
	rm.p = c.Persistence()
	rm.metrics, err = initMetrics(rm.bgCtx, c.MetricsManager().Registry())
	return err
}

func (rm *remittanceManager) PostInit(c components.AllComponents) error {
	rm.ledger = c.EscrowLedger()
	rm.rates = c.RateProvider()
	return nil
}

func (rm *remittanceManager) Start() error {
	return nil
}

// Stop refuses new transitions, and waits for the ones that are still waiting on the ledger
func (rm *remittanceManager) Stop() {
	rm.inflightMux.Lock()
	rm.stopping = true
	rm.inflightMux.Unlock()

	done := make(chan struct{})
	go func() {
		rm.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		log.L(rm.bgCtx).Infof("Remittance manager stopped")
	case <-time.After(rm.shutdownTimeout):
		log.L(rm.bgCtx).Warnf("Remittance manager stopped with transitions still in flight after %s", rm.shutdownTimeout)
	}
}

// SetOwnerDirectory is called before Start, if owner identities are available for admin listings
func (rm *remittanceManager) SetOwnerDirectory(od components.OwnerDirectory) {
	rm.owners = od
}

// lockRemittance serializes transitions of one remittance within this process.
// Transitions of different remittances do not contend.
func (rm *remittanceManager) lockRemittance(id uuid.UUID) func() {
	rm.locksMux.Lock()
	l := rm.locks[id]
	if l == nil {
		l = &remittanceLock{}
		rm.locks[id] = l
	}
	l.refs++
	rm.locksMux.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		rm.locksMux.Lock()
		l.refs--
		if l.refs == 0 {
			delete(rm.locks, id)
		}
		rm.locksMux.Unlock()
	}
}

type transitionResult struct {
	r   *rmtapi.Remittance
	err error
}

// runTransition runs fn detached from the cancellation of the caller's context.
// A submitted ledger transaction cannot be withdrawn, so if the caller stops waiting
// the transition still runs to the end and records its outcome.
func (rm *remittanceManager) runTransition(ctx context.Context, op string, id uuid.UUID, fn func(ctx context.Context) (*rmtapi.Remittance, error)) (*rmtapi.Remittance, error) {
	rm.inflightMux.Lock()
	if rm.stopping {
		rm.inflightMux.Unlock()
		return nil, rmtapi.NewError(rmtapi.ErrorKindInvalidState, i18n.NewError(ctx, msgs.MsgRemittanceManagerStopping))
	}
	rm.inflight.Add(1)
	rm.inflightMux.Unlock()

	txCtx := log.WithLogField(log.WithLogField(context.WithoutCancel(ctx), "remittance", id.String()), "op", op)
	done := make(chan transitionResult, 1)
	go func() {
		defer rm.inflight.Done()
		r, err := fn(txCtx)
		done <- transitionResult{r: r, err: err}
	}()

	timer := time.NewTimer(rm.callerTimeout)
	defer timer.Stop()
	select {
	case res := <-done:
		return res.r, res.err
	case <-ctx.Done():
	case <-timer.C:
	}
	log.L(txCtx).Warnf("Caller stopped waiting for %s, the outcome will be recorded when it arrives", op)
	return nil, rmtapi.NewError(rmtapi.ErrorKindTransitionInProgress,
		i18n.NewError(ctx, msgs.MsgRemittanceTransitionInProgress, op, id))
}

// attempt calls the ledger for a loaded record that the policy permits, and commits the
// outcome with exactly one audit event. The caller holds the remittance lock.
func (rm *remittanceManager) attempt(ctx context.Context, tp *transitionPolicy, r *rmtapi.Remittance, claim *rmtapi.ClaimMetadata) (*rmtapi.Remittance, error) {
	start := time.Now()
	log.L(ctx).Infof("Calling ledger for %s (status=%s version=%d)", tp.operation, r.Status, r.Version)
	lo, ledgerErr := tp.call(ctx, rm.ledger, r)

	var updated *rmtapi.Remittance
	var err error
	if ledgerErr == nil {
		updated, err = rm.commitSuccess(ctx, tp, r, lo, claim)
	} else {
		log.L(ctx).Errorf("Ledger call for %s failed: %s", tp.operation, ledgerErr)
		updated, err = rm.commitFailure(ctx, tp, r, lo, ledgerErr)
	}
	rm.metrics.RecordTransition(tp.operation, err, time.Since(start))
	return updated, err
}

func (rm *remittanceManager) commitSuccess(ctx context.Context, tp *transitionPolicy, r *rmtapi.Remittance, lo *ledgerOutcome, claim *rmtapi.ClaimMetadata) (*rmtapi.Remittance, error) {
	if err := rmtapi.ValidateTransition(ctx, r.Status, tp.successStatus); err != nil {
		return r, rmtapi.NewError(rmtapi.ErrorKindInvalidState, err).WithRemittance(r)
	}
	now := rmtapi.TimestampNow()
	next := nextVersion(r, tp.successStatus, now)
	tp.applySuccess(next, lo, now)

	payload, err := rmtapi.DetailPayload(lo)
	if err != nil {
		return r, rmtapi.NewError(rmtapi.ErrorKindAuditWriteFailed,
			i18n.WrapError(ctx, err, msgs.MsgRemittanceAuditWriteFailed, tp.operation, r.ID, nil)).WithRemittance(r)
	}

	var received *persistedReceivedRecord
	if claim != nil {
		received = &persistedReceivedRecord{
			ID:           uuid.New(),
			RemittanceID: r.ID,
			IPAddress:    claim.IPAddress,
			UserAgent:    claim.UserAgent,
			ReceivedAt:   now,
		}
	}

	if err := rm.commit(ctx, r, next, tp.successAction, payload, received); err != nil {
		// The ledger moved, but we could not record it. Reconciliation will find the difference.
		log.L(ctx).Errorf("Failed to record successful %s (ledgerId=%v tx=%s): %s", tp.operation, next.BlockchainID, lo.TxHash, err)
		return r, rmtapi.NewError(rmtapi.ErrorKindAuditWriteFailed,
			i18n.WrapError(ctx, err, msgs.MsgRemittanceAuditWriteFailed, tp.operation, r.ID, nil)).WithRemittance(r)
	}
	log.L(ctx).Infof("Remittance %s -> %s (tx=%s)", r.Status, next.Status, lo.TxHash)
	return next, nil
}

func (rm *remittanceManager) commitFailure(ctx context.Context, tp *transitionPolicy, r *rmtapi.Remittance, lo *ledgerOutcome, ledgerErr error) (*rmtapi.Remittance, error) {
	kind := rmtapi.KindOf(ledgerErr)
	if !rmtapi.IsLedgerFailure(kind) {
		kind = rmtapi.ErrorKindLedgerError
	}
	ambiguous := rmtapi.IsAmbiguous(ledgerErr)
	classified := rmtapi.NewError(kind, i18n.WrapError(ctx, ledgerErr, msgs.MsgRemittanceLedgerFailed, tp.operation, r.ID)).
		WithAmbiguous(ambiguous).
		WithCause(ledgerErr)

	status := r.Status
	if tp.failureStatus != "" {
		status = tp.failureStatus
	}
	if err := rmtapi.ValidateTransition(ctx, r.Status, status); status != r.Status && err != nil {
		return r, classified.WithRemittance(r)
	}
	now := rmtapi.TimestampNow()
	next := nextVersion(r, status, now)
	payload := rmtapi.ErrorPayload(classified, lo.progress())

	if err := rm.commit(ctx, r, next, tp.failureAction, payload, nil); err != nil {
		log.L(ctx).Errorf("Failed to record failed %s: %s", tp.operation, err)
		return r, rmtapi.NewError(rmtapi.ErrorKindAuditWriteFailed,
			i18n.WrapError(ctx, err, msgs.MsgRemittanceAuditWriteFailed, tp.operation, r.ID, ledgerErr)).
			WithCause(classified).
			WithRemittance(r)
	}
	return next, classified.WithRemittance(next)
}

// nextVersion is the copy of the record that a transition commits
func nextVersion(r *rmtapi.Remittance, status rmtapi.RemittanceStatus, now rmtapi.Timestamp) *rmtapi.Remittance {
	next := *r
	next.Logs = nil
	next.Status = status
	next.UpdatedAt = now
	next.Version = r.Version + 1
	return &next
}
