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

package msgs

import (
	"fmt"
	"strings"
	"sync"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"golang.org/x/text/language"
)

const puentePrefix = "PT01"

var registered sync.Once
var ffe = func(key, translation string, statusHint ...int) i18n.ErrorMessageKey {
	registered.Do(func() {
		i18n.RegisterPrefix(puentePrefix, "Puente Remittance Orchestrator")
	})
	if !strings.HasPrefix(key, puentePrefix) {
		panic(fmt.Errorf("must have prefix '%s': %s", puentePrefix, key))
	}
	return i18n.FFE(language.AmericanEnglish, key, translation, statusHint...)
}

var (
	// Config PT0110XX
	MsgConfigFileMissing    = ffe("PT011000", "Config file not found at path: %s")
	MsgConfigFileReadError  = ffe("PT011001", "Failed to read config file %s with error: %s")
	MsgConfigFileParseError = ffe("PT011002", "Failed to parse config: %s")
	MsgConfigFileNotSet     = ffe("PT011003", "A config file must be specified with -config")

	// Components PT0111XX
	MsgComponentDBInitError            = ffe("PT011100", "Error initializing database")
	MsgComponentEthClientInitError     = ffe("PT011101", "Error initializing ethereum client")
	MsgComponentLedgerInitError        = ffe("PT011102", "Error initializing escrow ledger")
	MsgComponentRatesInitError         = ffe("PT011103", "Error initializing rate provider")
	MsgComponentRemittancesInitError   = ffe("PT011104", "Error initializing remittance manager")
	MsgComponentMetricsServerInitError = ffe("PT011105", "Error initializing metrics server")
	MsgComponentStartError             = ffe("PT011106", "Error starting %s")
	MsgComponentLedgerStartError       = ffe("PT011107", "Error connecting to the escrow ledger")

	// Persistence PT0112XX
	MsgPersistenceInvalidType          = ffe("PT011200", "Invalid persistence type: %s")
	MsgPersistenceMissingDSN           = ffe("PT011201", "Missing database connection Data Source Name (DSN) config")
	MsgPersistenceInitFailed           = ffe("PT011202", "Database init failed")
	MsgPersistenceMigrationFailed      = ffe("PT011203", "Database migration failed")
	MsgPersistenceMissingMigrationDir  = ffe("PT011204", "Missing database migration directory for autoMigrate")
	MsgPersistenceDSNFileReadFailed    = ffe("PT011205", "Failed to read DSN from file %s")
	MsgPersistenceErrorInDBTransaction = ffe("PT011206", "Database transaction failed: %v")

	// RPC and Ethereum client PT0113XX
	MsgRPCClientRequestFailed     = ffe("PT011300", "Backend RPC request failed: %s")
	MsgRPCClientResultParseFailed = ffe("PT011301", "Failed to parse result (expected=%T): %s")
	MsgRPCClientInvalidHTTPURL    = ffe("PT011302", "Invalid HTTP URL: %s")
	MsgEthClientHTTPURLMissing    = ffe("PT011303", "HTTP URL missing in blockchain configuration")
	MsgEthClientChainIDFailed     = ffe("PT011304", "Failed to query chain ID")
	MsgEthClientCallReverted      = ffe("PT011305", "Reverted: %s")
	MsgEthClientReturnDecode      = ffe("PT011306", "Failed to decode return data from %s")
	MsgEthClientNotConnected      = ffe("PT011307", "Ethereum client has not been started")
	MsgEthClientInvalidInput      = ffe("PT011308", "Invalid input for %s")

	// Escrow ledger PT0114XX
	MsgLedgerInvalidAmount       = ffe("PT011400", "Amount must be greater than 0")
	MsgLedgerMissingRecipient    = ffe("PT011401", "Invalid recipient ID")
	MsgLedgerMissingContract     = ffe("PT011402", "Escrow contract address missing in configuration")
	MsgLedgerInvalidContract     = ffe("PT011403", "Invalid escrow contract address '%s'")
	MsgLedgerInvalidOperatorKey  = ffe("PT011404", "Invalid operator key")
	MsgLedgerSubmitFailed        = ffe("PT011405", "Submission of %s failed")
	MsgLedgerTransactionReverted = ffe("PT011406", "Transaction %s for %s reverted: %s")
	MsgLedgerConfirmTimeout      = ffe("PT011407", "No receipt for transaction %s (%s) after %s - it may still be mined")
	MsgLedgerCreatedEventMissing = ffe("PT011408", "Transaction %s did not emit a RemittanceCreated event")
	MsgLedgerInvalidLedgerID     = ffe("PT011409", "Invalid ledger id '%s'")
	MsgLedgerReadFailed          = ffe("PT011410", "Failed to read escrow %s")
	MsgLedgerAmountPrecision     = ffe("PT011411", "Amount %s cannot be represented with %d decimals")
	MsgLedgerGasEstimateFailed   = ffe("PT011412", "Gas estimation for %s failed")
	MsgLedgerTokenLookupFailed   = ffe("PT011413", "Failed to resolve settlement token address from escrow contract")
	MsgLedgerInvalidOperatorFile = ffe("PT011414", "Failed to read operator key file %s")

	// Rates PT0115XX
	MsgRatesInvalidType     = ffe("PT011500", "Invalid rate provider type: %s")
	MsgRatesMissingURL      = ffe("PT011501", "URL missing in HTTP rate provider configuration")
	MsgRatesRequestFailed   = ffe("PT011502", "Rate request for %s failed [%d]: %s")
	MsgRatesInvalidRate     = ffe("PT011503", "Invalid rate returned for %s: '%s'")
	MsgRatesUnsupportedPair = ffe("PT011504", "Currency pair %s is not supported (configured pair=%s)")

	// Remittances PT0116XX
	MsgRemittanceNotFound             = ffe("PT011600", "Remittance %s not found", 404)
	MsgRemittanceAccessDenied         = ffe("PT011601", "Access to remittance %s denied", 403)
	MsgRemittanceInvalidState         = ffe("PT011602", "Cannot %s remittance %s in status '%s'", 409)
	MsgRemittanceLedgerFailed         = ffe("PT011603", "Ledger call for %s of remittance %s failed", 502)
	MsgRemittanceAuditWriteFailed     = ffe("PT011604", "Failed to record the outcome of %s for remittance %s (ledger error: %v)", 500)
	MsgRemittanceTransitionInProgress = ffe("PT011605", "%s of remittance %s is still waiting on the ledger, the outcome will be recorded when it completes", 202)
	MsgRemittanceInvalidAmount        = ffe("PT011606", "Source amount '%s' must be greater than 0 with at most %d decimal places", 400)
	MsgRemittanceMissingOwner         = ffe("PT011607", "Owner must be supplied", 400)
	MsgRemittanceMissingRecipient     = ffe("PT011608", "Recipient must be supplied", 400)
	MsgRemittanceConcurrentUpdate     = ffe("PT011609", "Remittance %s was updated concurrently (expected version %d)", 409)
	MsgRemittanceRateFailed           = ffe("PT011610", "Failed to obtain the exchange rate for %s", 502)
	MsgRemittanceManagerStopping      = ffe("PT011611", "Remittance manager is stopping", 503)
	MsgRemittanceNoLedgerID           = ffe("PT011612", "Remittance %s has no ledger id", 409)
	MsgRemittanceLedgerReadFailed     = ffe("PT011613", "Failed to read escrow state of remittance %s from the ledger", 502)

	// Audit chain PT0117XX
	MsgAuditChainRoots          = ffe("PT011700", "Audit chain must have exactly one root event (found %d)")
	MsgAuditChainMissingPrev    = ffe("PT011701", "Audit event %s references predecessor %s that is not in the chain")
	MsgAuditChainFork           = ffe("PT011702", "Audit event %s has more than one successor")
	MsgAuditChainWalkMismatch   = ffe("PT011703", "Audit chain walks disagree (forward=%d backward=%d total=%d)")
	MsgAuditChainHashMismatch   = ffe("PT011704", "Audit event %s hash does not match its content")
	MsgAuditEventPayloadInvalid = ffe("PT011705", "Audit event %s must carry exactly one of detail or error")
	MsgAuditChainSeqMismatch    = ffe("PT011706", "Audit event %s at position %d has sequence %d")

	// Types PT0118XX
	MsgTypesTimeParseFail     = ffe("PT011800", "Cannot parse time as RFC3339, Unix, or UnixNano: '%s'")
	MsgTypesRestoreFailed     = ffe("PT011801", "Failed to restore type '%T' into '%T'")
	MsgTypesEnumValueInvalid  = ffe("PT011802", "Value must be one of %s")
	MsgTypesScanFail          = ffe("PT011803", "Unable to scan type %T into type %T")
	MsgTypesInvalidDecimal    = ffe("PT011804", "Invalid decimal value '%v'")
	MsgTypesInvalidTransition = ffe("PT011805", "Status transition from '%s' to '%s' is not permitted")

	// Misc PT0119XX
	MsgContextCanceled           = ffe("PT011900", "Context canceled")
	MsgHTTPServerStartFailed     = ffe("PT011901", "Failed to start server on %s")
	MsgMetricsRegistrationFailed = ffe("PT011902", "Failed to register metrics")
	MsgHTTPServerMissingPort     = ffe("PT011903", "HTTP server port must be specified for '%s'")
)
