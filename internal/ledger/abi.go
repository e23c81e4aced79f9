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

package ledger

import (
	_ "embed"
	"encoding/json"

	"github.com/hyperledger/firefly-signer/pkg/abi"
)

//go:embed abis/RemittanceEscrow.json
var escrowABIJSON []byte

//go:embed abis/ERC20.json
var erc20ABIJSON []byte

type contractABIs struct {
	escrow abi.ABI
	erc20  abi.ABI
	// custom errors of both contracts, as either can revert a transaction we submit
	errors abi.ABI

	createRemittance  *abi.Entry
	deposit           *abi.Entry
	release           *abi.Entry
	refund            *abi.Entry
	getRemittance     *abi.Entry
	usdc              *abi.Entry
	approve           *abi.Entry
	remittanceCreated *abi.Entry
}

func mustParseABI(b []byte) abi.ABI {
	var a abi.ABI
	if err := json.Unmarshal(b, &a); err != nil {
		panic(err)
	}
	return a
}

func loadContractABIs() *contractABIs {
	c := &contractABIs{
		escrow: mustParseABI(escrowABIJSON),
		erc20:  mustParseABI(erc20ABIJSON),
	}
	functions := c.escrow.Functions()
	c.createRemittance = functions["createRemittance"]
	c.deposit = functions["deposit"]
	c.release = functions["release"]
	c.refund = functions["refund"]
	c.getRemittance = functions["getRemittance"]
	c.usdc = functions["usdc"]
	c.approve = c.erc20.Functions()["approve"]
	c.remittanceCreated = c.escrow.Events()["RemittanceCreated"]
	all := append(abi.ABI{}, c.escrow...)
	for _, e := range append(all, c.erc20...) {
		if e.Type == abi.Error {
			c.errors = append(c.errors, e)
		}
	}
	return c
}
