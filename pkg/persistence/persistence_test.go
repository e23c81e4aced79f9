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
	"testing"

	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtconf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersistenceTypes(t *testing.T) {
	ctx := context.Background()

	_, err := NewPersistence(ctx, &rmtconf.DBConfig{})
	assert.Regexp(t, "PT011201", err)

	_, err = NewPersistence(ctx, &rmtconf.DBConfig{Type: "postgres"})
	assert.Regexp(t, "PT011201", err)

	_, err = NewPersistence(ctx, &rmtconf.DBConfig{Type: "mongo"})
	assert.Regexp(t, "PT011200.*mongo", err)
}

func TestHashCodeStableAndPositive(t *testing.T) {
	a := hashCode("remittance:3b6f3a43")
	assert.Equal(t, a, hashCode("remittance:3b6f3a43"))
	assert.NotEqual(t, a, hashCode("remittance:3b6f3a44"))
	for _, s := range []string{"", "a", "remittance:x", "zzzzzzzzzzzzzzzzzz"} {
		require.GreaterOrEqual(t, hashCode(s), int64(0))
	}
}
