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

package confutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIntHelpers(t *testing.T) {
	assert.Equal(t, 5, Int(nil, 5))
	assert.Equal(t, 7, Int(P(7), 5))
	assert.Equal(t, 10, IntMin(P(1), 10, 20))
	assert.Equal(t, 20, IntMin(nil, 10, 20))
	assert.Equal(t, int32(3), Int32Range(P(int32(1)), 3, 9, 5))
	assert.Equal(t, int32(9), Int32Range(P(int32(100)), 3, 9, 5))
	assert.Equal(t, int32(5), Int32Range(nil, 3, 9, 5))
	assert.Equal(t, 1.5, Float64Min(P(0.5), 1.5, 2.0))
	assert.Equal(t, 2.0, Float64Min(nil, 1.5, 2.0))
}

func TestStringHelpers(t *testing.T) {
	assert.Equal(t, "def", StringNotEmpty(P(""), "def"))
	assert.Equal(t, "val", StringNotEmpty(P("val"), "def"))
	assert.Equal(t, "", StringOrEmpty(P(""), "def"))
	assert.Equal(t, "def", StringOrEmpty(nil, "def"))
	assert.True(t, Bool(nil, true))
	assert.False(t, Bool(P(false), true))
}

func TestDurationMin(t *testing.T) {
	assert.Equal(t, 5*time.Second, DurationMin(nil, 0, "5s"))
	assert.Equal(t, 5*time.Second, DurationMin(P("wrong"), 0, "5s"))
	assert.Equal(t, time.Second, DurationMin(P("10ms"), time.Second, "5s"))
	assert.Equal(t, time.Minute, DurationMin(P("1m"), time.Second, "5s"))
}

func TestByteSize(t *testing.T) {
	assert.Equal(t, int64(1024*1024), ByteSize(nil, 0, "1Mb"))
	assert.Equal(t, int64(1024*1024), ByteSize(P("bad"), 0, "1Mb"))
	assert.Equal(t, int64(2048), ByteSize(P("2Kb"), 0, "1Mb"))
	assert.Equal(t, int64(4096), ByteSize(P("2Kb"), 4096, "1Mb"))
}

func TestDecimal(t *testing.T) {
	assert.Equal(t, "4150", Decimal(nil, "4150.0000").String())
	assert.Equal(t, "3999.25", Decimal(P("3999.25"), "4150").String())
	assert.Equal(t, "4150", Decimal(P("-1"), "4150").String())
	assert.Equal(t, "4150", Decimal(P("nope"), "4150").String())
}
