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
	"time"

	"github.com/docker/go-units"
	"github.com/shopspring/decimal"
)

// Helpers for reading the pointer-valued config structs in rmtconf, falling back to
// the defaults declared alongside them. Kept free of logging as the log package uses them.

func Int(iVal *int, def int) int {
	if iVal == nil {
		return def
	}
	return *iVal
}

func IntMin(iVal *int, min int, def int) int {
	if iVal == nil {
		return def
	} else if *iVal < min {
		return min
	}
	return *iVal
}

func Int32Range(iVal *int32, min, max int32, def int32) int32 {
	switch {
	case iVal == nil:
		return def
	case *iVal < min:
		return min
	case *iVal > max:
		return max
	}
	return *iVal
}

func Float64Min(fVal *float64, min float64, def float64) float64 {
	if fVal == nil {
		return def
	} else if *fVal < min {
		return min
	}
	return *fVal
}

func Bool(bVal *bool, def bool) bool {
	if bVal == nil {
		return def
	}
	return *bVal
}

func StringNotEmpty(sVal *string, def string) string {
	if sVal == nil || *sVal == "" {
		return def
	}
	return *sVal
}

func StringOrEmpty(sVal *string, def string) string {
	if sVal == nil {
		return def
	}
	return *sVal
}

func DurationMin(sVal *string, min time.Duration, def string) time.Duration {
	var dVal *time.Duration
	if sVal != nil {
		if d, err := time.ParseDuration(*sVal); err == nil {
			dVal = &d
		}
	}
	if dVal == nil {
		defDuration, _ := time.ParseDuration(def)
		dVal = &defDuration
	} else if *dVal < min {
		return min
	}
	return *dVal
}

// ByteSize accepts human sizes like "100Mb"
func ByteSize(sVal *string, min int64, def string) int64 {
	var iVal *int64
	if sVal != nil {
		if i, err := units.RAMInBytes(*sVal); err == nil {
			iVal = &i
		}
	}
	if iVal == nil {
		i, _ := units.RAMInBytes(def)
		iVal = &i
	} else if *iVal < min {
		return min
	}
	return *iVal
}

// Decimal parses a fixed-point config value, such as a static exchange rate.
// Unparseable or non-positive values fall back to the default.
func Decimal(sVal *string, def string) decimal.Decimal {
	if sVal != nil {
		if d, err := decimal.NewFromString(*sVal); err == nil && d.IsPositive() {
			return d
		}
	}
	return decimal.RequireFromString(def)
}

func P[T any](v T) *T {
	return &v
}
