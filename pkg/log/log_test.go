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

package log

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/confutil"
	"github.com/ssuarezbe/poc-blockchain-based-remittance-system/pkg/rmtconf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLogging() {
	InitConfig(&rmtconf.LogConfig{})
	logrus.SetReportCaller(false)
}

func TestLogFieldsChain(t *testing.T) {
	ctx := WithLogField(context.Background(), "remittance", "r1")
	ctx = WithLogField(ctx, "op", "fund")
	assert.Equal(t, "r1", L(ctx).Data["remittance"])
	assert.Equal(t, "fund", L(ctx).Data["op"])
	assert.Empty(t, L(context.Background()).Data)
}

func TestLogFieldTruncated(t *testing.T) {
	long := "0x0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
	ctx := WithLogField(context.Background(), "tx", long)
	assert.Equal(t, long[0:61]+"...", L(ctx).Data["tx"])
}

func TestLevels(t *testing.T) {
	defer resetLogging()
	for in, out := range map[string]string{
		"eRrOr":   "error",
		"WARNING": "warn",
		"warn":    "warn",
		"DEBUG":   "debug",
		"trace":   "trace",
		"info":    "info",
		"other":   "info",
	} {
		SetLevel(in)
		assert.Equal(t, out, GetLevel(), in)
	}
	SetLevel("trace")
	assert.True(t, IsDebugEnabled())
	assert.True(t, IsTraceEnabled())
}

func TestJSONFormatFieldMap(t *testing.T) {
	defer resetLogging()
	InitConfig(&rmtconf.LogConfig{Format: confutil.P("json")})
	buf := new(bytes.Buffer)
	logrus.SetOutput(buf)

	L(WithLogField(context.Background(), "op", "create")).Info("hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "create", entry["op"])
	assert.NotEmpty(t, entry["@timestamp"])
}

func TestTextFormats(t *testing.T) {
	defer resetLogging()
	for _, f := range []string{"simple", "detailed"} {
		InitConfig(&rmtconf.LogConfig{
			Format:       confutil.P(f),
			Output:       confutil.P("stdout"),
			DisableColor: confutil.P(true),
			UTC:          confutil.P(false),
		})
		L(context.Background()).Infof("format %s", f)
	}
}

func TestFileOutput(t *testing.T) {
	defer resetLogging()
	logFile := path.Join(t.TempDir(), "puente.log")
	InitConfig(&rmtconf.LogConfig{
		Output: confutil.P("file"),
		File: rmtconf.LogFileConfig{
			Filename: confutil.P(logFile),
			MaxSize:  confutil.P("1Mb"),
		},
	})
	L(context.Background()).Infof("to a file")

	fi, err := os.Stat(logFile)
	require.NoError(t, err)
	assert.False(t, fi.IsDir())
}
