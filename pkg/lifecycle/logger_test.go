/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package lifecycle

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/wifihealth/pkg/logger"
)

func TestNewLoggerImplLevels(t *testing.T) {
	var buf bytes.Buffer

	l, err := newLoggerImpl(context.Background(), &logger.Config{Level: "warn"}, &buf)
	require.NoError(t, err)

	l.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	l.Warn().Str("ssid", "home").Msg("shown")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "home", entry["ssid"])
	assert.Equal(t, "warn", entry["level"])
}

func TestNewLoggerImplDebugOverridesLevel(t *testing.T) {
	var buf bytes.Buffer

	l, err := newLoggerImpl(context.Background(), &logger.Config{Level: "error", Debug: true}, &buf)
	require.NoError(t, err)

	l.Debug().Msg("debug line")
	assert.Contains(t, buf.String(), "debug line")

	l.SetDebug(false)
	buf.Reset()
	l.Debug().Msg("suppressed")
	assert.Zero(t, buf.Len())
}

func TestNewLoggerImplInvalidLevel(t *testing.T) {
	_, err := newLoggerImpl(context.Background(), &logger.Config{Level: "loud"}, &bytes.Buffer{})
	require.Error(t, err)
}

func TestWithComponentTagsEntries(t *testing.T) {
	var buf bytes.Buffer

	l, err := newLoggerImpl(context.Background(), &logger.Config{Level: "info"}, &buf)
	require.NoError(t, err)

	child := l.WithComponent("healthmonitor")
	child.Info().Msg("tagged")

	assert.Contains(t, buf.String(), `"component":"healthmonitor"`)
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer

	l, err := newLoggerImpl(context.Background(), &logger.Config{Level: "info"}, &buf)
	require.NoError(t, err)

	l.SetLevel(zerolog.ErrorLevel)
	l.Warn().Msg("dropped")
	assert.Zero(t, buf.Len())
}
