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

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/wifihealth/pkg/logger"
	"github.com/carverauto/wifihealth/pkg/models"
)

type fakeKVReader struct {
	values map[string][]byte
	err    error
}

func (f *fakeKVReader) Get(_ context.Context, key string) ([]byte, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}

	val, ok := f.values[key]

	return val, ok, nil
}

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "wifihealth.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadAndValidateFromFileAppliesDefaults(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "")

	path := writeConfigFile(t, `{
		"l2_key_seed": "seed",
		"storage": {"backend": "memory"},
		"monitor": {"post_boot_wait": "30s", "min_bssid_2g": 3, "min_bssid_above_2g": 0}
	}`)

	cfg := models.DefaultConfig()

	err := NewConfig(logger.NewTestLogger()).LoadAndValidate(context.Background(), path, &cfg)
	require.NoError(t, err)

	assert.Equal(t, models.Duration(30*time.Second), cfg.Monitor.PostBootWait)
	assert.Equal(t, 3, cfg.Monitor.MinBssid2G)
	assert.Zero(t, cfg.Monitor.MinBssidAbove2G)
	assert.Equal(t, 24, cfg.Monitor.DailyHour)
	assert.Equal(t, models.Duration(60*time.Second), cfg.Monitor.MaxScanInterval)
	assert.Equal(t, 10, cfg.Scorecard.MinConnectionAttempts)
	assert.Equal(t, ":8090", cfg.ListenAddr)
}

func TestLoadAndValidateRejectsMissingSeed(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "file")

	path := writeConfigFile(t, `{"storage": {"backend": "memory"}}`)

	var cfg models.Config

	err := NewConfig(nil).LoadAndValidate(context.Background(), path, &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "l2_key_seed")
}

func TestLoadAndValidateNumericDuration(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "")

	path := writeConfigFile(t, `{
		"l2_key_seed": "seed",
		"storage": {"backend": "memory"},
		"monitor": {"max_scan_interval": 5000000000}
	}`)

	var cfg models.Config

	require.NoError(t, NewConfig(nil).LoadAndValidate(context.Background(), path, &cfg))
	assert.Equal(t, models.Duration(5*time.Second), cfg.Monitor.MaxScanInterval)
}

func TestLoadAndValidateInvalidSource(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "consul")

	var cfg models.Config

	err := NewConfig(nil).LoadAndValidate(context.Background(), "unused.json", &cfg)
	require.ErrorIs(t, err, errInvalidConfigSource)
}

func TestEnvLoaderNestedFields(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "env")
	t.Setenv("WIFIHEALTH_L2_KEY_SEED", "env-seed")
	t.Setenv("WIFIHEALTH_NETWORKS", "home, office")
	t.Setenv("WIFIHEALTH_STORAGE_BACKEND", "sqlite")
	t.Setenv("WIFIHEALTH_STORAGE_SQLITE_PATH", "/tmp/wifihealth.db")
	t.Setenv("WIFIHEALTH_MONITOR_DAILY_HOUR", "3")
	t.Setenv("WIFIHEALTH_MONITOR_POST_BOOT_WAIT", "10s")
	t.Setenv("WIFIHEALTH_SCORECARD_RATIO_THRESHOLD", "1.5")

	var cfg models.Config

	require.NoError(t, NewConfig(logger.NewTestLogger()).LoadAndValidate(context.Background(), "", &cfg))

	assert.Equal(t, "env-seed", cfg.L2KeySeed)
	assert.Equal(t, []string{"home", "office"}, cfg.Networks)
	assert.Equal(t, models.StorageBackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, 3, cfg.Monitor.DailyHour)
	assert.Equal(t, models.Duration(10*time.Second), cfg.Monitor.PostBootWait)
	assert.InDelta(t, 1.5, cfg.Scorecard.RatioThreshold, 0.0001)
}

func TestEnvLoaderConfigJSON(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "env")
	t.Setenv("WIFIHEALTH_CONFIG_JSON", `{"l2_key_seed":"json-seed","storage":{"backend":"memory"}}`)

	var cfg models.Config

	require.NoError(t, NewConfig(nil).LoadAndValidate(context.Background(), "", &cfg))
	assert.Equal(t, "json-seed", cfg.L2KeySeed)
}

func TestEnvLoaderRejectsNonPointer(t *testing.T) {
	loader := NewEnvConfigLoader(nil, "WIFIHEALTH_TEST_")

	var cfg models.Config

	require.ErrorIs(t, loader.Load(context.Background(), "", cfg), ErrDstMustBeNonNilPointer)
}

func TestKVSourceOverlaysFile(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "kv")

	path := writeConfigFile(t, `{
		"l2_key_seed": "file-seed",
		"interface": "wlan0",
		"storage": {"backend": "memory"}
	}`)

	store := &fakeKVReader{values: map[string][]byte{
		DefaultKVKey: []byte(`{"l2_key_seed":"kv-seed","monitor":{"daily_hour":4}}`),
	}}

	loader := NewConfig(logger.NewTestLogger())
	loader.SetKVStore(store, "")

	var cfg models.Config

	require.NoError(t, loader.LoadAndValidate(context.Background(), path, &cfg))

	assert.Equal(t, "kv-seed", cfg.L2KeySeed)
	assert.Equal(t, "wlan0", cfg.Interface)
	assert.Equal(t, 4, cfg.Monitor.DailyHour)
}

func TestKVSourceWithoutStore(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "kv")

	var cfg models.Config

	require.ErrorIs(t, NewConfig(nil).LoadAndValidate(context.Background(), "x.json", &cfg), errKVStoreNotSet)
}

func TestKVSourceMissingKeyKeepsFile(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "kv")

	path := writeConfigFile(t, `{"l2_key_seed": "file-seed", "storage": {"backend": "memory"}}`)

	loader := NewConfig(logger.NewTestLogger())
	loader.SetKVStore(&fakeKVReader{}, "config/other.json")

	var cfg models.Config

	require.NoError(t, loader.LoadAndValidate(context.Background(), path, &cfg))
	assert.Equal(t, "file-seed", cfg.L2KeySeed)
}

func TestEnvLoaderLeavesUnsetPointersNil(t *testing.T) {
	t.Setenv("WIFIHEALTH_TEST_L2_KEY_SEED", "seed")
	t.Setenv("WIFIHEALTH_TEST_MONITOR_MAX_SCAN_INTERVAL", "30000000000")
	t.Setenv("WIFIHEALTH_TEST_MONITOR_MIN_BSSID_2G", "many")

	cfg := models.DefaultConfig()

	require.NoError(t, NewEnvConfigLoader(logger.NewTestLogger(), "WIFIHEALTH_TEST_").Load(context.Background(), "", &cfg))

	assert.Equal(t, "seed", cfg.L2KeySeed)
	assert.Equal(t, models.Duration(30*time.Second), cfg.Monitor.MaxScanInterval)
	assert.Equal(t, 2, cfg.Monitor.MinBssid2G, "unparsable value keeps the default")
	assert.Nil(t, cfg.Logging)

	t.Setenv("WIFIHEALTH_TEST_LOGGING_LEVEL", "debug")

	require.NoError(t, NewEnvConfigLoader(nil, "WIFIHEALTH_TEST_").Load(context.Background(), "", &cfg))
	require.NotNil(t, cfg.Logging)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestFileLoaderRejectsUnknownKeys(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "file")

	path := writeConfigFile(t, `{"l2_key_seed": "seed", "monitor": {"min_bssid_24g": 1}}`)

	cfg := models.DefaultConfig()

	err := NewConfig(nil).LoadAndValidate(context.Background(), path, &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min_bssid_24g")
}

func TestFileLoaderRejectsTrailingData(t *testing.T) {
	path := writeConfigFile(t, `{"l2_key_seed": "seed"} {"l2_key_seed": "other"}`)

	var cfg models.Config

	require.ErrorIs(t, (&FileConfigLoader{}).Load(context.Background(), path, &cfg), errTrailingConfigData)
}
