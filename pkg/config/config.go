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

// Package config loads daemon configuration from a JSON file, the environment, or a KV overlay.
package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/carverauto/wifihealth/pkg/logger"
	"github.com/rs/zerolog"
)

var (
	errKVStoreNotSet       = errors.New("KV store not initialized for CONFIG_SOURCE=kv; call SetKVStore first")
	errInvalidConfigSource = errors.New("invalid CONFIG_SOURCE value")
	errLoadConfigFailed    = errors.New("failed to load configuration")
)

const (
	configSourceKV   = "kv"
	configSourceFile = "file"
	configSourceEnv  = "env"

	// DefaultEnvPrefix prefixes every environment variable read by the env loader.
	DefaultEnvPrefix = "WIFIHEALTH_"
	// DefaultKVKey is where the KV overlay document lives.
	DefaultKVKey = "config/wifihealth.json"
)

// Validator is implemented by configs that can check themselves after loading.
type Validator interface {
	Validate() error
}

// ConfigLoader loads a configuration document from some source into dst.
type ConfigLoader interface {
	Load(ctx context.Context, path string, dst interface{}) error
}

// KVReader is the subset of a KV store used for config overlays.
type KVReader interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
}

// Config holds the configuration loading dependencies.
type Config struct {
	kvStore       KVReader
	kvKey         string
	defaultLoader ConfigLoader
	logger        logger.Logger
}

// NewConfig initializes a new Config with a file loader. A nil logger gets a
// warn-level stderr logger.
func NewConfig(log logger.Logger) *Config {
	if log == nil {
		log = createBasicLogger()
	}

	return &Config{
		defaultLoader: &FileConfigLoader{},
		logger:        log,
		kvKey:         DefaultKVKey,
	}
}

// basicLogger implements logger.Logger for config loading before the real logger exists.
type basicLogger struct {
	logger zerolog.Logger
}

func createBasicLogger() logger.Logger {
	zlog := zerolog.New(os.Stderr).
		Level(zerolog.WarnLevel).
		With().
		Timestamp().
		Logger()

	return &basicLogger{logger: zlog}
}

func (b *basicLogger) Trace() *zerolog.Event { return b.logger.Trace() }
func (b *basicLogger) Debug() *zerolog.Event { return b.logger.Debug() }
func (b *basicLogger) Info() *zerolog.Event  { return b.logger.Info() }
func (b *basicLogger) Warn() *zerolog.Event  { return b.logger.Warn() }
func (b *basicLogger) Error() *zerolog.Event { return b.logger.Error() }
func (b *basicLogger) Fatal() *zerolog.Event { return b.logger.Fatal() }
func (b *basicLogger) Panic() *zerolog.Event { return b.logger.Panic() }
func (b *basicLogger) With() zerolog.Context { return b.logger.With() }

func (b *basicLogger) WithComponent(component string) zerolog.Logger {
	return b.logger.With().Str("component", component).Logger()
}

func (b *basicLogger) WithFields(fields map[string]interface{}) zerolog.Logger {
	return b.logger.With().Fields(fields).Logger()
}

func (b *basicLogger) SetLevel(level zerolog.Level) {
	b.logger = b.logger.Level(level)
}

func (b *basicLogger) SetDebug(debug bool) {
	if debug {
		b.SetLevel(zerolog.DebugLevel)
	} else {
		b.SetLevel(zerolog.InfoLevel)
	}
}

// ValidateConfig validates a configuration if it implements Validator.
func ValidateConfig(cfg interface{}) error {
	v, ok := cfg.(Validator)
	if !ok {
		return nil
	}

	return v.Validate()
}

// SetKVStore sets the store used when CONFIG_SOURCE=kv, and optionally the key to read.
func (c *Config) SetKVStore(store KVReader, key string) {
	c.kvStore = store

	if key != "" {
		c.kvKey = key
	}
}

// LoadAndValidate loads a configuration from the source selected by CONFIG_SOURCE and validates it.
func (c *Config) LoadAndValidate(ctx context.Context, path string, cfg interface{}) error {
	if err := c.loadWithSource(ctx, path, cfg); err != nil {
		return err
	}

	return ValidateConfig(cfg)
}

// Source reports the configured CONFIG_SOURCE, defaulting to file.
func Source() string {
	source := strings.ToLower(os.Getenv("CONFIG_SOURCE"))
	if source == "" {
		return configSourceFile
	}

	return source
}

func (c *Config) loadWithSource(ctx context.Context, path string, cfg interface{}) error {
	source := Source()

	switch source {
	case configSourceKV:
		if c.kvStore == nil {
			return errKVStoreNotSet
		}

		// the file is the base document; the KV entry overlays it
		if err := c.defaultLoader.Load(ctx, path, cfg); err != nil {
			c.logger.Warn().Err(err).Str("path", path).Msg("Base config file unavailable, using KV only")
		}

		if err := c.overlayFromKV(ctx, cfg); err != nil {
			return fmt.Errorf("%w from KV: %w", errLoadConfigFailed, err)
		}

		return nil
	case configSourceEnv:
		prefix := os.Getenv("CONFIG_ENV_PREFIX")
		if prefix == "" {
			prefix = DefaultEnvPrefix
		}

		return NewEnvConfigLoader(c.logger, prefix).Load(ctx, path, cfg)
	case configSourceFile:
		return c.defaultLoader.Load(ctx, path, cfg)
	default:
		return fmt.Errorf("%w: %s (expected '%s', '%s', or '%s')",
			errInvalidConfigSource, source, configSourceFile, configSourceKV, configSourceEnv)
	}
}

func (c *Config) overlayFromKV(ctx context.Context, cfg interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	data, found, err := c.kvStore.Get(ctx, c.kvKey)
	if err != nil {
		return err
	}

	if !found {
		c.logger.Info().Str("key", c.kvKey).Msg("No KV config overlay found")

		return nil
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to unmarshal KV config %q: %w", c.kvKey, err)
	}

	c.logger.Info().Str("key", c.kvKey).Msg("Applied KV config overlay")

	return nil
}
