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
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/carverauto/wifihealth/pkg/logger"
)

var (
	// ErrDstMustBeNonNilPointer indicates that the destination must be a non-nil pointer.
	ErrDstMustBeNonNilPointer = errors.New("dst must be a non-nil pointer")
	// ErrDstMustBePointerToStruct indicates that the destination must be a pointer to a struct.
	ErrDstMustBePointerToStruct = errors.New("dst must be a pointer to a struct")
)

// EnvConfigLoader overlays environment variables onto a config struct. Names are the
// upper-cased json tags joined with underscores under a prefix, so
// WIFIHEALTH_MONITOR_DAILY_HOUR sets Monitor.DailyHour. <prefix>CONFIG_JSON, when set,
// replaces the walk with a single JSON document.
type EnvConfigLoader struct {
	logger logger.Logger
	prefix string
}

func NewEnvConfigLoader(log logger.Logger, prefix string) *EnvConfigLoader {
	return &EnvConfigLoader{
		logger: log,
		prefix: prefix,
	}
}

func (e *EnvConfigLoader) Load(_ context.Context, _ string, dst interface{}) error {
	if raw := os.Getenv(e.prefix + "CONFIG_JSON"); raw != "" {
		if err := json.Unmarshal([]byte(raw), dst); err != nil {
			return fmt.Errorf("failed to unmarshal %sCONFIG_JSON: %w", e.prefix, err)
		}

		if e.logger != nil {
			e.logger.Info().Msg("Loaded configuration from CONFIG_JSON")
		}

		return nil
	}

	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return ErrDstMustBeNonNilPointer
	}

	if v.Elem().Kind() != reflect.Struct {
		return ErrDstMustBePointerToStruct
	}

	set := e.loadStruct(v.Elem(), e.prefix)

	if e.logger != nil {
		e.logger.Info().Int("fields", set).Str("prefix", e.prefix).Msg("Loaded configuration from environment")
	}

	return nil
}

// loadStruct fills the json-tagged fields of v and returns how many were set. Values that
// fail to parse are logged and skipped.
func (e *EnvConfigLoader) loadStruct(v reflect.Value, prefix string) int {
	t := v.Type()
	set := 0

	for i := range t.NumField() {
		field := v.Field(i)

		name, ok := envFieldName(t.Field(i))
		if !ok || !field.CanSet() {
			continue
		}

		envName := prefix + name

		switch {
		case field.Kind() == reflect.Struct:
			set += e.loadStruct(field, envName+"_")
		case field.Kind() == reflect.Ptr && field.Type().Elem().Kind() == reflect.Struct:
			set += e.loadStructPtr(field, envName+"_")
		default:
			raw := os.Getenv(envName)
			if raw == "" {
				continue
			}

			if err := assignEnvValue(field, raw); err != nil {
				if e.logger != nil {
					e.logger.Warn().Err(err).Str("env", envName).Msg("Ignoring invalid environment value")
				}

				continue
			}

			set++
		}
	}

	return set
}

// loadStructPtr allocates a nil struct pointer only when a variable under prefix exists,
// so an untouched *logger.Config stays nil and keeps its defaults downstream.
func (e *EnvConfigLoader) loadStructPtr(field reflect.Value, prefix string) int {
	if field.IsNil() {
		if !envHasPrefix(prefix) {
			return 0
		}

		field.Set(reflect.New(field.Type().Elem()))
	}

	return e.loadStruct(field.Elem(), prefix)
}

func envFieldName(f reflect.StructField) (string, bool) {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return "", false
	}

	return strings.ToUpper(strings.ReplaceAll(name, ".", "_")), true
}

func envHasPrefix(prefix string) bool {
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, prefix) {
			return true
		}
	}

	return false
}

// assignEnvValue parses raw into field. Duration types take a Go duration string or
// integer nanoseconds; string slices are comma separated; maps and other slices are JSON.
func assignEnvValue(field reflect.Value, raw string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}

		field.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if strings.HasSuffix(field.Type().Name(), "Duration") {
			if d, err := time.ParseDuration(raw); err == nil {
				field.SetInt(int64(d))
				return nil
			}
		}

		n, err := strconv.ParseInt(raw, 10, field.Type().Bits())
		if err != nil {
			return err
		}

		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, field.Type().Bits())
		if err != nil {
			return err
		}

		field.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, field.Type().Bits())
		if err != nil {
			return err
		}

		field.SetFloat(f)
	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return json.Unmarshal([]byte(raw), field.Addr().Interface())
		}

		parts := strings.Split(raw, ",")
		values := reflect.MakeSlice(field.Type(), 0, len(parts))

		for _, part := range parts {
			if part = strings.TrimSpace(part); part != "" {
				values = reflect.Append(values, reflect.ValueOf(part).Convert(field.Type().Elem()))
			}
		}

		field.Set(values)
	default:
		if err := json.Unmarshal([]byte(raw), field.Addr().Interface()); err != nil {
			return fmt.Errorf("unsupported %s value: %w", field.Kind(), err)
		}
	}

	return nil
}
