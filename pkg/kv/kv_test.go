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

package kv

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/wifihealth/pkg/models"
)

// exerciseStore runs the behavior every backend must share.
func exerciseStore(t *testing.T, store KVStore) {
	t.Helper()

	ctx := context.Background()

	_, found, err := store.Get(ctx, "abc.systemInfoData")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Put(ctx, "abc.systemInfoData", []byte{0x0a, 0x01}, 0))

	value, found, err := store.Get(ctx, "abc.systemInfoData")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte{0x0a, 0x01}, value)

	require.NoError(t, store.Put(ctx, "abc.systemInfoData", []byte{0x0b}, 0))

	value, found, err = store.Get(ctx, "abc.systemInfoData")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte{0x0b}, value)

	require.NoError(t, store.Delete(ctx, "abc.systemInfoData"))

	_, found, err = store.Get(ctx, "abc.systemInfoData")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Delete(ctx, "never.written"))
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	exerciseStore(t, store)
	require.NoError(t, store.Close())

	_, _, err := store.Get(context.Background(), "x")
	require.ErrorIs(t, err, errStoreClosed)
}

func TestMemoryStoreTTL(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "k", []byte("v"), time.Minute))

	_, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)

	now = now.Add(2 * time.Minute)

	_, found, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	buf := []byte("abc")
	require.NoError(t, store.Put(ctx, "k", buf, 0))
	buf[0] = 'z'

	value, _, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), value)
}

func TestSQLiteStore(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "wifihealth.db"))
	require.NoError(t, err)

	t.Cleanup(func() { _ = store.Close() })

	exerciseStore(t, store)
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wifihealth.db")
	ctx := context.Background()

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, "k", []byte("persisted"), 0))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)

	t.Cleanup(func() { _ = reopened.Close() })

	value, found, err := reopened.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte("persisted"), value)
}

func TestSQLiteStoreTTLAndPurge(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "wifihealth.db"))
	require.NoError(t, err)

	t.Cleanup(func() { _ = store.Close() })

	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "short", []byte("v"), time.Minute))
	require.NoError(t, store.Put(ctx, "long", []byte("v"), 0))

	now = now.Add(time.Hour)

	_, found, err := store.Get(ctx, "short")
	require.NoError(t, err)
	assert.False(t, found)

	purged, err := store.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	_, found, err = store.Get(ctx, "long")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestNewSQLiteStoreRequiresPath(t *testing.T) {
	_, err := NewSQLiteStore("")
	require.ErrorIs(t, err, errSQLitePathMissing)
}

func runJetStreamServer(t *testing.T) *server.Server {
	t.Helper()

	opts := &server.Options{
		Host:      "127.0.0.1",
		Port:      -1,
		JetStream: true,
		StoreDir:  t.TempDir(),
	}

	srv, err := server.NewServer(opts)
	require.NoError(t, err)

	go srv.Start()

	if !srv.ReadyForConnections(10 * time.Second) {
		srv.Shutdown()
		t.Fatalf("embedded NATS server not ready for connections")
	}

	require.Eventually(t, func() bool {
		return srv.JetStreamEnabled()
	}, 5*time.Second, 50*time.Millisecond, "embedded NATS server not ready for JetStream")

	return srv
}

func TestNatsStore(t *testing.T) {
	srv := runJetStreamServer(t)
	t.Cleanup(srv.Shutdown)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := NewNatsStore(ctx, srv.ClientURL(), "wifihealth", 0)
	require.NoError(t, err)

	t.Cleanup(func() { _ = store.Close() })

	exerciseStore(t, store)
}

func TestNewNatsStoreValidatesArgs(t *testing.T) {
	_, err := NewNatsStore(context.Background(), "", "bucket", 0)
	require.ErrorIs(t, err, errNatsURLRequired)

	_, err = NewNatsStore(context.Background(), "nats://127.0.0.1:4222", "", 0)
	require.ErrorIs(t, err, errBucketRequired)
}

func TestOpenSelectsBackend(t *testing.T) {
	store, err := Open(context.Background(), models.StorageConfig{Backend: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)

	store, err = Open(context.Background(), models.StorageConfig{
		Backend:    "SQLite",
		SQLitePath: filepath.Join(t.TempDir(), "open.db"),
	})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, store)
	require.NoError(t, store.Close())

	_, err = Open(context.Background(), models.StorageConfig{Backend: "etcd"})
	require.ErrorIs(t, err, errUnknownBackend)
}
