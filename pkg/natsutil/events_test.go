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

package natsutil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/wifihealth/pkg/logger"
	"github.com/carverauto/wifihealth/pkg/models"
)

var errTestFixture = errors.New("fixture error")

func TestEnsureSubjectList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		subjects []string
		subject  string
		want     []string
	}{
		{
			name:    "adds subject when list empty",
			subject: "events.wifihealth.>",
			want:    []string{"events.wifihealth.>"},
		},
		{
			name:     "keeps list when greater wildcard covers prefix",
			subjects: []string{"events.>"},
			subject:  "events.wifihealth.postboot",
			want:     []string{"events.>"},
		},
		{
			name:     "keeps list when single token wildcard matches",
			subjects: []string{"events.wifihealth.*"},
			subject:  "events.wifihealth.daily",
			want:     []string{"events.wifihealth.*"},
		},
		{
			name:     "appends when unmatched",
			subjects: []string{"logs.syslog.*"},
			subject:  "events.wifihealth.>",
			want:     []string{"logs.syslog.*", "events.wifihealth.>"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			result := ensureSubjectList(append([]string(nil), tc.subjects...), tc.subject)
			assert.Equal(t, tc.want, result)
		})
	}
}

func TestMatchesSubject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		subject string
		want    bool
	}{
		{"events.wifihealth.daily", "events.wifihealth.daily", true},
		{"events.wifihealth.*", "events.wifihealth.daily", true},
		{"events.*", "events.wifihealth.daily", false},
		{"events.>", "events.wifihealth.daily", true},
		{"events.>", "events", false},
		{">", "events", true},
		{"events.wifihealth.daily", "events.wifihealth", false},
		{"events.wifihealth", "events.wifihealth.daily", false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, matchesSubject(tc.pattern, tc.subject), "%s vs %s", tc.pattern, tc.subject)
	}
}

func TestIsStreamMissingErr(t *testing.T) {
	t.Parallel()

	assert.True(t, isStreamMissingErr(jetstream.ErrStreamNotFound))
	assert.True(t, isStreamMissingErr(fmt.Errorf("lookup: %w", nats.ErrNoResponders)))
	assert.False(t, isStreamMissingErr(errTestFixture))
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

type receivedEvent struct {
	models.CloudEvent
	Data json.RawMessage `json:"data"`
}

func TestEventPublisherPublishesReports(t *testing.T) {
	srv := runJetStreamServer(t)
	t.Cleanup(srv.Shutdown)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pub, nc, err := ConnectWithEventPublisher(ctx, srv.ClientURL(), "events", "events.wifihealth", logger.NewTestLogger())
	require.NoError(t, err)

	t.Cleanup(nc.Close)

	sub, err := nc.SubscribeSync("events.wifihealth.>")
	require.NoError(t, err)

	ts := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	require.NoError(t, pub.PublishPostBoot(ctx, &models.PostBootReport{
		Timestamp:        ts,
		BuildChecked:     true,
		BuildChanged:     true,
		ScanFailureFlags: 0x3,
	}))

	daily := &models.DailyReport{Timestamp: ts, NetworksProcessed: 2}
	daily.FailureHigh.SetCount(models.ReasonAuthFailure, 1)

	require.NoError(t, pub.PublishDaily(ctx, daily))
	require.NoError(t, pub.Flush(ctx))

	msg, err := sub.NextMsg(5 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, "events.wifihealth.postboot", msg.Subject)

	var postBoot receivedEvent
	require.NoError(t, json.Unmarshal(msg.Data, &postBoot))
	assert.Equal(t, EventTypePostBoot, postBoot.Type)
	assert.Equal(t, "1.0", postBoot.SpecVersion)
	assert.NotEmpty(t, postBoot.ID)

	var report models.PostBootReport
	require.NoError(t, json.Unmarshal(postBoot.Data, &report))
	assert.True(t, report.BuildChanged)
	assert.Equal(t, 0x3, report.ScanFailureFlags)

	msg, err = sub.NextMsg(5 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, "events.wifihealth.daily", msg.Subject)

	var dailyEvent receivedEvent
	require.NoError(t, json.Unmarshal(msg.Data, &dailyEvent))
	assert.Equal(t, EventTypeDaily, dailyEvent.Type)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(dailyEvent.Data, &payload))
	assert.InDelta(t, 2, payload["networks_processed"], 0)
	assert.InDelta(t, 1, payload["failure_high"].(map[string]interface{})["auth_failure"], 0)

	js, err := jetstream.New(nc)
	require.NoError(t, err)

	stream, err := js.Stream(ctx, "events")
	require.NoError(t, err)

	info, err := stream.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), info.State.Msgs)
}

func TestConnectWithEventPublisherExtendsExistingStream(t *testing.T) {
	srv := runJetStreamServer(t)
	t.Cleanup(srv.Shutdown)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	nc, err := Connect(srv.ClientURL(), logger.NewTestLogger())
	require.NoError(t, err)

	t.Cleanup(nc.Close)

	js, err := jetstream.New(nc)
	require.NoError(t, err)

	_, err = js.CreateStream(ctx, jetstream.StreamConfig{Name: "events", Subjects: []string{"logs.>"}})
	require.NoError(t, err)

	_, pubConn, err := ConnectWithEventPublisher(ctx, srv.ClientURL(), "events", "events.wifihealth", logger.NewTestLogger())
	require.NoError(t, err)

	t.Cleanup(pubConn.Close)

	stream, err := js.Stream(ctx, "events")
	require.NoError(t, err)

	info, err := stream.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"logs.>", "events.wifihealth.>"}, info.Config.Subjects)
}

func TestConnectFailsWithoutServer(t *testing.T) {
	_, err := Connect("nats://127.0.0.1:1", logger.NewTestLogger(), nats.MaxReconnects(0))
	require.Error(t, err)
}
