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

// Package natsutil connects to NATS and publishes detection reports as CloudEvents.
package natsutil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/carverauto/wifihealth/pkg/healthmonitor"
	"github.com/carverauto/wifihealth/pkg/logger"
	"github.com/carverauto/wifihealth/pkg/models"
)

const (
	eventSource = "wifihealth/healthmonitor"

	EventTypePostBoot = "com.carverauto.wifihealth.postboot"
	EventTypeDaily    = "com.carverauto.wifihealth.daily"

	subjectPostBoot = "postboot"
	subjectDaily    = "daily"

	ackTimeout = 10 * time.Second
)

// EventPublisher publishes detection reports to a JetStream stream without blocking the
// caller on acknowledgements.
type EventPublisher struct {
	js            jetstream.JetStream
	stream        string
	subjectPrefix string
	logger        logger.Logger
}

var _ healthmonitor.Reporter = (*EventPublisher)(nil)

// NewEventPublisher publishes under subjectPrefix.postboot and subjectPrefix.daily.
func NewEventPublisher(js jetstream.JetStream, streamName, subjectPrefix string, log logger.Logger) *EventPublisher {
	return &EventPublisher{
		js:            js,
		stream:        streamName,
		subjectPrefix: subjectPrefix,
		logger:        log,
	}
}

func (p *EventPublisher) PublishPostBoot(ctx context.Context, report *models.PostBootReport) error {
	return p.publish(ctx, subjectPostBoot, EventTypePostBoot, report.Timestamp, report)
}

func (p *EventPublisher) PublishDaily(ctx context.Context, report *models.DailyReport) error {
	return p.publish(ctx, subjectDaily, EventTypeDaily, report.Timestamp, report)
}

func (p *EventPublisher) publish(ctx context.Context, suffix, eventType string, ts time.Time, data interface{}) error {
	event := models.CloudEvent{
		SpecVersion:     "1.0",
		ID:              uuid.New().String(),
		Source:          eventSource,
		Type:            eventType,
		DataContentType: "application/json",
		Subject:         p.subjectPrefix + "." + suffix,
		Time:            &ts,
		Data:            data,
	}

	eventBytes, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", suffix, err)
	}

	future, err := p.js.PublishAsync(event.Subject, eventBytes)
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", suffix, err)
	}

	go p.awaitAck(ctx, event.ID, event.Subject, future)

	return nil
}

func (p *EventPublisher) awaitAck(ctx context.Context, id, subject string, future jetstream.PubAckFuture) {
	timer := time.NewTimer(ackTimeout)
	defer timer.Stop()

	select {
	case ack := <-future.Ok():
		p.logger.Debug().
			Str("event_id", id).
			Str("subject", subject).
			Uint64("seq", ack.Sequence).
			Msg("Published event")
	case err := <-future.Err():
		p.logger.Error().Err(err).Str("event_id", id).Str("subject", subject).Msg("Event publish failed")
	case <-timer.C:
		p.logger.Warn().Str("event_id", id).Str("subject", subject).Msg("Timed out waiting for event ack")
	case <-ctx.Done():
	}
}

// Flush waits until every outstanding publish has been acknowledged or ctx ends.
func (p *EventPublisher) Flush(ctx context.Context) error {
	select {
	case <-p.js.PublishAsyncComplete():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ConnectWithEventPublisher connects to natsURL and returns a publisher for streamName,
// creating the stream or extending its subjects as needed.
func ConnectWithEventPublisher(
	ctx context.Context, natsURL, streamName, subjectPrefix string, log logger.Logger, opts ...nats.Option,
) (*EventPublisher, *nats.Conn, error) {
	nc, err := Connect(natsURL, log, opts...)
	if err != nil {
		return nil, nil, err
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	if err := ensureStream(ctx, js, streamName, subjectPrefix+".>"); err != nil {
		nc.Close()
		return nil, nil, err
	}

	return NewEventPublisher(js, streamName, subjectPrefix, log), nc, nil
}

// Connect dials NATS with logging connection handlers.
func Connect(natsURL string, log logger.Logger, extraOpts ...nats.Option) (*nats.Conn, error) {
	opts := []nats.Option{
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2 * time.Second),
		nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
			log.Error().Err(err).Msg("NATS error")
		}),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warn().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
	}

	opts = append(opts, extraOpts...)

	nc, err := nats.Connect(natsURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return nc, nil
}

func ensureStream(ctx context.Context, js jetstream.JetStream, streamName, subject string) error {
	stream, err := js.Stream(ctx, streamName)
	if err != nil {
		if !isStreamMissingErr(err) {
			return fmt.Errorf("failed to look up stream %s: %w", streamName, err)
		}

		_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
			Name:     streamName,
			Subjects: []string{subject},
		})
		if err != nil {
			return fmt.Errorf("failed to create stream %s: %w", streamName, err)
		}

		return nil
	}

	cfg := stream.CachedInfo().Config

	subjects := ensureSubjectList(cfg.Subjects, subject)
	if len(subjects) == len(cfg.Subjects) {
		return nil
	}

	cfg.Subjects = subjects

	if _, err := js.UpdateStream(ctx, cfg); err != nil {
		return fmt.Errorf("failed to add %s to stream %s: %w", subject, streamName, err)
	}

	return nil
}

func isStreamMissingErr(err error) bool {
	return errors.Is(err, jetstream.ErrStreamNotFound) ||
		errors.Is(err, jetstream.ErrNoStreamResponse) ||
		errors.Is(err, nats.ErrStreamNotFound) ||
		errors.Is(err, nats.ErrNoStreamResponse) ||
		errors.Is(err, nats.ErrNoResponders)
}

// ensureSubjectList appends subject unless an existing pattern already covers it.
func ensureSubjectList(subjects []string, subject string) []string {
	for _, pattern := range subjects {
		if matchesSubject(pattern, subject) {
			return subjects
		}
	}

	return append(subjects, subject)
}

// matchesSubject applies NATS wildcard rules: "*" matches one token, a trailing ">" matches
// one or more.
func matchesSubject(pattern, subject string) bool {
	pTokens := strings.Split(pattern, ".")
	sTokens := strings.Split(subject, ".")

	for i, p := range pTokens {
		if p == ">" {
			return i == len(pTokens)-1 && len(sTokens) > i
		}

		if i >= len(sTokens) {
			return false
		}

		if p != "*" && p != sTokens[i] {
			return false
		}
	}

	return len(pTokens) == len(sTokens)
}
