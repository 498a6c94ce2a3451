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

// Package app wires the wifihealth daemon together.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/carverauto/wifihealth/pkg/api"
	"github.com/carverauto/wifihealth/pkg/config"
	"github.com/carverauto/wifihealth/pkg/feed"
	"github.com/carverauto/wifihealth/pkg/healthmonitor"
	"github.com/carverauto/wifihealth/pkg/kv"
	"github.com/carverauto/wifihealth/pkg/lifecycle"
	"github.com/carverauto/wifihealth/pkg/logger"
	"github.com/carverauto/wifihealth/pkg/memstore"
	"github.com/carverauto/wifihealth/pkg/models"
	"github.com/carverauto/wifihealth/pkg/natsutil"
	"github.com/carverauto/wifihealth/pkg/netconfig"
	"github.com/carverauto/wifihealth/pkg/scheduler"
	"github.com/carverauto/wifihealth/pkg/scorecard"
	"github.com/carverauto/wifihealth/pkg/sysinfo"
	"github.com/carverauto/wifihealth/pkg/version"
)

const (
	serviceName     = "wifihealth"
	workQueueSize   = 256
	shutdownTimeout = 10 * time.Second
)

// Options contains runtime configuration derived from CLI flags.
type Options struct {
	ConfigPath string
}

// Run boots the daemon and blocks until ctx is canceled.
func Run(ctx context.Context, opts Options) error {
	cfg := models.DefaultConfig()

	if err := config.NewConfig(nil).LoadAndValidate(ctx, opts.ConfigPath, &cfg); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Logging == nil {
		cfg.Logging = logger.DefaultConfig()
	}

	mainLogger, err := lifecycle.CreateComponentLogger(ctx, "wifihealth-main", cfg.Logging)
	if err != nil {
		return err
	}

	defer func() {
		if shutdownErr := lifecycle.ShutdownLogger(); shutdownErr != nil {
			mainLogger.Error().Err(shutdownErr).Msg("Error shutting down logger")
		}
	}()

	tp, ctxWithTrace, rootSpan, err := logger.InitializeTracing(ctx, logger.TracingConfig{
		ServiceName:    serviceName,
		ServiceVersion: version.GetVersion(),
		Logger:         mainLogger,
		OTel:           &cfg.Logging.OTel,
	})
	if err != nil {
		return err
	}

	ctx = ctxWithTrace

	defer func() {
		rootSpan.End()

		if err := tp.Shutdown(context.Background()); err != nil {
			mainLogger.Error().Err(err).Msg("Error shutting down tracer provider")
		}
	}()

	mp, err := logger.InitializeMetrics(ctx, logger.MetricsConfig{
		ServiceName:    serviceName,
		ServiceVersion: version.GetVersion(),
		OTel:           &cfg.Logging.OTel,
	})

	switch {
	case err == nil:
		defer func() {
			if err := mp.Shutdown(context.Background()); err != nil {
				mainLogger.Error().Err(err).Msg("Error shutting down meter provider")
			}
		}()
	case !errors.Is(err, logger.ErrOTelMetricsDisabled):
		return err
	}

	mainLogger.Info().
		Str("version", version.GetFullVersion()).
		Str("storage", cfg.Storage.Backend).
		Int("networks", len(cfg.Networks)).
		Msg("Starting wifihealth")

	d, err := newDaemon(ctx, &cfg, mainLogger)
	if err != nil {
		return err
	}

	return d.run(ctx)
}

type daemon struct {
	cfg    *models.Config
	logger logger.Logger

	handler  *scheduler.Handler
	timers   *scheduler.TimerScheduler
	kvStore  kv.KVStore
	store    *memstore.Store
	stats    *scorecard.ScoreCard
	registry *netconfig.Registry
	monitor  *healthmonitor.HealthMonitor
	api      *api.Server

	feed       *feed.Subscriber
	feedConn   *nats.Conn
	publisher  *natsutil.EventPublisher
	eventsConn *nats.Conn
}

func newDaemon(ctx context.Context, cfg *models.Config, log logger.Logger) (_ *daemon, err error) {
	d := &daemon{
		cfg:      cfg,
		logger:   log,
		handler:  scheduler.NewHandler(log, workQueueSize),
		registry: netconfig.NewRegistry(cfg.Networks),
	}

	defer func() {
		if err != nil {
			d.close()
		}
	}()

	d.timers = scheduler.NewTimerScheduler(scheduler.RealClock(), d.handler, log)

	if d.kvStore, err = kv.Open(ctx, cfg.Storage); err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Storage.Backend, err)
	}

	// Writes issued during shutdown must outlive the signal context.
	d.store = memstore.New(context.WithoutCancel(ctx), d.kvStore, log)

	if d.stats, err = scorecard.New(cfg.Scorecard, cfg.L2KeySeed, d.handler, log); err != nil {
		return nil, err
	}

	monitorOpts := &healthmonitor.Options{
		Config:    cfg.Monitor,
		L2KeySeed: cfg.L2KeySeed,
		Stats:     d.stats,
		Registry:  d.registry,
		Builds:    sysinfo.New(cfg.Interface, log),
		Alarms:    d.timers,
		Clock:     scheduler.RealClock(),
		Executor:  d.handler,
		Logger:    log,
	}

	if cfg.Feed.NATSURL != "" {
		if d.feedConn, err = natsutil.Connect(cfg.Feed.NATSURL, log, nats.Name("wifihealth-feed")); err != nil {
			return nil, err
		}

		if d.feed, err = feed.NewSubscriber(d.feedConn, cfg.Feed, d.handler, d.stats, log); err != nil {
			return nil, err
		}

		monitorOpts.Scanner = d.feed
	} else {
		log.Warn().Msg("No feed configured; scan and connection events will not be received")
	}

	if cfg.Events.Enabled {
		d.publisher, d.eventsConn, err = natsutil.ConnectWithEventPublisher(ctx,
			cfg.Events.NATSURL, cfg.Events.Stream, cfg.Events.SubjectPrefix, log, nats.Name("wifihealth-events"))
		if err != nil {
			return nil, err
		}

		monitorOpts.Reporter = d.publisher
	}

	if d.monitor, err = healthmonitor.NewHealthMonitor(ctx, monitorOpts); err != nil {
		return nil, err
	}

	d.api, err = api.NewServer(cfg.API,
		api.WithExecutor(d.handler),
		api.WithMonitor(d.monitor),
		api.WithStatsStore(d.stats),
		api.WithNetworkRegistry(d.registry),
		api.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	return d, nil
}

func (d *daemon) run(ctx context.Context) error {
	runCtx, cancelRun := context.WithCancel(context.WithoutCancel(ctx))
	defer cancelRun()

	handlerDone := make(chan error, 1)

	go func() { handlerDone <- d.handler.Run(runCtx) }()

	if d.feed != nil {
		if err := d.feed.Start(); err != nil {
			cancelRun()
			<-handlerDone
			d.close()

			return fmt.Errorf("failed to subscribe to feed: %w", err)
		}
	}

	err := d.handler.Await(ctx, func() {
		d.monitor.EnableVerboseLogging(d.cfg.Monitor.Verbose)
		d.stats.InstallMemoryStore(d.store)
		d.monitor.InstallMemoryStore(d.store)
		d.monitor.SetWifiEnabled(true)
	})
	if err != nil {
		d.shutdown(cancelRun, handlerDone)
		return err
	}

	apiDone := make(chan error, 1)

	go func() { apiDone <- d.api.Start(ctx, d.cfg.ListenAddr) }()

	var runErr error

	select {
	case <-ctx.Done():
		runErr = <-apiDone
	case runErr = <-apiDone:
	}

	if runErr != nil {
		d.logger.Error().Err(runErr).Msg("Admin API failed")
	}

	d.shutdown(cancelRun, handlerDone)

	return runErr
}

// shutdown stops event intake, flushes pending state, then releases connections.
func (d *daemon) shutdown(cancelRun context.CancelFunc, handlerDone <-chan error) {
	d.logger.Info().Msg("Shutting down wifihealth")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	d.timers.Stop()

	if d.feed != nil {
		if err := d.feed.Stop(); err != nil {
			d.logger.Warn().Err(err).Msg("Failed to unsubscribe from feed")
		}
	}

	if err := d.handler.Await(ctx, func() {
		d.monitor.SetWifiEnabled(false)
		d.stats.DoWrites()
	}); err != nil {
		d.logger.Error().Err(err).Msg("Failed to flush state")
	}

	cancelRun()
	<-handlerDone

	d.store.Wait()

	if d.publisher != nil {
		if err := d.publisher.Flush(ctx); err != nil {
			d.logger.Warn().Err(err).Msg("Timed out flushing events")
		}
	}

	d.close()
}

func (d *daemon) close() {
	if d.timers != nil {
		d.timers.Stop()
	}

	if d.feedConn != nil {
		d.feedConn.Close()
	}

	if d.eventsConn != nil {
		d.eventsConn.Close()
	}

	if d.kvStore != nil {
		if err := d.kvStore.Close(); err != nil {
			d.logger.Warn().Err(err).Msg("Failed to close store")
		}
	}
}
