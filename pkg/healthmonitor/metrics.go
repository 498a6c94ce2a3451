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

package healthmonitor

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/carverauto/wifihealth/pkg/models"
)

const (
	meterName = "github.com/carverauto/wifihealth/pkg/healthmonitor"

	metricPostBootRuns    = "wifihealth_postboot_detections_total"
	metricBuildChanges    = "wifihealth_sw_build_changes_total"
	metricScanFailureBits = "wifihealth_abnormal_scan_total"
	metricDailyRuns       = "wifihealth_daily_detections_total"
	metricDailyFailures   = "wifihealth_daily_failure_verdicts_total"
	metricScansAggregated = "wifihealth_full_scans_total"
	metricPersistedWrites = "wifihealth_system_info_writes_total"
)

var (
	//nolint:gochecknoglobals // metrics instruments are shared across the process intentionally
	meterOnce sync.Once
	//nolint:gochecknoglobals // metrics instruments are shared across the process intentionally
	postBootCounter metric.Int64Counter
	//nolint:gochecknoglobals // metrics instruments are shared across the process intentionally
	buildChangeCounter metric.Int64Counter
	//nolint:gochecknoglobals // metrics instruments are shared across the process intentionally
	scanFailureCounter metric.Int64Counter
	//nolint:gochecknoglobals // metrics instruments are shared across the process intentionally
	dailyCounter metric.Int64Counter
	//nolint:gochecknoglobals // metrics instruments are shared across the process intentionally
	dailyFailureCounter metric.Int64Counter
	//nolint:gochecknoglobals // metrics instruments are shared across the process intentionally
	scanCounter metric.Int64Counter
	//nolint:gochecknoglobals // metrics instruments are shared across the process intentionally
	writeCounter metric.Int64Counter
)

func newCounter(meter metric.Meter, name, description string) metric.Int64Counter {
	counter, err := meter.Int64Counter(name, metric.WithDescription(description))
	if err != nil {
		otel.Handle(err)
	}

	return counter
}

func initMeter() {
	meter := otel.Meter(meterName)

	postBootCounter = newCounter(meter, metricPostBootRuns, "Post-boot detection cycles by outcome")
	buildChangeCounter = newCounter(meter, metricBuildChanges, "Software build changes detected after boot")
	scanFailureCounter = newCounter(meter, metricScanFailureBits, "Abnormal scan verdicts by failure bit")
	dailyCounter = newCounter(meter, metricDailyRuns, "Daily detection cycles")
	dailyFailureCounter = newCounter(meter, metricDailyFailures, "Per-network daily failure verdicts by kind and reason")
	scanCounter = newCounter(meter, metricScansAggregated, "Full-spectrum scans aggregated into the current snapshot")
	writeCounter = newCounter(meter, metricPersistedWrites, "System info records handed to the memory store")
}

func recordPostBoot(ctx context.Context, outcome string) {
	meterOnce.Do(initMeter)
	if postBootCounter == nil {
		return
	}

	postBootCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func recordBuildChange(ctx context.Context) {
	meterOnce.Do(initMeter)
	if buildChangeCounter == nil {
		return
	}

	buildChangeCounter.Add(ctx, 1)
}

var scanFailureBitNames = map[int]string{
	ScanFailurePreBoot2G:       "pre_boot_2g",
	ScanFailurePreBootAbove2G:  "pre_boot_above_2g",
	ScanFailurePostBoot2G:      "post_boot_2g",
	ScanFailurePostBootAbove2G: "post_boot_above_2g",
}

func recordScanFailure(ctx context.Context, mask int) {
	if mask == 0 {
		return
	}

	meterOnce.Do(initMeter)
	if scanFailureCounter == nil {
		return
	}

	for bit, name := range scanFailureBitNames {
		if mask&bit != 0 {
			scanFailureCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("bit", name)))
		}
	}
}

func recordDaily(ctx context.Context, report *models.DailyReport) {
	meterOnce.Do(initMeter)
	if dailyCounter == nil || dailyFailureCounter == nil {
		return
	}

	dailyCounter.Add(ctx, 1)

	kinds := map[string]*models.FailureStats{
		"increase": &report.FailureIncrease,
		"decrease": &report.FailureDecrease,
		"high":     &report.FailureHigh,
	}

	for kind, stats := range kinds {
		for _, reason := range models.AllFailureReasons() {
			if n := stats.Count(reason); n > 0 {
				dailyFailureCounter.Add(ctx, int64(n), metric.WithAttributes(
					attribute.String("kind", kind),
					attribute.String("reason", reason.String()),
				))
			}
		}
	}
}

func recordScan(ctx context.Context) {
	meterOnce.Do(initMeter)
	if scanCounter == nil {
		return
	}

	scanCounter.Add(ctx, 1)
}

func recordWrite(ctx context.Context) {
	meterOnce.Do(initMeter)
	if writeCounter == nil {
		return
	}

	writeCounter.Add(ctx, 1)
}
