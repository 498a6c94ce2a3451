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

// Package sysinfo reads the software build identifiers of the running system.
package sysinfo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/carverauto/wifihealth/pkg/healthmonitor"
	"github.com/carverauto/wifihealth/pkg/logger"
	"github.com/carverauto/wifihealth/pkg/version"
)

// ErrBackendUnavailable is returned when no wireless interface can report driver and
// firmware versions.
var ErrBackendUnavailable = errors.New("networking backend unavailable")

const hostInfoTimeout = 5 * time.Second

type hostInfoFunc func(ctx context.Context) (*host.InfoStat, error)

// driverInfoFunc returns the driver and firmware versions of iface.
type driverInfoFunc func(iface string) (driver, firmware string, err error)

// Provider implements healthmonitor.BuildInfoProvider from host information and the
// ethtool driver info of the wireless interface.
type Provider struct {
	iface      string
	logger     logger.Logger
	hostInfo   hostInfoFunc
	driverInfo driverInfoFunc
	stack      func() (int, error)
}

var _ healthmonitor.BuildInfoProvider = (*Provider)(nil)

// New returns a Provider probing iface. An empty iface leaves the networking backend
// unavailable.
func New(iface string, log logger.Logger) *Provider {
	return &Provider{
		iface:      iface,
		logger:     log,
		hostInfo:   host.InfoWithContext,
		driverInfo: ethtoolDriverInfo,
		stack:      version.GetVersionCode,
	}
}

// OSBuildVersion identifies the operating system build; it is empty when host information
// cannot be read.
func (p *Provider) OSBuildVersion() string {
	ctx, cancel := context.WithTimeout(context.Background(), hostInfoTimeout)
	defer cancel()

	info, err := p.hostInfo(ctx)
	if err != nil {
		p.logger.Warn().Err(err).Msg("Failed to read host info")
		return ""
	}

	return strings.Join(nonEmpty(info.Platform, info.PlatformVersion, info.KernelVersion), "/")
}

// StackVersion is the packaged version code of this daemon.
func (p *Provider) StackVersion() (int, error) {
	return p.stack()
}

func (p *Provider) DriverFirmwareVersion() (driver, firmware string, err error) {
	if p.iface == "" {
		return "", "", ErrBackendUnavailable
	}

	driver, firmware, err = p.driverInfo(p.iface)
	if err != nil {
		return "", "", fmt.Errorf("%w: %s: %w", ErrBackendUnavailable, p.iface, err)
	}

	return driver, firmware, nil
}

func nonEmpty(values ...string) []string {
	out := values[:0]

	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}

	return out
}
