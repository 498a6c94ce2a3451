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
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/carverauto/wifihealth/pkg/models"
)

// Persisted field numbers. The layout is protobuf-compatible so the record can be read by
// any protobuf tooling; unknown fields are skipped on decode.
const (
	fieldCurrBuild         protowire.Number = 1
	fieldPrevBuild         protowire.Number = 2
	fieldLastScanTimeMs    protowire.Number = 3
	fieldBssidCount2G      protowire.Number = 4
	fieldBssidCountAbove2G protowire.Number = 5
	fieldMobilityState     protowire.Number = 6
	fieldScanFailure       protowire.Number = 7

	fieldBuildOS       protowire.Number = 1
	fieldBuildStack    protowire.Number = 2
	fieldBuildDriver   protowire.Number = 3
	fieldBuildFirmware protowire.Number = 4
)

// SystemInfo is the device-global persisted aggregate. Every mutator sets the dirty flag;
// only a completed write clears it.
type SystemInfo struct {
	currBuild   *SoftwareBuild
	prevBuild   *SoftwareBuild
	currScan    ScanSnapshot
	prevScan    ScanSnapshot
	mobility    models.MobilityState
	scanFailure int
	dirty       bool
}

func newSystemInfo() *SystemInfo {
	return &SystemInfo{
		currScan: NewScanSnapshot(),
		prevScan: NewScanSnapshot(),
	}
}

func (s *SystemInfo) CurrBuild() *SoftwareBuild { return s.currBuild }
func (s *SystemInfo) PrevBuild() *SoftwareBuild { return s.prevBuild }

// CurrScan is the snapshot fed by live scans in this process.
func (s *SystemInfo) CurrScan() ScanSnapshot { return s.currScan }

// PrevScan is the last scan persisted before the previous shutdown.
func (s *SystemInfo) PrevScan() ScanSnapshot { return s.prevScan }

func (s *SystemInfo) Mobility() models.MobilityState { return s.mobility }
func (s *SystemInfo) ScanFailure() int               { return s.scanFailure }
func (s *SystemInfo) Dirty() bool                    { return s.dirty }

func (s *SystemInfo) setCurrBuild(b SoftwareBuild) {
	s.currBuild = &b
	s.dirty = true
}

// rotateBuild moves the current build to previous and installs live as current.
func (s *SystemInfo) rotateBuild(live SoftwareBuild) {
	s.prevBuild = s.currBuild
	s.currBuild = &live
	s.dirty = true
}

func (s *SystemInfo) setCurrScan(scan ScanSnapshot) {
	s.currScan = scan
	s.dirty = true
}

func (s *SystemInfo) setMobility(state models.MobilityState) {
	if s.mobility == state {
		return
	}

	s.mobility = state
	s.dirty = true
}

func (s *SystemInfo) setScanFailure(mask int) {
	if s.scanFailure == mask {
		return
	}

	s.scanFailure = mask
	s.dirty = true
}

// clearAll forgets both builds and both scans.
func (s *SystemInfo) clearAll() {
	s.currBuild = nil
	s.prevBuild = nil
	s.currScan.Clear()
	s.prevScan.Clear()
	s.dirty = true
}

func (s *SystemInfo) markWritten() {
	s.dirty = false
}

// Marshal encodes the state for storage. The live scan is written in the scan fields and
// comes back as PrevScan after the next restart.
func (s *SystemInfo) Marshal() []byte {
	var b []byte

	if s.currBuild != nil {
		b = protowire.AppendTag(b, fieldCurrBuild, protowire.BytesType)
		b = protowire.AppendBytes(b, marshalBuild(s.currBuild))
	}

	if s.prevBuild != nil {
		b = protowire.AppendTag(b, fieldPrevBuild, protowire.BytesType)
		b = protowire.AppendBytes(b, marshalBuild(s.prevBuild))
	}

	b = appendVarintField(b, fieldLastScanTimeMs, uint64(s.currScan.LastScanTimeMs))
	b = appendVarintField(b, fieldBssidCount2G, uint64(int64(s.currScan.BssidCount2G)))
	b = appendVarintField(b, fieldBssidCountAbove2G, uint64(int64(s.currScan.BssidCountAbove2G)))
	b = appendVarintField(b, fieldMobilityState, uint64(int64(s.mobility)))
	b = appendVarintField(b, fieldScanFailure, uint64(int64(s.scanFailure)))

	return b
}

func appendVarintField(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func marshalBuild(build *SoftwareBuild) []byte {
	var b []byte

	b = protowire.AppendTag(b, fieldBuildOS, protowire.BytesType)
	b = protowire.AppendString(b, build.OSBuildVersion)
	b = appendVarintField(b, fieldBuildStack, uint64(int64(build.StackVersion)))
	b = protowire.AppendTag(b, fieldBuildDriver, protowire.BytesType)
	b = protowire.AppendString(b, build.DriverVersion)
	b = protowire.AppendTag(b, fieldBuildFirmware, protowire.BytesType)
	b = protowire.AppendString(b, build.FirmwareVersion)

	return b
}

// persistedSystemInfo is a decoded record; nil pointers are absent fields.
type persistedSystemInfo struct {
	currBuild         *SoftwareBuild
	prevBuild         *SoftwareBuild
	lastScanTimeMs    *int64
	bssidCount2G      *int
	bssidCountAbove2G *int
	mobility          *models.MobilityState
	scanFailure       *int
}

func unmarshalSystemInfo(data []byte) (*persistedSystemInfo, error) {
	out := &persistedSystemInfo{}

	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, fmt.Errorf("%w: %w", ErrTruncatedRecord, protowire.ParseError(n))
		}

		data = data[n:]

		switch {
		case (num == fieldCurrBuild || num == fieldPrevBuild) && typ == protowire.BytesType:
			raw, m := protowire.ConsumeBytes(data)
			if m < 0 {
				return nil, fmt.Errorf("%w: %w", ErrTruncatedRecord, protowire.ParseError(m))
			}

			build, err := unmarshalBuild(raw)
			if err != nil {
				return nil, err
			}

			if num == fieldCurrBuild {
				out.currBuild = build
			} else {
				out.prevBuild = build
			}

			n = m
		case num >= fieldLastScanTimeMs && num <= fieldScanFailure && typ == protowire.VarintType:
			v, m := protowire.ConsumeVarint(data)
			if m < 0 {
				return nil, fmt.Errorf("%w: %w", ErrTruncatedRecord, protowire.ParseError(m))
			}

			out.setVarint(num, v)

			n = m
		default:
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, fmt.Errorf("%w: %w", ErrTruncatedRecord, protowire.ParseError(n))
			}
		}

		data = data[n:]
	}

	return out, nil
}

func (p *persistedSystemInfo) setVarint(num protowire.Number, v uint64) {
	switch num {
	case fieldLastScanTimeMs:
		ts := int64(v)
		p.lastScanTimeMs = &ts
	case fieldBssidCount2G:
		c := int(int32(v))
		p.bssidCount2G = &c
	case fieldBssidCountAbove2G:
		c := int(int32(v))
		p.bssidCountAbove2G = &c
	case fieldMobilityState:
		state := models.MobilityState(int32(v))
		p.mobility = &state
	case fieldScanFailure:
		mask := int(int32(v))
		p.scanFailure = &mask
	}
}

// unmarshalBuild decodes a build record; absent strings read as NotAvailable and an
// absent stack version as 0.
func unmarshalBuild(data []byte) (*SoftwareBuild, error) {
	build := &SoftwareBuild{
		OSBuildVersion:  NotAvailable,
		DriverVersion:   NotAvailable,
		FirmwareVersion: NotAvailable,
	}

	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, fmt.Errorf("%w: %w", ErrTruncatedRecord, protowire.ParseError(n))
		}

		data = data[n:]

		switch {
		case num == fieldBuildStack && typ == protowire.VarintType:
			v, m := protowire.ConsumeVarint(data)
			if m < 0 {
				return nil, fmt.Errorf("%w: %w", ErrTruncatedRecord, protowire.ParseError(m))
			}

			build.StackVersion = int(int32(v))
			n = m
		case num >= fieldBuildOS && num <= fieldBuildFirmware && typ == protowire.BytesType:
			s, m := protowire.ConsumeString(data)
			if m < 0 {
				return nil, fmt.Errorf("%w: %w", ErrTruncatedRecord, protowire.ParseError(m))
			}

			switch num {
			case fieldBuildOS:
				build.OSBuildVersion = s
			case fieldBuildDriver:
				build.DriverVersion = s
			case fieldBuildFirmware:
				build.FirmwareVersion = s
			}

			n = m
		default:
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, fmt.Errorf("%w: %w", ErrTruncatedRecord, protowire.ParseError(n))
			}
		}

		data = data[n:]
	}

	return build, nil
}

// applyPersisted loads a decoded record. Builds overwrite, the stored scan becomes the
// pre-boot snapshot, and mobility is only taken while the live state is still unknown.
// Loading does not dirty the state.
func (s *SystemInfo) applyPersisted(p *persistedSystemInfo) {
	if p.currBuild != nil {
		s.currBuild = p.currBuild
	}

	if p.prevBuild != nil {
		s.prevBuild = p.prevBuild
	}

	if p.lastScanTimeMs != nil {
		s.prevScan.LastScanTimeMs = *p.lastScanTimeMs
	}

	if p.bssidCount2G != nil {
		s.prevScan.BssidCount2G = *p.bssidCount2G
	}

	if p.bssidCountAbove2G != nil {
		s.prevScan.BssidCountAbove2G = *p.bssidCountAbove2G
	}

	if p.mobility != nil && s.mobility == models.MobilityUnknown {
		s.mobility = *p.mobility
	}

	if p.scanFailure != nil {
		s.scanFailure = *p.scanFailure
	}
}

func (s *SystemInfo) String() string {
	return fmt.Sprintf("current build: %v, previous build: %v, current scan: {%s}, previous scan: {%s}, mobility: %s, scan failure: %d",
		s.currBuild, s.prevBuild, s.currScan, s.prevScan, s.mobility, s.scanFailure)
}
