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

package scorecard

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

const (
	fieldSSID      protowire.Number = 1
	fieldRecent    protowire.Number = 2
	fieldCurrBuild protowire.Number = 3
	fieldPrevBuild protowire.Number = 4
)

type persistedNetwork struct {
	ssid      string
	recent    NetworkConnectionStats
	currBuild NetworkConnectionStats
	prevBuild NetworkConnectionStats
}

// marshal encodes the three windows. Counter i is field i+1 of each window message; zero
// counters are omitted.
func (p *PerNetwork) marshal() []byte {
	var b []byte

	b = protowire.AppendTag(b, fieldSSID, protowire.BytesType)
	b = protowire.AppendString(b, p.ssid)

	for _, w := range []struct {
		num   protowire.Number
		stats *NetworkConnectionStats
	}{
		{fieldRecent, &p.recent},
		{fieldCurrBuild, &p.statsCurrBuild},
		{fieldPrevBuild, &p.statsPrevBuild},
	} {
		b = protowire.AppendTag(b, w.num, protowire.BytesType)
		b = protowire.AppendBytes(b, marshalStats(w.stats))
	}

	return b
}

func marshalStats(stats *NetworkConnectionStats) []byte {
	var b []byte

	for i, n := range stats.counts {
		if n == 0 {
			continue
		}

		b = protowire.AppendTag(b, protowire.Number(i+1), protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(int64(n)))
	}

	return b
}

func unmarshalNetwork(data []byte) (*persistedNetwork, error) {
	out := &persistedNetwork{}

	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, fmt.Errorf("%w: %w", ErrTruncatedRecord, protowire.ParseError(n))
		}

		data = data[n:]

		if typ != protowire.BytesType || num < fieldSSID || num > fieldPrevBuild {
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, fmt.Errorf("%w: %w", ErrTruncatedRecord, protowire.ParseError(n))
			}

			data = data[n:]

			continue
		}

		raw, m := protowire.ConsumeBytes(data)
		if m < 0 {
			return nil, fmt.Errorf("%w: %w", ErrTruncatedRecord, protowire.ParseError(m))
		}

		data = data[m:]

		var err error

		switch num {
		case fieldSSID:
			out.ssid = string(raw)
		case fieldRecent:
			err = unmarshalStats(raw, &out.recent)
		case fieldCurrBuild:
			err = unmarshalStats(raw, &out.currBuild)
		case fieldPrevBuild:
			err = unmarshalStats(raw, &out.prevBuild)
		}

		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// unmarshalStats ignores counters it does not know.
func unmarshalStats(data []byte, stats *NetworkConnectionStats) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return fmt.Errorf("%w: %w", ErrTruncatedRecord, protowire.ParseError(n))
		}

		data = data[n:]

		idx := int(num) - 1
		if typ != protowire.VarintType || idx < 0 || idx >= NumCounters {
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return fmt.Errorf("%w: %w", ErrTruncatedRecord, protowire.ParseError(n))
			}

			data = data[n:]

			continue
		}

		v, m := protowire.ConsumeVarint(data)
		if m < 0 {
			return fmt.Errorf("%w: %w", ErrTruncatedRecord, protowire.ParseError(m))
		}

		stats.counts[idx] = int(int64(v))
		data = data[m:]
	}

	return nil
}
