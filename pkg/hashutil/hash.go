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

// Package hashutil derives the stable storage keys used for persisted WiFi state.
package hashutil

import (
	"crypto/sha256"
	"encoding/hex"
)

// L2Key hashes an (ssid, mac) pair under a per-device seed into a 16 hex digit key.
// Device-global records pass an empty ssid and the default MAC.
func L2Key(ssid, mac, seed string) string {
	h := sha256.New()

	// length-prefix each part so "ab"+"c" and "a"+"bc" differ
	for _, part := range []string{seed, ssid, mac} {
		h.Write([]byte{byte(len(part) >> 8), byte(len(part))})
		h.Write([]byte(part))
	}

	sum := h.Sum(nil)

	return hex.EncodeToString(sum[:8])
}
