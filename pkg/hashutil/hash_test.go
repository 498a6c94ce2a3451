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

package hashutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestL2KeyStable(t *testing.T) {
	a := L2Key("", "02:00:00:00:00:00", "seed")
	b := L2Key("", "02:00:00:00:00:00", "seed")

	require.Equal(t, a, b)
	require.Len(t, a, 16)
}

func TestL2KeyDependsOnEveryPart(t *testing.T) {
	base := L2Key("home", "02:00:00:00:00:00", "seed")

	require.NotEqual(t, base, L2Key("office", "02:00:00:00:00:00", "seed"))
	require.NotEqual(t, base, L2Key("home", "aa:bb:cc:dd:ee:ff", "seed"))
	require.NotEqual(t, base, L2Key("home", "02:00:00:00:00:00", "other"))
}

func TestL2KeyPartBoundaries(t *testing.T) {
	require.NotEqual(t, L2Key("ab", "c", "s"), L2Key("a", "bc", "s"))
}
