/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package mum128

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeterminism(t *testing.T) {
	keys := [][]byte{
		{},
		[]byte("a"),
		ramp(15),
		ramp(16),
		ramp(17),
		ramp(63),
		ramp(64),
		ramp(65),
		ramp(1024),
	}
	for _, k := range keys {
		first := SumSeed512(k, DefaultSeed)
		second := SumSeed512(k, DefaultSeed)
		require.Equal(t, first, second, "digest of %d-byte key must be deterministic", len(k))
	}
}

func TestLengthSensitivity(t *testing.T) {
	h0 := SumSeed512(nil, DefaultSeed)
	h1 := SumSeed512(make([]byte, 1), DefaultSeed)
	h2 := SumSeed512(make([]byte, 2), DefaultSeed)
	require.NotEqual(t, h0, h1)
	require.NotEqual(t, h1, h2)
	require.NotEqual(t, h0, h2)
}

func TestTailCoverage(t *testing.T) {
	for r := 1; r <= 63; r++ {
		prefix := ramp(128)
		a := append(append([]byte{}, prefix...), make([]byte, r)...)
		b := append(append([]byte{}, prefix...), make([]byte, r)...)
		b[len(b)-1] ^= 0xFF

		ha := SumSeed512(a, DefaultSeed)
		hb := SumSeed512(b, DefaultSeed)
		require.NotEqualf(t, ha, hb, "residual length %d: differing tail bytes produced equal digests", r)
	}
}

func TestSeedSensitivity(t *testing.T) {
	key := []byte("some reasonably long key used to test seed sensitivity for MUM512")
	base := SumSeed512(key, DefaultSeed)
	for lane := 0; lane < 8; lane++ {
		seed := DefaultSeed
		seed[lane] ^= 1
		h := SumSeed512(key, seed)
		require.NotEqual(t, base, h, "flipping a bit in seed lane %d should change the digest", lane)
	}
}

func TestSum512UsesDefaultSeed(t *testing.T) {
	key := []byte("consistency between Sum512 and SumSeed512 with DefaultSeed")
	require.Equal(t, SumSeed512(key, DefaultSeed), Sum512(key))
}

func ramp(n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(i)
	}
	return buf
}
