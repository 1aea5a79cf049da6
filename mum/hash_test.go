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

package mum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeterminism(t *testing.T) {
	keys := [][]byte{
		{},
		[]byte("a"),
		[]byte("The quick brown fox jumps over the lazy dog"),
		make([]byte, 63),
		make([]byte, 64),
		make([]byte, 65),
		make([]byte, 511),
		make([]byte, 512),
		make([]byte, 4096),
	}
	for _, k := range keys {
		first := SumSeed(k, 12345)
		second := SumSeed(k, 12345)
		require.Equal(t, first, second, "hash of %d-byte key must be deterministic", len(k))
	}
}

func TestLengthSensitivity(t *testing.T) {
	// spec §8 item 4: hash64(empty) != hash64([0x00]) != hash64([0x00,0x00])
	h0 := SumSeed(nil, 0)
	h1 := SumSeed(make([]byte, 1), 0)
	h2 := SumSeed(make([]byte, 2), 0)
	require.NotEqual(t, h0, h1)
	require.NotEqual(t, h1, h2)
	require.NotEqual(t, h0, h2)
}

func TestTailCoverage(t *testing.T) {
	// spec §8 item 7: for every residual length R in 1..63, keys sharing
	// a common prefix but differing in their last R bytes must hash
	// differently (R = 0 leaves no trailing bytes to differ).
	for r := 1; r <= 63; r++ {
		prefix := make([]byte, 128)
		a := append(append([]byte{}, prefix...), make([]byte, r)...)
		b := append(append([]byte{}, prefix...), make([]byte, r)...)
		b[len(b)-1] ^= 0xFF

		ha := SumSeed(a, 7)
		hb := SumSeed(b, 7)
		require.NotEqualf(t, ha, hb, "residual length %d: differing tail bytes produced equal digests", r)
	}
}

func TestSeedSensitivitySingleBit(t *testing.T) {
	key := []byte("some reasonably long test key used for seed sensitivity checks")
	base := SumSeed(key, 0)
	for bit := 0; bit < 64; bit++ {
		seed := uint64(1) << uint(bit)
		h := SumSeed(key, seed)
		require.NotEqual(t, base, h, "flipping seed bit %d should change the digest", bit)
	}
}

func TestVMUMEqualsMUMForAllLengths(t *testing.T) {
	for _, n := range []int{0, 1, 8, 63, 64, 511, 512, 513, 1024, 4096} {
		key := ramp(n)
		require.Equal(t, Sum64(key), SumVector64(key), "length %d", n)
		require.Equal(t, SumSeed(key, 99), SumVectorSeed(key, 99), "length %d", n)
	}
}

func TestStreamingAdapterMatchesOneShot(t *testing.T) {
	key := []byte("streaming adapter buffers writes then hashes once on Sum")
	d := New(42)
	n, err := d.Write(key[:10])
	require.NoError(t, err)
	require.Equal(t, 10, n)
	_, err = d.Write(key[10:])
	require.NoError(t, err)

	require.Equal(t, SumSeed(key, 42), d.Sum64())
	require.Equal(t, 8, d.Size())
	require.Equal(t, blockSize, d.BlockSize())

	d.Reset()
	require.Equal(t, SumSeed(nil, 42), d.Sum64())
}

func ramp(n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(i)
	}
	return buf
}
