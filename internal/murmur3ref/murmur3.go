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

// Package murmur3ref is a hand-rolled MurmurHash3 x64-128 port kept
// solely as a comparison baseline in this module's benchmarks: it lets
// mum/bench_test.go compare MUM64 against a reimplemented mixing
// discipline of roughly the same shape (128-bit running state, block
// plus tail dispatch) in addition to the imported github.com/twmb/murmur3
// and github.com/cespare/xxhash/v2 packages. It is not used to compute
// anything this module returns to a caller.
package murmur3ref

const (
	c1 = 0x87c37b91114253d5
	c2 = 0x4cf5ad432745937f
)

type state struct {
	h1 uint64
	h2 uint64
}

// HashByteArr computes the MurmurHash3 x64-128 of key[offset:offset+length]
// seeded with seed, returning (h1, h2).
func HashByteArr(key []byte, offset, length int, seed uint64) (uint64, uint64) {
	s := state{h1: seed, h2: seed}

	nblocks := length >> 4
	for i := 0; i < nblocks; i++ {
		k1 := getUint64(key, offset+(i<<4), 8)
		k2 := getUint64(key, offset+(i<<4)+8, 8)
		s.blockMix(k1, k2)
	}

	tail := nblocks << 4
	rem := length - tail

	var k1, k2 uint64
	if rem > 8 {
		k1 = getUint64(key, offset+tail, 8)
		k2 = getUint64(key, offset+tail+8, rem-8)
	} else if rem != 0 {
		k1 = getUint64(key, offset+tail, rem)
	}

	return s.finalMix(k1, k2, uint64(length))
}

func getUint64(b []byte, index, rem int) uint64 {
	var out uint64
	for i := rem - 1; i >= 0; i-- {
		out ^= uint64(b[index+i]&0xFF) << uint(i*8)
	}
	return out
}

func mixK1(k1 uint64) uint64 {
	k1 *= c1
	k1 = (k1 << 31) | (k1 >> (64 - 31))
	k1 *= c2
	return k1
}

func mixK2(k2 uint64) uint64 {
	k2 *= c2
	k2 = (k2 << 33) | (k2 >> (64 - 33))
	k2 *= c1
	return k2
}

func finalMix(h uint64) uint64 {
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return h
}

func (s *state) blockMix(k1, k2 uint64) {
	s.h1 ^= mixK1(k1)
	s.h1 = (s.h1 << 27) | (s.h1 >> (64 - 27))
	s.h1 += s.h2
	s.h1 = s.h1*5 + 0x52dce729

	s.h2 ^= mixK2(k2)
	s.h2 = (s.h2 << 31) | (s.h2 >> (64 - 31))
	s.h2 += s.h1
	s.h2 = s.h2*5 + 0x38495ab5
}

func (s *state) finalMix(k1, k2, length uint64) (uint64, uint64) {
	s.h1 ^= mixK1(k1)
	s.h2 ^= mixK2(k2)
	s.h1 ^= length
	s.h2 ^= length
	s.h1 += s.h2
	s.h2 += s.h1
	s.h1 = finalMix(s.h1)
	s.h2 = finalMix(s.h2)
	s.h1 += s.h2
	s.h2 += s.h1
	return s.h1, s.h2
}
