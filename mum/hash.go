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

// Package mum implements the MUM64 and VMUM non-cryptographic hash
// functions: a stable, seedable 64-bit digest over an arbitrary byte
// string, built from a widening-multiply-and-fold primitive, an
// unrolled 8-word block mixer, a length-indexed tail mixer, and a
// lane-batched vector layer for keys of 512 bytes or more.
//
// The hash is one-shot: there is no incremental update/finalize split
// in the core algorithm (the New/Write/Sum adapter in streaming.go
// buffers and then calls the one-shot function, it does not change the
// algorithm). Digests are architecture-independent: keys are always
// interpreted as little-endian 64-bit words, and the vector layer's
// scalar fallback produces digests identical to its 4-wide and 2-wide
// variants. All three variants are plain Go; none uses SIMD
// instructions.
//
// Sum64/SumSeed and SumVector64/SumVectorSeed are, per spec, the same
// hash: the vector layer is engaged automatically whenever a key is at
// least 512 bytes, regardless of which entry point the caller used, so
// "VMUM" is not a distinct digest from "MUM64" for any input.
package mum

import "github.com/mum-hash/mum/internal/endian"

// Sum64 returns the MUM64 digest of key using DefaultSeed.
func Sum64(key []byte) uint64 {
	return sum(key, DefaultSeed)
}

// SumSeed returns the MUM64 digest of key using seed.
func SumSeed(key []byte, seed uint64) uint64 {
	return sum(key, seed)
}

// SumVector64 returns the VMUM digest of key using DefaultSeed. It is
// the same hash as Sum64 for every input (spec §6 item 2): the vector
// layer engages automatically for keys of 512 bytes or more regardless
// of which of these four functions is called.
func SumVector64(key []byte) uint64 {
	return sum(key, DefaultSeed)
}

// SumVectorSeed returns the VMUM digest of key using seed.
func SumVectorSeed(key []byte, seed uint64) uint64 {
	return sum(key, seed)
}

// sum is the shared driver behind Sum64/SumSeed/SumVector64/SumVectorSeed
// (spec §4.6). Length is mixed into the initial state before any key
// byte is consumed, so two keys differing only in length never share an
// initial state (spec §3 Invariant 3, Testable Property 4). The vector
// layer is engaged whenever the key is long enough (spec §4.5's gate),
// independent of which public entry point was called.
func sum(key []byte, seed uint64) uint64 {
	state := mix(seed^initConstant, uint64(len(key))^lenConstant)

	rest := key
	if len(rest) >= vectorThreshold {
		var consumed int
		state, consumed = vectorMix(state, rest)
		rest = rest[consumed:]
	}

	for len(rest) >= blockSize {
		var w [8]uint64
		for j := 0; j < 8; j++ {
			w[j] = endian.Word64(rest[j*8 : j*8+8])
		}
		state = mixBlock(state, w)
		rest = rest[blockSize:]
	}

	state = mixTail(state, rest)

	return mix(state, finalConstant)
}
