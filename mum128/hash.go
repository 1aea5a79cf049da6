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

// Sum512 returns the MUM512 digest of key using DefaultSeed.
func Sum512(key []byte) Digest {
	return sum(key, DefaultSeed)
}

// SumSeed512 returns the MUM512 digest of key using seed.
func SumSeed512(key []byte, seed [8]uint64) Digest {
	return sum(key, seed)
}

// sum is the MUM512 driver (spec §4.7): same skeleton as package mum's
// MUM64 driver, widened to a 512-bit state held as four 128-bit lanes,
// and to the MUM128 primitive. Length is mixed into every lane before
// any key byte is consumed, for the same reason package mum mixes
// length first (spec §3 Invariant 3).
func sum(key []byte, seed [8]uint64) Digest {
	state := seedToState(seed)
	lenWord := uint128{lo: uint64(len(key))}

	for i := 0; i < 4; i++ {
		state[i] = mix128(state[i].xor(initConstant), lenWord.xor(lenConstant))
	}

	rest := key
	for len(rest) >= blockSize {
		key128 := [4]uint128{
			word128(rest[0:16]),
			word128(rest[16:32]),
			word128(rest[32:48]),
			word128(rest[48:64]),
		}
		state = mixBlock(state, key128)
		rest = rest[blockSize:]
	}

	state = mixTail(state, rest)

	for i := 0; i < 4; i++ {
		state[i] = mix128(state[i], finalConstant[i])
	}

	return stateToDigest(state)
}
