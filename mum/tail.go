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

import "github.com/mum-hash/mum/internal/endian"

// mixTail folds the final 0-63 bytes of the key into state (spec §4.4).
// It first mixes as many full trailing 8-byte words as fit in tail,
// using tailConstants (a table distinct from blockConstants so the tail
// never reuses a block-mixer constant at an identical word position),
// then gathers the final 0-7 residual bytes into one partial word and
// mixes that too, unless there are none.
//
// Both stages use the xor-fold (mix), not mixAdd: the reference's "+"
// site is the block mixer only (see block.go); every other site folds
// with xor, matching the spec's xor-biased presentation of the driver
// in §4.6.
func mixTail(state uint64, tail []byte) uint64 {
	i := 0
	k := 0
	for len(tail)-i >= 8 {
		w := endian.Word64(tail[i : i+8])
		state ^= mix(w, tailConstants[k])
		i += 8
		k++
	}

	r := len(tail) - i
	switch r {
	case 0:
		// No residual bytes; nothing further to mix.
	case 1, 2, 3, 4, 5, 6, 7:
		w := endian.PartialWord64(tail[i:i+r], r)
		state ^= mix(w, tailConstants[k])
	}
	return state
}
