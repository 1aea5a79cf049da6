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

// mixBlock folds one 64-byte block (eight 64-bit words, little-endian)
// into state (spec §4.3). The block-mixer site is the reference's "+"
// site (spec §4.1's Open Question, resolved in DESIGN.md): each word is
// combined with its constant via mixAdd, and the eight results are
// xored into state one at a time.
//
// The eight updates are written out as straight-line statements rather
// than a loop over j so there is no loop for a compiler to fail to
// unroll: the eight mixAdd calls read only w[0..7] and the
// blockConstants entries, so they carry no data dependency on each
// other and can issue independently (spec §4.3, §9 "Unrolling
// discipline"). blockConstants is a package-level array variable, so
// its entries are loaded from memory; they are not immediate operands.
func mixBlock(state uint64, w [8]uint64) uint64 {
	state ^= mixAdd(w[0], blockConstants[0])
	state ^= mixAdd(w[1], blockConstants[1])
	state ^= mixAdd(w[2], blockConstants[2])
	state ^= mixAdd(w[3], blockConstants[3])
	state ^= mixAdd(w[4], blockConstants[4])
	state ^= mixAdd(w[5], blockConstants[5])
	state ^= mixAdd(w[6], blockConstants[6])
	state ^= mixAdd(w[7], blockConstants[7])
	return state
}
