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
	"golang.org/x/sys/cpu"
)

// vectorLaneStep is the vector MUM32 primitive (spec §4.5): a 32x32->64
// multiply of the word's low 32 bits against the constant's low 32
// bits, folded lane-wise by xoring the product's high and low 32-bit
// halves. Every lane-width variant calls this exact function for each
// logical lane, in logical-lane order, so their results cannot diverge.
func vectorLaneStep(word, constant uint64) uint32 {
	product := uint64(uint32(word)) * uint64(uint32(constant))
	return uint32(product>>32) ^ uint32(product)
}

// vectorRoundSize is the number of key bytes consumed per vector round:
// 4 logical lanes of 8 bytes each (spec §4.5's "vector lane of four
// (256-bit SIMD) or two (128-bit SIMD) lanes" describes the physical
// batching; the logical lane count stays 4 across all implementations
// so the lane order, and therefore the digest, never depends on which
// physical width was selected).
const vectorRoundSize = 32

// vectorConstants are the lane constants for the vector MUM32 step,
// distinct from blockConstants, tailConstants, and the driver's
// distinguished constants.
var vectorConstants = [4]uint64{
	0xD6C59DA2C3F8A9E1,
	0x8A97F56BAC2D1753,
	0xF29EB4D7165A8E3F,
	0x4B7C3D9A5E8F1269,
}

// vectorRound is swapped in at init() for the lane width the running
// CPU actually supports; it folds one 32-byte round (4 logical lanes)
// into lanes. Every candidate implementation (avx2, sse2, scalar) must
// and does produce the same lanes for the same input, in the same
// logical lane order, so the chosen width is a pure throughput knob.
var vectorRound func(lanes *[4]uint64, block []byte)

func init() {
	switch {
	case cpu.X86.HasAVX2:
		vectorRound = vectorRound4Wide
	case cpu.X86.HasSSE41:
		vectorRound = vectorRound2Wide
	default:
		vectorRound = vectorRoundScalar
	}
}

// vectorMix runs the vector layer over as many full 32-byte rounds as
// fit in key (spec §4.5: engaged only by the driver once L >= 512, and
// only over the portion of the key that is a multiple of the vector
// round size; the remainder flows back to the scalar block mixer and
// tail mixer). It returns the updated state and the number of bytes
// consumed.
func vectorMix(state uint64, key []byte) (uint64, int) {
	rounds := len(key) / vectorRoundSize
	if rounds == 0 {
		return state, 0
	}

	var lanes [4]uint64
	lanes[0] = state ^ vectorConstants[0]
	lanes[1] = state ^ vectorConstants[1]
	lanes[2] = state ^ vectorConstants[2]
	lanes[3] = state ^ vectorConstants[3]

	for r := 0; r < rounds; r++ {
		vectorRound(&lanes, key[r*vectorRoundSize:(r+1)*vectorRoundSize])
	}

	folded := state ^ lanes[0] ^ lanes[1] ^ lanes[2] ^ lanes[3]
	return folded, rounds * vectorRoundSize
}
