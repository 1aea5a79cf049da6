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

// vectorRound4Wide processes all four logical lanes of a 32-byte round
// as one straight-line, no-loop sequence: the shape a 256-bit SIMD
// lane group would take if this were hand-written assembly (spec
// §4.5's 4-lane, 256-bit case). It is ordinary Go; there is no actual
// vector instruction here (see DESIGN.md), but the four lane updates
// are independent of each other and written with no dependency between
// them, same as the block mixer's straight-line shape in block.go.
func vectorRound4Wide(lanes *[4]uint64, block []byte) {
	w0 := endian.Word64(block[0:8])
	w1 := endian.Word64(block[8:16])
	w2 := endian.Word64(block[16:24])
	w3 := endian.Word64(block[24:32])

	lanes[0] ^= uint64(vectorLaneStep(w0, vectorConstants[0]))
	lanes[1] ^= uint64(vectorLaneStep(w1, vectorConstants[1]))
	lanes[2] ^= uint64(vectorLaneStep(w2, vectorConstants[2]))
	lanes[3] ^= uint64(vectorLaneStep(w3, vectorConstants[3]))
}
