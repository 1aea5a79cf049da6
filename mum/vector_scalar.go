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

// vectorRoundScalar processes the four logical lanes one at a time.
// This is the fallback used on any CPU without AVX2 or SSE4.1, and the
// reference implementation the other two variants are checked against
// in vector_test.go: spec §4.5 requires the scalar fallback to execute
// the same sequence of 32x32->64 multiplies and folds in the same lane
// order as the vector path, which a plain loop makes self-evidently
// true.
func vectorRoundScalar(lanes *[4]uint64, block []byte) {
	for j := 0; j < 4; j++ {
		w := endian.Word64(block[j*8 : j*8+8])
		lanes[j] ^= uint64(vectorLaneStep(w, vectorConstants[j]))
	}
}
