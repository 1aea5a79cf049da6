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

import "math/bits"

// mix is the MUM primitive (spec §4.1, default contract): the unsigned
// 128-bit widening product of x and y, folded to 64 bits by xoring its
// high and low halves. math/bits.Mul64 lowers to a single hardware
// 64x64->128 multiply on every architecture Go targets, so this already
// satisfies the portability paragraph of §4.1 without a hand-rolled
// 32x32 schoolbook split. Every site in this package uses mix except the
// block mixer, which the reference folds with "+" instead (mixAdd,
// below); see block.go.
func mix(x, y uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	return hi ^ lo
}

// mixAdd is the MUM_add variant (spec §4.1): the same widening product,
// folded by wrap-around addition instead of xor. It is used only at the
// block-mixer sites (see block.go); the driver's seed/length/finalization
// sites in hash.go use mix.
func mixAdd(x, y uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	return hi + lo
}
