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

// Package mum128 implements MUM512: a 512-bit-state candidate
// cryptographic hash built from a 128x128->256 widening multiply
// primitive (MUM128), structurally parallel to package mum's MUM64 but
// operating over four 128-bit registers instead of one 64-bit register.
//
// MUM512 is declared a candidate primitive only (spec §4.7, §9): no
// constant-time multiplication or differential-analysis guarantee is
// made, and any security-sensitive use requires an external review this
// package does not provide.
package mum128

import "math/bits"

// uint128 is an unsigned 128-bit integer, hi*2^64 + lo.
type uint128 struct {
	hi, lo uint64
}

func (x uint128) xor(y uint128) uint128 {
	return uint128{hi: x.hi ^ y.hi, lo: x.lo ^ y.lo}
}

// mul128 computes the full 256-bit product of x and y as two uint128
// halves (hi, lo), using four 64x64->128 multiplies and explicit carry
// propagation (spec §4.2: "synthesise from four 64x64->128 multiplies
// if the target lacks wider support" — no Go target has 128x128->256 in
// hardware, so this is the only path).
func mul128(x, y uint128) (hi, lo uint128) {
	p00hi, p00lo := bits.Mul64(x.lo, y.lo)
	p01hi, p01lo := bits.Mul64(x.lo, y.hi)
	p10hi, p10lo := bits.Mul64(x.hi, y.lo)
	p11hi, p11lo := bits.Mul64(x.hi, y.hi)

	r0 := p00lo

	t1, c1 := bits.Add64(p00hi, p01lo, 0)
	t1, c2 := bits.Add64(t1, p10lo, 0)
	r1 := t1
	carry1 := c1 + c2

	t2, c3 := bits.Add64(p01hi, p10hi, 0)
	t2, c4 := bits.Add64(t2, p11lo, 0)
	t2, c5 := bits.Add64(t2, carry1, 0)
	r2 := t2
	carry2 := c3 + c4 + c5

	r3 := p11hi + carry2

	return uint128{hi: r3, lo: r2}, uint128{hi: r1, lo: r0}
}

// mix128 is the MUM128 primitive (spec §4.2): the 256-bit product of x
// and y, folded to 128 bits by xoring its high and low halves.
func mix128(x, y uint128) uint128 {
	hi, lo := mul128(x, y)
	return hi.xor(lo)
}
