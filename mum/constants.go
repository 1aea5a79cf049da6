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

// blockConstants is the right-hand operand table for the block mixer's
// eight independent MUM operations (§4.3). Each entry is a fixed-point,
// high-entropy 64-bit literal: a near-uniform mix of 0/1 bits, odd (so
// it is coprime to every power of two the multiplier pipeline touches),
// and distinct from every other table entry and from initConstant,
// lenConstant, finalConstant, and tailConstants below. These values are
// part of the hash's identity: changing any one of them produces a
// different, unrelated hash (spec's stability contract), so they must
// never be edited once a digest has been published against them.
var blockConstants = [8]uint64{
	0x9E3779B185EBCA87,
	0xC2B2AE3D27D4EB4F,
	0x165667B19E3779F9,
	0x85EBCA77C2B2AE63,
	0x27D4EB2F165667C5,
	0xFF51AFD7ED558CCD,
	0xC4CEB9FE1A85EC53,
	0x2545F4914F6CDD1D,
}

// tailConstants is a wholly separate table consumed only by the tail
// mixer (§4.4), so that a key whose tail happens to repeat a full-block
// pattern is never mixed with the same constant the block mixer would
// have used at that position.
var tailConstants = [8]uint64{
	0xA24BAED4963EE407,
	0x9FB21C651E98DF25,
	0x369DEA0F31A53F85,
	0xD6E8FEB86659FD93,
	0xA5026F0BA2A0CD8F,
	0x6C62272E07BB0142,
	0xB492B66FBE98F273,
	0x08D4C6E9230BCD47,
}

// initConstant, lenConstant, and finalConstant are distinguished
// constants used once each per hash invocation: mixing the seed (§4.6),
// mixing the length, and finalizing the state. None of them coincides
// with any entry of blockConstants or tailConstants.
const (
	initConstant  uint64 = 0x9E3779B97F4A7C15
	lenConstant   uint64 = 0xBF58476D1CE4E5B9
	finalConstant uint64 = 0x94D049BB133111EB
)

// DefaultSeed is used by Sum64 and SumVector64 when the caller does not
// supply an explicit seed (spec's Seed entity: "absent, it defaults to
// a fixed non-zero literal").
const DefaultSeed uint64 = 0x5BD1E9955BD1E995

// vectorThreshold is the key length, in bytes, at or above which the
// vector layer is engaged (spec: "when L >= 512").
const vectorThreshold = 512

// blockSize is the width, in bytes, of one outer block-mixer iteration:
// eight 64-bit words.
const blockSize = 64
