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

// blockConstantsRound0 and blockConstantsRound1 are the two passes the
// block mixer applies per 64-byte block (spec §4.7: "rotating through
// the state such that every limb participates in several independent
// MUM128s per outer block"). Round 0 mixes key lane j into state lane
// j; round 1 mixes the same four key lanes into state lane (j+1)%4, so
// every state lane absorbs two of the four key lanes per block instead
// of one.
var blockConstantsRound0 = [4]uint128{
	{hi: 0x9E3779B97F4A7C15, lo: 0xF39CC0605CEDC834},
	{hi: 0xC2B2AE3D27D4EB4F, lo: 0x165667B19E3779F9},
	{hi: 0x85EBCA77C2B2AE63, lo: 0x27D4EB2F165667C5},
	{hi: 0xFF51AFD7ED558CCD, lo: 0xC4CEB9FE1A85EC53},
}

var blockConstantsRound1 = [4]uint128{
	{hi: 0x2545F4914F6CDD1D, lo: 0xA24BAED4963EE407},
	{hi: 0x9FB21C651E98DF25, lo: 0x369DEA0F31A53F85},
	{hi: 0xD6E8FEB86659FD93, lo: 0xA5026F0BA2A0CD8F},
	{hi: 0x6C62272E07BB0142, lo: 0xB492B66FBE98F273},
}

// tailConstants is distinct from both block-mixer rounds, used only by
// the tail mixer, mirroring mum.tailConstants's role.
var tailConstants = [4]uint128{
	{hi: 0x08D4C6E9230BCD47, lo: 0xD6C59DA2C3F8A9E1},
	{hi: 0x8A97F56BAC2D1753, lo: 0xF29EB4D7165A8E3F},
	{hi: 0x4B7C3D9A5E8F1269, lo: 0x2B8F4E6D9A1C5037},
	{hi: 0x7193CDEF04B6A852, lo: 0xE1D4C7A9863F0B25},
}

var initConstant = uint128{hi: 0x9E3779B97F4A7C15, lo: 0xBF58476D1CE4E5B9}
var lenConstant = uint128{hi: 0x94D049BB133111EB, lo: 0x2545F4914F6CDD1D}
var finalConstant = [4]uint128{
	{hi: 0xC3A5C85C97CB3127, lo: 0xB492B66FBE98F273},
	{hi: 0x9AE16A3B2F90404F, lo: 0xC949D7C7509E6557},
	{hi: 0x8351A4FB9B1FC8A1, lo: 0x27D4EB2F165667C5},
	{hi: 0xA0761D6478BD642F, lo: 0xE7037ED1A0B428DB},
}

// DefaultSeed is used by Sum512 when the caller does not supply an
// explicit seed.
var DefaultSeed = [8]uint64{
	0x5BD1E9955BD1E995, 0x9E3779B97F4A7C15,
	0xBF58476D1CE4E5B9, 0x94D049BB133111EB,
	0xFF51AFD7ED558CCD, 0xC4CEB9FE1A85EC53,
	0x2545F4914F6CDD1D, 0xA24BAED4963EE407,
}

const blockSize = 64 // bytes; four 128-bit key lanes per block, same width as package mum's block
