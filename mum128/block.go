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

// mixBlock folds one 64-byte block (four 128-bit little-endian key
// lanes) into state across two rounds (spec §4.7). Round 0 mixes key
// lane j straight into state lane j; round 1 mixes the same four key
// lanes into state lane (j+1)%4, so every state limb absorbs two
// independent MUM128 results per block instead of one. All eight
// updates are independent of each other within a round and are written
// straight-line, mirroring package mum's block mixer.
func mixBlock(state [4]uint128, key [4]uint128) [4]uint128 {
	state[0] = state[0].xor(mix128(key[0], blockConstantsRound0[0]))
	state[1] = state[1].xor(mix128(key[1], blockConstantsRound0[1]))
	state[2] = state[2].xor(mix128(key[2], blockConstantsRound0[2]))
	state[3] = state[3].xor(mix128(key[3], blockConstantsRound0[3]))

	state[1] = state[1].xor(mix128(key[0], blockConstantsRound1[0]))
	state[2] = state[2].xor(mix128(key[1], blockConstantsRound1[1]))
	state[3] = state[3].xor(mix128(key[2], blockConstantsRound1[2]))
	state[0] = state[0].xor(mix128(key[3], blockConstantsRound1[3]))

	return state
}
