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

import (
	"encoding/binary"
	"fmt"
)

// Digest is the 512-bit MUM512 output, stored as eight 64-bit limbs.
type Digest [8]uint64

// Bytes returns the little-endian byte encoding of the digest (spec
// §6's stability contract: "the bytes of the digest, when serialised
// little-endian, are fixed for all time").
func (d Digest) Bytes() [64]byte {
	var out [64]byte
	for i, limb := range d {
		binary.LittleEndian.PutUint64(out[i*8:i*8+8], limb)
	}
	return out
}

// String renders the digest as 128 lowercase hex digits with no
// separators: each limb as 16 digits, limb 0 first. It is in the spirit
// of quillaja/meow's String helper for its 128-bit hash.
func (d Digest) String() string {
	return fmt.Sprintf("%016x%016x%016x%016x%016x%016x%016x%016x",
		d[0], d[1], d[2], d[3], d[4], d[5], d[6], d[7])
}

func stateToDigest(s [4]uint128) Digest {
	var d Digest
	for i := 0; i < 4; i++ {
		d[2*i] = s[i].lo
		d[2*i+1] = s[i].hi
	}
	return d
}

func seedToState(seed [8]uint64) [4]uint128 {
	var s [4]uint128
	for i := 0; i < 4; i++ {
		s[i] = uint128{lo: seed[2*i], hi: seed[2*i+1]}
	}
	return s
}
