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

package mumrand

import (
	"encoding/binary"

	"github.com/mum-hash/mum/mum128"
)

// hashSeed512 is the fixed MUM512 seed PRNG512 uses internally; see
// hashSeed's doc comment in prng.go for why this is distinct from the
// caller's seed.
var hashSeed512 = mum128.DefaultSeed

// PRNG512 is a MUM512-derived deterministic pseudo-random generator,
// structurally parallel to PRNG but over the wider hash. Also not safe
// for concurrent use.
type PRNG512 struct {
	state   [8]uint64
	counter uint64
}

// New512 returns a PRNG512 seeded with seed; its counter starts at zero.
func New512(seed [8]uint64) *PRNG512 {
	return &PRNG512{state: seed}
}

// Next returns the next digest in the stream, advancing the generator.
// The counter is folded into the state's first limb only, matching
// spec §4.8's scalar "state xor counter" composed against a wider
// register.
func (p *PRNG512) Next() mum128.Digest {
	mixed := p.state
	mixed[0] ^= p.counter

	var buf [64]byte
	for i, limb := range mixed {
		binary.LittleEndian.PutUint64(buf[i*8:i*8+8], limb)
	}

	v := mum128.SumSeed512(buf[:], hashSeed512)
	p.counter++
	p.state = [8]uint64(v)
	return v
}
