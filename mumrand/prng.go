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

// Package mumrand implements the MUM-PRNG and MUM512-PRNG deterministic
// pseudo-random generators (spec §4.8): each repeatedly applies its
// corresponding hash to (state xor counter), advancing counter and
// replacing state with the hash's return value every call.
package mumrand

import (
	"encoding/binary"

	"github.com/mum-hash/mum/mum"
)

// hashSeed is the fixed MUM64 seed the PRNG uses internally to turn
// (state xor counter) into the next output; it is not the caller's
// seed, which only initializes state (spec §4.8: "Seeding accepts a
// seed value that initialises state; counter starts at zero").
const hashSeed = mum.DefaultSeed

// PRNG is a MUM64-derived deterministic pseudo-random generator. It is
// NOT safe for concurrent use: Next mutates unexported fields with no
// synchronization, matching the teacher's mutable-iterator types
// (e.g. kll's sorted-view iterators), which likewise assume a single
// goroutine owns the value.
type PRNG struct {
	state   uint64
	counter uint64
}

// New returns a PRNG seeded with seed; its counter starts at zero.
func New(seed uint64) *PRNG {
	return &PRNG{state: seed}
}

// Next returns the next value in the stream, advancing the generator.
func (p *PRNG) Next() uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], p.state^p.counter)
	v := mum.SumSeed(buf[:], hashSeed)
	p.counter++
	p.state = v
	return v
}

// Uint64 is an alias of Next. It makes *PRNG satisfy math/rand/v2's
// Source interface; *PRNG has no Int63 or Seed method, so it is not a
// math/rand (v1) Source.
func (p *PRNG) Uint64() uint64 { return p.Next() }
