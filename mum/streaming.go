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

import "hash"

// digester implements hash.Hash64 over MUM64 by buffering everything
// written and calling SumSeed once Sum is invoked. This is a
// convenience adapter for code that expects the standard library's
// hash.Hash shape, not a chunked algorithm: Non-goal (d) in the
// specification ("streaming (chunked update/finalize) API") still
// applies to the algorithm itself. Grounded on quillaja/meow's
// meowHash: append-on-Write, hash-on-Sum, truncate-on-Reset.
type digester struct {
	buf  []byte
	seed uint64
}

// New returns a hash.Hash64 that computes MUM64 with the given seed
// over everything written to it before Sum is called.
func New(seed uint64) hash.Hash64 {
	return &digester{seed: seed}
}

func (d *digester) Write(p []byte) (int, error) {
	d.buf = append(d.buf, p...)
	return len(p), nil
}

func (d *digester) Sum(b []byte) []byte {
	sum := SumSeed(d.buf, d.seed)
	out := make([]byte, 8)
	for i := 0; i < 8; i++ {
		out[i] = byte(sum >> (8 * i))
	}
	return append(b, out...)
}

func (d *digester) Reset() { d.buf = d.buf[:0] }

func (d *digester) Size() int { return 8 }

func (d *digester) BlockSize() int { return blockSize }

func (d *digester) Sum64() uint64 { return SumSeed(d.buf, d.seed) }
