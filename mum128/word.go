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

import "github.com/mum-hash/mum/internal/endian"

// word128 assembles a little-endian 128-bit word from 16 bytes: the
// first 8 bytes are the low limb, the next 8 the high limb.
func word128(buf []byte) uint128 {
	return uint128{lo: endian.Word64(buf[0:8]), hi: endian.Word64(buf[8:16])}
}

// partialWord128 gathers the first n (0 <= n <= 15) bytes of buf into a
// little-endian 128-bit word, high bytes zero.
func partialWord128(buf []byte, n int) uint128 {
	if n <= 8 {
		return uint128{lo: endian.PartialWord64(buf[:n], n)}
	}
	return uint128{
		lo: endian.Word64(buf[0:8]),
		hi: endian.PartialWord64(buf[8:n], n-8),
	}
}
