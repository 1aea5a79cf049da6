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

import "golang.org/x/exp/constraints"

// Seed is any integer type that can seed a PRNG. Grounded on
// SnellerInc-sneller/internal/aes/hash.go's Hashable generic constraint
// (constraints.Integer), reused here for the same purpose: let a caller
// seed from whatever integer type they already have on hand without an
// explicit uint64 conversion at every call site.
type Seed interface {
	constraints.Integer
}

// NewFrom seeds a PRNG from any integer type.
func NewFrom[T Seed](seed T) *PRNG {
	return New(uint64(seed))
}
