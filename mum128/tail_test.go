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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMixTailEmpty(t *testing.T) {
	var state [4]uint128
	require.Equal(t, state, mixTail(state, nil))
}

func TestMixTailAllResidualLengths(t *testing.T) {
	var state [4]uint128
	for r := 1; r <= 63; r++ {
		a := ramp(r)
		b := ramp(r)
		b[len(b)-1] ^= 0xFF

		outA := mixTail(state, a)
		outB := mixTail(state, b)
		require.NotEqualf(t, outA, outB, "residual length %d did not distinguish a tail byte flip", r)
	}
}

func TestMixTailDeterministic(t *testing.T) {
	var state [4]uint128
	tail := ramp(47)
	require.Equal(t, mixTail(state, tail), mixTail(state, tail))
}
