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

import (
	"strconv"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/twmb/murmur3"

	"github.com/mum-hash/mum/internal/murmur3ref"
)

func benchSizes() []int {
	return []int{8, 64, 256, 1024, 4096}
}

func BenchmarkSum64(b *testing.B) {
	for _, n := range benchSizes() {
		key := ramp(n)
		b.Run(sizeLabel(n), func(b *testing.B) {
			b.SetBytes(int64(n))
			for i := 0; i < b.N; i++ {
				_ = SumSeed(key, 0)
			}
		})
	}
}

func BenchmarkSumVector64(b *testing.B) {
	for _, n := range benchSizes() {
		key := ramp(n)
		b.Run(sizeLabel(n), func(b *testing.B) {
			b.SetBytes(int64(n))
			for i := 0; i < b.N; i++ {
				_ = SumVectorSeed(key, 0)
			}
		})
	}
}

func BenchmarkXXHash64(b *testing.B) {
	for _, n := range benchSizes() {
		key := ramp(n)
		b.Run(sizeLabel(n), func(b *testing.B) {
			b.SetBytes(int64(n))
			for i := 0; i < b.N; i++ {
				_ = xxhash.Sum64(key)
			}
		})
	}
}

func BenchmarkMurmur3(b *testing.B) {
	for _, n := range benchSizes() {
		key := ramp(n)
		b.Run(sizeLabel(n), func(b *testing.B) {
			b.SetBytes(int64(n))
			for i := 0; i < b.N; i++ {
				_ = murmur3.Sum64(key)
			}
		})
	}
}

func BenchmarkMurmur3Ref(b *testing.B) {
	for _, n := range benchSizes() {
		key := ramp(n)
		b.Run(sizeLabel(n), func(b *testing.B) {
			b.SetBytes(int64(n))
			for i := 0; i < b.N; i++ {
				_, _ = murmur3ref.HashByteArr(key, 0, len(key), 0)
			}
		})
	}
}

func sizeLabel(n int) string {
	return strconv.Itoa(n) + "B"
}
