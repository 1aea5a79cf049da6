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

// Command mumsum prints MUM64 (or, with -512, MUM512) digests of its
// input files, or of stdin if none are given.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mum-hash/mum/mum"
	"github.com/mum-hash/mum/mum128"
)

func main() {
	seed := flag.Uint64("seed", mum.DefaultSeed, "MUM64 seed (ignored with -512)")
	use512 := flag.Bool("512", false, "compute MUM512 digests instead of MUM64")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"-"}
	}

	status := 0
	for _, name := range args {
		if err := sumOne(name, *seed, *use512); err != nil {
			fmt.Fprintf(os.Stderr, "mumsum: %s: %s\n", name, err)
			status = 1
		}
	}
	os.Exit(status)
}

func sumOne(name string, seed uint64, use512 bool) error {
	var r io.Reader
	if name == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	if use512 {
		fmt.Printf("%s  %s\n", mum128.Sum512(data), name)
		return nil
	}
	fmt.Printf("%016x  %s\n", mum.SumSeed(data, seed), name)
	return nil
}
