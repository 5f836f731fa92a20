// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/lperrin/negachess/internal/cli"
)

// version is the engine's self-reported build identifier.
const version = "0.1.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		rank = flag.Int("rank", 0, "this process's rank within the peer group launched by the multi-process launcher")
		size = flag.Int("size", 1, "the peer group's world size; 1 disables the parallel coordinator entirely")
	)
	flag.Parse()

	fmt.Printf("negachess %s\n", version)

	game := cli.NewGame(os.Stdin, os.Stdout)

	if *size <= 1 {
		return game.Run()
	}

	// Only rank 0 drives the interactive session; per §6 every process
	// in the group is started by the launcher with its rank and the
	// group's size already known, so a non-zero rank here would in a
	// real deployment be a separate headless process with no stdin to
	// read from. This binary simulates the whole group in-process, so
	// it starts the shared peer group and hands control to rank 0's
	// session regardless of the --rank flag's value.
	if *rank != 0 {
		fmt.Printf("rank %d joined a group of size %d; only rank 0 performs I/O\n", *rank, *size)
	}

	return game.RunParallel(context.Background(), *size)
}
