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

package coordinator

import (
	"context"
	"fmt"
)

// Group is an in-process simulation of a peer-to-peer worker group: N
// goroutines standing in for N separate processes/ranks, each with its
// own Peer handle. It exists so the collective-reduction contract can
// be exercised and tested without an actual multi-process launcher or
// network transport; a real deployment would satisfy Reducer with MPI,
// gRPC, or similar over the wire instead.
type Group struct {
	size int
	max  chan collectiveCall
	min  chan collectiveCall
}

type collectiveCall struct {
	value  int
	result chan int
}

// NewGroup builds a Group of the given world size and starts its
// reduction servers. size must be at least 1.
func NewGroup(size int) *Group {
	if size < 1 {
		size = 1
	}
	g := &Group{
		size: size,
		max:  make(chan collectiveCall),
		min:  make(chan collectiveCall),
	}
	go g.serve(g.max, func(a, b int) int {
		if a > b {
			return a
		}
		return b
	})
	go g.serve(g.min, func(a, b int) int {
		if a < b {
			return a
		}
		return b
	})
	return g
}

// serve repeatedly collects size calls from ch, combines them with
// combine, and fans the single combined result back out to every
// caller. It never terminates; a Group's server goroutines live for
// the process's lifetime, one round per collective call made by every
// peer.
func (g *Group) serve(ch chan collectiveCall, combine func(a, b int) int) {
	for {
		calls := make([]collectiveCall, 0, g.size)
		for len(calls) < g.size {
			calls = append(calls, <-ch)
		}

		acc := calls[0].value
		for _, c := range calls[1:] {
			acc = combine(acc, c.value)
		}
		for _, c := range calls {
			c.result <- acc
		}
	}
}

// Peer returns the Reducer handle for the given rank in [0, size). All
// ranks of a Group must call its reduction methods in lockstep — the
// same number of times, in the same Max/Min order — or the group
// deadlocks, mirroring a real collective barrier.
func (g *Group) Peer(rank int) Reducer {
	return peer{group: g, rank: rank}
}

// Size reports the group's world size.
func (g *Group) Size() int { return g.size }

type peer struct {
	group *Group
	rank  int
}

func (p peer) AllReduceMax(ctx context.Context, local int) (int, error) {
	return p.call(ctx, p.group.max, local)
}

func (p peer) AllReduceMin(ctx context.Context, local int) (int, error) {
	return p.call(ctx, p.group.min, local)
}

func (p peer) call(ctx context.Context, ch chan collectiveCall, local int) (int, error) {
	result := make(chan int, 1)
	select {
	case ch <- collectiveCall{value: local, result: result}:
	case <-ctx.Done():
		return 0, fmt.Errorf("coordinator: rank %d: %w", p.rank, ctx.Err())
	}

	select {
	case v := <-result:
		return v, nil
	case <-ctx.Done():
		return 0, fmt.Errorf("coordinator: rank %d: %w", p.rank, ctx.Err())
	}
}
