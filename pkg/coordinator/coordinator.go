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

// Package coordinator abstracts the peer-to-peer collective reduction
// that the parallel search uses to combine alpha/beta bounds across
// workers. The search core depends only on the Reducer interface, not
// on any specific collective communication library, so the actual
// transport (in-process goroutines here, MPI or gRPC elsewhere) can be
// swapped without touching search code.
package coordinator

import "context"

// Reducer is a blocking collective reduction over a peer group. Every
// peer must call AllReduceMax (for a maximizing node) or AllReduceMin
// (for a minimizing node) exactly once per reduction round, regardless
// of whether its own partition of the move list was empty — the
// reduction is a barrier and a peer that skips it stalls the others.
// pkg/search makes one AllReduceMax round per root search.
type Reducer interface {
	AllReduceMax(ctx context.Context, local int) (int, error)
	AllReduceMin(ctx context.Context, local int) (int, error)
}

// Partition splits n items across a peer group of the given size,
// returning the half-open range [lo, hi) assigned to rank. Rank r gets
// items [r*ceil(n/size), min((r+1)*ceil(n/size), n)).
func Partition(rank, size, n int) (lo, hi int) {
	if size <= 0 {
		size = 1
	}
	chunk := (n + size - 1) / size

	lo = rank * chunk
	if lo > n {
		lo = n
	}

	hi = lo + chunk
	if hi > n {
		hi = n
	}

	return lo, hi
}
