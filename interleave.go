// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package orb

import "iter"

// Interleave merges first and rest round-robin into one lazy sequence.
// The argument order is the round-robin visitation order. Delegates to
// [InterleaveAll].
func Interleave[V any](first iter.Seq[V], rest ...iter.Seq[V]) iter.Seq[V] {
	return InterleaveAll(func(yield func(iter.Seq[V]) bool) {
		if !yield(first) {
			return
		}
		for _, s := range rest {
			if !yield(s) {
				return
			}
		}
	})
}

// InterleaveAll merges a sequence of lazy sequences round-robin.
//
// Each round visits every still-live source in order, taking one element
// from each; a source that is exhausted leaves the live set without
// contributing to the round. The merge ends when the live set is empty,
// so a single source passes through unchanged, zero sources yield an
// empty sequence, and an already-empty source is dropped in round zero.
//
// Cursors over the sources are opened when iteration begins — every
// range over the returned sequence opens a fresh set — and are owned
// exclusively by that iteration. The whole cursor set is released by one
// exit path regardless of how consumption ends: normal exhaustion, an
// early break by the consumer, or a panic unwinding through the merge.
func InterleaveAll[V any](seqs iter.Seq[iter.Seq[V]]) iter.Seq[V] {
	return func(yield func(V) bool) {
		var (
			live  []func() (V, bool)
			stops []func()
		)
		defer func() {
			for _, stop := range stops {
				stop()
			}
		}()
		for s := range seqs {
			next, stop := iter.Pull(s)
			live = append(live, next)
			stops = append(stops, stop)
		}
		for len(live) > 0 {
			n := 0
			for _, next := range live {
				v, ok := next()
				if !ok {
					continue
				}
				if !yield(v) {
					return
				}
				live[n] = next
				n++
			}
			live = live[:n]
		}
	}
}
