// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package orb

import "iter"

// Unfold produces a lazy sequence from a seed state. Each pull calls
// step with the current state; step returns the element to emit, the
// successor state, and false to end the sequence (the returned element
// is then discarded). Nothing is computed ahead of the consumer.
func Unfold[S, V any](initial S, step func(S) (V, S, bool)) iter.Seq[V] {
	return func(yield func(V) bool) {
		for s := initial; ; {
			v, next, ok := step(s)
			if !ok || !yield(v) {
				return
			}
			s = next
		}
	}
}
