// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package orb_test

import (
	"iter"
	"slices"
	"testing"
)

// collect drains a sequence into a slice.
func collect[V any](seq iter.Seq[V]) []V {
	return slices.Collect(seq)
}

// tracked wraps a slice source and counts how many times an iteration
// over it ended — by exhaustion or by cursor release. Used to observe
// the interleave combinator's resource discipline.
func tracked[V any](items []V, released *int) iter.Seq[V] {
	return func(yield func(V) bool) {
		defer func() { *released++ }()
		for _, v := range items {
			if !yield(v) {
				return
			}
		}
	}
}

// mustPanic asserts that fn panics with exactly the given message.
func mustPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic %q, got none", want)
		}
		msg, ok := r.(string)
		if !ok || msg != want {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	fn()
}
