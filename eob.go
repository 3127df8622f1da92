// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package orb

import (
	"fmt"
	"hash/maphash"
	"math/bits"
	"reflect"
)

// eobTag discriminates the variants of EitherOrBoth.
// tagUninitialized is the zero value: reachable only by bypassing the
// factories, and a dead end for every operation except equality.
type eobTag uint8

const (
	tagUninitialized eobTag = iota
	tagLeft
	tagRight
	tagBoth
)

// EitherOrBoth holds a value of type L, a value of type R, or both.
// Values are immutable once constructed and freely shareable.
//
// The zero value did not pass through [Left], [Right] or [Both] and is
// not a legitimate member of the variant set: dispatching on it panics.
type EitherOrBoth[L, R any] struct {
	tag   eobTag
	left  L
	right R
}

// Left constructs a union holding only a left value.
// Panics if l is a nil reference.
func Left[L, R any](l L) EitherOrBoth[L, R] {
	if isNilRef(l) {
		panic("orb: Left payload is nil")
	}
	return EitherOrBoth[L, R]{tag: tagLeft, left: l}
}

// Right constructs a union holding only a right value.
// Panics if r is a nil reference.
func Right[L, R any](r R) EitherOrBoth[L, R] {
	if isNilRef(r) {
		panic("orb: Right payload is nil")
	}
	return EitherOrBoth[L, R]{tag: tagRight, right: r}
}

// Both constructs a union holding a left and a right value.
// Panics if either payload is a nil reference.
func Both[L, R any](l L, r R) EitherOrBoth[L, R] {
	if isNilRef(l) {
		panic("orb: Both left payload is nil")
	}
	if isNilRef(r) {
		panic("orb: Both right payload is nil")
	}
	return EitherOrBoth[L, R]{tag: tagBoth, left: l, right: r}
}

// isNilRef reports whether v is a nil reference of a nillable kind.
// Value kinds have no nil form and always pass.
func isNilRef(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

// IsLeft reports whether e holds only a left value.
func (e EitherOrBoth[L, R]) IsLeft() bool {
	return e.tag == tagLeft
}

// IsRight reports whether e holds only a right value.
func (e EitherOrBoth[L, R]) IsRight() bool {
	return e.tag == tagRight
}

// IsBoth reports whether e holds both values.
func (e EitherOrBoth[L, R]) IsBoth() bool {
	return e.tag == tagBoth
}

// GetLeft returns the left value and whether the tag declares it valid.
func (e EitherOrBoth[L, R]) GetLeft() (L, bool) {
	return e.left, e.tag == tagLeft || e.tag == tagBoth
}

// GetRight returns the right value and whether the tag declares it valid.
func (e EitherOrBoth[L, R]) GetRight() (R, bool) {
	return e.right, e.tag == tagRight || e.tag == tagBoth
}

// Match dispatches exhaustively on the variant and returns the branch
// result: onLeft for Left, onRight for Right, onBoth for Both.
// Panics on the zero (uninitialized) value, and on a corrupt tag.
func Match[L, R, A any](
	e EitherOrBoth[L, R],
	onLeft func(L) A,
	onRight func(R) A,
	onBoth func(L, R) A,
) A {
	switch e.tag {
	case tagLeft:
		return onLeft(e.left)
	case tagRight:
		return onRight(e.right)
	case tagBoth:
		return onBoth(e.left, e.right)
	case tagUninitialized:
		panic("orb: Match on the zero EitherOrBoth")
	default:
		panic(fmt.Sprintf("orb: unreachable EitherOrBoth tag %d", e.tag))
	}
}

// Do dispatches exhaustively on the variant for side effects.
// Panics on the zero (uninitialized) value, and on a corrupt tag.
func (e EitherOrBoth[L, R]) Do(onLeft func(L), onRight func(R), onBoth func(L, R)) {
	switch e.tag {
	case tagLeft:
		onLeft(e.left)
	case tagRight:
		onRight(e.right)
	case tagBoth:
		onBoth(e.left, e.right)
	case tagUninitialized:
		panic("orb: Do on the zero EitherOrBoth")
	default:
		panic(fmt.Sprintf("orb: unreachable EitherOrBoth tag %d", e.tag))
	}
}

// Equal reports structural equality: tags must match, and only the
// payload(s) the tag declares relevant are compared. Values with
// different tags are never equal. Two zero values compare equal.
func Equal[L, R comparable](a, b EitherOrBoth[L, R]) bool {
	if a.tag != b.tag {
		return false
	}
	switch a.tag {
	case tagLeft:
		return a.left == b.left
	case tagRight:
		return a.right == b.right
	case tagBoth:
		return a.left == b.left && a.right == b.right
	default:
		return true
	}
}

// Hash returns a seed-keyed hash of e, dispatching to a tag-specific
// combination: left alone, right alone, or both mixed. Values equal
// under [Equal] hash equally under the same seed.
// Panics on the zero (uninitialized) value.
func Hash[L, R comparable](seed maphash.Seed, e EitherOrBoth[L, R]) uint64 {
	switch e.tag {
	case tagLeft:
		return maphash.Comparable(seed, e.left)
	case tagRight:
		return maphash.Comparable(seed, e.right)
	case tagBoth:
		h := maphash.Comparable(seed, e.left)
		return h ^ bits.RotateLeft64(maphash.Comparable(seed, e.right), 1)
	case tagUninitialized:
		panic("orb: Hash on the zero EitherOrBoth")
	default:
		panic(fmt.Sprintf("orb: unreachable EitherOrBoth tag %d", e.tag))
	}
}

// String renders the variant for diagnostics. The zero value renders as
// "EitherOrBoth(uninitialized)" rather than panicking, so values are
// printable from logs and test failures.
func (e EitherOrBoth[L, R]) String() string {
	switch e.tag {
	case tagLeft:
		return fmt.Sprintf("Left(%v)", e.left)
	case tagRight:
		return fmt.Sprintf("Right(%v)", e.right)
	case tagBoth:
		return fmt.Sprintf("Both(%v, %v)", e.left, e.right)
	default:
		return "EitherOrBoth(uninitialized)"
	}
}

// FromOptions builds an optional union from two independent options:
// None when both are absent, Left/Right when one side is present, Both
// when both are. Construction goes through the same factories as direct
// callers, so the factory invariants hold for every produced value.
func FromOptions[L, R any](l Option[L], r Option[R]) Option[EitherOrBoth[L, R]] {
	return MatchPair(l, r,
		func(lv L) Option[EitherOrBoth[L, R]] { return Some(Left[L, R](lv)) },
		func(rv R) Option[EitherOrBoth[L, R]] { return Some(Right[L, R](rv)) },
		func(lv L, rv R) Option[EitherOrBoth[L, R]] { return Some(Both(lv, rv)) },
		None[EitherOrBoth[L, R]],
	)
}
