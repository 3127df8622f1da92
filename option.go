// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package orb

// Option holds a value of type T or nothing.
// The zero value is None.
type Option[T any] struct {
	value T
	some  bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None returns the absent option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone reports whether o is absent.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the held value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// OrElse returns the held value, or fallback when o is None.
func (o Option[T]) OrElse(fallback T) T {
	if o.some {
		return o.value
	}
	return fallback
}

// Match dispatches exhaustively: onSome with the held value, or onNone.
func (o Option[T]) Match(onSome func(T), onNone func()) {
	if o.some {
		onSome(o.value)
		return
	}
	onNone()
}

// MatchOption dispatches exhaustively and returns the branch result.
func MatchOption[T, A any](o Option[T], onSome func(T) A, onNone func() A) A {
	if o.some {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption applies f to the held value, preserving absence.
func MapOption[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.some {
		return None[U]()
	}
	return Some(f(o.value))
}

// BindOption sequences an option-producing computation over o.
func BindOption[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}
	return f(o.value)
}

// FromPtr converts a possibly-nil pointer into an option over its pointee.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Ptr returns a pointer to the held value, or nil when o is None.
func (o Option[T]) Ptr() *T {
	if !o.some {
		return nil
	}
	v := o.value
	return &v
}

// MatchPair dispatches exhaustively over two independent options:
// left when only l is present, right when only r is present,
// leftAndRight when both are, none when neither is.
func MatchPair[L, R, A any](
	l Option[L], r Option[R],
	left func(L) A,
	right func(R) A,
	leftAndRight func(L, R) A,
	none func() A,
) A {
	switch {
	case l.some && r.some:
		return leftAndRight(l.value, r.value)
	case l.some:
		return left(l.value)
	case r.some:
		return right(r.value)
	default:
		return none()
	}
}
