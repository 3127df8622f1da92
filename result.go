// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package orb

import (
	"code.hybscloud.com/kont"
	"github.com/pkg/errors"
)

// Result holds a success value of type T or an error.
// The zero value is Ok with the zero T.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a success value.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Err wraps a failure. Panics if err is nil: an absent error is not a
// failure, and a nil-error Result would break the Ok/Err dichotomy.
func Err[T any](err error) Result[T] {
	if err == nil {
		panic("orb: Err with nil error")
	}
	return Result[T]{err: err}
}

// Errf wraps a formatted failure carrying a stack trace.
func Errf[T any](format string, args ...any) Result[T] {
	return Result[T]{err: errors.Errorf(format, args...)}
}

// Of lifts a conventional (value, error) return into a Result.
func Of[T any](v T, err error) Result[T] {
	if err != nil {
		return Result[T]{err: err}
	}
	return Result[T]{value: v}
}

// IsOk reports whether r holds a success value.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Get returns the conventional (value, error) pair.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Match dispatches exhaustively: onOk with the value, or onErr with the error.
func (r Result[T]) Match(onOk func(T), onErr func(error)) {
	if r.err != nil {
		onErr(r.err)
		return
	}
	onOk(r.value)
}

// MatchResult dispatches exhaustively and returns the branch result.
func MatchResult[T, A any](r Result[T], onOk func(T) A, onErr func(error) A) A {
	if r.err != nil {
		return onErr(r.err)
	}
	return onOk(r.value)
}

// MapResult applies f to the success value, preserving failure.
func MapResult[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return Ok(f(r.value))
}

// BindResult sequences a result-producing computation over r.
func BindResult[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return f(r.value)
}

// Wrap annotates the failure with msg, preserving success unchanged.
func (r Result[T]) Wrap(msg string) Result[T] {
	if r.err == nil {
		return r
	}
	return Result[T]{err: errors.Wrap(r.err, msg)}
}

// Either converts r into the kont sum: Right on success, Left on failure.
func (r Result[T]) Either() kont.Either[error, T] {
	if r.err != nil {
		return kont.Left[error, T](r.err)
	}
	return kont.Right[error](r.value)
}

// ResultOf converts a kont sum back into a Result.
func ResultOf[T any](e kont.Either[error, T]) Result[T] {
	if err, ok := e.GetLeft(); ok {
		return Err[T](err)
	}
	v, _ := e.GetRight()
	return Ok(v)
}
