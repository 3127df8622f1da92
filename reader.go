// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package orb

// Reader is a pure computation reading from an environment of type E.
// It is a plain function value: composing readers is currying, nothing
// more, so there are no invariants to maintain.
type Reader[E, A any] func(E) A

// Ask returns the environment itself.
func Ask[E any]() Reader[E, E] {
	return func(env E) E { return env }
}

// Run evaluates r against env.
func (r Reader[E, A]) Run(env E) A {
	return r(env)
}

// MapReader applies f to the result of r.
func MapReader[E, A, B any](r Reader[E, A], f func(A) B) Reader[E, B] {
	return func(env E) B {
		return f(r(env))
	}
}

// BindReader sequences a reader-producing computation over r.
// Both steps observe the same environment.
func BindReader[E, A, B any](r Reader[E, A], f func(A) Reader[E, B]) Reader[E, B] {
	return func(env E) B {
		return f(r(env))(env)
	}
}

// Local runs r under an environment transformed by f.
func Local[E, A any](r Reader[E, A], f func(E) E) Reader[E, A] {
	return func(env E) A {
		return r(f(env))
	}
}
