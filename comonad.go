// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package koenv

// Comonad operations for environment containers.
//
// Minimal definition: Extract (counit) and Duplicate are necessary and
// sufficient. Extend is the derived operation kept as the primary chaining
// combinator, and Map is the functor it induces.
//
// All operations are total and return new containers; inputs are never
// mutated.

// Extract returns the contained value, discarding the environment.
// Extract is the identity partner of Duplicate and Extend:
// Extend(e, Extract) == e.
func Extract[T, V any](e Env[T, V]) T {
	return e.value
}

// Map applies a pure function to the value, leaving the environment
// unchanged.
//
// Map is equivalent to Extend(e, compose(f, Extract)) but avoids wrapping
// and rewrapping the container when the function needs only the value.
func Map[T, V, O any](e Env[T, V], f func(T) O) Env[O, V] {
	return Env[O, V]{value: f(e.value), env: e.env}
}

// Duplicate wraps the whole container as the value of a new container with
// the same environment. This is the context-replication primitive: a
// downstream computation applied to the result sees the full input
// container, value and environment both.
//
// The inner container is copied by value; no aliasing exists between the
// layers.
func Duplicate[T, V any](e Env[T, V]) Env[Env[T, V], V] {
	return Env[Env[T, V], V]{value: e, env: e.env}
}

// Extend applies a context-aware function to the whole container (comonadic
// extension). f receives the full container — it may Extract the value,
// Ask for the environment, or both — and its result becomes the new value,
// with the environment preserved unchanged.
//
// Extend(e, f) is Map(Duplicate(e), f).
func Extend[T, V, O any](e Env[T, V], f func(Env[T, V]) O) Env[O, V] {
	return Map(Duplicate(e), f)
}
