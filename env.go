// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package koenv

// Env is a container pairing a value of type T with a read-only environment
// of type V. Env[T, V] is the environment comonad: computations chained with
// [Extend] see the whole container, and the environment is copied, never
// rewritten, from input to output.
//
// Env has value semantics. When T and V are comparable, Env[T, V] is
// comparable.
type Env[T, V any] struct {
	value T
	env   V
}

// New creates a container from a value and an environment.
func New[T, V any](value T, env V) Env[T, V] {
	return Env[T, V]{value: value, env: env}
}

// Ask returns the environment.
// The name follows the Reader convention: a computation asks for its
// context rather than reading ambient state.
func (e Env[T, V]) Ask() V {
	return e.env
}
