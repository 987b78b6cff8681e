// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package koenv

// Checked unsigned arithmetic and bounds-checked lookup.
//
// Overflow and out-of-range access are expected outcomes, not errors: both
// are reported as None, never as a wrapped sum, a panic, or an error value.

// Unsigned is the type set of unsigned integer kinds accepted by
// [CheckedAdd] and [SafeAdd].
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// CheckedAdd returns Some(a + b), or None if the sum exceeds the
// representable range of T. The modular sum is computed only to detect the
// carry; it is never returned.
func CheckedAdd[T Unsigned](a, b T) Option[T] {
	sum := a + b
	if sum < a {
		return None[T]()
	}
	return Some(sum)
}

// SafeAdd adds delta to an optional value, short-circuiting on absence and
// on overflow. None in yields None out; a present value reaches the caller
// only if the addition stays in range. The two failure causes are
// indistinguishable in the result.
func SafeAdd[T Unsigned](o Option[T], delta T) Option[T] {
	return FlatMapOption(o, func(v T) Option[T] {
		return CheckedAdd(v, delta)
	})
}

// At returns Some(s[i]), or None if i is outside [0, len(s)).
func At[T any](s []T, i int) Option[T] {
	if i < 0 || i >= len(s) {
		return None[T]()
	}
	return Some(s[i])
}
