// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package koenv

// Option represents a value that is either present (Some) or absent (None).
//
// Option is the short-circuiting effect carrier of this package: fallible
// steps return Option, and chaining with [FlatMapOption] collapses absence
// anywhere in the pipeline to absence of the whole result. The zero value
// is None.
type Option[T any] struct {
	present bool
	value   T
}

// Some creates a present value.
func Some[T any](t T) Option[T] {
	return Option[T]{present: true, value: t}
}

// None creates an absent value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome returns true if a value is present.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone returns true if no value is present.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Get returns the value and true, or zero and false.
func (o Option[T]) Get() (T, bool) {
	if o.present {
		return o.value, true
	}
	var zero T
	return zero, false
}

// GetOr returns the value if present, otherwise the fallback.
func (o Option[T]) GetOr(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// MatchOption pattern matches on the Option, calling onNone or onSome.
func MatchOption[T, R any](o Option[T], onNone func() R, onSome func(T) R) R {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption applies a function to a present value.
func MapOption[T, O any](o Option[T], f func(T) O) Option[O] {
	if o.present {
		return Some(f(o.value))
	}
	return None[O]()
}

// FlatMapOption sequences two optional computations.
// Absence propagates: if o is None, f is never called.
func FlatMapOption[T, O any](o Option[T], f func(T) Option[O]) Option[O] {
	if o.present {
		return f(o.value)
	}
	return None[O]()
}
