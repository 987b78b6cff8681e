// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package koenv provides the environment comonad and a short-circuiting
// optional value type in Go.
//
// The core type [Env] pairs a value with a read-only environment. Where a
// monad sequences computations by transforming outputs, the environment
// comonad transforms inputs: a computation receives the whole container
// (value plus environment) and produces a plain value, with the environment
// threaded through unchanged. This replaces ambient mutable context — a
// global parameter a computation silently reads — with an explicit,
// immutable field.
//
// # Design Philosophy
//
// koenv provides:
//   - A minimal but complete comonad interface: Extract, Duplicate, and the
//     derived Extend
//   - Value semantics throughout — every operation returns a new container
//     and never mutates its input
//   - One form per operation: free generic functions, no parallel method set
//
// # Core Operations
//
// Minimal comonad operations:
//
//   - [Extract]: Retrieve the contained value, discarding context
//   - [Duplicate]: Wrap a container as its own value, exposing the full
//     container to subsequent computation
//
// Derived operation:
//
//   - [Extend]: Apply a context-aware function to the whole container —
//     equivalent to Map(Duplicate(e), f)
//
// Functor operation:
//
//   - [Map]: Apply a function to the value, environment unchanged
//
// Construction and access:
//
//   - [New]: Create a container from a value and an environment
//   - [Env.Ask]: Read the environment
//
// # Comonad Laws
//
// For all containers e and composable functions f, g:
//
//	Extend(e, Extract) == e               // right identity
//	Extract(Extend(e, f)) == f(e)         // left identity
//	Extend(Extend(e, f), g) ==
//	    Extend(e, func(d) { return g(Extend(d, f)) })  // associativity
//
// Map satisfies the functor laws: Map(e, identity) == e and
// Map(Map(e, f), g) == Map(e, g∘f).
//
// # Option Type
//
// [Option] represents presence ([Some]) or absence ([None]) of a value:
//
//   - [Some], [None]: Constructors
//   - [Option.IsSome], [Option.IsNone]: Predicates
//   - [Option.Get], [Option.GetOr]: Accessors
//   - [MatchOption]: Pattern matching
//   - [MapOption]: Functor map over a present value
//   - [FlatMapOption]: Monadic bind
//
// # Checked Arithmetic
//
// Unsigned overflow is an expected, representable outcome, never a wrapped
// sum and never a panic:
//
//   - [CheckedAdd]: Unsigned addition returning None on overflow
//   - [SafeAdd]: Optional-in, optional-out addition pipeline — absence and
//     overflow collapse to the same None
//   - [At]: Bounds-checked slice lookup returning an Option
//
// Absence and overflow are deliberately indistinguishable in the result:
// both collapse to None, and the pipeline does not record why.
//
// # Example
//
//	vol := func(e koenv.Env[float64, float64]) float64 {
//		return math.Pi * koenv.Extract(e) * e.Ask()
//	}
//
//	cylinder := koenv.New(14.0, 15.0) // radius paired with height
//	result := koenv.Extend(cylinder, vol)
//	// Extract(result) == π·14·15, result.Ask() == 15.0
package koenv
