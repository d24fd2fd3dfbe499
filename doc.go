// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mdo provides direct-style do-notation for monadic values in Go.
//
// A body wrapped by [Do] (or one of the [Wrap] helpers) receives a [Yield]
// continuation. Yielding a [Result] through [One], [All], or [Seq] either
// hands the success payload back as a plain value, or aborts the invocation
// immediately; the invocation then returns the first encountered failure.
// Chains of fallible steps read as straight-line code with no per-step
// check-and-unwrap boilerplate.
//
// # Design Philosophy
//
// mdo provides:
//   - A statically checked monad protocol ([Monad]) instead of runtime
//     duck typing
//   - A closed set of yield shapes ([One], [All], [All2], [All3], [Seq])
//     instead of shape inference from argument count
//   - Scoped non-local exit: the abort travels the current call stack only
//     and is caught at exactly one frame, the owning invocation's boundary
//
// # Core Operations
//
// Running bodies:
//
//   - [Do]: Run a yield-accepting body with its own boundary installed
//   - [Wrap], [Wrap1], [Wrap2], [Wrap3]: Turn a yield-accepting function
//     into a plain function with the same external contract
//
// Yield shapes (one shape per yield point):
//
//   - [One]: Yield a single monad, receive its payload
//   - [All]: Yield several independent monads positionally, receive the
//     payloads in order; [All2] and [All3] are the destructuring variants
//   - [Seq]: Yield a container of monads, combined via [Traverse]
//
// Canonical monad:
//
//   - [Result]: Success/Failure sum type carrying a payload in both states
//   - [Success], [Failure]: Constructors
//   - [MapResult], [FlatMapResult], [MapFailure], [Match]: Combinators
//
// Go interop:
//
//   - [Attempt]: Lift a (value, error) call into a Result for yielding,
//     with the call as Attempt's sole argument set:
//     mdo.One(y, mdo.Attempt(os.ReadFile(path)))
//
// # Adoption Surface
//
// [ForMethods] builds a reusable, additive set of method names; applying it
// with [ApplyMethods] wraps each declared body. Declaring a name twice, or
// merging two sets that share names, changes nothing observable.
//
// # Boundary Locality
//
// Each invocation owns an independent boundary. A nested wrapped call fully
// resolves its own abort before control returns to the outer body; the outer
// body observes the inner failure as an ordinary returned [Result] and may
// yield it again. An abort never crosses a goroutine boundary and is never
// visible outside its own invocation.
//
// # Error Taxonomy
//
// Business failures are values: they are caught at the invocation boundary
// and become the invocation's return value, never an escaping panic.
// Protocol violations (a nil [Monad]) and misused unwraps
// ([Result.UnwrapOrFail] on a failure) are bugs and panic loudly; [Do] does
// not intercept them.
//
// # Example
//
//	parse := mdo.Wrap1(func(y mdo.Yield[string], s string) mdo.Result[string, int] {
//		n := mdo.One(y, atoi(s))    // Result[string, int] -> int
//		d := mdo.One(y, nonZero(n)) // aborts here when n == 0
//		return mdo.Success[string](100 / d)
//	})
//
//	parse("5") // Success(20)
//	parse("0") // Failure("zero divisor"); the division never runs
package mdo
