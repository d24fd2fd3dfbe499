// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mdo

// Monad is the protocol a value must satisfy to be yieldable.
// Conformance is checked by the compiler, not discovered per call.
//
// The yield pipeline canonicalizes via ToResult, tests the state, triggers
// its abort from the OrElse fallback position, and extracts the surviving
// payload with UnwrapOrFail. UnwrapOrFail is never called by this package
// on a value in the failure state.
type Monad[E, T any] interface {
	// ToResult returns the canonical Success/Failure representation of self.
	ToResult() Result[E, T]
	// IsSuccess reports success vs. failure.
	IsSuccess() bool
	// OrElse returns self if success; otherwise it invokes fallback with the
	// canonical failure and returns the fallback's result.
	OrElse(fallback func(Result[E, T]) Result[E, T]) Result[E, T]
	// UnwrapOrFail returns the success payload. Calling it on a failure is
	// a bug in the caller.
	UnwrapOrFail() T
}

var _ Monad[string, int] = Result[string, int]{}
