// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mdo

// Result is the canonical monad: a value in exactly one of two states,
// Success carrying a payload of type T, or Failure carrying a payload of
// type E.
type Result[E, T any] struct {
	ok  bool
	err E
	val T
}

// Success creates a Result in the success state.
func Success[E, T any](v T) Result[E, T] {
	return Result[E, T]{ok: true, val: v}
}

// Failure creates a Result in the failure state.
func Failure[E, T any](e E) Result[E, T] {
	return Result[E, T]{ok: false, err: e}
}

// IsSuccess reports whether the result is in the success state.
func (r Result[E, T]) IsSuccess() bool {
	return r.ok
}

// IsFailure reports whether the result is in the failure state.
func (r Result[E, T]) IsFailure() bool {
	return !r.ok
}

// ToResult returns the canonical representation of the result: itself.
// Result is its own canonical form.
func (r Result[E, T]) ToResult() Result[E, T] {
	return r
}

// Get returns the success payload and true, or zero and false.
func (r Result[E, T]) Get() (T, bool) {
	if r.ok {
		return r.val, true
	}
	var zero T
	return zero, false
}

// GetFailure returns the failure payload and true, or zero and false.
func (r Result[E, T]) GetFailure() (E, bool) {
	if !r.ok {
		return r.err, true
	}
	var zero E
	return zero, false
}

// OrElse returns the result unchanged if it is a success; otherwise it
// invokes fallback with the failure and returns the fallback's result.
// The yield pipeline uses the fallback position to trigger its abort.
func (r Result[E, T]) OrElse(fallback func(Result[E, T]) Result[E, T]) Result[E, T] {
	if r.ok {
		return r
	}
	return fallback(r)
}

// UnwrapOrFail returns the success payload.
// It must only be called on a result already known to be a success;
// calling it on a failure is a bug and panics.
func (r Result[E, T]) UnwrapOrFail() T {
	if !r.ok {
		panic("mdo: unwrap of failure result")
	}
	return r.val
}

// GetOr returns the success payload, or def if the result is a failure.
func (r Result[E, T]) GetOr(def T) T {
	if r.ok {
		return r.val
	}
	return def
}

// Match pattern matches on the result, calling onFailure or onSuccess.
func Match[E, T, R any](r Result[E, T], onFailure func(E) R, onSuccess func(T) R) R {
	if r.ok {
		return onSuccess(r.val)
	}
	return onFailure(r.err)
}

// MapResult applies a function to the success payload.
func MapResult[E, T, U any](r Result[E, T], f func(T) U) Result[E, U] {
	if r.ok {
		return Success[E](f(r.val))
	}
	return Failure[E, U](r.err)
}

// FlatMapResult sequences two fallible computations.
func FlatMapResult[E, T, U any](r Result[E, T], f func(T) Result[E, U]) Result[E, U] {
	if r.ok {
		return f(r.val)
	}
	return Failure[E, U](r.err)
}

// MapFailure applies a function to the failure payload.
func MapFailure[E, F, T any](r Result[E, T], f func(E) F) Result[F, T] {
	if r.ok {
		return Success[F](r.val)
	}
	return Failure[F, T](f(r.err))
}

// Attempt lifts Go's (value, error) convention into a Result.
// A nil error becomes Success(v); a non-nil error becomes Failure(err).
// A fallible call lifts and yields in one line, with the call as Attempt's
// sole argument set:
//
//	data := mdo.One(y, mdo.Attempt(os.ReadFile(path)))
func Attempt[T any](v T, err error) Result[error, T] {
	if err != nil {
		return Failure[error, T](err)
	}
	return Success[error](v)
}
