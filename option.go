// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mdo

import "errors"

// ErrNoValue is the failure payload an empty Option canonicalizes to.
var ErrNoValue = errors.New("mdo: no value")

// Option is an optional value: Some carrying a payload, or None.
// It satisfies [Monad] with error as the failure type, so it can be yielded
// alongside [Attempt]-lifted results in the same body.
type Option[T any] struct {
	ok  bool
	val T
}

// Some creates an Option holding a value.
func Some[T any](v T) Option[T] {
	return Option[T]{ok: true, val: v}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// Get returns the value and true, or zero and false.
func (o Option[T]) Get() (T, bool) {
	if o.ok {
		return o.val, true
	}
	var zero T
	return zero, false
}

// GetOr returns the value, or def if the option is empty.
func (o Option[T]) GetOr(def T) T {
	if o.ok {
		return o.val
	}
	return def
}

// ToResult returns the canonical representation: Success for Some,
// Failure(ErrNoValue) for None.
func (o Option[T]) ToResult() Result[error, T] {
	if o.ok {
		return Success[error](o.val)
	}
	return Failure[error, T](ErrNoValue)
}

// IsSuccess reports success vs. failure. Implements [Monad].
func (o Option[T]) IsSuccess() bool {
	return o.ok
}

// OrElse returns the canonical success if the option holds a value;
// otherwise it invokes fallback with the canonical failure. Implements [Monad].
func (o Option[T]) OrElse(fallback func(Result[error, T]) Result[error, T]) Result[error, T] {
	return o.ToResult().OrElse(fallback)
}

// UnwrapOrFail returns the value. Calling it on an empty option is a bug
// in the caller. Implements [Monad].
func (o Option[T]) UnwrapOrFail() T {
	if !o.ok {
		panic("mdo: unwrap of empty option")
	}
	return o.val
}

// MapOption applies a function to the value of a non-empty option.
func MapOption[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.ok {
		return Some(f(o.val))
	}
	return None[U]()
}

var _ Monad[error, int] = Option[int]{}
