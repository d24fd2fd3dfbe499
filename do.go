// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mdo

// Do runs a yield-accepting body with an implicit continuation installed.
// An abort raised while the body runs is caught at this call's boundary
// only, and Do returns the carried failure as its own result. A body that
// returns normally has its result passed through unchanged.
//
// A caller holding an explicit [Yield] can invoke the body directly instead;
// that call behaves exactly like the unwrapped original, which keeps bodies
// testable and composable.
//
// Only this invocation's abort is intercepted: an abort belonging to an
// enclosing invocation, a misused unwrap, and any other panic all keep
// propagating.
func Do[E, T any](body func(Yield[E]) Result[E, T]) (res Result[E, T]) {
	b := new(boundary)
	defer func() {
		b.resolve()
		if r := recover(); r != nil {
			sig, ok := r.(*haltSignal)
			if !ok || sig.b != b {
				panic(r)
			}
			// Comma-ok: a nil interface payload (e.g. Failure[error, T](nil))
			// arrives here as a nil any; the zero E is exactly that payload.
			f, _ := sig.failure.(E)
			res = Failure[E, T](f)
		}
	}()
	return body(Yield[E]{b: b})
}

// Wrap turns a yield-accepting function into a plain function with the same
// external contract. Each call of the returned function owns an independent
// boundary, so a failure from a nested wrapped call is observed by the outer
// body as an ordinary returned failure value, never as a shared abort.
func Wrap[E, T any](fn func(Yield[E]) Result[E, T]) func() Result[E, T] {
	return func() Result[E, T] {
		return Do(fn)
	}
}

// Wrap1 is [Wrap] for a one-argument function.
func Wrap1[E, A, T any](fn func(Yield[E], A) Result[E, T]) func(A) Result[E, T] {
	return func(a A) Result[E, T] {
		return Do(func(y Yield[E]) Result[E, T] {
			return fn(y, a)
		})
	}
}

// Wrap2 is [Wrap] for a two-argument function.
func Wrap2[E, A, B, T any](fn func(Yield[E], A, B) Result[E, T]) func(A, B) Result[E, T] {
	return func(a A, b B) Result[E, T] {
		return Do(func(y Yield[E]) Result[E, T] {
			return fn(y, a, b)
		})
	}
}

// Wrap3 is [Wrap] for a three-argument function.
func Wrap3[E, A, B, C, T any](fn func(Yield[E], A, B, C) Result[E, T]) func(A, B, C) Result[E, T] {
	return func(a A, b B, c C) Result[E, T] {
		return Do(func(y Yield[E]) Result[E, T] {
			return fn(y, a, b, c)
		})
	}
}
