// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mdo

// Yield is the implicit continuation handed to a wrapped body.
// It is valid only inside the invocation that created it: a yield point is
// an ordinary nested call that fully returns or aborts before the body
// resumes. E is the failure type shared by every monad the body yields.
//
// The yield shapes form a closed set — [One], [All], [All2], [All3], [Seq] —
// and exactly one shape is used per yield point. Mixing a container with
// additional scalar monads at a single yield point is unsupported.
type Yield[E any] struct {
	b *boundary
}

// check guards every yield entry point.
// A zero Yield or a Yield kept alive past its invocation is a bug.
func (y Yield[E]) check() {
	if y.b == nil {
		panic("mdo: yield without an enclosing invocation")
	}
	if y.b.resolved() {
		panic("mdo: yield after its invocation returned")
	}
}

// halt raises the abort signal for this invocation.
// No code after the raising yield point executes; the signal travels the
// current call stack to the owning boundary and nowhere else.
func (y Yield[E]) halt(e E) {
	panic(&haltSignal{b: y.b, failure: e})
}

// resolveMonad canonicalizes one pending monad, tests success, and either
// extracts the payload or aborts the invocation from the fallback position.
func resolveMonad[E, T any](y Yield[E], m Monad[E, T]) T {
	if m == nil {
		protocolViolation()
	}
	r := m.ToResult().OrElse(func(f Result[E, T]) Result[E, T] {
		e, _ := f.GetFailure()
		y.halt(e)
		return f // unreachable: halt never returns
	})
	return r.UnwrapOrFail()
}

// One yields a single monad. On success the payload comes back as a plain
// value; on failure the invocation aborts and returns that failure.
func One[E, T any](y Yield[E], r Result[E, T]) T {
	y.check()
	return resolveMonad[E, T](y, r)
}

// All yields several independent monads positionally. Each is resolved
// separately, strictly left to right, aborting on the first failure; on full
// success the payloads come back in their original positions. Yielding
// nothing resolves nothing and returns nil.
func All[E, T any](y Yield[E], rs ...Result[E, T]) []T {
	y.check()
	if len(rs) == 0 {
		return nil
	}
	out := make([]T, 0, len(rs))
	for _, r := range rs {
		out = append(out, resolveMonad[E, T](y, r))
	}
	return out
}

// All2 yields two independently typed monads positionally, left to right.
func All2[E, A, B any](y Yield[E], ra Result[E, A], rb Result[E, B]) (A, B) {
	y.check()
	a := resolveMonad[E, A](y, ra)
	b := resolveMonad[E, B](y, rb)
	return a, b
}

// All3 yields three independently typed monads positionally, left to right.
func All3[E, A, B, C any](y Yield[E], ra Result[E, A], rb Result[E, B], rc Result[E, C]) (A, B, C) {
	y.check()
	a := resolveMonad[E, A](y, ra)
	b := resolveMonad[E, B](y, rb)
	c := resolveMonad[E, C](y, rc)
	return a, b, c
}

// Seq yields a container of monads. The container is combined into one
// monad of the ordered payload sequence via [Traverse]; the combined monad
// then resolves like a single yielded value, so the leftmost failing element
// aborts the invocation and later elements are never canonicalized.
func Seq[E, T any](y Yield[E], ms []Monad[E, T]) []T {
	y.check()
	return resolveMonad[E, []T](y, Traverse(ms))
}

// SeqResults is [Seq] over a slice of canonical results.
func SeqResults[E, T any](y Yield[E], rs []Result[E, T]) []T {
	y.check()
	return resolveMonad[E, []T](y, TraverseResults(rs))
}
