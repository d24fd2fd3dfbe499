// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mdo

// Traverse combines a container of monads into one result of an ordered
// payload sequence. The combined result is a success iff every element is a
// success, and payload order equals container order. On the leftmost failing
// element the traversal stops: later elements are never canonicalized.
func Traverse[E, T any](ms []Monad[E, T]) Result[E, []T] {
	out := make([]T, 0, len(ms))
	for _, m := range ms {
		if m == nil {
			protocolViolation()
		}
		r := m.ToResult()
		if !r.IsSuccess() {
			e, _ := r.GetFailure()
			return Failure[E, []T](e)
		}
		out = append(out, r.UnwrapOrFail())
	}
	return Success[E](out)
}

// TraverseResults is Traverse over a slice of canonical results.
// It avoids building an interface slice when every element is already a
// [Result].
func TraverseResults[E, T any](rs []Result[E, T]) Result[E, []T] {
	out := make([]T, 0, len(rs))
	for _, r := range rs {
		if !r.IsSuccess() {
			e, _ := r.GetFailure()
			return Failure[E, []T](e)
		}
		out = append(out, r.UnwrapOrFail())
	}
	return Success[E](out)
}
