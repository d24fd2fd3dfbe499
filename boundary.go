// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mdo

import "sync/atomic"

// boundary identifies one invocation's catch frame.
// Each [Do] call allocates its own boundary; pointer identity is what ties
// an abort signal to the frame that must catch it. A boundary is resolved
// exactly once, when its invocation returns (normally or by abort).
type boundary struct {
	done atomic.Uintptr
}

// resolve marks the boundary resolved.
// Panics on a second resolution; a boundary is one-shot.
func (b *boundary) resolve() {
	if b.done.Add(1) != 1 {
		panic("mdo: invocation boundary resolved twice")
	}
}

// resolved reports whether the invocation owning b has already returned.
func (b *boundary) resolved() bool {
	return b.done.Load() != 0
}

// haltSignal is the ephemeral abort: it carries exactly one failing monad's
// failure payload up the current call stack until the owning boundary
// catches it. It never crosses a goroutine and never outlives the invocation.
type haltSignal struct {
	b       *boundary
	failure any
}

// protocolViolation panics with a descriptive message for a nil yielded
// monad. Extracted as a noinline function so that the resolve path remains
// inlineable.
//
//go:noinline
func protocolViolation() {
	panic("mdo: yielded value does not satisfy the monad protocol (nil)")
}
