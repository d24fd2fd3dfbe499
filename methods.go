// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mdo

import "sort"

// DoFunc is the uniform shape of a yield-accepting method body.
type DoFunc[E, T any] func(Yield[E]) Result[E, T]

// Methods is a reusable adoption set: the method names a consuming type has
// opted into boundary wrapping. Declarations are additive and idempotent —
// declaring a name twice, or merging sets from two ancestors that share a
// name, changes nothing observable.
type Methods struct {
	names map[string]struct{}
}

// ForMethods builds an adoption set from method names.
func ForMethods(names ...string) Methods {
	m := Methods{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		m.names[n] = struct{}{}
	}
	return m
}

// And returns a set additionally declaring names. The receiver is unchanged.
func (m Methods) And(names ...string) Methods {
	merged := make(map[string]struct{}, len(m.names)+len(names))
	for n := range m.names {
		merged[n] = struct{}{}
	}
	for _, n := range names {
		merged[n] = struct{}{}
	}
	return Methods{names: merged}
}

// Merge combines two adoption sets, e.g. declarations inherited from two
// ancestors.
func (m Methods) Merge(other Methods) Methods {
	merged := make(map[string]struct{}, len(m.names)+len(other.names))
	for n := range m.names {
		merged[n] = struct{}{}
	}
	for n := range other.names {
		merged[n] = struct{}{}
	}
	return Methods{names: merged}
}

// Has reports whether name is declared.
func (m Methods) Has(name string) bool {
	_, ok := m.names[name]
	return ok
}

// Names returns the declared names in sorted order.
func (m Methods) Names() []string {
	out := make([]string, 0, len(m.names))
	for n := range m.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// ApplyMethods wraps every body in set whose name the adoption set declares.
// Bodies for undeclared names are left out of the returned map. Applying the
// same set twice over already-wrapped bodies is behavior-preserving: the
// inner boundary resolves first and the outer body returns its result
// verbatim.
func ApplyMethods[E, T any](m Methods, set map[string]DoFunc[E, T]) map[string]func() Result[E, T] {
	wrapped := make(map[string]func() Result[E, T], len(set))
	for name, fn := range set {
		if !m.Has(name) {
			continue
		}
		wrapped[name] = Wrap[E, T](fn)
	}
	return wrapped
}
