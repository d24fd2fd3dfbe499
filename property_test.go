// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mdo_test

import (
	"math/rand/v2"
	"strconv"
	"testing"

	"code.hybscloud.com/mdo"
)

const propertyN = 1000

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// randResult returns a random success or failure with the given failure rate
// in percent.
func randResult(rng *rand.Rand, failurePct int) mdo.Result[string, int] {
	if rng.IntN(100) < failurePct {
		return mdo.Failure[string, int]("failure")
	}
	return mdo.Success[string](randInt(rng))
}

// --- Group 1: Result Monad Laws ---

// TestPropertyResultLeftIdentity: FlatMapResult(Success(a), f) ≡ f(a)
func TestPropertyResultLeftIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randInt(rng)
		f := func(x int) mdo.Result[string, int] { return mdo.Success[string](x * 3) }
		left := mdo.FlatMapResult(mdo.Success[string](a), f)
		right := f(a)
		if left != right {
			t.Fatalf("left identity: %v != %v (a=%d)", left, right, a)
		}
	}
}

// TestPropertyResultRightIdentity: FlatMapResult(m, Success) ≡ m
func TestPropertyResultRightIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		m := randResult(rng, 30)
		left := mdo.FlatMapResult(m, mdo.Success[string, int])
		if left != m {
			t.Fatalf("right identity: %v != %v", left, m)
		}
	}
}

// TestPropertyResultAssociativity:
// FlatMap(FlatMap(m, f), g) ≡ FlatMap(m, func(x) FlatMap(f(x), g))
func TestPropertyResultAssociativity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		m := randResult(rng, 30)
		f := func(x int) mdo.Result[string, int] { return mdo.Success[string](x + 3) }
		g := func(x int) mdo.Result[string, int] {
			if x%7 == 0 {
				return mdo.Failure[string, int]("seven")
			}
			return mdo.Success[string](x * 2)
		}
		left := mdo.FlatMapResult(mdo.FlatMapResult(m, f), g)
		right := mdo.FlatMapResult(m, func(x int) mdo.Result[string, int] {
			return mdo.FlatMapResult(f(x), g)
		})
		if left != right {
			t.Fatalf("associativity: %v != %v (m=%v)", left, right, m)
		}
	}
}

// --- Group 2: Short-Circuit Properties ---

// A Do body yielding each element in order agrees with FlatMapResult
// chaining: same success sum, same first failure.
func TestPropertyDoEquivalentToFlatMapChain(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		n := rng.IntN(8)
		rs := make([]mdo.Result[string, int], n)
		for i := range rs {
			rs[i] = randResult(rng, 25)
		}

		viaDo := mdo.Do(func(y mdo.Yield[string]) mdo.Result[string, int] {
			total := 0
			for _, r := range rs {
				total += mdo.One(y, r)
			}
			return mdo.Success[string](total)
		})

		viaChain := mdo.Success[string](0)
		for _, r := range rs {
			rr := r
			viaChain = mdo.FlatMapResult(viaChain, func(acc int) mdo.Result[string, int] {
				return mdo.MapResult(rr, func(x int) int { return acc + x })
			})
		}

		if viaDo != viaChain {
			t.Fatalf("do/chain mismatch: %v != %v (inputs=%v)", viaDo, viaChain, rs)
		}
	}
}

// Traverse agrees with resolving positionally via All: same payload order on
// full success, same leftmost failure otherwise.
func TestPropertyTraverseAgreesWithAll(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		n := rng.IntN(8)
		rs := make([]mdo.Result[string, int], n)
		for i := range rs {
			rs[i] = randResult(rng, 25)
			// Position-tagged failures make a leftmost-failure mix-up visible.
			if rs[i].IsFailure() {
				rs[i] = mdo.Failure[string, int]("failure-" + strconv.Itoa(i))
			}
		}

		viaSeq := mdo.Do(func(y mdo.Yield[string]) mdo.Result[string, []int] {
			return mdo.Success[string](mdo.SeqResults(y, rs))
		})
		viaAll := mdo.Do(func(y mdo.Yield[string]) mdo.Result[string, []int] {
			return mdo.Success[string](mdo.All(y, rs...))
		})

		if viaSeq.IsSuccess() != viaAll.IsSuccess() {
			t.Fatalf("state mismatch: %v vs %v (inputs=%v)", viaSeq, viaAll, rs)
		}
		if viaSeq.IsSuccess() {
			a := viaSeq.UnwrapOrFail()
			b := viaAll.UnwrapOrFail()
			if len(a) != len(b) {
				t.Fatalf("length mismatch: %v vs %v", a, b)
			}
			for i := range a {
				if a[i] != b[i] {
					t.Fatalf("payload %d mismatch: %v vs %v", i, a, b)
				}
			}
		} else {
			ea, _ := viaSeq.GetFailure()
			eb, _ := viaAll.GetFailure()
			if ea != eb {
				t.Fatalf("failure mismatch: %q vs %q", ea, eb)
			}
		}
	}
}

// A halted invocation never leaks its abort: Do always returns.
func TestPropertyDoAlwaysReturns(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		r := randResult(rng, 50)
		got := mdo.Do(func(y mdo.Yield[string]) mdo.Result[string, int] {
			return mdo.Success[string](mdo.One(y, r))
		})
		if got != r {
			t.Fatalf("identity yield: %v != %v", got, r)
		}
	}
}
