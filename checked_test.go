// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package koenv_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/koenv"
)

func TestCheckedAdd(t *testing.T) {
	got := koenv.CheckedAdd[uint16](5, 586)
	if got != koenv.Some[uint16](591) {
		t.Fatalf("CheckedAdd(5, 586) = %v, want Some(591)", got)
	}
}

func TestCheckedAddOverflow(t *testing.T) {
	got := koenv.CheckedAdd[uint16](math.MaxUint16, 1)
	if got.IsSome() {
		t.Fatalf("CheckedAdd(MaxUint16, 1) = %v, want None", got)
	}
}

func TestCheckedAddAtBoundary(t *testing.T) {
	// The largest in-range sum is representable; one past it is not.
	got := koenv.CheckedAdd[uint16](math.MaxUint16-586, 586)
	if got != koenv.Some[uint16](math.MaxUint16) {
		t.Fatalf("CheckedAdd(MaxUint16-586, 586) = %v, want Some(MaxUint16)", got)
	}

	over := koenv.CheckedAdd[uint16](math.MaxUint16-585, 586)
	if over.IsSome() {
		t.Fatalf("CheckedAdd(MaxUint16-585, 586) = %v, want None", over)
	}
}

func TestCheckedAddUint64(t *testing.T) {
	if got := koenv.CheckedAdd[uint64](math.MaxUint64, 1); got.IsSome() {
		t.Fatalf("CheckedAdd(MaxUint64, 1) = %v, want None", got)
	}
	if got := koenv.CheckedAdd[uint64](math.MaxUint64, 0); got != koenv.Some[uint64](math.MaxUint64) {
		t.Fatalf("CheckedAdd(MaxUint64, 0) = %v, want Some(MaxUint64)", got)
	}
}

func TestSafeAdd(t *testing.T) {
	got := koenv.SafeAdd(koenv.Some[uint16](5), 586)
	if got != koenv.Some[uint16](591) {
		t.Fatalf("SafeAdd(Some(5), 586) = %v, want Some(591)", got)
	}
}

func TestSafeAddOverflowShortCircuit(t *testing.T) {
	got := koenv.SafeAdd(koenv.Some[uint16](math.MaxUint16), 1)
	if got.IsSome() {
		t.Fatalf("SafeAdd(Some(MaxUint16), 1) = %v, want None", got)
	}
}

func TestSafeAddAbsencePropagation(t *testing.T) {
	for _, delta := range []uint16{0, 1, 586, math.MaxUint16} {
		got := koenv.SafeAdd(koenv.None[uint16](), delta)
		if got.IsSome() {
			t.Fatalf("SafeAdd(None, %d) = %v, want None", delta, got)
		}
	}
}

func TestAt(t *testing.T) {
	s := []int{10, 20, 30}
	if got := koenv.At(s, 1); got != koenv.Some(20) {
		t.Fatalf("At(s, 1) = %v, want Some(20)", got)
	}
	if got := koenv.At(s, 3); got.IsSome() {
		t.Fatalf("At(s, 3) = %v, want None", got)
	}
	if got := koenv.At(s, -1); got.IsSome() {
		t.Fatalf("At(s, -1) = %v, want None", got)
	}
	if got := koenv.At([]int(nil), 0); got.IsSome() {
		t.Fatalf("At(nil, 0) = %v, want None", got)
	}
}

// TestSampleLookupNeverAbsent: index 4 of a 10-element sample is valid by
// construction, so absence in the full pipeline can only come from overflow.
func TestSampleLookupNeverAbsent(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range 1000 {
		sample := make([]uint16, 10)
		for i := range sample {
			sample[i] = uint16(rng.UintN(math.MaxUint16 + 1))
		}

		picked := koenv.At(sample, 4)
		if picked.IsNone() {
			t.Fatal("At(sample, 4) should never be None for a 10-element sample")
		}

		got := koenv.SafeAdd(picked, 586)
		overflows := sample[4] > math.MaxUint16-586
		if got.IsNone() != overflows {
			t.Fatalf("SafeAdd(Some(%d), 586): IsNone = %v, overflow expected = %v",
				sample[4], got.IsNone(), overflows)
		}
		if v, ok := got.Get(); ok && v != sample[4]+586 {
			t.Fatalf("SafeAdd sum = %d, want %d", v, sample[4]+586)
		}
	}
}
