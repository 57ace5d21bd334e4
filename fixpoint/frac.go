package fixpoint

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/marctiln/DtBlkFx/debug"
)

//go:generate go run mkfrac.go 0 63

// Frac selects the number of fractional bits of a [Fix]. Implementations
// should be zero-size types. Frac0 to Frac63 are predefined; other
// precisions only need a type with a Bits method.
type Frac interface {
	Bits() uint
}

func fracBits[P Frac, S constraints.Signed]() uint {
	var p P
	var s S
	n := p.Bits()
	debug.AssertLess(n, uint(unsafe.Sizeof(s))*8, "fixpoint: fractional bits exceed storage")
	return n
}

// shiftUp shifts v left by shift, or right by -shift when shift is negative.
// Right shifts are arithmetic.
func shiftUp[S constraints.Signed](v S, shift int) S {
	if shift < 0 {
		return v >> uint(-shift)
	}
	return v << uint(shift)
}

func convertBits[S constraints.Signed](v S, from, to uint) S {
	return shiftUp(v, int(to)-int(from))
}

// closestBits adds half a unit of the target precision before narrowing.
func closestBits[S constraints.Signed](v S, from, to uint) S {
	return shiftUp(v+shiftUp(S(1), int(from)-int(to)-1), int(to)-int(from))
}

func closestHigherBits[S constraints.Signed](v S, from, to uint) S {
	if from <= to {
		return convertBits(v, from, to)
	}
	return shiftUp(v+shiftUp(S(1), int(from)-int(to))-1, int(to)-int(from))
}

// floatMult is 2^bits in the float type G. It is computed unsigned so that
// Frac63 doesn't turn negative.
func floatMult[G constraints.Float](bits uint) G {
	return G(uint64(1) << bits)
}

func truncFloat[S constraints.Signed, G constraints.Float](f G, bits uint) S {
	return S(f * floatMult[G](bits))
}

// closestFloat biases by +0.5 and truncates toward zero. Once the biased
// value is negative and not whole, the result lands one unit above
// round-half-up.
func closestFloat[S constraints.Signed, G constraints.Float](f G, bits uint) S {
	return S(f*floatMult[G](bits) + 0.5)
}

func ceilFloat[S constraints.Signed, G constraints.Float](f G, bits uint) S {
	return S(math.Ceil(float64(f * floatMult[G](bits))))
}
