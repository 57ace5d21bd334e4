package fixpoint

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/image/math/fixed"
)

// Conversions to and from the fixed types used by golang.org/x/image. Extra
// fractional bits are truncated, values that don't fit wrap.

func (x Fix[P, S, F]) ToInt26_6() fixed.Int26_6 {
	return fixed.Int26_6(shiftUp(int64(x.val), 6-int(x.FracBits())))
}

func (x Fix[P, S, F]) ToInt52_12() fixed.Int52_12 {
	return fixed.Int52_12(shiftUp(int64(x.val), 12-int(x.FracBits())))
}

func FromInt26_6[P Frac, S constraints.Signed, F constraints.Float](v fixed.Int26_6) Fix[P, S, F] {
	return Fix[P, S, F]{val: S(convertBits(int64(v), 6, fracBits[P, S]()))}
}

func FromInt52_12[P Frac, S constraints.Signed, F constraints.Float](v fixed.Int52_12) Fix[P, S, F] {
	return Fix[P, S, F]{val: S(convertBits(int64(v), 12, fracBits[P, S]()))}
}
