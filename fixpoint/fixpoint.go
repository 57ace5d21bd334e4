package fixpoint

import (
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Fix is a fixed-point number with P.Bits() fractional bits stored in the
// signed integer S. F is the floating point type used by [Fix.Float] and the
// float setters.
//
// The represented value is always Raw() / 2^FracBits(). The zero value is 0.
type Fix[P Frac, S constraints.Signed, F constraints.Float] struct {
	val S
}

// Fix32 is a Fix backed by int32 that converts through float32.
type Fix32[P Frac] = Fix[P, int32, float32]

// Fix64 is a Fix backed by int64 that converts through float64.
type Fix64[P Frac] = Fix[P, int64, float64]

// Value is implemented by every Fix with storage S regardless of precision.
type Value[S constraints.Signed] interface {
	Raw() S
	FracBits() uint
}

// FromInt returns n scaled to precision P. Values that don't fit S wrap.
func FromInt[P Frac, S constraints.Signed, F constraints.Float, I constraints.Integer](n I) Fix[P, S, F] {
	return Fix[P, S, F]{val: S(n) << fracBits[P, S]()}
}

// FromFloat returns f scaled to precision P, truncated toward zero. The
// product is computed in the float type of f.
func FromFloat[P Frac, S constraints.Signed, F constraints.Float, G constraints.Float](f G) Fix[P, S, F] {
	return Fix[P, S, F]{val: truncFloat[S](f, fracBits[P, S]())}
}

// FromBits returns a Fix whose raw representation is raw. No scaling takes
// place: FromBits[Frac8](384) is 1.5.
func FromBits[P Frac, S constraints.Signed, F constraints.Float](raw S) Fix[P, S, F] {
	return Fix[P, S, F]{val: raw}
}

// FromRaw interprets raw as a value with srcBits fractional bits and rescales
// it to precision P, truncating if srcBits is larger.
func FromRaw[P Frac, S constraints.Signed, F constraints.Float](raw S, srcBits uint) Fix[P, S, F] {
	return Fix[P, S, F]{val: convertBits(raw, srcBits, fracBits[P, S]())}
}

// Convert changes the precision of src to P. Extra fractional bits are
// dropped (rounding toward negative infinity), missing ones are zero.
func Convert[P, Q Frac, S constraints.Signed, F constraints.Float](src Fix[Q, S, F]) Fix[P, S, F] {
	return Fix[P, S, F]{val: convertBits(src.val, src.FracBits(), fracBits[P, S]())}
}

// Closest changes the precision of src to P, rounding to the nearest value
// with ties up.
func Closest[P, Q Frac, S constraints.Signed, F constraints.Float](src Fix[Q, S, F]) Fix[P, S, F] {
	return Fix[P, S, F]{val: closestBits(src.val, src.FracBits(), fracBits[P, S]())}
}

// ClosestHigher changes the precision of src to P, rounding toward positive
// infinity.
func ClosestHigher[P, Q Frac, S constraints.Signed, F constraints.Float](src Fix[Q, S, F]) Fix[P, S, F] {
	return Fix[P, S, F]{val: closestHigherBits(src.val, src.FracBits(), fracBits[P, S]())}
}

// ClosestFloat returns f scaled to precision P as trunc(f*2^bits + 0.5).
func ClosestFloat[P Frac, S constraints.Signed, F constraints.Float, G constraints.Float](f G) Fix[P, S, F] {
	return Fix[P, S, F]{val: closestFloat[S](f, fracBits[P, S]())}
}

// ClosestHigherFloat returns f scaled to precision P as ceil(f*2^bits).
func ClosestHigherFloat[P Frac, S constraints.Signed, F constraints.Float, G constraints.Float](f G) Fix[P, S, F] {
	return Fix[P, S, F]{val: ceilFloat[S](f, fracBits[P, S]())}
}

func (x Fix[P, S, F]) FracBits() uint { return fracBits[P, S]() }

// FracMult is the raw value of 1.
func (x Fix[P, S, F]) FracMult() S { return S(1) << x.FracBits() }

// FracMask has all fraction bits set.
func (x Fix[P, S, F]) FracMask() S { return x.FracMult() - 1 }

// FracTopBit is the raw value of 0.5, or 0 if there are no fractional bits.
func (x Fix[P, S, F]) FracTopBit() S { return shiftUp(S(1), int(x.FracBits())-1) }

// Epsilon returns the smallest positive value of the type.
func (x Fix[P, S, F]) Epsilon() Fix[P, S, F] { return Fix[P, S, F]{val: 1} }

// Raw returns the scaled integer representation.
func (x Fix[P, S, F]) Raw() S { return x.val }

func (x Fix[P, S, F]) IsZero() bool { return x.val == 0 }

// Round returns x rounded to the nearest integer, ties up.
func (x Fix[P, S, F]) Round() S { return (x.val + x.FracTopBit()) >> x.FracBits() }

// Ceil returns the least integer not less than x.
func (x Fix[P, S, F]) Ceil() S { return (x.val + x.FracMask()) >> x.FracBits() }

// Floor returns the greatest integer not greater than x.
func (x Fix[P, S, F]) Floor() S { return x.val >> x.FracBits() }

// SnapRound sets x to x.Round() without changing its precision.
func (x *Fix[P, S, F]) SnapRound() { x.val = (x.val + x.FracTopBit()) &^ x.FracMask() }

// SnapCeil sets x to x.Ceil() without changing its precision.
func (x *Fix[P, S, F]) SnapCeil() { x.val = (x.val + x.FracMask()) &^ x.FracMask() }

// SnapFloor sets x to x.Floor() without changing its precision.
func (x *Fix[P, S, F]) SnapFloor() { x.val &^= x.FracMask() }

// Float converts x to F. The conversion is exact as long as F has enough
// mantissa bits for the raw value.
func (x Fix[P, S, F]) Float() F {
	return F(x.val) * (1 / floatMult[F](x.FracBits()))
}

func (x Fix[P, S, F]) String() string {
	var f F
	return strconv.FormatFloat(float64(x.Float()), 'g', -1, int(unsafe.Sizeof(f))*8)
}

// SetInt sets x to n. Values that don't fit S wrap.
func (x *Fix[P, S, F]) SetInt(n S) { x.val = n << x.FracBits() }

// SetBits sets the raw representation of x.
func (x *Fix[P, S, F]) SetBits(raw S) { x.val = raw }

// Set is SetTrunc.
func (x *Fix[P, S, F]) Set(src Value[S]) { x.SetTrunc(src) }

// SetTrunc sets x to src, dropping fractional bits x can't hold.
func (x *Fix[P, S, F]) SetTrunc(src Value[S]) {
	x.val = convertBits(src.Raw(), src.FracBits(), x.FracBits())
}

// SetClosest sets x to src rounded to the nearest value x can hold.
func (x *Fix[P, S, F]) SetClosest(src Value[S]) {
	x.val = closestBits(src.Raw(), src.FracBits(), x.FracBits())
}

// SetClosestHigher sets x to src rounded up to a value x can hold. If src is
// not more precise than x it behaves like SetTrunc.
func (x *Fix[P, S, F]) SetClosestHigher(src Value[S]) {
	x.val = closestHigherBits(src.Raw(), src.FracBits(), x.FracBits())
}

// SetFloat is SetTruncFloat.
func (x *Fix[P, S, F]) SetFloat(f F) { x.SetTruncFloat(f) }

// SetTruncFloat sets x to f truncated toward zero.
func (x *Fix[P, S, F]) SetTruncFloat(f F) { x.val = truncFloat[S](f, x.FracBits()) }

// SetClosestFloat sets x to trunc(f*2^bits + 0.5). Negative values don't
// round symmetrically.
func (x *Fix[P, S, F]) SetClosestFloat(f F) { x.val = closestFloat[S](f, x.FracBits()) }

// SetClosestHigherFloat sets x to ceil(f*2^bits).
func (x *Fix[P, S, F]) SetClosestHigherFloat(f F) { x.val = ceilFloat[S](f, x.FracBits()) }

// FracRaw returns the fraction bits of x. For negative values this is the
// distance to x.Floor(), not the signed fraction.
func (x Fix[P, S, F]) FracRaw() S { return x.val & x.FracMask() }

// FracRawBits returns FracRaw expressed with n bits, truncated when n is
// smaller than FracBits and zero extended otherwise.
func (x Fix[P, S, F]) FracRawBits(n uint) S {
	return shiftUp(x.FracRaw(), int(n)-int(x.FracBits()))
}

// Frac returns the fraction of x as a value in [0, 1).
func (x Fix[P, S, F]) Frac() Fix[P, S, F] { return Fix[P, S, F]{val: x.FracRaw()} }

func Round[P Frac, S constraints.Signed, F constraints.Float](x Fix[P, S, F]) S { return x.Round() }
func Ceil[P Frac, S constraints.Signed, F constraints.Float](x Fix[P, S, F]) S  { return x.Ceil() }
func Floor[P Frac, S constraints.Signed, F constraints.Float](x Fix[P, S, F]) S { return x.Floor() }
