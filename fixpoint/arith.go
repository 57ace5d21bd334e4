package fixpoint

import (
	"cmp"

	num "github.com/shabbyrobe/go-num"
	"golang.org/x/exp/constraints"
)

func (x Fix[P, S, F]) Neg() Fix[P, S, F] { return Fix[P, S, F]{val: -x.val} }

func (x Fix[P, S, F]) Add(y Fix[P, S, F]) Fix[P, S, F] { return Fix[P, S, F]{val: x.val + y.val} }
func (x Fix[P, S, F]) Sub(y Fix[P, S, F]) Fix[P, S, F] { return Fix[P, S, F]{val: x.val - y.val} }

// AddRaw adds n to the raw representation of x. n is not scaled, so
// x.AddRaw(1) adds x.Epsilon().
func (x Fix[P, S, F]) AddRaw(n S) Fix[P, S, F] { return Fix[P, S, F]{val: x.val + n} }

// SubRaw subtracts n from the raw representation of x without scaling it.
func (x Fix[P, S, F]) SubRaw(n S) Fix[P, S, F] { return Fix[P, S, F]{val: x.val - n} }

// Lsh multiplies x by 2^s.
func (x Fix[P, S, F]) Lsh(s uint) Fix[P, S, F] { return Fix[P, S, F]{val: x.val << s} }

// Rsh divides x by 2^s, rounding toward negative infinity.
func (x Fix[P, S, F]) Rsh(s uint) Fix[P, S, F] { return Fix[P, S, F]{val: x.val >> s} }

// Mul returns x*y truncated, see [MulTrunc].
func (x Fix[P, S, F]) Mul(y Fix[P, S, F]) Fix[P, S, F] { return MulTrunc(x, y) }

// MulClosest returns x*y rounded to nearest, see [MulClosest].
func (x Fix[P, S, F]) MulClosest(y Fix[P, S, F]) Fix[P, S, F] { return MulClosest(x, y) }

// Div returns x/y truncated, see [DivTrunc].
func (x Fix[P, S, F]) Div(y Fix[P, S, F]) Fix[P, S, F] { return DivTrunc(x, y) }

// DivClosest returns x/y rounded to nearest, see [DivClosest].
func (x Fix[P, S, F]) DivClosest(y Fix[P, S, F]) Fix[P, S, F] { return DivClosest(x, y) }

// Inc adds one to x and returns the new value.
func (x *Fix[P, S, F]) Inc() Fix[P, S, F] {
	x.val += x.FracMult()
	return *x
}

// PostInc adds one to x and returns the previous value.
func (x *Fix[P, S, F]) PostInc() Fix[P, S, F] {
	old := *x
	x.val += x.FracMult()
	return old
}

// Dec subtracts one from x and returns the new value.
func (x *Fix[P, S, F]) Dec() Fix[P, S, F] {
	x.val -= x.FracMult()
	return *x
}

// PostDec subtracts one from x and returns the previous value.
func (x *Fix[P, S, F]) PostDec() Fix[P, S, F] {
	old := *x
	x.val -= x.FracMult()
	return old
}

// Cmp returns -1, 0 or +1 depending on whether x is less than, equal to or
// greater than y.
func (x Fix[P, S, F]) Cmp(y Fix[P, S, F]) int { return cmp.Compare(x.val, y.val) }

func (x Fix[P, S, F]) Equal(y Fix[P, S, F]) bool     { return x.val == y.val }
func (x Fix[P, S, F]) Less(y Fix[P, S, F]) bool      { return x.val < y.val }
func (x Fix[P, S, F]) LessEq(y Fix[P, S, F]) bool    { return x.val <= y.val }
func (x Fix[P, S, F]) Greater(y Fix[P, S, F]) bool   { return x.val > y.val }
func (x Fix[P, S, F]) GreaterEq(y Fix[P, S, F]) bool { return x.val >= y.val }

// Add returns x+y at the precision of x. y is converted first, truncating
// when it is more precise than x.
func Add[P, Q Frac, S constraints.Signed, F constraints.Float](x Fix[P, S, F], y Fix[Q, S, F]) Fix[P, S, F] {
	return Fix[P, S, F]{val: x.val + Convert[P](y).val}
}

// Sub returns x-y at the precision of x, converting y like [Add].
func Sub[P, Q Frac, S constraints.Signed, F constraints.Float](x Fix[P, S, F], y Fix[Q, S, F]) Fix[P, S, F] {
	return Fix[P, S, F]{val: x.val - Convert[P](y).val}
}

// Cmp compares x with y converted to the precision of x. The conversion
// truncates, so a more precise y may compare equal to x.
func Cmp[P, Q Frac, S constraints.Signed, F constraints.Float](x Fix[P, S, F], y Fix[Q, S, F]) int {
	return cmp.Compare(x.val, Convert[P](y).val)
}

// Equal reports whether Cmp(x, y) == 0.
func Equal[P, Q Frac, S constraints.Signed, F constraints.Float](x Fix[P, S, F], y Fix[Q, S, F]) bool {
	return x.val == Convert[P](y).val
}

// Less reports whether Cmp(x, y) < 0.
func Less[P, Q Frac, S constraints.Signed, F constraints.Float](x Fix[P, S, F], y Fix[Q, S, F]) bool {
	return x.val < Convert[P](y).val
}

// Mul is MulTrunc.
func Mul[P, Q Frac, S constraints.Signed, F constraints.Float](x Fix[P, S, F], y Fix[Q, S, F]) Fix[P, S, F] {
	return MulTrunc(x, y)
}

// Div is DivTrunc.
func Div[P, Q Frac, S constraints.Signed, F constraints.Float](x Fix[P, S, F], y Fix[Q, S, F]) Fix[P, S, F] {
	return DivTrunc(x, y)
}

// The Mul and Div variants below go through an int64 intermediate. The
// product needs room for the bits of both operands, the quotient for the
// bits of x plus FracBits of y (one more when rounding). Storage wider than
// 32 bits easily exceeds that, use the 128 variants there.

// MulTrunc returns x*y at the precision of x, rounded toward negative
// infinity.
func MulTrunc[P, Q Frac, S constraints.Signed, F constraints.Float](x Fix[P, S, F], y Fix[Q, S, F]) Fix[P, S, F] {
	return Fix[P, S, F]{val: S((int64(x.val) * int64(y.val)) >> y.FracBits())}
}

// MulClosest returns x*y at the precision of x, rounded to nearest.
func MulClosest[P, Q Frac, S constraints.Signed, F constraints.Float](x Fix[P, S, F], y Fix[Q, S, F]) Fix[P, S, F] {
	return Fix[P, S, F]{val: S((int64(x.val)*int64(y.val) + int64(y.FracTopBit())) >> y.FracBits())}
}

// DivTrunc returns x/y at the precision of x, truncated toward zero. It
// panics if y is zero.
func DivTrunc[P, Q Frac, S constraints.Signed, F constraints.Float](x Fix[P, S, F], y Fix[Q, S, F]) Fix[P, S, F] {
	return Fix[P, S, F]{val: S((int64(x.val) << y.FracBits()) / int64(y.val))}
}

// DivClosest returns x/y at the precision of x. The result is rounded to
// nearest when x and y are positive, otherwise the final division still
// truncates toward zero. It panics if y is zero.
func DivClosest[P, Q Frac, S constraints.Signed, F constraints.Float](x Fix[P, S, F], y Fix[Q, S, F]) Fix[P, S, F] {
	d := int64(y.val)
	return Fix[P, S, F]{val: S(((int64(x.val) << (y.FracBits() + 1)) + d) / int64(y.val<<1))}
}

func wide[S constraints.Signed](v S) num.I128 { return num.I128From64(int64(v)) }

func lsh128(v num.I128, n uint) num.I128 { return v.AsU128().Lsh(n).AsI128() }

// rsh128 is an arithmetic right shift, rounding toward negative infinity
// like >> on the builtin types.
func rsh128(v num.I128, n uint) num.I128 {
	if n == 0 {
		return v
	}
	q, r := v.QuoRem(lsh128(num.I128From64(1), n))
	if r.Sign() < 0 {
		q = q.Dec()
	}
	return q
}

// Mul128Trunc is MulTrunc with a 128 bit intermediate.
func Mul128Trunc[P, Q Frac, S constraints.Signed, F constraints.Float](x Fix[P, S, F], y Fix[Q, S, F]) Fix[P, S, F] {
	p := wide(x.val).Mul(wide(y.val))
	return Fix[P, S, F]{val: S(rsh128(p, y.FracBits()).AsInt64())}
}

// Mul128Closest is MulClosest with a 128 bit intermediate.
func Mul128Closest[P, Q Frac, S constraints.Signed, F constraints.Float](x Fix[P, S, F], y Fix[Q, S, F]) Fix[P, S, F] {
	p := wide(x.val).Mul(wide(y.val)).Add(wide(y.FracTopBit()))
	return Fix[P, S, F]{val: S(rsh128(p, y.FracBits()).AsInt64())}
}

// Div128Trunc is DivTrunc with a 128 bit intermediate.
func Div128Trunc[P, Q Frac, S constraints.Signed, F constraints.Float](x Fix[P, S, F], y Fix[Q, S, F]) Fix[P, S, F] {
	q := lsh128(wide(x.val), y.FracBits()).Quo(wide(y.val))
	return Fix[P, S, F]{val: S(q.AsInt64())}
}

// Div128Closest is DivClosest with a 128 bit intermediate.
func Div128Closest[P, Q Frac, S constraints.Signed, F constraints.Float](x Fix[P, S, F], y Fix[Q, S, F]) Fix[P, S, F] {
	q := lsh128(wide(x.val), y.FracBits()+1).Add(wide(y.val)).Quo(wide(y.val << 1))
	return Fix[P, S, F]{val: S(q.AsInt64())}
}
