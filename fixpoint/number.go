package fixpoint

import "golang.org/x/exp/constraints"

// Number is any built-in integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// isInteger reports whether N drops the fraction of 1/2.
func isInteger[N Number]() bool { return N(1)/2 == 0 }

// From converts a built-in number to precision P. Integers are scaled like
// [FromInt], floats are truncated like [FromFloat].
func From[P Frac, S constraints.Signed, F constraints.Float, N Number](n N) Fix[P, S, F] {
	bits := fracBits[P, S]()
	if isInteger[N]() {
		return Fix[P, S, F]{val: S(n) << bits}
	}
	return Fix[P, S, F]{val: S(n * N(uint64(1)<<bits))}
}

// AddNum returns x+n, with n converted by [From].
func AddNum[P Frac, S constraints.Signed, F constraints.Float, N Number](x Fix[P, S, F], n N) Fix[P, S, F] {
	return x.Add(From[P, S, F](n))
}

// SubNum returns x-n, with n converted by [From].
func SubNum[P Frac, S constraints.Signed, F constraints.Float, N Number](x Fix[P, S, F], n N) Fix[P, S, F] {
	return x.Sub(From[P, S, F](n))
}

// MulNum returns x*n. An integer n multiplies the raw value directly. A float
// n is applied to the raw value in the float type of n and the result is
// truncated back to S.
func MulNum[P Frac, S constraints.Signed, F constraints.Float, N Number](x Fix[P, S, F], n N) Fix[P, S, F] {
	if isInteger[N]() {
		return Fix[P, S, F]{val: x.val * S(n)}
	}
	return Fix[P, S, F]{val: S(N(x.val) * n)}
}

// DivNum returns x/n, computed like [MulNum]. An integer n of zero panics.
func DivNum[P Frac, S constraints.Signed, F constraints.Float, N Number](x Fix[P, S, F], n N) Fix[P, S, F] {
	if isInteger[N]() {
		return Fix[P, S, F]{val: x.val / S(n)}
	}
	return Fix[P, S, F]{val: S(N(x.val) / n)}
}

// CmpNum compares x with n converted by [From].
func CmpNum[P Frac, S constraints.Signed, F constraints.Float, N Number](x Fix[P, S, F], n N) int {
	return x.Cmp(From[P, S, F](n))
}

// The Num* functions take a built-in number as left operand. It is converted
// to the type of x with [From] and the operation keeps the operand order.

func NumAdd[P Frac, S constraints.Signed, F constraints.Float, N Number](n N, x Fix[P, S, F]) Fix[P, S, F] {
	return From[P, S, F](n).Add(x)
}

func NumSub[P Frac, S constraints.Signed, F constraints.Float, N Number](n N, x Fix[P, S, F]) Fix[P, S, F] {
	return From[P, S, F](n).Sub(x)
}

func NumMul[P Frac, S constraints.Signed, F constraints.Float, N Number](n N, x Fix[P, S, F]) Fix[P, S, F] {
	return From[P, S, F](n).Mul(x)
}

func NumDiv[P Frac, S constraints.Signed, F constraints.Float, N Number](n N, x Fix[P, S, F]) Fix[P, S, F] {
	return From[P, S, F](n).Div(x)
}

func NumCmp[P Frac, S constraints.Signed, F constraints.Float, N Number](n N, x Fix[P, S, F]) int {
	return From[P, S, F](n).Cmp(x)
}

func NumEqual[P Frac, S constraints.Signed, F constraints.Float, N Number](n N, x Fix[P, S, F]) bool {
	return From[P, S, F](n).Equal(x)
}

func NumLess[P Frac, S constraints.Signed, F constraints.Float, N Number](n N, x Fix[P, S, F]) bool {
	return From[P, S, F](n).Less(x)
}
