// Package fixpoint provides a generic fixed-point number type.
//
// A [Fix] stores a rational value as a signed integer with an implicit binary
// point: the lowest P.Bits() bits hold the fraction. Precision is part of the
// type, so a Fix is exactly as large as its storage integer and needs no
// runtime bookkeeping.
//
//	type Q8 = fixpoint.Fix32[fixpoint.Frac8]
//
//	a := fixpoint.FromFloat[fixpoint.Frac8, int32, float32](1.5)
//	a.Raw()   // 384
//	a.Round() // 2
//
// Values of different precision meet only through explicit conversion
// ([Convert], [Closest], [ClosestHigher]) or the package level functions
// [Add], [Sub], [Mul], [Div] and [Cmp], which always convert the right operand
// to the precision of the left one. The result keeps the left precision, so
// mixing precisions may silently drop bits. That is intended.
//
// Arithmetic wraps around like the storage integer does. Nothing in this
// package returns errors or checks for overflow. Dividing by zero panics the
// way integer division does.
package fixpoint
