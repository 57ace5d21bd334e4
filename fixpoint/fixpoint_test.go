package fixpoint_test

import (
	"testing"
	"unsafe"

	"github.com/marctiln/DtBlkFx/fixpoint"
)

type (
	q4  = fixpoint.Fix[fixpoint.Frac4, int32, float32]
	q8  = fixpoint.Fix[fixpoint.Frac8, int32, float32]
	q16 = fixpoint.Fix[fixpoint.Frac16, int32, float32]
)

func i8(n int32) q8     { return fixpoint.FromInt[fixpoint.Frac8, int32, float32](n) }
func f8(f float32) q8   { return fixpoint.FromFloat[fixpoint.Frac8, int32, float32](f) }
func b8(raw int32) q8   { return fixpoint.FromBits[fixpoint.Frac8, int32, float32](raw) }
func b4(raw int32) q4   { return fixpoint.FromBits[fixpoint.Frac4, int32, float32](raw) }
func b16(raw int32) q16 { return fixpoint.FromBits[fixpoint.Frac16, int32, float32](raw) }

func TestOneAndAHalf(t *testing.T) {
	a := f8(1.5)
	if a.Raw() != 384 {
		t.Fatalf("raw: expected 384, got %d", a.Raw())
	}
	if a.Round() != 2 || a.Floor() != 1 || a.Ceil() != 2 {
		t.Fatalf("round/floor/ceil: expected 2/1/2, got %d/%d/%d", a.Round(), a.Floor(), a.Ceil())
	}
	if fixpoint.Round(a) != 2 || fixpoint.Floor(a) != 1 || fixpoint.Ceil(a) != 2 {
		t.Fatal("free rounding functions disagree with methods")
	}
}

func TestConstants(t *testing.T) {
	var x q8
	if x.FracBits() != 8 || x.FracMult() != 256 || x.FracMask() != 255 || x.FracTopBit() != 128 {
		t.Fatalf("bad constants %d %d %d %d", x.FracBits(), x.FracMult(), x.FracMask(), x.FracTopBit())
	}
	if x.Epsilon().Raw() != 1 {
		t.Fatalf("epsilon: expected raw 1, got %d", x.Epsilon().Raw())
	}

	var whole fixpoint.Fix[fixpoint.Frac0, int32, float32]
	if whole.FracMult() != 1 || whole.FracMask() != 0 || whole.FracTopBit() != 0 {
		t.Fatal("bad constants without fraction bits")
	}
	whole.SetBits(5)
	if whole.Round() != 5 || whole.Ceil() != 5 || whole.Floor() != 5 {
		t.Fatal("rounding without fraction bits must be the identity")
	}
}

func TestSize(t *testing.T) {
	if s := unsafe.Sizeof(fixpoint.Fix32[fixpoint.Frac8]{}); s != 4 {
		t.Errorf("Fix32: expected 4 bytes, got %d", s)
	}
	if s := unsafe.Sizeof(fixpoint.Fix64[fixpoint.Frac32]{}); s != 8 {
		t.Errorf("Fix64: expected 8 bytes, got %d", s)
	}
	if s := unsafe.Sizeof(fixpoint.Fix[fixpoint.Frac4, int16, float32]{}); s != 2 {
		t.Errorf("int16 storage: expected 2 bytes, got %d", s)
	}
}

func TestIntegers(t *testing.T) {
	ints := []int32{0, 1, -1, 2, -2, 7, -7, 100, -100, 8388607, -8388608}
	for n := int32(-1000); n <= 1000; n += 37 {
		ints = append(ints, n)
	}
	for _, n := range ints {
		x := i8(n)
		if x.Floor() != n || x.Round() != n || x.Ceil() != n {
			t.Fatalf("%d: got floor %d, round %d, ceil %d", n, x.Floor(), x.Round(), x.Ceil())
		}
	}
}

func TestRounding(t *testing.T) {
	tests := []struct {
		in                 int32
		round, ceil, floor int32
	}{
		{0, 0, 0, 0}, {256, 1, 1, 1}, {384, 2, 2, 1}, {128, 1, 1, 0},
		{127, 0, 1, 0}, {1, 0, 1, 0}, {-1, 0, 0, -1}, {-128, 0, 0, -1},
		{-129, -1, 0, -1}, {-384, -1, -1, -2}, {-256, -1, -1, -1},
	}

	for i, test := range tests {
		x := b8(test.in)
		if x.Round() != test.round || x.Ceil() != test.ceil || x.Floor() != test.floor {
			str := "test #%d: in %d expected %d/%d/%d, but got %d/%d/%d"
			t.Fatalf(str, i, test.in, test.round, test.ceil, test.floor, x.Round(), x.Ceil(), x.Floor())
		}
	}
}

func TestRoundingBounds(t *testing.T) {
	for raw := int32(-1024); raw <= 1024; raw++ {
		x := b8(raw)
		floor, ceil := x.Floor(), x.Ceil()
		if floor<<8 > raw || ceil<<8 < raw {
			t.Fatalf("raw %d outside [%d, %d]", raw, floor, ceil)
		}
		if ceil-floor > 1 || (raw&0xFF == 0) != (ceil == floor) {
			t.Fatalf("raw %d: floor %d and ceil %d too far apart", raw, floor, ceil)
		}
		want := floor
		if ceil<<8-raw <= raw-floor<<8 {
			want = ceil
		}
		if x.Round() != want {
			t.Fatalf("raw %d: expected round %d, got %d", raw, want, x.Round())
		}
	}
}

func TestSnap(t *testing.T) {
	tests := []struct {
		in                 int32
		round, ceil, floor int32
	}{
		{0x1A5, 0x200, 0x200, 0x100},
		{0x180, 0x200, 0x200, 0x100},
		{0x100, 0x100, 0x100, 0x100},
		{-0x1A5, -0x200, -0x100, -0x200},
	}

	for i, test := range tests {
		r, c, f := b8(test.in), b8(test.in), b8(test.in)
		r.SnapRound()
		c.SnapCeil()
		f.SnapFloor()
		if r.Raw() != test.round || c.Raw() != test.ceil || f.Raw() != test.floor {
			str := "test #%d: in %#x expected %#x/%#x/%#x, but got %#x/%#x/%#x"
			t.Fatalf(str, i, test.in, test.round, test.ceil, test.floor, r.Raw(), c.Raw(), f.Raw())
		}
	}
}

func TestFromFloat(t *testing.T) {
	tests := []struct {
		in  float32
		out int32
	}{
		{0, 0}, {1.5, 384}, {-1.5, -384}, {0.999, 255}, {-0.999, -255},
		{-1.3, -332}, {1.0 / 256, 1}, {-1.0 / 512, 0},
	}

	for i, test := range tests {
		out := f8(test.in).Raw()
		if out != test.out {
			t.Fatalf("test #%d: in %f expected raw %d, but got %d", i, test.in, test.out, out)
		}
	}

	if x := fixpoint.FromFloat[fixpoint.Frac8, int32, float32](2.75); x.Raw() != 704 {
		t.Fatalf("float64 source: expected 704, got %d", x.Raw())
	}
}

func TestFloat(t *testing.T) {
	tests := []struct {
		in  int32
		out float32
	}{
		{0, 0}, {384, 1.5}, {-384, -1.5}, {1, 1.0 / 256}, {-1, -1.0 / 256}, {256, 1},
	}

	for i, test := range tests {
		out := b8(test.in).Float()
		if out != test.out {
			t.Fatalf("test #%d: in %d expected %f, but got %f", i, test.in, test.out, out)
		}
	}
}

func TestString(t *testing.T) {
	if s := f8(1.5).String(); s != "1.5" {
		t.Errorf("expected 1.5, got %s", s)
	}
	if s := f8(-0.25).String(); s != "-0.25" {
		t.Errorf("expected -0.25, got %s", s)
	}
	if s := fixpoint.FromInt[fixpoint.Frac32, int64, float64](3).String(); s != "3" {
		t.Errorf("expected 3, got %s", s)
	}
}

func TestFromRaw(t *testing.T) {
	tests := []struct {
		raw  int32
		bits uint
		out  int32
	}{
		{0x18, 4, 0x180}, {0x18000, 16, 0x180}, {0x180, 8, 0x180},
		{-1, 16, -1}, {0x180FF, 16, 0x180}, {-0x18, 4, -0x180},
	}

	for i, test := range tests {
		out := fixpoint.FromRaw[fixpoint.Frac8, int32, float32](test.raw, test.bits).Raw()
		if out != test.out {
			t.Fatalf("test #%d: %#x with %d bits expected %#x, but got %#x", i, test.raw, test.bits, test.out, out)
		}
	}
}

func TestWraparound(t *testing.T) {
	x := fixpoint.FromInt[fixpoint.Frac8, int16, float32](200)
	if x.Raw() != -14336 {
		t.Fatalf("expected int16 wraparound to -14336, got %d", x.Raw())
	}
}

func TestNarrowAndWiden(t *testing.T) {
	for _, raw := range []int32{0, 0x12345, -0x12345, 0x1FFFF, -1, 0x7FFFFF, 0xFF} {
		a := b16(raw)
		n := fixpoint.Convert[fixpoint.Frac8](a)
		w := fixpoint.Convert[fixpoint.Frac16](n)
		if n.Raw() != raw>>8 {
			t.Fatalf("%#x: narrowed to %#x", raw, n.Raw())
		}
		if w.Raw() != raw&^0xFF {
			t.Fatalf("%#x: widened back to %#x, expected %#x", raw, w.Raw(), raw&^0xFF)
		}
		if !fixpoint.Equal(n, w) || !fixpoint.Equal(w, n) {
			t.Fatalf("%#x: round trip changed the value", raw)
		}
	}
}

func TestCrossPrecisionEqual(t *testing.T) {
	a := f8(1.5)
	b := fixpoint.FromFloat[fixpoint.Frac4, int32, float32](1.5)
	if a.Raw() == b.Raw() {
		t.Fatal("raw values should differ")
	}
	if !fixpoint.Equal(a, b) || !fixpoint.Equal(b, a) {
		t.Fatal("1.5 at 8 and 4 bits must compare equal")
	}
}

func TestSetFromFix(t *testing.T) {
	tests := []struct {
		in                       int32
		trunc, closest, ceilward int32
	}{
		{0x18080, 0x180, 0x181, 0x181},
		{0x18000, 0x180, 0x180, 0x180},
		{0x1807F, 0x180, 0x180, 0x181},
		{-0x18080, -0x181, -0x180, -0x180},
		{-0x18000, -0x180, -0x180, -0x180},
	}

	for i, test := range tests {
		src := b16(test.in)
		var trunc, set, closest, ceilward q8
		trunc.SetTrunc(src)
		set.Set(src)
		closest.SetClosest(src)
		ceilward.SetClosestHigher(src)
		if trunc.Raw() != test.trunc || set.Raw() != test.trunc {
			t.Fatalf("test #%d: trunc expected %#x, got %#x and %#x", i, test.trunc, trunc.Raw(), set.Raw())
		}
		if closest.Raw() != test.closest {
			t.Fatalf("test #%d: closest expected %#x, got %#x", i, test.closest, closest.Raw())
		}
		if ceilward.Raw() != test.ceilward {
			t.Fatalf("test #%d: closest higher expected %#x, got %#x", i, test.ceilward, ceilward.Raw())
		}

		if fixpoint.Convert[fixpoint.Frac8](src) != trunc ||
			fixpoint.Closest[fixpoint.Frac8](src) != closest ||
			fixpoint.ClosestHigher[fixpoint.Frac8](src) != ceilward {
			t.Fatalf("test #%d: package functions disagree with setters", i)
		}
	}
}

func TestSetFromLessPrecise(t *testing.T) {
	for _, raw := range []int32{3, -3, 0, 0x7F} {
		src := b4(raw)
		var trunc, closest, ceilward q8
		trunc.SetTrunc(src)
		closest.SetClosest(src)
		ceilward.SetClosestHigher(src)
		if trunc.Raw() != raw<<4 || closest.Raw() != raw<<4 || ceilward.Raw() != raw<<4 {
			t.Fatalf("%#x: widening must be exact, got %#x %#x %#x", raw, trunc.Raw(), closest.Raw(), ceilward.Raw())
		}
	}
}

func TestSetFromFloat(t *testing.T) {
	tests := []struct {
		in                       float32
		trunc, closest, ceilward int32
	}{
		{2.75 / 256, 2, 3, 3},
		{-2.75 / 256, -2, -2, -2},
		{1.5, 384, 384, 384},
		{-1.5, -384, -383, -384},
		{0.5 / 256, 0, 1, 1},
		{-0.5 / 256, 0, 0, 0},
		{-1.25 / 256, -1, 0, -1},
	}

	for i, test := range tests {
		var trunc, set, closest, ceilward q8
		trunc.SetTruncFloat(test.in)
		set.SetFloat(test.in)
		closest.SetClosestFloat(test.in)
		ceilward.SetClosestHigherFloat(test.in)
		if trunc.Raw() != test.trunc || set.Raw() != test.trunc {
			t.Fatalf("test #%d: trunc expected %d, got %d and %d", i, test.trunc, trunc.Raw(), set.Raw())
		}
		if closest.Raw() != test.closest {
			t.Fatalf("test #%d: closest expected %d, got %d", i, test.closest, closest.Raw())
		}
		if ceilward.Raw() != test.ceilward {
			t.Fatalf("test #%d: closest higher expected %d, got %d", i, test.ceilward, ceilward.Raw())
		}

		f64 := float64(test.in)
		if fixpoint.ClosestFloat[fixpoint.Frac8, int32, float32](f64) != closest ||
			fixpoint.ClosestHigherFloat[fixpoint.Frac8, int32, float32](f64) != ceilward {
			t.Fatalf("test #%d: float64 factories disagree with setters", i)
		}
	}
}

func TestSetIntAndBits(t *testing.T) {
	var x q8
	x.SetInt(3)
	if x.Raw() != 768 {
		t.Fatalf("SetInt: expected 768, got %d", x.Raw())
	}
	x.SetBits(5)
	if x.Raw() != 5 {
		t.Fatalf("SetBits: expected 5, got %d", x.Raw())
	}
}

func TestFrac(t *testing.T) {
	x := b8(0x1A5)
	if x.FracRaw() != 0xA5 || x.Frac().Raw() != 0xA5 {
		t.Fatalf("expected fraction 0xa5, got %#x", x.FracRaw())
	}
	if x.FracRawBits(4) != 0xA || x.FracRawBits(12) != 0xA50 || x.FracRawBits(8) != 0xA5 {
		t.Fatalf("bad rescaled fraction %#x %#x", x.FracRawBits(4), x.FracRawBits(12))
	}

	neg := b8(-1)
	if neg.FracRaw() != 0xFF || neg.Frac().Float() != 255.0/256 {
		t.Fatalf("negative fraction: got %#x", neg.FracRaw())
	}
	if !f8(-2).Frac().IsZero() {
		t.Fatal("whole values have no fraction")
	}
}
