// Copyright 2025 go-mathfu Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-mathfu/hwy"
)

// runContract exercises every operation of the shared vector contract.
// It runs against Vector2 (whichever implementation this build compiled),
// Vec2[float32] and Vec2[float64].
func runContract[V Vector[V, T], T hwy.Floats, P interface {
	*V
	MutableVector[V, T]
}](t *testing.T, newV func(x, y T) V) {
	lanes := func(v V) [2]float64 {
		a := v.Array()
		return [2]float64{float64(a[0]), float64(a[1])}
	}
	near := func(t *testing.T, want [2]float64, got V, delta float64) {
		t.Helper()
		g := lanes(got)
		assert.InDelta(t, want[0], g[0], delta, "x of %v", got)
		assert.InDelta(t, want[1], g[1], delta, "y of %v", got)
	}

	t.Run("Accessors", func(t *testing.T) {
		pairs := [][2]T{{0, 0}, {1, 2}, {-3.5, 4.25}, {1e-20, -1e20}, {7, 7}}
		for _, p := range pairs {
			v := newV(p[0], p[1])
			assert.Equal(t, p[0], v.X())
			assert.Equal(t, p[1], v.Y())
			assert.Equal(t, p[0], v.Get(0))
			assert.Equal(t, p[1], v.Get(1))
			assert.Equal(t, p[0], v.Elem(1))
			assert.Equal(t, p[1], v.Elem(2))
			assert.Equal(t, [2]T{p[0], p[1]}, v.Array())
		}
	})

	t.Run("Mutation", func(t *testing.T) {
		v := newV(1, 2)
		ptr := P(&v)

		ptr.SetX(10)
		ptr.SetY(20)
		assert.Equal(t, [2]T{10, 20}, v.Array())

		ptr.Set(0, 11)
		ptr.SetElem(2, 22)
		assert.Equal(t, [2]T{11, 22}, v.Array())

		*ptr.Ref(1) = 33
		*ptr.ElemRef(1) = 44
		assert.Equal(t, [2]T{44, 33}, v.Array())

		r := ptr.Ref(0)
		*r += 1
		assert.Equal(t, T(45), v.X(), "Ref must alias the vector")
	})

	t.Run("VectorArithmetic", func(t *testing.T) {
		a := newV(1, 2)
		b := newV(3, 4)
		assert.Equal(t, [2]T{4, 6}, a.Add(b).Array())
		assert.Equal(t, [2]T{-2, -2}, a.Sub(b).Array())
		assert.Equal(t, [2]T{3, 8}, a.Mul(b).Array())
		assert.Equal(t, [2]T{3, 2}, b.Div(a).Array())
		assert.Equal(t, [2]T{-1, -2}, a.Neg().Array())
	})

	t.Run("NegZero", func(t *testing.T) {
		z := newV(0, 0).Neg()
		for i := 0; i < 2; i++ {
			assert.False(t, math.Signbit(float64(z.Get(i))), "lane %d of 0 - (0,0) must be +0", i)
		}
	})

	t.Run("ScalarArithmetic", func(t *testing.T) {
		a := newV(6, -8)
		assert.Equal(t, [2]T{8, -6}, a.AddScalar(2).Array())
		assert.Equal(t, [2]T{4, -10}, a.SubScalar(2).Array())
		assert.Equal(t, [2]T{12, -16}, a.MulScalar(2).Array())
		assert.Equal(t, [2]T{3, -4}, a.DivScalar(2).Array())

		// Division by a scalar is a multiply by its reciprocal.
		c := newV(1, 10)
		assert.Equal(t, c.MulScalar(1/T(3)).Array(), c.DivScalar(3).Array())
	})

	t.Run("MultiplicativeIdentities", func(t *testing.T) {
		for _, p := range [][2]T{{1.5, -2}, {1e10, 3e-10}, {-0.25, 0.125}} {
			a := newV(p[0], p[1])
			assert.True(t, a.MulScalar(1).Equal(a), "%v * 1", a)
			assert.True(t, a.MulScalar(0).Equal(newV(0, 0)), "%v * 0", a)
		}
	})

	t.Run("AddSubRoundTrip", func(t *testing.T) {
		for _, p := range [][4]T{{1, 2, 3, 4}, {0.1, 0.2, 0.3, 0.4}, {-5.5, 7.25, 100, -100}} {
			a := newV(p[0], p[1])
			b := newV(p[2], p[3])
			got := a.Add(b).Sub(b)
			scale := math.Max(math.Abs(float64(p[2])), math.Abs(float64(p[3]))) + 1
			near(t, lanes(a), got, 1e-6*scale)
		}
	})

	t.Run("CompoundAssign", func(t *testing.T) {
		a := newV(6, 8)
		b := newV(2, 4)

		ops := []struct {
			name   string
			assign func(P) *V
			binary V
		}{
			{"AddAssign", func(p P) *V { return p.AddAssign(b) }, a.Add(b)},
			{"SubAssign", func(p P) *V { return p.SubAssign(b) }, a.Sub(b)},
			{"MulAssign", func(p P) *V { return p.MulAssign(b) }, a.Mul(b)},
			{"DivAssign", func(p P) *V { return p.DivAssign(b) }, a.Div(b)},
			{"AddScalarAssign", func(p P) *V { return p.AddScalarAssign(3) }, a.AddScalar(3)},
			{"SubScalarAssign", func(p P) *V { return p.SubScalarAssign(3) }, a.SubScalar(3)},
			{"MulScalarAssign", func(p P) *V { return p.MulScalarAssign(3) }, a.MulScalar(3)},
			{"DivScalarAssign", func(p P) *V { return p.DivScalarAssign(3) }, a.DivScalar(3)},
		}
		for _, op := range ops {
			v := a
			ret := op.assign(P(&v))
			assert.Same(t, &v, ret, "%s must return its receiver", op.name)
			assert.Equal(t, op.binary.Array(), v.Array(), op.name)
		}

		v := a
		P(P(&v).AddAssign(b)).MulScalarAssign(2)
		assert.Equal(t, a.Add(b).MulScalar(2).Array(), v.Array(), "chained assign")
	})

	t.Run("Length", func(t *testing.T) {
		v := newV(3, 4)
		assert.Equal(t, T(25), v.LengthSquared())
		assert.Equal(t, T(5), v.Length())
		assert.Equal(t, T(0), newV(0, 0).Length())
	})

	t.Run("DotMatchesLengthSquared", func(t *testing.T) {
		for _, p := range [][2]T{{3, 4}, {0.1, 0.7}, {-12.5, 1e-3}, {123456, 654321}} {
			v := newV(p[0], p[1])
			assert.Equal(t, v.LengthSquared(), v.Dot(v), "%v", v)
		}
	})

	t.Run("Normalized", func(t *testing.T) {
		near(t, [2]float64{0.6, 0.8}, newV(3, 4).Normalized(), 1e-6)
		for _, p := range [][2]T{{1, 0}, {0.001, 0.002}, {-300, 4000}, {1e-3, -7}} {
			n := newV(p[0], p[1]).Normalized()
			assert.InDelta(t, 1.0, float64(n.Length()), 1e-5, "|normalized(%v)|", p)
		}
	})

	t.Run("Normalize", func(t *testing.T) {
		v := newV(3, 4)
		want := v.Normalized()
		length := P(&v).Normalize()
		assert.Equal(t, T(5), length, "Normalize returns the previous length")
		near(t, lanes(want), v, 1e-6)
	})

	t.Run("NormalizeZero", func(t *testing.T) {
		v := newV(0, 0)
		length := P(&v).Normalize()
		assert.Equal(t, T(0), length)
		assert.True(t, math.IsNaN(float64(v.X())), "normalizing zero is undefined and yields NaN here")
		assert.True(t, math.IsNaN(float64(newV(0, 0).Normalized().Y())))
	})

	t.Run("Products", func(t *testing.T) {
		a := newV(1, 2)
		b := newV(3, 4)
		assert.Equal(t, T(11), a.Dot(b))
		assert.Equal(t, [2]T{3, 8}, a.Hadamard(b).Array())
		assert.Equal(t, a.Mul(b).Array(), a.Hadamard(b).Array())
	})

	t.Run("Lerp", func(t *testing.T) {
		a := newV(1, -2)
		b := newV(5, 6)
		assert.Equal(t, a.Array(), a.Lerp(b, 0).Array())
		assert.Equal(t, b.Array(), a.Lerp(b, 1).Array())
		near(t, lanes(a.Add(b).MulScalar(0.5)), a.Lerp(b, 0.5), 1e-6)
		near(t, [2]float64{9, 14}, a.Lerp(b, 2), 1e-5)
		near(t, [2]float64{-3, -10}, a.Lerp(b, -1), 1e-5)
	})

	t.Run("MinMax", func(t *testing.T) {
		a := newV(1, 9)
		b := newV(4, -2)
		assert.Equal(t, [2]T{1, -2}, a.Min(b).Array())
		assert.Equal(t, [2]T{4, 9}, a.Max(b).Array())

		// Unordered lanes keep the receiver's value.
		nan := T(math.NaN())
		p := newV(nan, 1)
		q := newV(2, nan)
		for name, got := range map[string]V{"Min": p.Min(q), "Max": p.Max(q)} {
			assert.True(t, math.IsNaN(float64(got.X())), "%s x of %v", name, got)
			assert.Equal(t, T(1), got.Y(), "%s y of %v", name, got)
		}
		r := q.Min(p)
		assert.Equal(t, T(2), r.X())
		assert.True(t, math.IsNaN(float64(r.Y())))
	})

	t.Run("Compare", func(t *testing.T) {
		a := newV(1, 2)
		assert.True(t, a.Equal(newV(1, 2)))
		assert.False(t, a.Equal(newV(1, 2.5)))
		assert.True(t, a.Near(newV(1.0001, 1.9999), 1e-3))
		assert.False(t, a.Near(newV(1.01, 2), 1e-3))
		assert.Equal(t, "(3, 4.5)", newV(3, 4.5).String())
	})

	t.Run("OutOfRangePanics", func(t *testing.T) {
		v := newV(1, 2)
		for _, i := range []int{-1, 2, 3} {
			assert.Panics(t, func() { _ = v.Get(i) }, "Get(%d)", i)
		}
		for _, i := range []int{0, 3} {
			assert.Panics(t, func() { _ = v.Elem(i) }, "Elem(%d)", i)
		}
		require.NotPanics(t, func() { _ = v.Elem(2) })
	})
}

func TestVector2Contract(t *testing.T) {
	runContract(t, NewVector2)
}

func TestVec2Float32Contract(t *testing.T) {
	runContract(t, NewVec2[float32])
}

func TestVec2Float64Contract(t *testing.T) {
	runContract(t, NewVec2[float64])
}
