package line

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecmath"
)

func mustLine(t *testing.T, a, b, k string) Line {
	t.Helper()
	n, err := vecmath.FromStrings([]string{a, b})
	require.NoError(t, err)
	l, err := New(n, decimal.RequireFromString(k))
	require.NoError(t, err)
	return l
}

func TestNew(t *testing.T) {
	n, err := vecmath.FromStrings([]string{"1", "2", "3"})
	require.NoError(t, err)

	_, err = New(n, decimal.Zero)
	assert.ErrorIs(t, err, vecmath.ErrUnsupportedDimension)
}

func TestBasePoint(t *testing.T) {
	t.Run("First coordinate", func(t *testing.T) {
		p, err := mustLine(t, "2", "3", "4").BasePoint()
		require.NoError(t, err)
		assert.Equal(t, "Vector: (2, 0)", p.String())
	})

	t.Run("Second coordinate", func(t *testing.T) {
		p, err := mustLine(t, "0", "4", "2").BasePoint()
		require.NoError(t, err)
		assert.True(t, p.Equal(mustVector(t, "0", "0.5")))
	})

	t.Run("Zero normal", func(t *testing.T) {
		_, err := mustLine(t, "0", "0", "1").BasePoint()
		assert.ErrorIs(t, err, ErrNoNonzeroElements)
	})
}

func TestIntersectionWith(t *testing.T) {
	tests := []struct {
		name     string
		l1, l2   [3]string
		kind     Kind
		expected []float64
	}{
		{
			name: "Coincident",
			l1:   [3]string{"4.046", "2.836", "1.21"},
			l2:   [3]string{"10.115", "7.09", "3.025"},
			kind: Infinite,
		},
		{
			name:     "Unique point",
			l1:       [3]string{"7.204", "3.182", "8.68"},
			l2:       [3]string{"8.172", "4.114", "9.883"},
			kind:     Point,
			expected: []float64{1.17277663546, 0.0726955116633},
		},
		{
			name: "Parallel",
			l1:   [3]string{"1.182", "5.562", "6.774"},
			l2:   [3]string{"1.773", "8.343", "9.525"},
			kind: None,
		},
		{
			name:     "Axes",
			l1:       [3]string{"1", "0", "2"},
			l2:       [3]string{"0", "1", "3"},
			kind:     Point,
			expected: []float64{2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l1 := mustLine(t, tt.l1[0], tt.l1[1], tt.l1[2])
			l2 := mustLine(t, tt.l2[0], tt.l2[1], tt.l2[2])

			got := l1.IntersectionWith(l2)
			assert.Equal(t, tt.kind, got.Kind)

			// Intersection is symmetric.
			assert.Equal(t, tt.kind, l2.IntersectionWith(l1).Kind)

			if tt.expected != nil {
				require.Equal(t, 2, got.Point.Dimension())
				for i, c := range got.Point.Floats() {
					assert.InDelta(t, tt.expected[i], c, 1e-9)
				}
			}
		})
	}
}

func TestIntersectionWithNearlyParallel(t *testing.T) {
	l1 := mustLine(t, "1", "0", "1")
	l2 := mustLine(t, "1", "0.00000001", "2")

	assert.False(t, l1.IsParallelTo(l2))

	is := l1.IntersectionWith(l2)
	require.Equal(t, Point, is.Kind)
	assert.True(t, is.Point.EqualWithin(mustVector(t, "1", "100000000"), 1e-12), is.Point.String())
}

func TestEqual(t *testing.T) {
	assert.True(t, mustLine(t, "1", "1", "1").Equal(mustLine(t, "2", "2", "2")))
	assert.True(t, mustLine(t, "1", "1", "1").Equal(mustLine(t, "-3", "-3", "-3")))
	assert.False(t, mustLine(t, "1", "1", "1").Equal(mustLine(t, "1", "1", "2")))
	assert.False(t, mustLine(t, "1", "1", "1").Equal(mustLine(t, "1", "2", "1")))

	assert.True(t, mustLine(t, "0", "0", "0").Equal(mustLine(t, "0", "0", "0")))
	assert.False(t, mustLine(t, "0", "0", "1").Equal(mustLine(t, "0", "0", "0")))
	assert.False(t, mustLine(t, "0", "0", "1").Equal(mustLine(t, "1", "0", "1")))
}

func TestIsParallelTo(t *testing.T) {
	assert.True(t, mustLine(t, "1.182", "5.562", "6.774").IsParallelTo(mustLine(t, "1.773", "8.343", "9.525")))
	assert.False(t, mustLine(t, "7.204", "3.182", "8.68").IsParallelTo(mustLine(t, "8.172", "4.114", "9.883")))
}

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		l        Line
		expected string
	}{
		{"Plain", mustLine(t, "4.046", "2.836", "1.21"), "4.046x_1 + 2.836x_2 = 1.21"},
		{"Negative", mustLine(t, "-1", "-2.5", "3"), "-x_1 - 2.5x_2 = 3"},
		{"Unit", mustLine(t, "0", "1", "-2"), "x_2 = -2"},
		{"Rounded", mustLine(t, "1.23456", "1", "0.0004"), "1.235x_1 + x_2 = 0"},
		{"Leading term rounds away", mustLine(t, "0.0001", "2", "1"), "2x_2 = 1"},
		{"Negative after rounded term", mustLine(t, "0.0001", "-2", "1"), "-2x_2 = 1"},
		{"Zero", mustLine(t, "0", "0", "5"), "0 = 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.l.String())
		})
	}
}

func TestJSON(t *testing.T) {
	t.Run("Line", func(t *testing.T) {
		l := mustLine(t, "4.046", "2.836", "1.21")

		b, err := json.Marshal(l)
		require.NoError(t, err)
		assert.JSONEq(t, `{"normal":["4.046","2.836"],"constant":"1.21"}`, string(b))

		var got Line
		require.NoError(t, json.Unmarshal(b, &got))
		assert.True(t, got.Normal().Equal(l.Normal()))
		assert.True(t, got.Constant().Equal(l.Constant()))
	})

	t.Run("Line wrong dimension", func(t *testing.T) {
		var got Line
		err := json.Unmarshal([]byte(`{"normal":["1","2","3"],"constant":"1"}`), &got)
		assert.ErrorIs(t, err, vecmath.ErrUnsupportedDimension)
	})

	t.Run("Intersection", func(t *testing.T) {
		p := mustVector(t, "1", "2")

		b, err := json.Marshal(Intersection{Kind: Point, Point: p})
		require.NoError(t, err)
		assert.JSONEq(t, `{"kind":"point","point":["1","2"]}`, string(b))

		var got Intersection
		require.NoError(t, json.Unmarshal(b, &got))
		assert.Equal(t, Point, got.Kind)
		assert.True(t, got.Point.Equal(p))

		b, err = json.Marshal(Intersection{Kind: Infinite})
		require.NoError(t, err)
		assert.JSONEq(t, `{"kind":"infinite"}`, string(b))

		assert.Error(t, json.Unmarshal([]byte(`{"kind":"point"}`), &got))
		assert.Error(t, json.Unmarshal([]byte(`{"kind":"sideways"}`), &got))
	})
}

func TestIntersectionString(t *testing.T) {
	assert.Equal(t, "No intersection", Intersection{Kind: None}.String())
	assert.Equal(t, "Infinitely many intersections", Intersection{Kind: Infinite}.String())
	assert.Equal(t, "Vector: (1, 2)", Intersection{Kind: Point, Point: mustVector(t, "1", "2")}.String())
	assert.Equal(t, "unknown(9)", Kind(9).String())
}

func mustVector(t *testing.T, coords ...string) vecmath.Vector {
	t.Helper()
	v, err := vecmath.FromStrings(coords)
	require.NoError(t, err)
	return v
}
