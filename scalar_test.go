package vecmath

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScalar(t *testing.T) {
	d := dec("2.5")

	tests := []struct {
		name     string
		in       any
		expected string
	}{
		{"Decimal", d, "2.5"},
		{"DecimalPointer", &d, "2.5"},
		{"String", " 1.21 ", "1.21"},
		{"Scientific", "3e-2", "0.03"},
		{"Float64", 0.5, "0.5"},
		{"Float32", float32(0.25), "0.25"},
		{"Int", 7, "7"},
		{"Int8", int8(-8), "-8"},
		{"Int32", int32(32), "32"},
		{"Int64", int64(-64), "-64"},
		{"Uint", uint(9), "9"},
		{"Uint8", uint8(8), "8"},
		{"Uint64", uint64(math.MaxUint64), "18446744073709551615"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseScalar(tt.in)
			require.NoError(t, err)
			assert.True(t, dec(tt.expected).Equal(got), "got %s", got)
		})
	}

	t.Run("Invalid", func(t *testing.T) {
		for _, in := range []any{"abc", math.NaN(), math.Inf(1), float32(math.Inf(-1)), struct{}{}, (*decimal.Decimal)(nil)} {
			_, err := ParseScalar(in)
			assert.Error(t, err, "%v", in)
		}
	})

	t.Run("Sentinels", func(t *testing.T) {
		_, err := ParseScalar((*decimal.Decimal)(nil))
		assert.ErrorIs(t, err, errNilDecimal)

		_, err = ParseScalar(math.NaN())
		assert.ErrorIs(t, err, errNonFinite)
	})
}

func TestFromAny(t *testing.T) {
	expected := vec(t, "1", "2", "3")

	inputs := map[string]any{
		"Vector":   expected,
		"Decimals": []decimal.Decimal{dec("1"), dec("2"), dec("3")},
		"Strings":  []string{"1", "2", "3"},
		"Float64":  []float64{1, 2, 3},
		"Float32":  []float32{1, 2, 3},
		"Int":      []int{1, 2, 3},
		"Int64":    []int64{1, 2, 3},
		"Any":      []any{1, "2", 3.0},
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			got, err := FromAny(in)
			require.NoError(t, err)
			assert.True(t, expected.Equal(got), "got %s", got)
		})
	}

	t.Run("Empty", func(t *testing.T) {
		for _, in := range []any{nil, []string{}, []any{}, []float64(nil)} {
			_, err := FromAny(in)
			assert.ErrorIs(t, err, ErrEmptyInput)
			assert.Equal(t, KindEmptyInput, KindOf(err))
		}
	})

	t.Run("Not iterable", func(t *testing.T) {
		for _, in := range []any{42, "1,2,3", map[string]int{"x": 1}} {
			_, err := FromAny(in)
			assert.ErrorIs(t, err, ErrNotIterable)
			assert.Equal(t, KindNotIterable, KindOf(err))
		}
	})

	t.Run("Invalid coordinate", func(t *testing.T) {
		_, err := FromAny([]any{"1", "two"})

		var ic *ErrInvalidCoordinate
		require.ErrorAs(t, err, &ic)
		assert.Equal(t, 1, ic.Index)
		assert.Equal(t, "two", ic.Value)
		assert.ErrorIs(t, err, ErrNotIterable)
	})

	t.Run("Options", func(t *testing.T) {
		got, err := FromAny([]string{"3.14159"}, WithPrecision(3))
		require.NoError(t, err)
		assert.Equal(t, "3.14", got.At(0).String())
	})
}
