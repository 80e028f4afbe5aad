package codec

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecmath"
)

type record struct {
	ID     string          `json:"id"`
	Vector vecmath.Vector  `json:"vector"`
	Scalar decimal.Decimal `json:"scalar"`
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("msgpack")
	assert.False(t, ok)
}

func TestCodecsAgree(t *testing.T) {
	v, err := vecmath.FromStrings([]string{"8.218", "-9.341"})
	require.NoError(t, err)
	in := record{ID: "a", Vector: v, Scalar: decimal.RequireFromString("1.21")}

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			c, _ := ByName(name)

			b, err := c.Marshal(in)
			require.NoError(t, err)
			assert.JSONEq(t, `{"id":"a","vector":["8.218","-9.341"],"scalar":"1.21"}`, string(b))

			var out record
			require.NoError(t, c.Unmarshal(b, &out))
			assert.Equal(t, "a", out.ID)
			assert.True(t, v.Equal(out.Vector))
			assert.True(t, in.Scalar.Equal(out.Scalar))
		})
	}
}

func TestUnmarshalEmptyVector(t *testing.T) {
	for _, name := range Names() {
		c, _ := ByName(name)

		var out record
		err := c.Unmarshal([]byte(`{"id":"a","vector":[]}`), &out)
		assert.ErrorIs(t, err, vecmath.ErrEmptyInput, name)
	}
}

func TestGoJSONAppend(t *testing.T) {
	dst := []byte("prefix:")
	out, err := GoJSON{}.Append(dst, map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, `prefix:{"a":1}`, string(out))
}

func TestMustMarshal(t *testing.T) {
	assert.Equal(t, `[1,2]`, string(MustMarshal(nil, []int{1, 2})))
	assert.Panics(t, func() { MustMarshal(JSON{}, func() {}) })
}
