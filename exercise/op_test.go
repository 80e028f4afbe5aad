package exercise

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOp(t *testing.T) {
	for _, op := range Ops() {
		t.Run(op.String(), func(t *testing.T) {
			parsed, err := ParseOp(op.String())
			require.NoError(t, err)
			assert.Equal(t, op, parsed)
		})
	}

	_, err := ParseOp("divide")
	assert.ErrorIs(t, err, ErrUnknownOp)
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "proj", OpProjection.String())
	assert.Equal(t, "orth", OpOrthogonalComponent.String())
	assert.Equal(t, "Unknown(0)", Op(0).String())
	assert.Len(t, Ops(), 15)
}

func TestOpJSON(t *testing.T) {
	b, err := json.Marshal(OpCross)
	require.NoError(t, err)
	assert.JSONEq(t, `"cross"`, string(b))

	var op Op
	require.NoError(t, json.Unmarshal([]byte(`"triangle"`), &op))
	assert.Equal(t, OpTriangle, op)

	assert.Error(t, json.Unmarshal([]byte(`"nope"`), &op))

	_, err = json.Marshal(Op(99))
	assert.Error(t, err)
}
