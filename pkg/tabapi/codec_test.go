package tabapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONCodec(t *testing.T) {
	codec := JSONCodec{}
	assert.Equal(t, "json", codec.Name())

	data, err := codec.Marshal(&CalculateEvenRequest{Subtotal: "100", Headcount: "4"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"subtotal":"100","food_tax":"","alcohol_tax":"","tip_percent":"","auto_gratuity":"","headcount":"4"}`, string(data))

	var req CalculateEvenRequest
	require.NoError(t, codec.Unmarshal([]byte(`{"subtotal":"12.50","headcount":"2"}`), &req))
	assert.Equal(t, "12.50", req.Subtotal)
	assert.Equal(t, "2", req.Headcount)

	var empty ResetRequest
	assert.NoError(t, codec.Unmarshal(nil, &empty))
	assert.Error(t, codec.Unmarshal([]byte("{"), &req))
}
