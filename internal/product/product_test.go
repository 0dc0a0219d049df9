package product

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductJSONShape(t *testing.T) {
	p := Product{
		ID:          "abc",
		Name:        "Widget",
		Description: "A useful widget",
		Price:       decimal.NewFromFloat(29.99),
	}

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"id":"abc","name":"Widget","description":"A useful widget","price":29.99,"imageUrl":null}`,
		string(b))

	url := "http://storage.local/products/abc/image"
	p.ImageURL = &url
	b, err = json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"imageUrl":"http://storage.local/products/abc/image"`)
}

func TestOptionalStringDistinguishesOmittedFromNull(t *testing.T) {
	type payload struct {
		ImageURL OptionalString `json:"imageUrl"`
	}

	var omitted payload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &omitted))
	assert.False(t, omitted.ImageURL.Set)

	var null payload
	require.NoError(t, json.Unmarshal([]byte(`{"imageUrl":null}`), &null))
	assert.True(t, null.ImageURL.Set)
	assert.Nil(t, null.ImageURL.Value)

	var set payload
	require.NoError(t, json.Unmarshal([]byte(`{"imageUrl":"http://x/y"}`), &set))
	assert.True(t, set.ImageURL.Set)
	require.NotNil(t, set.ImageURL.Value)
	assert.Equal(t, "http://x/y", *set.ImageURL.Value)

	var bad payload
	assert.Error(t, json.Unmarshal([]byte(`{"imageUrl":42}`), &bad))
}

func TestPriceUnmarshalAcceptsNumberAndString(t *testing.T) {
	var p Product
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Widget","price":29.99}`), &p))
	assert.True(t, p.Price.Equal(decimal.RequireFromString("29.99")))

	// No binary-float precision loss on the way through.
	assert.Equal(t, "29.99", p.Price.String())
}
