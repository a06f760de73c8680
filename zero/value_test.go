package zero_test

import (
	"testing"

	"github.com/amp-labs/amp-sort/zero"
	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, zero.Value[int]())
	assert.Empty(t, zero.Value[string]())
	assert.Nil(t, zero.Value[*int]())
	assert.Nil(t, zero.Value[[]string]())
	assert.Equal(t, struct{ A int }{}, zero.Value[struct{ A int }]())
}
