package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	set := NewSet(1, 2, 3)
	assert.Len(t, set, 3)
	assert.True(t, set.Contains(2))
	assert.False(t, set.Contains(4))

	set.Add(1)
	assert.Len(t, set, 3)

	set.Add(4)
	assert.True(t, set.Contains(4))
}

func TestNewSetEmpty(t *testing.T) {
	set := NewSet[string]()
	assert.Empty(t, set)
	assert.False(t, set.Contains(""))
}
