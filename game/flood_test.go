package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloodVisitsEachCellOnce(t *testing.T) {
	visits := make(map[int]int)
	flood(0, func(index int) bool {
		visits[index]++
		return true
	}, Neighbors)

	assert.Len(t, visits, NumCells)
	for index, count := range visits {
		assert.Equal(t, 1, count, "cell %d", index)
	}
}

func TestFloodStopsWhereVisitorRefuses(t *testing.T) {
	var order []int
	flood(0, func(index int) bool {
		order = append(order, index)
		// only the first column propagates
		x, _ := ToCoords(index)
		return x == 0
	}, Neighbors)

	assert.Equal(t, 0, order[0])
	assert.Len(t, order, 2*Height)
	for _, index := range order {
		x, _ := ToCoords(index)
		assert.LessOrEqual(t, x, 1)
	}
}
