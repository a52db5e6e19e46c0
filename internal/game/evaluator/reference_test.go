package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReference(t *testing.T) {
	royal := cards(t, "As Ks Qs Js Ts 2d 3c")
	pair := cards(t, "As Ad 9s 7h 4c 3d 2c")

	royalRank, royalName, ok := Reference(royal)
	assert.True(t, ok)
	assert.NotEmpty(t, royalName)

	pairRank, _, ok := Reference(pair)
	assert.True(t, ok)

	// 标准评估里 rank 越小越强
	assert.Less(t, royalRank, pairRank)

	_, _, ok = Reference(cards(t, "As Kd"))
	assert.False(t, ok)
}
