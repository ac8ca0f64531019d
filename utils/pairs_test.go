package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"almanac/utils"
)

func TestPairs(t *testing.T) {
	t.Parallel()

	pairs, ok := utils.Pairs([]int64{79, 14, 55, 13})
	require.True(t, ok)
	assert.Equal(t, []utils.Pair[int64]{
		{First: 79, Second: 14},
		{First: 55, Second: 13},
	}, pairs)

	pairs, ok = utils.Pairs([]int64{})
	require.True(t, ok)
	assert.Empty(t, pairs)

	_, ok = utils.Pairs([]string{"lonely"})
	assert.False(t, ok)
}
