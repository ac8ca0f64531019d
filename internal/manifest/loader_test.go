package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Spellings(t *testing.T) {
	t.Parallel()

	yaml := `
seeds: [79, 14]
maps:
  - source: seed
    target: soil
    ranges:
      - {start: 50, length: 48, delta: 2}
      - {dst: 50, src: 98, len: 2}
      - [39, 0, 15]
`
	mf, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "1", mf.Version) // defaulted
	assert.Equal(t, []int64{79, 14}, mf.Seeds)
	require.Len(t, mf.Maps, 1)
	require.Len(t, mf.Maps[0].Ranges, 3)

	explicit, err := mf.Maps[0].Ranges[0].Interval()
	require.NoError(t, err)
	assert.Equal(t, int64(50), explicit.Start)
	assert.Equal(t, int64(48), explicit.Length)
	assert.Equal(t, int64(2), explicit.Delta)

	puzzle, err := mf.Maps[0].Ranges[1].Interval()
	require.NoError(t, err)
	assert.Equal(t, int64(98), puzzle.Start)
	assert.Equal(t, int64(2), puzzle.Length)
	assert.Equal(t, int64(-48), puzzle.Delta)

	positional, err := mf.Maps[0].Ranges[2].Interval()
	require.NoError(t, err)
	assert.Equal(t, int64(0), positional.Start)
	assert.Equal(t, int64(15), positional.Length)
	assert.Equal(t, int64(39), positional.Delta)
}

func TestParse_RangeDefErrors(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`
seeds: [1]
maps:
  - source: seed
    target: soil
    ranges:
      - [50, 98]
`))
	assert.ErrorContains(t, err, "exactly 3 values")

	mf, err := Parse([]byte(`
seeds: [1]
maps:
  - source: seed
    target: soil
    ranges:
      - {start: 50, len: 2}
`))
	require.NoError(t, err)

	_, err = mf.Maps[0].Ranges[0].Interval()
	assert.ErrorIs(t, err, ErrRangeConflict)
}

func TestParse_DeltaDefaultsToZero(t *testing.T) {
	t.Parallel()

	mf, err := Parse([]byte(`
seeds: [1]
maps:
  - source: seed
    target: soil
    ranges:
      - {start: 50, length: 2}
`))
	require.NoError(t, err)

	iv, err := mf.Maps[0].Ranges[0].Interval()
	require.NoError(t, err)
	assert.Equal(t, int64(0), iv.Delta)
}

func TestParse_IncompleteRange(t *testing.T) {
	t.Parallel()

	mf, err := Parse([]byte(`
seeds: [1]
maps:
  - source: seed
    target: soil
    ranges:
      - {dst: 50, src: 98}
      - {length: 2}
`))
	require.NoError(t, err)

	_, err = mf.Maps[0].Ranges[0].Interval()
	assert.ErrorIs(t, err, ErrRangeIncomplete)

	_, err = mf.Maps[0].Ranges[1].Interval()
	assert.ErrorIs(t, err, ErrRangeIncomplete)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	mf, err := LoadFile("testdata/example.yaml")
	require.NoError(t, err)

	assert.Len(t, mf.Maps, 7)
	assert.Equal(t, "seed->soil", mf.Maps[0].Pair())

	_, err = LoadFile("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}
