package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.yaml")
	doc := `
- creature:
    id: abra-1
    species: 63
    current_level: 12
    met_level: 10
    version: RD
    format: 1
  encounter:
    kind: wild
    species: 63
    version: RD
    level_min: 10
    level_max: 12
- creature:
    id: gift-1
    species: 151
    current_level: 10
    met_level: 10
    met_location: 255
    version: E
    format: 3
  encounter:
    kind: mystery_gift
    species: 151
    version: E
    level_min: 10
    level_max: 10
    gift:
      generation: 3
      level: 10
      met_level: 10
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	records, err := readRecords(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "abra-1", records[0].Creature.GetId())
	assert.Equal(t, int32(12), records[0].Creature.CurrentLevel)
	assert.Equal(t, "RD", records[0].Encounter.Version)
	require.NotNil(t, records[1].Encounter.GetGift())
	assert.Equal(t, int32(3), records[1].Encounter.GetGift().Generation)
}

func TestReadRecordsErrors(t *testing.T) {
	_, err := readRecords(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- creature: {species: many}"), 0o600))
	_, err = readRecords(path)
	assert.Error(t, err)
}
