package suite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("valid worksheet", func(t *testing.T) {
		yaml := `
name: basics
version: "1.0"
description: operator sanity checks
entries:
  - id: conjunction
    expression: A AND B
    assignment: { A: true, B: false }
    expect:
      result: false
  - id: excluded-middle
    expression: P OR NOT P
    expect:
      tautology: true
`
		ws, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Equal(t, "basics", ws.Name)
		require.Len(t, ws.Entries, 2)
		assert.Equal(t, "conjunction", ws.Entries[0].ID)
		require.NotNil(t, ws.Entries[0].Expect)
		require.NotNil(t, ws.Entries[0].Expect.Result)
		assert.False(t, *ws.Entries[0].Expect.Result)
		require.NotNil(t, ws.Entries[1].Expect.Tautology)
		assert.True(t, *ws.Entries[1].Expect.Tautology)
	})

	t.Run("assignment decodes", func(t *testing.T) {
		yaml := `
name: assignments
entries:
  - id: e1
    expression: A IMP B
    assignment:
      A: true
      B: true
`
		ws, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Equal(t, map[string]bool{"A": true, "B": true}, ws.Entries[0].Assignment)
	})

	t.Run("no entries", func(t *testing.T) {
		_, err := Parse([]byte("name: empty\nentries: []\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no entries")
	})

	t.Run("entry without id", func(t *testing.T) {
		yaml := `
name: bad
entries:
  - expression: A AND B
`
		_, err := Parse([]byte(yaml))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no id")
	})

	t.Run("duplicate ids", func(t *testing.T) {
		yaml := `
name: bad
entries:
  - id: e1
    expression: A
  - id: e1
    expression: B
`
		_, err := Parse([]byte(yaml))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("entry without expression", func(t *testing.T) {
		yaml := `
name: bad
entries:
  - id: e1
`
		_, err := Parse([]byte(yaml))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no expression")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Parse([]byte("entries: [unclosed"))
		require.Error(t, err)
	})
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "worksheet.yaml")

	content := `
name: from-file
entries:
  - id: e1
    expression: TRUE OR FALSE
    expect:
      result: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	ws, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", ws.Name)

	_, err = LoadFromFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
