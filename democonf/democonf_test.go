package democonf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		conf, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, GetDefault(), *conf)
	})

	t.Run("valid file overrides defaults", func(t *testing.T) {
		path := writeConfig(t, "skiplist_level_max: 8\nskiplist_p: 0.25\nwords: [alpha, beta]\n")

		conf, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 8, conf.SkiplistLevelMax)
		assert.Equal(t, 0.25, conf.SkiplistP)
		assert.Equal(t, []string{"alpha", "beta"}, conf.Words)
		// Untouched fields keep their defaults.
		assert.Equal(t, VECTOR_CAPACITY, conf.VectorCapacity)
	})

	t.Run("unparseable file falls back to defaults", func(t *testing.T) {
		path := writeConfig(t, "skiplist_level_max: [not an int\n")

		conf, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, GetDefault(), *conf)
	})

	t.Run("unknown keys fall back to defaults", func(t *testing.T) {
		path := writeConfig(t, "no_such_key: 1\n")

		conf, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, GetDefault(), *conf)
	})

	t.Run("invalid skiplist params are an error", func(t *testing.T) {
		path := writeConfig(t, "skiplist_level_max: 0\n")

		conf, err := LoadConfig(path)
		assert.Nil(t, conf)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "skiplist config")
	})

	t.Run("negative vector capacity is an error", func(t *testing.T) {
		path := writeConfig(t, "vector_capacity: -1\n")

		conf, err := LoadConfig(path)
		assert.Nil(t, conf)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "vector config")
	})

	t.Run("empty word list is an error", func(t *testing.T) {
		path := writeConfig(t, "words: []\n")

		conf, err := LoadConfig(path)
		assert.Nil(t, conf)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one word")
	})
}

func TestDumpRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.yaml")

	conf := GetDefault()
	conf.SkiplistLevelMax = 12
	require.NoError(t, conf.Dump(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, conf, *loaded)
}
