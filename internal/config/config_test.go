package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigNotExist(t *testing.T) {
	_, err := GetConfig(t.TempDir())
	assert.True(t, IsNotExist(err))
}

func TestGetHashesConfig(t *testing.T) {
	t.Setenv(ManifestURLEnv, "")

	t.Run("no config", func(t *testing.T) {
		h, err := GetHashesConfig(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, &Hashes{}, h)
	})

	t.Run("from file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".minitoolsrc.json"), []byte(`{
  "hashes": {
    "url": "https://example.com/.files.json",
    "output": "out.rst",
    "timezone": "UTC",
    "exclude": ["*latest*"]
  }
}`), 0644))

		h, err := GetHashesConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, &Hashes{
			URL:      "https://example.com/.files.json",
			Output:   "out.rst",
			Timezone: "UTC",
			Exclude:  []string{"*latest*"},
		}, h)

		t.Setenv(ManifestURLEnv, "https://mirror.example.com/.files.json")
		h, err = GetHashesConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, "https://mirror.example.com/.files.json", h.URL)
	})

	t.Run("invalid", func(t *testing.T) {
		for _, content := range []string{
			`{"hashes": "x"}`,
			`{"hashes": {"url": 1}}`,
			`{"hashes": {"exclude": "x"}}`,
			`{"hashes": {"exclude": [1]}}`,
			`{not json`,
		} {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, ".minitoolsrc"), []byte(content), 0644))

			_, err := GetHashesConfig(dir)
			assert.Error(t, err, content)
		}
	})
}
