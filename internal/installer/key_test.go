package installer

import (
	"testing"

	"github.com/ImSingee/go-ex/ee"
	"github.com/ImSingee/semver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilename(t *testing.T) {
	cases := []struct {
		name string
		want Key
	}{
		{
			name: "Miniconda-3.0.0-Linux-x86.sh",
			want: Key{Version: Release{3, 0, 0}, Prefix: "Miniconda"},
		},
		{
			name: "Miniconda3-4.7.12.1-Windows-x86_64.exe",
			want: Key{Version: Release{4, 7, 12, 1}, Prefix: "Miniconda3"},
		},
		{
			name: "Miniconda3-py37_4.8.2-MacOSX-x86_64.sh",
			want: Key{Version: Release{4, 8, 2}, Prefix: "Miniconda3", Python: 37, HasPython: true},
		},
		{
			name: "Miniconda3-py311_23.5.2-0-Linux-aarch64.sh",
			want: Key{Version: Release{23, 5, 2}, Prefix: "Miniconda3", Python: 311, HasPython: true},
		},
		{
			name: "Miniconda3-py310_23.1.0-1-Linux-x86_64.sh",
			want: Key{Version: Release{23, 1, 0}, Build: 1, Prefix: "Miniconda3", Python: 310, HasPython: true},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseFilename(c.name)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestParseFilenameInvalid(t *testing.T) {
	for _, name := range []string{
		"index.json",
		"-4.8.2-Linux.sh",
		"Miniconda3-latest-Linux-x86_64.sh",
		"Miniconda3-pyXY_4.8.2-Linux-x86_64.sh",
		"Miniconda3-foo_4.8.2-Linux-x86_64.sh",
		"Miniconda3-py38_-Linux-x86_64.sh",
		"Miniconda3-4..2-Linux-x86_64.sh",
	} {
		_, err := ParseFilename(name)
		assert.Error(t, err, name)
		assert.True(t, IsParseError(err), name)
	}

	_, err := ParseFilename("README.txt")
	require.Error(t, err)
	assert.True(t, IsParseError(ee.Wrap(err, "cannot sort installers")))
	assert.False(t, IsParseError(ee.New("other")))
}

func TestRelease(t *testing.T) {
	r, err := ParseRelease("4.7.12.1")
	require.NoError(t, err)
	assert.Equal(t, "4.7.12.1", r.String())

	assert.Equal(t, 0, Release{4, 7, 12}.Compare(Release{4, 7, 12, 0}))
	assert.Equal(t, -1, Release{4, 7, 12}.Compare(Release{4, 7, 12, 1}))
	assert.Equal(t, 1, Release{23, 1, 0}.Compare(Release{4, 12, 0}))
	assert.Equal(t, -1, Release{4, 9, 2}.Compare(Release{4, 10, 3}))

	_, err = ParseRelease("")
	assert.Error(t, err)
	_, err = ParseRelease("4.x")
	assert.Error(t, err)
}

func TestCompare(t *testing.T) {
	k := func(name string) Key {
		key, err := ParseFilename(name)
		require.NoError(t, err)
		return key
	}

	assert.Equal(t, 1, Compare(k("Miniconda3-4.9.2-Linux-x86_64.sh"), k("Miniconda3-4.8.3-Linux-x86_64.sh")))
	assert.Equal(t, 1, Compare(k("Miniconda3-py39_4.9.2-Linux-x86_64.sh"), k("Miniconda3-py38_4.9.2-Linux-x86_64.sh")))
	assert.Equal(t, 1, Compare(k("Miniconda3-py39_4.9.2-Linux-x86_64.sh"), k("Miniconda3-4.9.2-Linux-x86_64.sh")))
	assert.Equal(t, 1, Compare(k("Miniconda3-4.7.10-Linux-x86_64.sh"), k("Miniconda2-4.7.10-Linux-x86_64.sh")))
	assert.Equal(t, 1, Compare(k("Miniconda3-py312_23.5.2-0-Linux-x86_64.sh"), k("Miniconda3-py311_23.5.2-1-Linux-x86_64.sh")))
	assert.Equal(t, 1, Compare(k("Miniconda3-23.5.2-0-Linux-x86_64.sh"), k("Miniconda2-23.5.2-1-Linux-x86_64.sh")))
	assert.Equal(t, 1, Compare(k("Miniconda3-py311_23.5.2-1-Linux-x86_64.sh"), k("Miniconda3-py311_23.5.2-0-Linux-x86_64.sh")))
	assert.Equal(t, 0, Compare(k("Miniconda3-4.9.2-Linux-x86_64.sh"), k("Miniconda3-4.9.2-Windows-x86_64.exe")))
}

func TestSortDescending(t *testing.T) {
	names := []string{
		"Miniconda2-4.7.10-Linux-x86_64.sh",
		"Miniconda3-py38_4.8.2-Linux-x86_64.sh",
		"Miniconda3-py310_23.1.0-1-Linux-x86_64.sh",
		"Miniconda3-4.7.12.1-Linux-x86_64.sh",
		"Miniconda3-py39_23.1.0-1-Linux-x86_64.sh",
		"Miniconda3-py37_4.8.2-Linux-x86_64.sh",
		"Miniconda3-4.7.10-Linux-x86_64.sh",
		"Miniconda3-py310_23.1.0-1-MacOSX-arm64.sh",
	}

	keys := make(map[string]Key, len(names))
	for _, name := range names {
		key, err := ParseFilename(name)
		require.NoError(t, err)
		keys[name] = key
	}

	SortDescending(names, keys)

	assert.Equal(t, []string{
		"Miniconda3-py310_23.1.0-1-MacOSX-arm64.sh",
		"Miniconda3-py310_23.1.0-1-Linux-x86_64.sh",
		"Miniconda3-py39_23.1.0-1-Linux-x86_64.sh",
		"Miniconda3-py38_4.8.2-Linux-x86_64.sh",
		"Miniconda3-py37_4.8.2-Linux-x86_64.sh",
		"Miniconda3-4.7.12.1-Linux-x86_64.sh",
		"Miniconda3-4.7.10-Linux-x86_64.sh",
		"Miniconda2-4.7.10-Linux-x86_64.sh",
	}, names)
}

func TestSortDescendingBuildDoesNotOutrankPython(t *testing.T) {
	names := []string{
		"Miniconda3-py311_23.5.2-1-Linux-x86_64.sh",
		"Miniconda3-py312_23.5.2-0-Linux-x86_64.sh",
	}

	keys := make(map[string]Key, len(names))
	for _, name := range names {
		key, err := ParseFilename(name)
		require.NoError(t, err)
		keys[name] = key
	}

	SortDescending(names, keys)

	assert.Equal(t, []string{
		"Miniconda3-py312_23.5.2-0-Linux-x86_64.sh",
		"Miniconda3-py311_23.5.2-1-Linux-x86_64.sh",
	}, names)
}

func TestAtLeast(t *testing.T) {
	key, err := ParseFilename("Miniconda3-py38_4.8.2-Linux-x86_64.sh")
	require.NoError(t, err)

	min, err := semver.NewVersion("4.8.0")
	require.NoError(t, err)
	assert.True(t, key.AtLeast(min))

	min, err = semver.NewVersion("4.8.2")
	require.NoError(t, err)
	assert.True(t, key.AtLeast(min))

	min, err = semver.NewVersion("4.9.0")
	require.NoError(t, err)
	assert.False(t, key.AtLeast(min))

	assert.True(t, key.AtLeast(nil))
}
