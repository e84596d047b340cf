package fileaccess

import (
	"context"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadText(t *testing.T) {
	s := NewMemory()
	require.NoError(t, afero.WriteFile(s.Fs(), "/srv/server.properties", []byte("motd=hi\n"), 0644))

	text, err := s.ReadText(context.Background(), "/srv/server.properties")
	require.NoError(t, err)
	assert.Equal(t, "motd=hi\n", text)
}

func TestReadText_Errors(t *testing.T) {
	s := NewMemory()
	require.NoError(t, s.Fs().MkdirAll("/srv/config", 0755))

	_, err := s.ReadText(context.Background(), "/srv/missing.yml")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.ReadText(context.Background(), "/srv/config")
	assert.ErrorIs(t, err, ErrIsDirectory)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.ReadText(ctx, "/srv/missing.yml")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteText_CreatesParentsAndLeavesNoTempFiles(t *testing.T) {
	s := NewMemory()

	require.NoError(t, s.WriteText(context.Background(), "/srv/plugins/essentials/config.yml", "motd: hi\n"))

	text, err := s.ReadText(context.Background(), "/srv/plugins/essentials/config.yml")
	require.NoError(t, err)
	assert.Equal(t, "motd: hi\n", text)

	entries, err := afero.ReadDir(s.Fs(), "/srv/plugins/essentials")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "config.yml", entries[0].Name())
}

func TestWriteText_ReplacesAndKeepsMode(t *testing.T) {
	s := NewMemory()
	require.NoError(t, afero.WriteFile(s.Fs(), "/srv/ops.json", []byte("{}"), 0600))

	require.NoError(t, s.WriteText(context.Background(), "/srv/ops.json", `{"a": 1}`))

	info, err := s.Fs().Stat("/srv/ops.json")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	text, err := s.ReadText(context.Background(), "/srv/ops.json")
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, text)
}

func TestWriteText_Errors(t *testing.T) {
	s := NewMemory()
	require.NoError(t, s.Fs().MkdirAll("/srv/world", 0755))

	err := s.WriteText(context.Background(), "/srv/world", "x")
	assert.ErrorIs(t, err, ErrIsDirectory)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = s.WriteText(ctx, "/srv/a.toml", "x")
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, s.Exists("/srv/a.toml"))
}

func TestNewOS_RootedAtDirectory(t *testing.T) {
	root := t.TempDir()
	s := NewOS(root)

	require.NoError(t, s.WriteText(context.Background(), "/server.properties", "motd=hi\n"))

	data, err := os.ReadFile(root + "/server.properties")
	require.NoError(t, err)
	assert.Equal(t, "motd=hi\n", string(data))
	assert.True(t, s.Exists("server.properties"))
}
