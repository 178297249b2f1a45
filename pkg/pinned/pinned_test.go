package pinned

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/filetug/apollo/pkg/files/osfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DropsDuplicatesAndBlanks(t *testing.T) {
	s := New("/home/u/Downloads", "/home/u/Downloads/", "", "  ", "/home/u/Desktop")
	assert.Equal(t, []string{"/home/u/Downloads", "/home/u/Desktop"}, s.Paths())
	assert.Equal(t, 2, s.Len())
}

func TestSet_AddRemoveContains(t *testing.T) {
	s := New()
	assert.True(t, s.Add("/a"))
	assert.False(t, s.Add("/a/"))
	assert.False(t, s.Add("/b/../a"))
	assert.True(t, s.Contains("/a/."))
	assert.False(t, s.Contains(""))

	assert.True(t, s.Add("/b"))
	assert.True(t, s.Remove("/a"))
	assert.False(t, s.Remove("/a"))
	assert.False(t, s.Remove(" "))
	assert.Equal(t, []string{"/b"}, s.Paths())
}

func TestSet_PathsReturnsCopy(t *testing.T) {
	s := New("/a")
	paths := s.Paths()
	paths[0] = "/changed"
	assert.Equal(t, []string{"/a"}, s.Paths())
}

func TestDefaults(t *testing.T) {
	home := filepath.FromSlash("/home/u")
	assert.Equal(t, []string{
		filepath.Join(home, "Downloads"),
		filepath.Join(home, "Desktop"),
		filepath.Join(home, "Pictures"),
	}, Defaults(home))
}

func TestSet_Available(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(home, "Downloads"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, "Desktop"), nil, 0o644))

	s := New(Defaults(home)...)
	available := s.Available(context.Background(), osfile.NewStore())
	assert.Equal(t, []string{filepath.Join(home, "Downloads")}, available)
	assert.Equal(t, 3, s.Len())
}
