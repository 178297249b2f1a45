package files

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirEntry(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		name := "testfile"
		de := NewDirEntry(name, 0)

		if de.Name() != name {
			t.Errorf("expected Name() = %v, got %v", name, de.Name())
		}
		if de.IsDir() {
			t.Errorf("expected IsDir() = false")
		}
		if de.Type() != 0 {
			t.Errorf("expected Type() = 0, got %v", de.Type())
		}
		info, err := de.Info()
		if err != nil {
			t.Errorf("expected no error from Info(), got %v", err)
		}
		if info == nil || info.Name() != name {
			t.Errorf("expected info named %v, got %v", name, info)
		}
	})

	t.Run("directory", func(t *testing.T) {
		de := NewDirEntry("testdir", os.ModeDir|0o755)
		if !de.IsDir() {
			t.Errorf("expected IsDir() = true")
		}
		if de.Type() != os.ModeDir {
			t.Errorf("expected Type() = %v, got %v", os.ModeDir, de.Type())
		}
	})

	t.Run("symlink", func(t *testing.T) {
		de := NewDirEntry("link", os.ModeSymlink)
		assert.False(t, de.IsDir())
		assert.Equal(t, os.ModeSymlink, de.Type())
	})

	t.Run("with_info", func(t *testing.T) {
		size := int64(123)
		de := NewDirEntry("testfile", 0o644, Size(size))

		info, err := de.Info()
		assert.NoError(t, err)
		assert.Equal(t, size, info.Size())
		assert.True(t, info.ModTime().IsZero())
		assert.False(t, info.IsDir())
		assert.Equal(t, os.FileMode(0o644), info.Mode())
		assert.Nil(t, info.Sys())
	})

	t.Run("zero_value_info", func(t *testing.T) {
		var de DirEntry
		info, err := de.Info()
		assert.Nil(t, info)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestNewDirEntry_PanicsOnNameWithPath(t *testing.T) {
	name := filepath.Join("parent", "child")
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for name with path")
		}
	}()
	_ = NewDirEntry(name, 0)
}

func TestFileInfo_NilReceiver(t *testing.T) {
	var f *FileInfo
	assert.Empty(t, f.Name())
	assert.Zero(t, f.Size())
	assert.Zero(t, f.Mode())
	assert.False(t, f.IsDir())
	assert.True(t, f.ModTime().IsZero())
}

func TestNode(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		n := NewNode("/tmp/t/a.txt", File, WithSize(10))
		assert.Equal(t, "/tmp/t/a.txt", n.Path)
		assert.Equal(t, "a.txt", n.Name)
		assert.Equal(t, int64(10), n.Size)
		assert.False(t, n.IsDir())
		assert.Equal(t, "/tmp/t", n.Parent())
		assert.Equal(t, "/tmp/t/a.txt", n.String())
	})

	t.Run("directory_is_cleaned", func(t *testing.T) {
		n := NewNode("/tmp/t/b/", Directory)
		assert.Equal(t, "/tmp/t/b", n.Path)
		assert.Equal(t, "b", n.Name)
		assert.True(t, n.IsDir())
		assert.Equal(t, "/tmp/t/b/", n.String())
	})
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "file", File.String())
	assert.Equal(t, "dir", Directory.String())
}

func TestListing(t *testing.T) {
	nodes := []Node{
		NewNode("/tmp/t/a.txt", File),
		NewNode("/tmp/t/b", Directory),
	}
	l := NewListing("/tmp/t", nodes)

	t.Run("copies_input", func(t *testing.T) {
		nodes[0].Name = "changed"
		assert.Equal(t, []string{"a.txt", "b"}, l.Names())
	})

	t.Run("nodes_returns_copy", func(t *testing.T) {
		got := l.Nodes()
		got[1].Name = "changed"
		assert.Equal(t, []string{"a.txt", "b"}, l.Names())
	})

	t.Run("accessors", func(t *testing.T) {
		assert.Equal(t, "/tmp/t", l.Dir())
		assert.Equal(t, 2, l.Len())
		assert.True(t, l.Contains("b"))
		assert.False(t, l.Contains("c.txt"))
		n, ok := l.Find("b")
		assert.True(t, ok)
		assert.Equal(t, Directory, n.Kind)
	})

	t.Run("filter", func(t *testing.T) {
		dirs := l.Filter(Directory)
		assert.Len(t, dirs, 1)
		assert.Equal(t, "b", dirs[0].Name)
		assert.Len(t, l.Filter(File), 1)
	})

	t.Run("empty", func(t *testing.T) {
		empty := NewListing("/tmp/empty", nil)
		assert.Equal(t, 0, empty.Len())
		assert.Empty(t, empty.Names())
		assert.Nil(t, empty.Filter(File))
	})
}

func TestOpError(t *testing.T) {
	t.Run("with_cause", func(t *testing.T) {
		err := NewOpError("delete", "/tmp/x", ErrNotFound, fs.ErrNotExist)
		assert.Equal(t, "delete /tmp/x: no such file or directory: file does not exist", err.Error())
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.NotErrorIs(t, err, ErrIOFailure)
	})

	t.Run("without_cause", func(t *testing.T) {
		err := NewOpError("create", "/tmp/x", ErrEmptyName, nil)
		assert.Equal(t, "create /tmp/x: name is empty", err.Error())
		assert.ErrorIs(t, err, ErrEmptyName)
	})
}

func TestKindOf(t *testing.T) {
	assert.Nil(t, KindOf(nil))
	assert.Nil(t, KindOf(errors.New("other")))
	assert.Equal(t, ErrAlreadyExists, KindOf(NewOpError("create", "/x", ErrAlreadyExists, fs.ErrExist)))
	wrapped := errors.Join(errors.New("context"), ErrListAccess)
	assert.Equal(t, ErrListAccess, KindOf(wrapped))
}
