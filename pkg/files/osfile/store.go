package osfile

import (
	"context"
	"os"

	"github.com/filetug/apollo/pkg/files"
)

var osReadDir = os.ReadDir
var osHostname = os.Hostname
var osStat = os.Stat
var osLstat = os.Lstat
var osOpenFile = os.OpenFile
var osRemove = os.Remove
var osRename = os.Rename

var _ files.Store = (*Store)(nil)

// Store reads and mutates the local filesystem.
type Store struct {
	title string
}

func (s Store) RootTitle() string {
	return s.title
}

func (s Store) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osReadDir(name)
}

func (s Store) Stat(ctx context.Context, name string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osStat(name)
}

func (s Store) Lstat(ctx context.Context, name string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osLstat(name)
}

func (s Store) CreateFile(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := osOpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	return f.Close()
}

// Delete removes a file or an empty directory. os.Remove never recurses.
func (s Store) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return osRemove(path)
}

func (s Store) Rename(ctx context.Context, oldPath, newPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return osRename(oldPath, newPath)
}

func NewStore() *Store {
	store := Store{}
	var err error
	if store.title, err = osHostname(); err != nil {
		store.title = "localhost"
	}
	return &store
}
