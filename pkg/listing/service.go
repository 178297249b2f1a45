// Package listing produces directory snapshots and performs file mutations.
//
// The service holds no state besides its store: every call goes to the
// filesystem and nothing is cached, so callers list again after a mutation.
package listing

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/filetug/apollo/pkg/files"
)

var errInvalidName = errors.New("name must not contain a path separator")

type Service struct {
	store files.Store
}

func NewService(store files.Store) *Service {
	return &Service{store: store}
}

// List returns the immediate children of dir ordered by name.
func (s *Service) List(ctx context.Context, dir string) (files.Listing, error) {
	const op = "list"
	dir = filepath.Clean(dir)
	info, err := s.store.Stat(ctx, dir)
	if err != nil {
		return files.Listing{}, listError(op, dir, err)
	}
	if !info.IsDir() {
		return files.Listing{}, files.NewOpError(op, dir, files.ErrNotADirectory, nil)
	}
	entries, err := s.store.ReadDir(ctx, dir)
	if err != nil {
		return files.Listing{}, listError(op, dir, err)
	}
	nodes := make([]files.Node, 0, len(entries))
	for _, entry := range entries {
		nodes = append(nodes, s.entryNode(ctx, dir, entry))
	}
	sortNodes(nodes)
	return files.NewListing(dir, nodes), nil
}

func listError(op, dir string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist), isNotDir(err):
		return files.NewOpError(op, dir, files.ErrNotADirectory, err)
	case errors.Is(err, fs.ErrPermission):
		return files.NewOpError(op, dir, files.ErrListAccess, err)
	default:
		return files.NewOpError(op, dir, files.ErrIOFailure, err)
	}
}

// isNotDir reports ENOTDIR, returned when a path component is a regular file.
func isNotDir(err error) bool {
	return errors.Is(err, syscall.ENOTDIR)
}

func (s *Service) entryNode(ctx context.Context, dir string, entry os.DirEntry) files.Node {
	path := filepath.Join(dir, entry.Name())
	if entry.Type()&os.ModeSymlink != 0 {
		// Links are shown as what they point to; a dangling link is a file.
		if target, err := s.store.Stat(ctx, path); err == nil {
			return infoNode(path, target)
		}
		return files.NewNode(path, files.File)
	}
	if entry.IsDir() {
		return files.NewNode(path, files.Directory)
	}
	var size int64
	if info, err := entry.Info(); err == nil && info != nil {
		size = info.Size()
	}
	return files.NewNode(path, files.File, files.WithSize(size))
}

func infoNode(path string, info os.FileInfo) files.Node {
	if info.IsDir() {
		return files.NewNode(path, files.Directory)
	}
	return files.NewNode(path, files.File, files.WithSize(info.Size()))
}

// CreateFile creates an empty file named name inside dir.
func (s *Service) CreateFile(ctx context.Context, dir, name string) error {
	const op = "create"
	dir = filepath.Clean(dir)
	if strings.TrimSpace(name) == "" {
		return files.NewOpError(op, dir, files.ErrEmptyName, nil)
	}
	path := filepath.Join(dir, name)
	if !isPlainName(name) {
		return files.NewOpError(op, path, files.ErrIOFailure, errInvalidName)
	}
	if err := s.store.CreateFile(ctx, path); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return files.NewOpError(op, path, files.ErrAlreadyExists, err)
		}
		return files.NewOpError(op, path, files.ErrIOFailure, err)
	}
	return nil
}

// DeleteEntry removes a file or an empty directory.
// Non-empty directories are refused, there is no recursive delete.
func (s *Service) DeleteEntry(ctx context.Context, path string) error {
	const op = "delete"
	path = filepath.Clean(path)
	if _, err := s.store.Lstat(ctx, path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return files.NewOpError(op, path, files.ErrNotFound, err)
		}
		return files.NewOpError(op, path, files.ErrIOFailure, err)
	}
	if err := s.store.Delete(ctx, path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return files.NewOpError(op, path, files.ErrNotFound, err)
		}
		return files.NewOpError(op, path, files.ErrIOFailure, err)
	}
	return nil
}

// RenameEntry gives path a new name within the same directory.
// An existing destination is never overwritten.
func (s *Service) RenameEntry(ctx context.Context, path, newName string) error {
	const op = "rename"
	path = filepath.Clean(path)
	if strings.TrimSpace(newName) == "" {
		return files.NewOpError(op, path, files.ErrEmptyName, nil)
	}
	if !isPlainName(newName) {
		return files.NewOpError(op, path, files.ErrIOFailure, errInvalidName)
	}
	srcInfo, err := s.store.Lstat(ctx, path)
	if err != nil {
		return files.NewOpError(op, path, files.ErrIOFailure, err)
	}
	if newName == filepath.Base(path) {
		return nil
	}
	dest := filepath.Join(filepath.Dir(path), newName)
	destInfo, err := s.store.Lstat(ctx, dest)
	switch {
	case err == nil:
		// Case-only renames on case-insensitive filesystems find the source itself.
		if !os.SameFile(srcInfo, destInfo) {
			return files.NewOpError(op, path, files.ErrIOFailure, fs.ErrExist)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return files.NewOpError(op, path, files.ErrIOFailure, err)
	}
	if err = s.store.Rename(ctx, path, dest); err != nil {
		return files.NewOpError(op, path, files.ErrIOFailure, err)
	}
	return nil
}

// Exists reports whether path currently exists. A dangling link exists.
func (s *Service) Exists(ctx context.Context, path string) (bool, error) {
	path = filepath.Clean(path)
	if _, err := s.store.Lstat(ctx, path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, files.NewOpError("stat", path, files.ErrIOFailure, err)
	}
	return true, nil
}

// Stat observes a single entry, following a symlink to classify it.
func (s *Service) Stat(ctx context.Context, path string) (files.Node, error) {
	const op = "stat"
	path = filepath.Clean(path)
	info, err := s.store.Lstat(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return files.Node{}, files.NewOpError(op, path, files.ErrNotFound, err)
		}
		return files.Node{}, files.NewOpError(op, path, files.ErrIOFailure, err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		if target, statErr := s.store.Stat(ctx, path); statErr == nil {
			info = target
		}
	}
	return infoNode(path, info), nil
}

func isPlainName(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, "/"+string(filepath.Separator))
}
