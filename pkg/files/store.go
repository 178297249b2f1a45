package files

import (
	"context"
	"os"
)

//go:generate mockgen -destination=mock_store.go -package=files . Store

// Store is the filesystem boundary of the navigation core.
// Implementations must release every handle they open before returning.
type Store interface {
	RootTitle() string
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)
	// Stat follows symlinks.
	Stat(ctx context.Context, name string) (os.FileInfo, error)
	Lstat(ctx context.Context, name string) (os.FileInfo, error)
	// CreateFile creates an empty file and fails if the path already exists.
	CreateFile(ctx context.Context, path string) error
	// Delete removes a file or an empty directory. It never recurses.
	Delete(ctx context.Context, path string) error
	Rename(ctx context.Context, oldPath, newPath string) error
}
