package files

import (
	"os"
	"time"
)

type FileInfoOption func(*FileInfo)

// FileInfo describes an in-memory DirEntry. It carries no timestamps;
// ModTime is always the zero time.
type FileInfo struct {
	DirEntry
	size int64
}

var _ os.FileInfo = (*FileInfo)(nil)

func NewFileInfo(entry DirEntry, o ...FileInfoOption) *FileInfo {
	info := &FileInfo{DirEntry: entry}
	for _, opt := range o {
		opt(info)
	}
	return info
}

// Size sets the byte size reported by the entry.
func Size(v int64) FileInfoOption {
	return func(info *FileInfo) {
		info.size = v
	}
}

func (f *FileInfo) Size() int64 {
	if f == nil {
		return 0
	}
	return f.size
}

func (f *FileInfo) Mode() os.FileMode {
	if f == nil {
		return 0
	}
	return f.mode
}

func (f *FileInfo) IsDir() bool {
	return f.Mode().IsDir()
}

func (f *FileInfo) Name() string {
	if f == nil {
		return ""
	}
	return f.name
}

func (*FileInfo) ModTime() time.Time { return time.Time{} }
func (*FileInfo) Sys() any           { return nil }
