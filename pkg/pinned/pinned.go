// Package pinned holds the shortcut folders shown next to the tree.
package pinned

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"github.com/filetug/apollo/pkg/files"
)

// Set is an ordered set of directory paths without duplicates.
// Paths are compared after filepath.Clean.
type Set struct {
	paths []string
}

func New(paths ...string) *Set {
	s := &Set{}
	for _, p := range paths {
		s.Add(p)
	}
	return s
}

// Defaults returns the conventional per-user shortcut folders under home.
func Defaults(home string) []string {
	return []string{
		filepath.Join(home, "Downloads"),
		filepath.Join(home, "Desktop"),
		filepath.Join(home, "Pictures"),
	}
}

func normalize(path string) (string, bool) {
	if strings.TrimSpace(path) == "" {
		return "", false
	}
	return filepath.Clean(path), true
}

// Add appends path unless it is blank or already pinned.
func (s *Set) Add(path string) bool {
	p, ok := normalize(path)
	if !ok || slices.Contains(s.paths, p) {
		return false
	}
	s.paths = append(s.paths, p)
	return true
}

func (s *Set) Remove(path string) bool {
	p, ok := normalize(path)
	if !ok {
		return false
	}
	i := slices.Index(s.paths, p)
	if i < 0 {
		return false
	}
	s.paths = slices.Delete(s.paths, i, i+1)
	return true
}

func (s *Set) Contains(path string) bool {
	p, ok := normalize(path)
	return ok && slices.Contains(s.paths, p)
}

func (s *Set) Len() int {
	return len(s.paths)
}

func (s *Set) Paths() []string {
	return slices.Clone(s.paths)
}

// Available returns the pinned paths that are directories right now.
// Missing or unreadable ones are skipped, not reported.
func (s *Set) Available(ctx context.Context, store files.Store) []string {
	var available []string
	for _, p := range s.paths {
		info, err := store.Stat(ctx, p)
		if err != nil || !info.IsDir() {
			continue
		}
		available = append(available, p)
	}
	return available
}
