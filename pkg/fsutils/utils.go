package fsutils

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Decoder decodes
type Decoder interface {
	Decode(o any) error
}

var osUserHomeDir = os.UserHomeDir

// ReadFile decodes filePath into o. A missing file is not an error unless required.
func ReadFile(filePath string, required bool, o any, newDecoder func(r io.Reader) Decoder) (err error) {
	var file *os.File
	if file, err = os.Open(filePath); err != nil {
		if os.IsNotExist(err) && !required {
			err = nil
		}
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	return newDecoder(file).Decode(o)
}

// ExpandHome expands leading ~ to the user's home directory.
func ExpandHome(p string) string {
	if p == "" {
		return p
	}
	if strings.HasPrefix(p, "~/") || p == "~" {
		home, err := osUserHomeDir()
		if err == nil {
			if p == "~" {
				return home
			}
			return filepath.Join(home, strings.TrimPrefix(p, "~/"))
		}
	}
	return p
}

// CollapseHome replaces the user's home directory prefix with ~.
func CollapseHome(p string) string {
	if p == "" {
		return p
	}
	homeDir, err := osUserHomeDir()
	if err != nil || homeDir == "" {
		return p
	}
	cleanHome := filepath.Clean(homeDir)
	cleanPath := filepath.Clean(p)
	if cleanPath == cleanHome {
		return "~"
	}
	homePrefix := cleanHome + string(filepath.Separator)
	if strings.HasPrefix(cleanPath, homePrefix) {
		return "~/" + filepath.ToSlash(strings.TrimPrefix(cleanPath, homePrefix))
	}
	return p
}
