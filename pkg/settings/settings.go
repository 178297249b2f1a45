// Package settings loads and saves the user's apollo.yaml.
package settings

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/filetug/apollo/pkg/fsutils"
	"github.com/filetug/apollo/pkg/pinned"
	"gopkg.in/yaml.v3"
)

const (
	defaultDir = "~/.apollo"
	fileName   = "apollo.yaml"
	// EnvHome overrides the settings directory.
	EnvHome = "APOLLO_HOME"
)

type View string

const (
	ListView View = "list"
	GridView View = "grid"
)

var ErrUnknownView = errors.New("unknown view")

func ParseView(s string) (View, error) {
	switch v := View(s); v {
	case ListView, GridView:
		return v, nil
	default:
		return "", fmt.Errorf("%w: %q (expected %q or %q)", ErrUnknownView, s, ListView, GridView)
	}
}

// Config holds paths with ~ already expanded.
type Config struct {
	Root       string
	Pinned     []string
	SkipHidden bool
	View       View
	LogLevel   string
}

type config struct {
	Root       string   `yaml:"root,omitempty"`
	Pinned     []string `yaml:"pinned"`
	SkipHidden bool     `yaml:"skip_hidden,omitempty"`
	View       string   `yaml:"view,omitempty"`
	LogLevel   string   `yaml:"log_level,omitempty"`
}

var osGetenv = os.Getenv
var yamlMarshal = yaml.Marshal

func Dir() string {
	if dir := osGetenv(EnvHome); dir != "" {
		return fsutils.ExpandHome(dir)
	}
	return fsutils.ExpandHome(defaultDir)
}

func FilePath() string {
	return filepath.Join(Dir(), fileName)
}

func Default() Config {
	home := fsutils.ExpandHome("~")
	return Config{
		Root:     home,
		Pinned:   pinned.Defaults(home),
		View:     ListView,
		LogLevel: "info",
	}
}

func newDecoder(r io.Reader) fsutils.Decoder {
	return yaml.NewDecoder(r)
}

// Load reads the settings file. A missing or empty file yields Default().
func Load(path string) (Config, error) {
	var persisted config
	err := fsutils.ReadFile(path, true, &persisted, newDecoder)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, io.EOF) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg := Default()
	if persisted.Root != "" {
		cfg.Root = fsutils.ExpandHome(persisted.Root)
	}
	if persisted.Pinned != nil {
		set := pinned.New()
		for _, p := range persisted.Pinned {
			set.Add(fsutils.ExpandHome(p))
		}
		cfg.Pinned = set.Paths()
	}
	cfg.SkipHidden = persisted.SkipHidden
	if persisted.View != "" {
		if cfg.View, err = ParseView(persisted.View); err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", path, err)
		}
	}
	if persisted.LogLevel != "" {
		cfg.LogLevel = persisted.LogLevel
	}
	return cfg, nil
}

// Save writes cfg to path, storing home-relative paths with ~.
func Save(path string, cfg Config) error {
	persisted := config{
		Root:       fsutils.CollapseHome(cfg.Root),
		Pinned:     make([]string, 0, len(cfg.Pinned)),
		SkipHidden: cfg.SkipHidden,
		View:       string(cfg.View),
		LogLevel:   cfg.LogLevel,
	}
	for _, p := range cfg.Pinned {
		persisted.Pinned = append(persisted.Pinned, fsutils.CollapseHome(p))
	}
	data, err := yamlMarshal(persisted)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
