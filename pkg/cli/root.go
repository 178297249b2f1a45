// Package cli is a text front end over the navigation core.
// It owns everything the core does not: settings, logging, messages.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/filetug/apollo/pkg/files"
	"github.com/filetug/apollo/pkg/files/osfile"
	"github.com/filetug/apollo/pkg/fsutils"
	"github.com/filetug/apollo/pkg/listing"
	"github.com/filetug/apollo/pkg/profiling"
	"github.com/filetug/apollo/pkg/settings"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var newStore = func() files.Store {
	return osfile.NewStore()
}

var loadDotEnv = func() {
	_ = godotenv.Load()
}

type options struct {
	configPath string
	logLevel   string
	cpuProfile string
	memProfile string
}

type app struct {
	opts    options
	cfgPath string
	cfg     settings.Config
	store   files.Store
	lister  *listing.Service
	log     zerolog.Logger
	closers []func() error
}

func newRootCommand() (*cobra.Command, *app) {
	a := &app{log: zerolog.Nop()}
	cmd := &cobra.Command{
		Use:   "apollo",
		Short: "Browse and edit directories from the terminal",
		Long: `apollo lists directories, shows a lazily expanded directory tree,
keeps a set of pinned folders and creates, deletes and renames files.

Settings are read from $APOLLO_HOME/apollo.yaml (default ~/.apollo/apollo.yaml).`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&a.opts.configPath, "config", "", "settings file (default $APOLLO_HOME/apollo.yaml)")
	flags.StringVar(&a.opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&a.opts.cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	flags.StringVar(&a.opts.memProfile, "memprofile", "", "write memory profile to `file`")

	cmd.AddCommand(
		newLsCommand(a),
		newTreeCommand(a),
		newTouchCommand(a),
		newRmCommand(a),
		newMvCommand(a),
		newPinsCommand(a),
	)
	return cmd, a
}

func (a *app) setup(cmd *cobra.Command, _ []string) (err error) {
	loadDotEnv()

	a.cfgPath = a.opts.configPath
	if a.cfgPath == "" {
		a.cfgPath = settings.FilePath()
	}
	if a.cfg, err = settings.Load(a.cfgPath); err != nil {
		return err
	}

	level := a.cfg.LogLevel
	if a.opts.logLevel != "" {
		level = a.opts.logLevel
	}
	if a.log, err = newLogger(cmd.ErrOrStderr(), level); err != nil {
		return err
	}
	a.log.Debug().Str("settings", a.cfgPath).Msg("settings loaded")

	if a.opts.cpuProfile != "" {
		stop, err := profiling.DoCPUProfiling(a.opts.cpuProfile)
		if err != nil {
			return fmt.Errorf("failed to start cpu profiling: %w", err)
		}
		a.closers = append(a.closers, stop)
	}
	if a.opts.memProfile != "" {
		a.closers = append(a.closers, profiling.DoMemProfiling(a.opts.memProfile))
	}

	a.store = newStore()
	a.lister = listing.NewService(a.store)
	return nil
}

func (a *app) close() {
	for _, closer := range a.closers {
		if err := closer(); err != nil {
			a.log.Error().Err(err).Msg("failed to write profile")
		}
	}
	a.closers = nil
}

// dirArg resolves an optional directory argument, defaulting to the configured root.
func (a *app) dirArg(args []string) (string, error) {
	if len(args) == 0 || args[0] == "" {
		return a.cfg.Root, nil
	}
	return absPath(args[0])
}

func absPath(p string) (string, error) {
	return filepath.Abs(fsutils.ExpandHome(p))
}

func (a *app) saveSettings() error {
	if err := settings.Save(a.cfgPath, a.cfg); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Execute runs the command line and prints a message for a failed command.
func Execute() error {
	return execute(os.Args[1:], os.Stdout, os.Stderr)
}

func execute(args []string, stdout, stderr io.Writer) error {
	cmd, a := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.ExecuteContext(context.Background())
	a.close()
	if err != nil {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Error: "+describe(err))
	}
	return err
}

// describe turns a core error into a message for the user.
func describe(err error) string {
	var msg string
	switch files.KindOf(err) {
	case files.ErrInvalidRoot:
		msg = "not a directory that can be browsed"
	case files.ErrListAccess:
		msg = "permission denied"
	case files.ErrNotADirectory:
		msg = "not a directory"
	case files.ErrNotFound:
		msg = "no such file or directory"
	case files.ErrAlreadyExists:
		msg = "file already exists"
	case files.ErrEmptyName:
		msg = "name cannot be empty"
	case files.ErrIOFailure:
		msg = "operation failed"
	default:
		return err.Error()
	}
	var opErr *files.OpError
	if !errors.As(err, &opErr) {
		return msg
	}
	msg = opErr.Path + ": " + msg
	if opErr.Err != nil {
		msg += " (" + opErr.Err.Error() + ")"
	}
	return msg
}
