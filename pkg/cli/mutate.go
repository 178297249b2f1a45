package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"
)

// relist prints the directory again after a change; the core keeps no snapshot to refresh.
func (a *app) relist(cmd *cobra.Command, dir string) error {
	l, err := a.lister.List(cmd.Context(), dir)
	if err != nil {
		return err
	}
	return writeListing(cmd.OutOrStdout(), l, a.cfg.View, 80)
}

func newTouchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "touch <dir> <name>",
		Short: "Create an empty file in a directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := absPath(args[0])
			if err != nil {
				return err
			}
			if err = a.lister.CreateFile(cmd.Context(), dir, args[1]); err != nil {
				return err
			}
			componentLogger(a.log, "files").Info().Str("dir", dir).Str("name", args[1]).Msg("file created")
			return a.relist(cmd, dir)
		},
	}
}

func newRmCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <path>",
		Short: "Delete a file or an empty directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := absPath(args[0])
			if err != nil {
				return err
			}
			if err = a.lister.DeleteEntry(cmd.Context(), path); err != nil {
				return err
			}
			componentLogger(a.log, "files").Info().Str("path", path).Msg("entry deleted")
			return a.relist(cmd, filepath.Dir(path))
		},
	}
}

func newMvCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mv <path> <new-name>",
		Short: "Rename a file or directory in place",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := absPath(args[0])
			if err != nil {
				return err
			}
			if err = a.lister.RenameEntry(cmd.Context(), path, args[1]); err != nil {
				return err
			}
			componentLogger(a.log, "files").Info().Str("path", path).Str("name", args[1]).Msg("entry renamed")
			return a.relist(cmd, filepath.Dir(path))
		},
	}
}
