package cli

import (
	"fmt"
	"slices"

	"github.com/filetug/apollo/pkg/pinned"
	"github.com/spf13/cobra"
)

func newPinsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pins",
		Short: "Show pinned folders; folders that are missing are marked with !",
		Args:  cobra.NoArgs,
		RunE:  a.listPins,
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: cmd.Short,
			Args:  cobra.NoArgs,
			RunE:  a.listPins,
		},
		&cobra.Command{
			Use:   "add <path>",
			Short: "Pin a folder",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.updatePins(cmd, args[0], (*pinned.Set).Add, "pinned", "already pinned")
			},
		},
		&cobra.Command{
			Use:   "rm <path>",
			Short: "Unpin a folder",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.updatePins(cmd, args[0], (*pinned.Set).Remove, "unpinned", "not pinned")
			},
		},
	)
	return cmd
}

func (a *app) listPins(cmd *cobra.Command, _ []string) error {
	set := pinned.New(a.cfg.Pinned...)
	available := set.Available(cmd.Context(), a.store)
	out := cmd.OutOrStdout()
	for _, p := range set.Paths() {
		marker := "  "
		if !slices.Contains(available, p) {
			marker = "! "
		}
		if _, err := fmt.Fprintln(out, marker+p); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) updatePins(cmd *cobra.Command, arg string, update func(*pinned.Set, string) bool, done, unchanged string) error {
	path, err := absPath(arg)
	if err != nil {
		return err
	}
	set := pinned.New(a.cfg.Pinned...)
	if !update(set, path) {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), unchanged+": "+path)
		return err
	}
	a.cfg.Pinned = set.Paths()
	if err = a.saveSettings(); err != nil {
		return err
	}
	componentLogger(a.log, "pins").Debug().Str("path", path).Msg(done)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), done+": "+path)
	return err
}
