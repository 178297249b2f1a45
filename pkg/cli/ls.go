package cli

import (
	"github.com/filetug/apollo/pkg/settings"
	"github.com/spf13/cobra"
)

func newLsCommand(a *app) *cobra.Command {
	var grid, list bool
	var lineWidth int
	cmd := &cobra.Command{
		Use:   "ls [dir]",
		Short: "List the entries of a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := a.dirArg(args)
			if err != nil {
				return err
			}
			l, err := a.lister.List(cmd.Context(), dir)
			if err != nil {
				return err
			}
			view := a.cfg.View
			switch {
			case grid:
				view = settings.GridView
			case list:
				view = settings.ListView
			}
			return writeListing(cmd.OutOrStdout(), l, view, lineWidth)
		},
	}
	cmd.Flags().BoolVarP(&grid, "grid", "g", false, "show names in columns")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "show one entry per line with kind and size")
	cmd.Flags().IntVarP(&lineWidth, "width", "w", 80, "line width for the grid view")
	cmd.MarkFlagsMutuallyExclusive("grid", "list")
	return cmd
}
