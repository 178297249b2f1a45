package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/filetug/apollo/pkg/fstree"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newTreeCommand(a *app) *cobra.Command {
	var depth int
	var reveal string
	cmd := &cobra.Command{
		Use:   "tree [dir]",
		Short: "Show the directory tree, expanded to a depth",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := a.dirArg(args)
			if err != nil {
				return err
			}
			var treeOptions []fstree.TreeOption
			if a.cfg.SkipHidden {
				treeOptions = append(treeOptions, fstree.SkipHidden())
			}
			ctx := cmd.Context()
			tree, err := fstree.NewTree(ctx, a.store, root, treeOptions...)
			if err != nil {
				return err
			}
			log := componentLogger(a.log, "tree")
			unreadable := expandTree(ctx, log, tree, tree.Root(), depth)
			if reveal != "" {
				target, err := absPath(reveal)
				if err != nil {
					return err
				}
				if _, err = tree.Reveal(ctx, target); err != nil {
					return err
				}
			}
			return writeTree(cmd.OutOrStdout(), a.store.RootTitle(), tree, unreadable)
		},
	}
	cmd.Flags().IntVarP(&depth, "depth", "d", 1, "number of levels to expand")
	cmd.Flags().StringVar(&reveal, "reveal", "", "expand down to this directory and mark it")
	return cmd
}

// expandTree expands node and its descendants down to depth levels.
// Nodes that cannot be read are returned and left empty.
func expandTree(ctx context.Context, log *zerolog.Logger, tree *fstree.Tree, node *fstree.TreeNode, depth int) map[*fstree.TreeNode]bool {
	unreadable := make(map[*fstree.TreeNode]bool)
	var expand func(n *fstree.TreeNode, level int)
	expand = func(n *fstree.TreeNode, level int) {
		if level >= depth {
			return
		}
		if err := tree.Expand(ctx, n); err != nil {
			log.Warn().Err(err).Str("path", n.Path).Msg("directory not expanded")
			unreadable[n] = true
			return
		}
		for _, child := range n.Children() {
			expand(child, level+1)
		}
	}
	expand(node, 0)
	return unreadable
}

func writeTree(w io.Writer, title string, tree *fstree.Tree, unreadable map[*fstree.TreeNode]bool) error {
	var sb strings.Builder
	current := tree.Current()
	tree.Walk(func(n *fstree.TreeNode) bool {
		marker := "  "
		if n == current {
			marker = "> "
		}
		name := n.Name + "/"
		if n == tree.Root() {
			name = title + ":" + n.Path
		}
		sb.WriteString(marker + strings.Repeat("  ", n.Depth()) + name)
		if unreadable[n] {
			sb.WriteString(" (unreadable)")
		}
		sb.WriteByte('\n')
		return true
	})
	_, err := fmt.Fprint(w, sb.String())
	return err
}
