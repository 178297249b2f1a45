package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/filetug/apollo/pkg/files"
	"github.com/filetug/apollo/pkg/fsutils"
	"github.com/filetug/apollo/pkg/settings"
	"golang.org/x/text/width"
)

func writeListing(w io.Writer, l files.Listing, view settings.View, lineWidth int) error {
	if view == settings.GridView {
		return writeGrid(w, l, lineWidth)
	}
	return writeList(w, l)
}

func displayName(n files.Node) string {
	if n.IsDir() {
		return n.Name + "/"
	}
	return n.Name
}

func writeList(w io.Writer, l files.Listing) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, n := range l.Nodes() {
		size := "-"
		if !n.IsDir() {
			size = fsutils.ShortSize(n.Size)
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", n.Kind, size, displayName(n)); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// cellWidth counts East Asian wide and fullwidth runes as two columns.
func cellWidth(s string) (n int) {
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return
}

// writeGrid prints names row by row in as many columns as fit lineWidth.
func writeGrid(w io.Writer, l files.Listing, lineWidth int) error {
	nodes := l.Nodes()
	if len(nodes) == 0 {
		return nil
	}
	names := make([]string, len(nodes))
	colWidth := 0
	for i, n := range nodes {
		names[i] = displayName(n)
		colWidth = max(colWidth, cellWidth(names[i]))
	}
	colWidth += 2
	cols := max(1, lineWidth/colWidth)

	var sb strings.Builder
	for i, name := range names {
		sb.WriteString(name)
		if (i+1)%cols == 0 || i == len(names)-1 {
			sb.WriteByte('\n')
			continue
		}
		sb.WriteString(strings.Repeat(" ", colWidth-cellWidth(name)))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
