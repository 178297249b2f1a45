package listing

import (
	"slices"
	"strings"

	"github.com/filetug/apollo/pkg/files"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// sortNodes orders nodes by name using the root collation, falling back to
// byte order so that distinct names never compare equal.
func sortNodes(nodes []files.Node) {
	col := collate.New(language.Und)
	slices.SortFunc(nodes, func(a, b files.Node) int {
		if c := col.CompareString(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
}
