package files

// Listing is a snapshot of the immediate children of one directory.
// It is never updated; callers list again to observe changes.
type Listing struct {
	dir   string
	nodes []Node
}

func NewListing(dir string, nodes []Node) Listing {
	l := Listing{dir: dir}
	if len(nodes) > 0 {
		l.nodes = make([]Node, len(nodes))
		copy(l.nodes, nodes)
	}
	return l
}

func (l Listing) Dir() string {
	return l.dir
}

func (l Listing) Len() int {
	return len(l.nodes)
}

func (l Listing) Nodes() []Node {
	nodes := make([]Node, len(l.nodes))
	copy(nodes, l.nodes)
	return nodes
}

func (l Listing) Names() []string {
	names := make([]string, len(l.nodes))
	for i, n := range l.nodes {
		names[i] = n.Name
	}
	return names
}

// Filter returns the nodes of the given kind, keeping the listing order.
func (l Listing) Filter(kind Kind) []Node {
	var nodes []Node
	for _, n := range l.nodes {
		if n.Kind == kind {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

func (l Listing) Find(name string) (Node, bool) {
	for _, n := range l.nodes {
		if n.Name == name {
			return n, true
		}
	}
	return Node{}, false
}

func (l Listing) Contains(name string) bool {
	_, ok := l.Find(name)
	return ok
}
