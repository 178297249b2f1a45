package files

import (
	"path/filepath"
)

type Kind int

const (
	File Kind = iota
	Directory
)

func (k Kind) String() string {
	if k == Directory {
		return "dir"
	}
	return "file"
}

// Node is a filesystem entry as it was observed. It holds no handle and
// does not track whether the entry still exists.
type Node struct {
	Path string
	Name string
	Kind Kind
	Size int64
}

type NodeOption func(*Node)

func WithSize(size int64) NodeOption {
	return func(n *Node) {
		n.Size = size
	}
}

func NewNode(path string, kind Kind, o ...NodeOption) Node {
	path = filepath.Clean(path)
	node := Node{
		Path: path,
		Name: filepath.Base(path),
		Kind: kind,
	}
	for _, opt := range o {
		opt(&node)
	}
	return node
}

func (n Node) IsDir() bool {
	return n.Kind == Directory
}

// Parent returns the directory that contains the node.
func (n Node) Parent() string {
	return filepath.Dir(n.Path)
}

func (n Node) String() string {
	if n.Kind == Directory {
		return n.Path + string(filepath.Separator)
	}
	return n.Path
}
