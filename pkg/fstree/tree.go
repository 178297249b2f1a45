// Package fstree keeps a lazily expanded tree of directories.
//
// Children of a node are read from the filesystem the first time the node is
// expanded and never before, so opening a tree at "/" costs one directory read.
package fstree

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/filetug/apollo/pkg/files"
	"github.com/filetug/apollo/pkg/listing"
)

// TreeNode is a directory in the tree.
type TreeNode struct {
	files.Node
	parent   *TreeNode
	children []*TreeNode
	expanded bool
}

func (n *TreeNode) Parent() *TreeNode {
	return n.parent
}

// Children returns the populated children. It is empty until Expand succeeds.
func (n *TreeNode) Children() []*TreeNode {
	children := make([]*TreeNode, len(n.children))
	copy(children, n.children)
	return children
}

func (n *TreeNode) IsExpanded() bool {
	return n.expanded
}

func (n *TreeNode) Depth() (depth int) {
	for p := n.parent; p != nil; p = p.parent {
		depth++
	}
	return
}

type TreeOption func(*Tree)

// SkipHidden leaves dot-prefixed directories out of the tree.
func SkipHidden() TreeOption {
	return func(t *Tree) {
		t.skipHidden = true
	}
}

type Tree struct {
	lister     *listing.Service
	root       *TreeNode
	current    *TreeNode
	skipHidden bool
}

// NewTree creates a tree rooted at rootPath.
// The root is not expanded and is the initial current node.
func NewTree(ctx context.Context, store files.Store, rootPath string, o ...TreeOption) (*Tree, error) {
	lister := listing.NewService(store)
	node, err := lister.Stat(ctx, rootPath)
	if err != nil {
		return nil, files.NewOpError("open", filepath.Clean(rootPath), files.ErrInvalidRoot, err)
	}
	if !node.IsDir() {
		return nil, files.NewOpError("open", node.Path, files.ErrInvalidRoot, files.ErrNotADirectory)
	}
	t := &Tree{lister: lister}
	for _, opt := range o {
		opt(t)
	}
	t.root = &TreeNode{Node: node}
	t.current = t.root
	return t, nil
}

func (t *Tree) Root() *TreeNode {
	return t.root
}

func (t *Tree) Current() *TreeNode {
	return t.current
}

// Select makes node the current one. It does not touch the filesystem.
func (t *Tree) Select(node *TreeNode) {
	if node != nil {
		t.current = node
	}
}

// Expand reads the directory children of node once.
// On failure the node keeps no children and stays collapsed so a later call retries.
func (t *Tree) Expand(ctx context.Context, node *TreeNode) error {
	if node == nil {
		return files.NewOpError("expand", "", files.ErrNotFound, nil)
	}
	if node.expanded {
		return nil
	}
	snapshot, err := t.lister.List(ctx, node.Path)
	if err != nil {
		node.children = nil
		return files.NewOpError("expand", node.Path, files.ErrListAccess, err)
	}
	dirs := snapshot.Filter(files.Directory)
	children := make([]*TreeNode, 0, len(dirs))
	for _, dir := range dirs {
		if t.skipHidden && strings.HasPrefix(dir.Name, ".") {
			continue
		}
		children = append(children, &TreeNode{Node: dir, parent: node})
	}
	node.children = children
	node.expanded = true
	return nil
}

// Collapse forgets the children of node; the next Expand reads them again.
// If the current node was below node, node becomes current.
func (t *Tree) Collapse(node *TreeNode) {
	if node == nil {
		return
	}
	for n := t.current; n != nil; n = n.parent {
		if n == node {
			t.current = node
			break
		}
	}
	node.children = nil
	node.expanded = false
}

// Reveal expands every directory from the root down to path and selects it.
func (t *Tree) Reveal(ctx context.Context, path string) (*TreeNode, error) {
	path = filepath.Clean(path)
	rel, err := filepath.Rel(t.root.Path, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, files.NewOpError("reveal", path, files.ErrNotFound, err)
	}
	node := t.root
	if rel != "." {
		for _, name := range strings.Split(rel, string(filepath.Separator)) {
			if err = t.Expand(ctx, node); err != nil {
				return nil, err
			}
			child := node.child(name)
			if child == nil {
				return nil, files.NewOpError("reveal", path, files.ErrNotFound, nil)
			}
			node = child
		}
	}
	t.Select(node)
	return node, nil
}

func (n *TreeNode) child(name string) *TreeNode {
	for _, c := range n.children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Walk visits the populated part of the tree depth first. It does no I/O.
// Returning false from fn skips the children of that node.
func (t *Tree) Walk(fn func(node *TreeNode) bool) {
	var walk func(n *TreeNode)
	walk = func(n *TreeNode) {
		if !fn(n) {
			return
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(t.root)
}
