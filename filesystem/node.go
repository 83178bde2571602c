package filesystem

import (
	"fmt"
	"slices"
	"strings"

	"github.com/brettbedarf/fssim"
	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v4"
)

// Node is a single directory or file entry in the tree.
//
// A directory exclusively owns the nodes in its children map while parent is
// only a back-reference. Files never allocate a children map.
type Node struct {
	name     string                    // Name of the node (last part of the path)
	id       string                    // UUID assigned at creation
	kind     fssim.NodeKind            // Directory or file
	parent   *Node                     // nil for the root and detached nodes
	children *xsync.Map[string, *Node] // child nodes by name; nil for files
}

var _ fssim.NodeInfo = (*Node)(nil)

// NewDirNode creates a detached directory node. A random UUID is used when id is empty.
//
// NOTE: Parent node is responsible for adding itself to the returned Node's
// parent ref when linking as its child
func NewDirNode(name, id string) *Node {
	node := newNode(name, id, fssim.DirNodeKind)
	node.children = xsync.NewMap[string, *Node]()
	return node
}

// NewFileNode creates a detached file node. A random UUID is used when id is empty.
func NewFileNode(name, id string) *Node {
	return newNode(name, id, fssim.FileNodeKind)
}

func newNode(name, id string, kind fssim.NodeKind) *Node {
	if id == "" {
		id = uuid.NewString()
	}
	return &Node{name: name, id: id, kind: kind}
}

// Name returns the node's name.
func (n *Node) Name() string {
	return n.name
}

// ID returns the node's UUID.
func (n *Node) ID() string {
	return n.id
}

func (n *Node) Kind() fssim.NodeKind {
	return n.kind
}

func (n *Node) IsDir() bool {
	return n.kind == fssim.DirNodeKind
}

func (n *Node) IsFile() bool {
	return n.kind == fssim.FileNodeKind
}

// Parent returns the owning directory or nil for the root and detached nodes
func (n *Node) Parent() *Node {
	return n.parent
}

// IsRoot reports whether the node has no parent
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// Path returns the absolute path of the node by walking parent links up to
// the root. The root (or any node without a parent) is "/".
func (n *Node) Path() string {
	if n.parent == nil {
		return "/"
	}
	var parts []string
	for cur := n; cur.parent != nil; cur = cur.parent {
		parts = append(parts, cur.name)
	}
	slices.Reverse(parts)
	return "/" + strings.Join(parts, "/")
}

// AddChild adds a child node to the node's children map
// and sets the child's parent to this node
func (n *Node) AddChild(child *Node) error {
	if !n.IsDir() {
		return &fssim.OpError{Op: "add", Name: child.name, Msg: "Cannot add child to a file", Err: fssim.ErrNotADirectory}
	}
	if _, loaded := n.children.LoadOrStore(child.name, child); loaded {
		return &fssim.OpError{Op: "add", Name: child.name, Msg: fmt.Sprintf("'%s' already exists", child.name), Err: fssim.ErrAlreadyExists}
	}
	child.parent = n
	return nil
}

// GetChild returns a child node. Always false for files.
func (n *Node) GetChild(name string) (child *Node, ok bool) {
	if !n.IsDir() {
		return nil, false
	}
	return n.children.Load(name)
}

// RemoveChild detaches the named child and hands it back to the caller
func (n *Node) RemoveChild(name string) (*Node, error) {
	if !n.IsDir() {
		return nil, &fssim.OpError{Op: "remove", Name: name, Msg: "Cannot remove child from a file", Err: fssim.ErrNotADirectory}
	}
	child, exists := n.children.LoadAndDelete(name)
	if !exists {
		return nil, &fssim.OpError{Op: "remove", Name: name, Msg: fmt.Sprintf("'%s' not found", name), Err: fssim.ErrNotFound}
	}
	child.parent = nil
	return child, nil
}

// Children returns the child nodes sorted by name; nil for files
func (n *Node) Children() []*Node {
	if !n.IsDir() {
		return nil
	}
	children := make([]*Node, 0, n.children.Size())
	n.children.Range(func(_ string, ch *Node) bool {
		children = append(children, ch)
		return true
	})
	slices.SortFunc(children, func(a, b *Node) int {
		return strings.Compare(a.name, b.name)
	})
	return children
}

// Len returns the number of children; 0 for files
func (n *Node) Len() int {
	if !n.IsDir() {
		return 0
	}
	return n.children.Size()
}

// displayName is the name with a trailing "/" for directories
func (n *Node) displayName() string {
	if n.IsDir() {
		return n.name + "/"
	}
	return n.name
}

// isWithin reports whether n is ancestor itself or one of its descendants
func (n *Node) isWithin(ancestor *Node) bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur == ancestor {
			return true
		}
	}
	return false
}
