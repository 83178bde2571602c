// Package fssim contains core domain types and interfaces for the in-memory
// file system simulator
package fssim

// NodeKind valid kinds are DirNodeKind "dir", FileNodeKind "file"
type NodeKind string

const (
	DirNodeKind  NodeKind = "dir"
	FileNodeKind NodeKind = "file"
)

// NodeInfo provides read-only access to node information for external consumers
type NodeInfo interface {
	// Name returns the node's name (last path component)
	Name() string

	// ID returns the node's unique identifier
	ID() string

	// Kind returns whether the node is a directory or a file
	Kind() NodeKind

	// Path returns the absolute path to the node; "/" for the root
	Path() string

	IsDir() bool
	IsFile() bool
}
