package filesystem

import (
	"fmt"
	"path"
	"strings"

	"github.com/brettbedarf/fssim"
	"github.com/brettbedarf/fssim/config"
	"github.com/brettbedarf/fssim/internal/util"
)

// Result messages that are not errors
const (
	MsgEmptyDir      = "Directory is empty"
	MsgAlreadyAtRoot = "Already at root directory"
)

// FileSystem owns the node tree and tracks the current directory.
// It is not safe for concurrent use.
type FileSystem struct {
	cfg  *config.Config
	root *Node // Root of node tree
	cwd  *Node // Current directory; always a directory attached to root
}

var _ fssim.FileSystemOperator = (*FileSystem)(nil)

// NewFS creates an empty tree whose root is named cfg.RootName.
// A nil cfg uses the defaults.
func NewFS(cfg *config.Config) *FileSystem {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	root := NewDirNode(cfg.RootName, "")
	return &FileSystem{cfg: cfg, root: root, cwd: root}
}

// Root returns the root directory
func (fs *FileSystem) Root() *Node {
	return fs.root
}

// Cwd returns the current directory
func (fs *FileSystem) Cwd() *Node {
	return fs.cwd
}

// Ls lists the children of the directory at path, or of the current
// directory when path is empty. Directories are suffixed with "/".
func (fs *FileSystem) Ls(path string) (string, error) {
	logger := util.GetLogger("FS.Ls")

	target := fs.cwd
	if path != "" {
		node, ok := fs.resolve(path)
		if !ok {
			logger.Debug().Str("path", path).Msg("Path not found")
			return "", &fssim.OpError{Op: "ls", Name: path, Msg: "Path not found", Err: fssim.ErrNotFound}
		}
		target = node
	}
	if !target.IsDir() {
		return "", &fssim.OpError{Op: "ls", Name: path, Msg: fmt.Sprintf("'%s' is not a directory", path), Err: fssim.ErrNotADirectory}
	}

	children := target.Children()
	if len(children) == 0 {
		return MsgEmptyDir, nil
	}
	items := make([]string, 0, len(children))
	for _, child := range children {
		items = append(items, child.displayName())
	}
	logger.Trace().Str("dir", target.Path()).Int("entries", len(items)).Msg("Listed directory")
	return strings.Join(items, "\n"), nil
}

// Pwd returns the absolute path of the current directory
func (fs *FileSystem) Pwd() string {
	return fs.cwd.Path()
}

// Mkdir creates a directory in the current directory
func (fs *FileSystem) Mkdir(name string) (string, error) {
	if !validName(name) {
		return "", &fssim.OpError{Op: "mkdir", Name: name, Msg: "Invalid directory name", Err: fssim.ErrInvalidName}
	}
	node := NewDirNode(name, "")
	if err := fs.cwd.AddChild(node); err != nil {
		return "", err
	}
	logger := util.GetLogger("FS.Mkdir")
	logger.Debug().Str("path", node.Path()).Str("id", node.id).Msg("Created directory")
	return fmt.Sprintf("Directory '%s' created", name), nil
}

// Touch creates a file in the current directory
func (fs *FileSystem) Touch(name string) (string, error) {
	if !validName(name) {
		return "", &fssim.OpError{Op: "touch", Name: name, Msg: "Invalid file name", Err: fssim.ErrInvalidName}
	}
	node := NewFileNode(name, "")
	if err := fs.cwd.AddChild(node); err != nil {
		return "", err
	}
	logger := util.GetLogger("FS.Touch")
	logger.Debug().Str("path", node.Path()).Str("id", node.id).Msg("Created file")
	return fmt.Sprintf("File '%s' created", name), nil
}

// Cd changes the current directory. ".." at the root is a no-op and
// "", "/" and "~" go to the root.
func (fs *FileSystem) Cd(path string) (string, error) {
	switch path {
	case "..":
		if fs.cwd.parent == nil {
			return MsgAlreadyAtRoot, nil
		}
		fs.cwd = fs.cwd.parent
	case "", "/", "~":
		fs.cwd = fs.root
	default:
		target, ok := fs.resolve(path)
		if !ok {
			return "", &fssim.OpError{Op: "cd", Name: path, Msg: fmt.Sprintf("Directory '%s' not found", path), Err: fssim.ErrNotFound}
		}
		if !target.IsDir() {
			return "", &fssim.OpError{Op: "cd", Name: path, Msg: fmt.Sprintf("'%s' is not a directory", path), Err: fssim.ErrNotADirectory}
		}
		fs.cwd = target
	}
	return "Changed to: " + fs.Pwd(), nil
}

// Rm removes a direct child of the current directory. Non-empty directories
// require recursive; the tree is left untouched otherwise.
func (fs *FileSystem) Rm(name string, recursive bool) (string, error) {
	logger := util.GetLogger("FS.Rm")

	target, ok := fs.cwd.GetChild(name)
	if !ok {
		return "", &fssim.OpError{Op: "rm", Name: name, Msg: fmt.Sprintf("'%s' not found", name), Err: fssim.ErrNotFound}
	}
	if target.IsDir() && target.Len() > 0 && !recursive {
		return "", &fssim.OpError{
			Op:   "rm",
			Name: name,
			Msg:  fmt.Sprintf("Directory '%s' is not empty. Use 'rm -r %s' to remove recursively", name, name),
			Err:  fssim.ErrNotEmpty,
		}
	}

	removed := 0
	if recursive {
		removed = removeDescendants(target)
	}
	if _, err := fs.cwd.RemoveChild(name); err != nil {
		return "", err
	}
	logger.Debug().Str("name", name).Str("id", target.id).Int("descendants", removed).Msg("Removed node")

	if target.IsFile() {
		return fmt.Sprintf("File '%s' removed", name), nil
	}
	return fmt.Sprintf("Directory '%s' removed", name), nil
}

// removeDescendants detaches every descendant of n depth-first, children
// before their parents, and returns how many were detached
func removeDescendants(n *Node) int {
	count := 0
	for _, child := range n.Children() {
		count += removeDescendants(child)
		if _, err := n.RemoveChild(child.name); err == nil {
			count++
		}
	}
	return count
}

// Mv moves a direct child of the current directory into the directory at
// dest. The node keeps its identity and subtree.
func (fs *FileSystem) Mv(src, dest string) (string, error) {
	logger := util.GetLogger("FS.Mv")

	node, ok := fs.cwd.GetChild(src)
	if !ok {
		return "", &fssim.OpError{Op: "mv", Name: src, Msg: fmt.Sprintf("'%s' not found", src), Err: fssim.ErrNotFound}
	}
	destDir, ok := fs.resolve(dest)
	if !ok {
		return "", &fssim.OpError{Op: "mv", Name: dest, Msg: fmt.Sprintf("Destination '%s' not found", dest), Err: fssim.ErrNotFound}
	}
	if !destDir.IsDir() {
		return "", &fssim.OpError{Op: "mv", Name: dest, Msg: fmt.Sprintf("Destination '%s' is not a directory", dest), Err: fssim.ErrNotADirectory}
	}
	if destDir.isWithin(node) {
		return "", &fssim.OpError{Op: "mv", Name: src, Msg: fmt.Sprintf("Cannot move '%s' into itself", src), Err: fssim.ErrInvalidMove}
	}
	if _, exists := destDir.GetChild(node.name); exists {
		return "", &fssim.OpError{Op: "mv", Name: src, Msg: fmt.Sprintf("'%s' already exists in destination", node.name), Err: fssim.ErrAlreadyExists}
	}

	if _, err := fs.cwd.RemoveChild(src); err != nil {
		return "", err
	}
	if err := destDir.AddChild(node); err != nil {
		// put it back so the node is never left detached
		if restoreErr := fs.cwd.AddChild(node); restoreErr != nil {
			logger.Error().Err(restoreErr).Str("name", src).Msg("Failed to restore node after move failure")
		}
		return "", err
	}
	logger.Debug().Str("name", src).Str("to", destDir.Path()).Msg("Moved node")
	return fmt.Sprintf("Moved '%s' to '%s'", src, dest), nil
}

// AddDirNode recursively adds all missing directories starting at root
// in the request's path and returns the leaf.
// It is equivalent to calling `mkdir -p` from a shell and similarly will only create
// directories that do not already exist and will not error if the leaf already exists.
// The request UUID is only assigned to a newly created leaf.
func (fs *FileSystem) AddDirNode(req *fssim.DirCreateRequest) (*Node, error) {
	logger := util.GetLogger("AddDirNode")

	segments := splitPath(req.Path)
	cur := fs.root
	newCnt := 0
	// Traverse the path until we get to existing dir and make
	// any missing along the way
	for i, name := range segments {
		if child, ok := cur.GetChild(name); ok {
			if !child.IsDir() {
				return nil, &fssim.OpError{Op: "mkdir", Name: req.Path, Msg: fmt.Sprintf("'%s' is not a directory", child.Path()), Err: fssim.ErrNotADirectory}
			}
			cur = child
			continue
		}
		id := ""
		if i == len(segments)-1 {
			id = req.UUID
		}
		node := NewDirNode(name, id)
		if err := cur.AddChild(node); err != nil {
			return nil, err
		}
		newCnt++
		cur = node
	}
	if newCnt > 0 {
		logger.Debug().Str("path", req.Path).Int("created", newCnt).Msg("Created new dir(s)")
	}

	return cur, nil
}

// AddFileNode adds a new file node to the filesystem. It will add any missing
// directories in the path and return the newly created leaf node
// If a node already exists at the requested path, it will return an error
func (fs *FileSystem) AddFileNode(req *fssim.FileCreateRequest) (*Node, error) {
	logger := util.GetLogger("AddFileNode")

	segments := splitPath(req.Path)
	if len(segments) == 0 {
		return nil, &fssim.OpError{Op: "touch", Name: req.Path, Msg: "Invalid file name", Err: fssim.ErrInvalidName}
	}
	name := segments[len(segments)-1]

	parent := fs.root
	if len(segments) > 1 {
		// Implicit dir requests share the file request's path prefix
		dirReq := fssim.DirCreateRequest{NodeRequest: fssim.NodeRequest{
			Path: strings.Join(segments[:len(segments)-1], "/"),
			Kind: fssim.DirNodeKind,
		}}
		dNode, err := fs.AddDirNode(&dirReq)
		if err != nil {
			logger.Error().Err(err).Str("path", dirReq.Path).Msg("Failed to create file's ancestor directory(s)")
			return nil, err
		}
		parent = dNode
	}

	node := NewFileNode(name, req.UUID)
	if err := parent.AddChild(node); err != nil {
		return nil, &fssim.OpError{Op: "touch", Name: req.Path, Msg: fmt.Sprintf("'%s' already exists", req.Path), Err: fssim.ErrAlreadyExists}
	}
	logger.Debug().Str("path", node.Path()).Str("id", node.id).Msg("Added new file node")
	return node, nil
}

// splitPath cleans p as an absolute path and returns its segments.
// ".." cannot climb above the root.
func splitPath(p string) []string {
	cleaned := path.Clean("/" + strings.TrimSpace(p))
	if cleaned == "/" {
		return nil
	}
	return strings.Split(strings.TrimPrefix(cleaned, "/"), "/")
}

// validName reports whether name can be used for a new node
func validName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.Contains(name, "/")
}
