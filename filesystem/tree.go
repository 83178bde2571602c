package filesystem

import (
	"strings"

	"github.com/brettbedarf/fssim/internal/util"
)

// Box-drawing pieces used by [FileSystem.Tree]
const (
	branchConnector = "├── "
	lastConnector   = "└── "
	branchIndent    = "│   "
	lastIndent      = "    "
)

// Tree renders the current directory's subtree, sorted by name at every
// level. Children deeper than maxDepth are omitted entirely; a negative
// maxDepth renders everything and 0 renders just the header line.
func (fs *FileSystem) Tree(maxDepth int) string {
	logger := util.GetLogger("FS.Tree")
	logger.Trace().Str("dir", fs.cwd.Path()).Int("maxDepth", maxDepth).Msg("Rendering tree")

	var b strings.Builder
	b.WriteString(fs.cwd.displayName())
	renderChildren(&b, fs.cwd, "", 1, maxDepth)
	return b.String()
}

func renderChildren(b *strings.Builder, n *Node, prefix string, depth, maxDepth int) {
	if maxDepth >= 0 && depth > maxDepth {
		return
	}
	children := n.Children()
	for i, child := range children {
		connector, indent := branchConnector, branchIndent
		if i == len(children)-1 {
			connector, indent = lastConnector, lastIndent
		}
		b.WriteByte('\n')
		b.WriteString(prefix)
		b.WriteString(connector)
		b.WriteString(child.displayName())
		if child.IsDir() {
			renderChildren(b, child, prefix+indent, depth+1, maxDepth)
		}
	}
}
