package filesystem

import "strings"

// resolve turns an absolute or relative path into a node.
//
// Absolute paths start at the root, anything else at the current directory.
// Empty and "." segments are skipped and ".." stops at the root. Any other
// segment must name a child of a directory or the whole resolution fails.
func (fs *FileSystem) resolve(path string) (*Node, bool) {
	cur := fs.cwd
	if strings.HasPrefix(path, "/") {
		cur = fs.root
	}
	for _, seg := range strings.Split(path, "/") {
		switch seg {
		case "", ".":
			continue
		case "..":
			if cur.parent != nil {
				cur = cur.parent
			}
		default:
			child, ok := cur.GetChild(seg)
			if !ok {
				return nil, false
			}
			cur = child
		}
	}
	return cur, true
}
