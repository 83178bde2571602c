package filesystem

import (
	"strings"
	"testing"

	"github.com/brettbedarf/fssim"
	"github.com/brettbedarf/fssim/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestConfig() *config.Config {
	return config.NewDefaultConfig()
}

// mustRun fails the test if op returned an error and hands back the result
func mustRun(t *testing.T, res string, err error) string {
	t.Helper()
	require.NoError(t, err)
	return res
}

// createTree builds a tree from paths relative to the root; entries ending
// in "/" are directories
func createTree(t *testing.T, fs *FileSystem, paths ...string) {
	t.Helper()
	for _, p := range paths {
		if strings.HasSuffix(p, "/") {
			_, err := fs.AddDirNode(&fssim.DirCreateRequest{NodeRequest: fssim.NodeRequest{Path: p}})
			require.NoError(t, err)
			continue
		}
		_, err := fs.AddFileNode(&fssim.FileCreateRequest{NodeRequest: fssim.NodeRequest{Path: p}})
		require.NoError(t, err)
	}
}

func TestNewFS(t *testing.T) {
	t.Parallel()

	fs := NewFS(createTestConfig())

	require.NotNil(t, fs)
	assert.Same(t, fs.Root(), fs.Cwd())
	assert.Equal(t, config.DefaultRootName, fs.Root().Name())
	assert.True(t, fs.Root().IsDir())
	assert.Equal(t, "/", fs.Pwd())
}

func TestNewFS_NilConfig(t *testing.T) {
	t.Parallel()

	fs := NewFS(nil)
	assert.Equal(t, config.DefaultRootName, fs.Root().Name())
}

func TestFileSystem_Mkdir(t *testing.T) {
	t.Parallel()

	fs := NewFS(createTestConfig())

	res, err := fs.Mkdir("docs")
	require.NoError(t, err)
	assert.Equal(t, "Directory 'docs' created", res)

	node, ok := fs.Root().GetChild("docs")
	require.True(t, ok)
	assert.True(t, node.IsDir())
	assert.Same(t, fs.Root(), node.Parent())
}

func TestFileSystem_Mkdir_Duplicate(t *testing.T) {
	t.Parallel()

	fs := NewFS(createTestConfig())
	mustRun(t, fs.Touch("docs"))

	_, err := fs.Mkdir("docs")
	require.Error(t, err)
	assert.ErrorIs(t, err, fssim.ErrAlreadyExists)
	assert.Equal(t, "'docs' already exists", err.Error())
}

func TestFileSystem_CreateInvalidNames(t *testing.T) {
	t.Parallel()

	names := []string{"", "a/b", "/", ".", ".."}
	for _, name := range names {
		t.Run("mkdir_"+name, func(t *testing.T) {
			t.Parallel()
			fs := NewFS(createTestConfig())
			_, err := fs.Mkdir(name)
			require.Error(t, err)
			assert.ErrorIs(t, err, fssim.ErrInvalidName)
			assert.Equal(t, "Invalid directory name", err.Error())
			assert.Equal(t, 0, fs.Root().Len())
		})
		t.Run("touch_"+name, func(t *testing.T) {
			t.Parallel()
			fs := NewFS(createTestConfig())
			_, err := fs.Touch(name)
			require.Error(t, err)
			assert.ErrorIs(t, err, fssim.ErrInvalidName)
			assert.Equal(t, "Invalid file name", err.Error())
			assert.Equal(t, 0, fs.Root().Len())
		})
	}
}

func TestFileSystem_Touch(t *testing.T) {
	t.Parallel()

	fs := NewFS(createTestConfig())

	res, err := fs.Touch("a.txt")
	require.NoError(t, err)
	assert.Equal(t, "File 'a.txt' created", res)

	node, ok := fs.Root().GetChild("a.txt")
	require.True(t, ok)
	assert.True(t, node.IsFile())

	_, err = fs.Touch("a.txt")
	assert.ErrorIs(t, err, fssim.ErrAlreadyExists)
}

func TestFileSystem_Ls(t *testing.T) {
	t.Parallel()

	fs := NewFS(createTestConfig())
	createTree(t, fs, "b.txt", "a/", "c/x.txt", "B")

	res, err := fs.Ls("")
	require.NoError(t, err)
	assert.Equal(t, "B\na/\nb.txt\nc/", res)

	res, err = fs.Ls("c")
	require.NoError(t, err)
	assert.Equal(t, "x.txt", res)

	res, err = fs.Ls("/c/..")
	require.NoError(t, err)
	assert.Equal(t, "B\na/\nb.txt\nc/", res)
}

func TestFileSystem_Ls_Empty(t *testing.T) {
	t.Parallel()

	fs := NewFS(createTestConfig())
	assert.Equal(t, MsgEmptyDir, mustRun(t, fs.Ls("")))

	mustRun(t, fs.Mkdir("fresh"))
	assert.Equal(t, "Directory is empty", mustRun(t, fs.Ls("fresh")))
}

func TestFileSystem_Ls_Errors(t *testing.T) {
	t.Parallel()

	fs := NewFS(createTestConfig())
	createTree(t, fs, "file.txt")

	_, err := fs.Ls("missing")
	assert.ErrorIs(t, err, fssim.ErrNotFound)
	assert.Equal(t, "Path not found", err.Error())

	_, err = fs.Ls("file.txt")
	assert.ErrorIs(t, err, fssim.ErrNotADirectory)
	assert.Equal(t, "'file.txt' is not a directory", err.Error())

	_, err = fs.Ls("file.txt/x")
	assert.ErrorIs(t, err, fssim.ErrNotFound, "resolving through a file must fail")
}

func TestFileSystem_Cd(t *testing.T) {
	t.Parallel()

	fs := NewFS(createTestConfig())
	createTree(t, fs, "a/b/c/")

	res, err := fs.Cd("a/b")
	require.NoError(t, err)
	assert.Equal(t, "Changed to: /a/b", res)
	assert.Equal(t, "/a/b", fs.Pwd())

	assert.Equal(t, "Changed to: /a/b/c", mustRun(t, fs.Cd("./c")))
	assert.Equal(t, "Changed to: /a/b", mustRun(t, fs.Cd("..")))
	assert.Equal(t, "Changed to: /a/b/c", mustRun(t, fs.Cd("/a/b/c")))
	assert.Equal(t, "Changed to: /a", mustRun(t, fs.Cd("../..")))
	assert.Equal(t, "Changed to: /", mustRun(t, fs.Cd("~")))
	mustRun(t, fs.Cd("a"))
	assert.Equal(t, "Changed to: /", mustRun(t, fs.Cd("/")))
	mustRun(t, fs.Cd("a"))
	assert.Equal(t, "Changed to: /", mustRun(t, fs.Cd("")))
}

func TestFileSystem_Cd_Errors(t *testing.T) {
	t.Parallel()

	fs := NewFS(createTestConfig())
	createTree(t, fs, "a/", "f.txt")

	_, err := fs.Cd("nope")
	assert.ErrorIs(t, err, fssim.ErrNotFound)
	assert.Equal(t, "Directory 'nope' not found", err.Error())

	_, err = fs.Cd("f.txt")
	assert.ErrorIs(t, err, fssim.ErrNotADirectory)
	assert.Equal(t, "'f.txt' is not a directory", err.Error())

	assert.Equal(t, "/", fs.Pwd(), "failed cd must not move")
}

func TestFileSystem_Cd_ParentClampsAtRoot(t *testing.T) {
	t.Parallel()

	fs := NewFS(createTestConfig())
	createTree(t, fs, "x/y/z/")
	mustRun(t, fs.Cd("/x/y/z"))

	for range 3 {
		mustRun(t, fs.Cd(".."))
	}
	assert.Equal(t, "/", fs.Pwd())

	res, err := fs.Cd("..")
	require.NoError(t, err)
	assert.Equal(t, MsgAlreadyAtRoot, res)
	assert.Equal(t, "/", fs.Pwd())

	// ".." inside a longer path clamps silently too
	assert.Equal(t, "Changed to: /x", mustRun(t, fs.Cd("../../../x")))
}

func TestFileSystem_MkdirCdPwd(t *testing.T) {
	t.Parallel()

	fs := NewFS(createTestConfig())
	for _, name := range []string{"one", "two words?", "ünï", "3"} {
		prev := fs.Pwd()
		mustRun(t, fs.Mkdir(name))
		mustRun(t, fs.Cd(name))
		want := prev + "/" + name
		if prev == "/" {
			want = "/" + name
		}
		assert.Equal(t, want, fs.Pwd())
	}
}

func TestFileSystem_Rm_File(t *testing.T) {
	t.Parallel()

	fs := NewFS(createTestConfig())
	createTree(t, fs, "f.txt")

	res, err := fs.Rm("f.txt", false)
	require.NoError(t, err)
	assert.Equal(t, "File 'f.txt' removed", res)
	assert.Equal(t, 0, fs.Root().Len())
}

func TestFileSystem_Rm_EmptyDir(t *testing.T) {
	t.Parallel()

	fs := NewFS(createTestConfig())
	createTree(t, fs, "d/")

	res, err := fs.Rm("d", false)
	require.NoError(t, err)
	assert.Equal(t, "Directory 'd' removed", res)
}

func TestFileSystem_Rm_NotFound(t *testing.T) {
	t.Parallel()

	fs := NewFS(createTestConfig())
	createTree(t, fs, "d/f.txt")

	_, err := fs.Rm("ghost", true)
	assert.ErrorIs(t, err, fssim.ErrNotFound)
	assert.Equal(t, "'ghost' not found", err.Error())

	// only direct children are considered, never paths
	_, err = fs.Rm("d/f.txt", false)
	assert.ErrorIs(t, err, fssim.ErrNotFound)
}

func TestFileSystem_Rm_NonEmptyWithoutRecursive(t *testing.T) {
	t.Parallel()

	fs := NewFS(createTestConfig())
	createTree(t, fs, "d/sub/f.txt", "d/g.txt")
	before := fs.Tree(fssim.NoDepthLimit)

	for range 2 {
		_, err := fs.Rm("d", false)
		require.Error(t, err)
		assert.ErrorIs(t, err, fssim.ErrNotEmpty)
		assert.Equal(t, "Directory 'd' is not empty. Use 'rm -r d' to remove recursively", err.Error())
	}
	assert.Equal(t, before, fs.Tree(fssim.NoDepthLimit), "failed rm must not mutate the tree")
}

func TestFileSystem_Rm_Recursive(t *testing.T) {
	t.Parallel()

	fs := NewFS(createTestConfig())
	createTree(t, fs, "d/sub/deep/f.txt", "d/g.txt", "keep.txt")
	d, _ := fs.Root().GetChild("d")
	sub, _ := d.GetChild("sub")
	deep, _ := sub.GetChild("deep")
	f, _ := deep.GetChild("f.txt")

	res, err := fs.Rm("d", true)
	require.NoError(t, err)
	assert.Equal(t, "Directory 'd' removed", res)

	assert.Equal(t, "keep.txt", mustRun(t, fs.Ls("")))
	for _, n := range []*Node{d, sub, deep, f} {
		assert.Nil(t, n.Parent(), "%s must be detached", n.Name())
		assert.Equal(t, 0, n.Len(), "%s must have no children left", n.Name())
	}
}

func TestFileSystem_Rm_RecursiveFile(t *testing.T) {
	t.Parallel()

	fs := NewFS(createTestConfig())
	createTree(t, fs, "f.txt")

	assert.Equal(t, "File 'f.txt' removed", mustRun(t, fs.Rm("f.txt", true)))
}

func TestFileSystem_Mv(t *testing.T) {
	t.Parallel()

	fs := NewFS(createTestConfig())
	createTree(t, fs, "a/inner.txt", "b/")
	a, _ := fs.Root().GetChild("a")

	res, err := fs.Mv("a", "b/")
	require.NoError(t, err)
	assert.Equal(t, "Moved 'a' to 'b/'", res)

	assert.Equal(t, "b/", mustRun(t, fs.Ls("")))
	mustRun(t, fs.Cd("b"))
	assert.Equal(t, "a/", mustRun(t, fs.Ls("")))

	moved, ok := fs.Cwd().GetChild("a")
	require.True(t, ok)
	assert.Same(t, a, moved, "mv must re-parent the same node")
	assert.Equal(t, "/b/a/inner.txt", resolvedPath(t, fs, "a/inner.txt"))
}

// resolvedPath returns the absolute path of the node p resolves to
func resolvedPath(t *testing.T, fs *FileSystem, p string) string {
	t.Helper()
	node, ok := fs.resolve(p)
	require.True(t, ok, "path %q must resolve", p)
	return node.Path()
}

func TestFileSystem_Mv_FileUpwards(t *testing.T) {
	t.Parallel()

	fs := NewFS(createTestConfig())
	createTree(t, fs, "a/b/f.txt")
	mustRun(t, fs.Cd("a/b"))

	assert.Equal(t, "Moved 'f.txt' to '/'", mustRun(t, fs.Mv("f.txt", "/")))
	assert.Equal(t, MsgEmptyDir, mustRun(t, fs.Ls("")))
	assert.Equal(t, "a/\nf.txt", mustRun(t, fs.Ls("/")))
}

func TestFileSystem_Mv_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     string
		dest    string
		wantErr error
		wantMsg string
	}{
		{"missing_source", "ghost", "b", fssim.ErrNotFound, "'ghost' not found"},
		{"missing_destination", "a", "nowhere", fssim.ErrNotFound, "Destination 'nowhere' not found"},
		{"destination_is_file", "a", "f.txt", fssim.ErrNotADirectory, "Destination 'f.txt' is not a directory"},
		{"name_clash", "a", "b", fssim.ErrAlreadyExists, "'a' already exists in destination"},
		{"into_current_dir", "a", ".", fssim.ErrAlreadyExists, "'a' already exists in destination"},
		{"into_itself", "a", "a", fssim.ErrInvalidMove, "Cannot move 'a' into itself"},
		{"into_descendant", "a", "a/sub", fssim.ErrInvalidMove, "Cannot move 'a' into itself"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fs := NewFS(createTestConfig())
			createTree(t, fs, "a/sub/", "b/a", "f.txt")
			before := fs.Tree(fssim.NoDepthLimit)

			_, err := fs.Mv(tt.src, tt.dest)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.Equal(t, before, fs.Tree(fssim.NoDepthLimit), "failed mv must not mutate the tree")
		})
	}
}

func TestFileSystem_Resolve(t *testing.T) {
	t.Parallel()

	fs := NewFS(createTestConfig())
	createTree(t, fs, "a/b/f.txt", "c/")
	mustRun(t, fs.Cd("/a"))

	tests := []struct {
		path string
		want string // "" means resolution fails
	}{
		{"b", "/a/b"},
		{"./b/./f.txt", "/a/b/f.txt"},
		{"b//f.txt", "/a/b/f.txt"},
		{"", "/a"},
		{".", "/a"},
		{"..", "/"},
		{"../../../..", "/"},
		{"../c", "/c"},
		{"/", "/"},
		{"//a///b/", "/a/b"},
		{"/c/../a/b", "/a/b"},
		{"missing", ""},
		{"b/f.txt/..", "/a/b"},
		{"b/f.txt/x", ""},
		{"/b", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			node, ok := fs.resolve(tt.path)
			if tt.want == "" {
				assert.False(t, ok)
				assert.Nil(t, node)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.want, node.Path())
		})
	}
}

func TestFileSystem_AddDirNode(t *testing.T) {
	t.Parallel()

	fs := NewFS(createTestConfig())

	leaf, err := fs.AddDirNode(&fssim.DirCreateRequest{NodeRequest: fssim.NodeRequest{
		Path: "/x/y/z",
		UUID: "leaf-id",
	}})
	require.NoError(t, err)
	assert.Equal(t, "/x/y/z", leaf.Path())
	assert.Equal(t, "leaf-id", leaf.ID())

	// existing leaf is returned without error
	again, err := fs.AddDirNode(&fssim.DirCreateRequest{NodeRequest: fssim.NodeRequest{Path: "x/y/z"}})
	require.NoError(t, err)
	assert.Same(t, leaf, again)

	// root path returns the root
	root, err := fs.AddDirNode(&fssim.DirCreateRequest{NodeRequest: fssim.NodeRequest{Path: "/"}})
	require.NoError(t, err)
	assert.Same(t, fs.Root(), root)
}

func TestFileSystem_AddDirNode_ThroughFile(t *testing.T) {
	t.Parallel()

	fs := NewFS(createTestConfig())
	createTree(t, fs, "a/f")

	_, err := fs.AddDirNode(&fssim.DirCreateRequest{NodeRequest: fssim.NodeRequest{Path: "a/f/g"}})
	assert.ErrorIs(t, err, fssim.ErrNotADirectory)
}

func TestFileSystem_AddFileNode(t *testing.T) {
	t.Parallel()

	fs := NewFS(createTestConfig())

	node, err := fs.AddFileNode(&fssim.FileCreateRequest{NodeRequest: fssim.NodeRequest{
		Path: "docs/readme.md",
		UUID: "file-id",
	}})
	require.NoError(t, err)
	assert.Equal(t, "/docs/readme.md", node.Path())
	assert.Equal(t, "file-id", node.ID())
	assert.True(t, node.IsFile())

	_, err = fs.AddFileNode(&fssim.FileCreateRequest{NodeRequest: fssim.NodeRequest{Path: "/docs/readme.md"}})
	assert.ErrorIs(t, err, fssim.ErrAlreadyExists)

	_, err = fs.AddFileNode(&fssim.FileCreateRequest{NodeRequest: fssim.NodeRequest{Path: "/"}})
	assert.ErrorIs(t, err, fssim.ErrInvalidName)
}

func TestSplitPath(t *testing.T) {
	t.Parallel()

	assert.Nil(t, splitPath(""))
	assert.Nil(t, splitPath("/"))
	assert.Nil(t, splitPath(" /.. "))
	assert.Equal(t, []string{"a", "b"}, splitPath("a/b"))
	assert.Equal(t, []string{"a", "b"}, splitPath("/a/./c/../b/"))
}
