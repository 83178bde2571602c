package filesystem

import (
	"testing"

	"github.com/brettbedarf/fssim"
	"github.com/stretchr/testify/assert"
)

func dirReq(p string) *fssim.DirCreateRequest {
	return &fssim.DirCreateRequest{NodeRequest: fssim.NodeRequest{Path: p, Kind: fssim.DirNodeKind}}
}

func fileReq(p string) *fssim.FileCreateRequest {
	return &fssim.FileCreateRequest{NodeRequest: fssim.NodeRequest{Path: p, Kind: fssim.FileNodeKind}}
}

func TestFileSystem_Load(t *testing.T) {
	t.Parallel()

	fs := NewFS(createTestConfig())

	dirCnt, fileCnt := fs.Load(
		[]*fssim.DirCreateRequest{dirReq("/etc"), dirReq("home/user")},
		[]*fssim.FileCreateRequest{fileReq("/etc/hosts"), fileReq("home/user/notes.txt"), fileReq("tmp/x")},
	)

	assert.Equal(t, 2, dirCnt)
	assert.Equal(t, 3, fileCnt)
	want := "root/\n" +
		"├── etc/\n" +
		"│   └── hosts\n" +
		"├── home/\n" +
		"│   └── user/\n" +
		"│       └── notes.txt\n" +
		"└── tmp/\n" +
		"    └── x"
	assert.Equal(t, want, fs.Tree(fssim.NoDepthLimit))
}

func TestFileSystem_Load_SkipsFailures(t *testing.T) {
	t.Parallel()

	fs := NewFS(createTestConfig())

	dirCnt, fileCnt := fs.Load(
		[]*fssim.DirCreateRequest{dirReq("a")},
		[]*fssim.FileCreateRequest{fileReq("a/f"), fileReq("a/f"), fileReq("a/f/g"), fileReq("/")},
	)

	assert.Equal(t, 1, dirCnt)
	assert.Equal(t, 1, fileCnt, "duplicate, through-file and empty paths must be skipped")
	assert.Equal(t, "f", mustRun(t, fs.Ls("/a")))
}
