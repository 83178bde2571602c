package filesystem

import (
	"github.com/brettbedarf/fssim"
	"github.com/brettbedarf/fssim/internal/util"
)

// Load adds seed nodes to the tree: every directory request first, then
// every file request. Failed requests are logged and skipped.
// Returns how many directory and file requests succeeded.
func (fs *FileSystem) Load(dirs []*fssim.DirCreateRequest, files []*fssim.FileCreateRequest) (dirCnt, fileCnt int) {
	logger := util.GetLogger("FS.Load")

	for _, req := range dirs {
		if _, err := fs.AddDirNode(req); err != nil {
			logger.Warn().Str("path", req.Path).Err(err).Msg("Failed to add directory request")
			continue
		}
		dirCnt++
	}
	for _, req := range files {
		if _, err := fs.AddFileNode(req); err != nil {
			logger.Warn().Str("path", req.Path).Err(err).Msg("Failed to add file request")
			continue
		}
		fileCnt++
	}
	logger.Info().Int("directories", dirCnt).Int("files", fileCnt).Msg("Added new nodes to filesystem")
	return dirCnt, fileCnt
}
