package fssim

// NodeRequest has common fields embedded in concrete request types
type NodeRequest struct {
	Path string
	Kind NodeKind
	UUID string // Optional UUID assigned to the created node
}

// FileCreateRequest asks for a file node at Path. Missing parent
// directories are created.
type FileCreateRequest struct {
	NodeRequest
}

// DirCreateRequest asks for a directory at Path, creating any missing
// ancestors like `mkdir -p`
type DirCreateRequest struct {
	NodeRequest
}
