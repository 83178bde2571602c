package requests

import "github.com/brettbedarf/fssim"

// NodeRequestDTO is the JSON/YAML representation of [fssim.NodeRequest]
type NodeRequestDTO struct {
	Path string         `json:"path" yaml:"path"`
	Type fssim.NodeKind `json:"type" yaml:"type"`
	UUID *string        `json:"uuid,omitempty" yaml:"uuid,omitempty"` // Optional UUID for the created node
}

// FileRequestDTO is the JSON representation of [fssim.FileCreateRequest]
type FileRequestDTO struct {
	NodeRequestDTO
}

// DirRequestDTO is the JSON representation of [fssim.DirCreateRequest]
type DirRequestDTO struct {
	NodeRequestDTO
}
