package requests

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/brettbedarf/fssim"
)

// NodeDefs holds the create requests read from a node definitions file,
// split by kind so directories can be created before files
type NodeDefs struct {
	Dirs  []*fssim.DirCreateRequest
	Files []*fssim.FileCreateRequest
}

// GetNodeType extracts the node type from JSON without full unmarshaling
func GetNodeType(data []byte) (fssim.NodeKind, error) {
	var meta struct {
		Type fssim.NodeKind `json:"type"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return "", err
	}
	return meta.Type, nil
}

// UnmarshalFileRequest handles file-specific unmarshaling
func UnmarshalFileRequest(data []byte) (*fssim.FileCreateRequest, error) {
	var dto FileRequestDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, err
	}
	return &fssim.FileCreateRequest{NodeRequest: convertNodeDTO(dto.NodeRequestDTO)}, nil
}

// UnmarshalDirRequest handles explicit directory unmarshaling
func UnmarshalDirRequest(data []byte) (*fssim.DirCreateRequest, error) {
	var dto DirRequestDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, err
	}
	return &fssim.DirCreateRequest{NodeRequest: convertNodeDTO(dto.NodeRequestDTO)}, nil
}

// UnmarshalNodeDefs decodes a JSON array of node definitions.
// The first invalid entry aborts decoding.
func UnmarshalNodeDefs(data []byte) (*NodeDefs, error) {
	var rawNodes []json.RawMessage
	if err := json.Unmarshal(data, &rawNodes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal node definitions: %w", err)
	}

	defs := &NodeDefs{}
	for i, rawNode := range rawNodes {
		nodeType, err := GetNodeType(rawNode)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		switch nodeType {
		case fssim.FileNodeKind:
			req, err := UnmarshalFileRequest(rawNode)
			if err != nil {
				return nil, fmt.Errorf("node %d: %w", i, err)
			}
			defs.Files = append(defs.Files, req)
		case fssim.DirNodeKind:
			req, err := UnmarshalDirRequest(rawNode)
			if err != nil {
				return nil, fmt.Errorf("node %d: %w", i, err)
			}
			defs.Dirs = append(defs.Dirs, req)
		default:
			return nil, fmt.Errorf("node %d: unknown node type: %q", i, nodeType)
		}
	}
	return defs, nil
}

// UnmarshalNodeDefsYAML decodes a YAML sequence of node definitions
func UnmarshalNodeDefsYAML(data []byte) (*NodeDefs, error) {
	var dtos []NodeRequestDTO
	if err := yaml.Unmarshal(data, &dtos); err != nil {
		return nil, fmt.Errorf("failed to unmarshal node definitions: %w", err)
	}

	defs := &NodeDefs{}
	for i, dto := range dtos {
		switch dto.Type {
		case fssim.FileNodeKind:
			defs.Files = append(defs.Files, &fssim.FileCreateRequest{NodeRequest: convertNodeDTO(dto)})
		case fssim.DirNodeKind:
			defs.Dirs = append(defs.Dirs, &fssim.DirCreateRequest{NodeRequest: convertNodeDTO(dto)})
		default:
			return nil, fmt.Errorf("node %d: unknown node type: %q", i, dto.Type)
		}
	}
	return defs, nil
}

// LoadNodeDefsFile reads node definitions from a file.
// Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadNodeDefsFile(path string) (*NodeDefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return UnmarshalNodeDefsYAML(data)
	case ".json":
		return UnmarshalNodeDefs(data)
	default:
		return nil, fmt.Errorf("unknown node definitions file extension: %s", path)
	}
}

// Conversion logic with defaults in the unmarshaling layer
func convertNodeDTO(dto NodeRequestDTO) fssim.NodeRequest {
	return fssim.NodeRequest{
		Path: dto.Path,
		Kind: dto.Type,
		UUID: valueOrDefault(dto.UUID, uuid.NewString()),
	}
}

func valueOrDefault[T any](ptr *T, defaultVal T) T {
	if ptr != nil {
		return *ptr
	}
	return defaultVal
}
