package mocks

import (
	"github.com/brettbedarf/fssim"
	"github.com/stretchr/testify/mock"
)

// MockFileSystem implements fssim.FileSystemOperator for testing across packages
type MockFileSystem struct {
	mock.Mock
}

func (m *MockFileSystem) Ls(path string) (string, error) {
	args := m.Called(path)
	return args.String(0), args.Error(1)
}

func (m *MockFileSystem) Pwd() string {
	args := m.Called()

	// Handle function return types (for tests that change directory)
	if fn, ok := args.Get(0).(func() string); ok {
		return fn()
	}
	return args.String(0)
}

func (m *MockFileSystem) Mkdir(name string) (string, error) {
	args := m.Called(name)
	return args.String(0), args.Error(1)
}

func (m *MockFileSystem) Touch(name string) (string, error) {
	args := m.Called(name)
	return args.String(0), args.Error(1)
}

func (m *MockFileSystem) Cd(path string) (string, error) {
	args := m.Called(path)
	return args.String(0), args.Error(1)
}

func (m *MockFileSystem) Rm(name string, recursive bool) (string, error) {
	args := m.Called(name, recursive)
	return args.String(0), args.Error(1)
}

func (m *MockFileSystem) Mv(src, dest string) (string, error) {
	args := m.Called(src, dest)
	return args.String(0), args.Error(1)
}

func (m *MockFileSystem) Tree(maxDepth int) string {
	args := m.Called(maxDepth)
	return args.String(0)
}

var _ fssim.FileSystemOperator = (*MockFileSystem)(nil)
