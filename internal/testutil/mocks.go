// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os"

	"github.com/stretchr/testify/mock"
)

// MockFS is a testify mock over the writer's filesystem seam. Tests use
// it to assert call ordering and to verify that rejected operations
// perform zero mutation.
type MockFS struct {
	mock.Mock
}

// Exists mocks the existence probe.
func (m *MockFS) Exists(path string) (bool, error) {
	args := m.Called(path)
	return args.Bool(0), args.Error(1)
}

// ReadText mocks reading a file.
func (m *MockFS) ReadText(path string) (string, error) {
	args := m.Called(path)
	return args.String(0), args.Error(1)
}

// WriteText mocks writing a file.
func (m *MockFS) WriteText(path, content string, perm os.FileMode) error {
	args := m.Called(path, content, perm)
	return args.Error(0)
}

// Delete mocks removing a file.
func (m *MockFS) Delete(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

// MkdirAll mocks directory creation.
func (m *MockFS) MkdirAll(path string, perm os.FileMode) error {
	args := m.Called(path, perm)
	return args.Error(0)
}

// MockExecutor is a testify mock of the dispatcher's Executor interface.
type MockExecutor struct {
	mock.Mock
}

// Execute mocks running the executor.
func (m *MockExecutor) Execute(data map[string]interface{}) (string, error) {
	args := m.Called(data)
	return args.String(0), args.Error(1)
}

// Description mocks the executor description.
func (m *MockExecutor) Description() string {
	if len(m.Mock.ExpectedCalls) == 0 {
		return "mock executor"
	}
	args := m.Called()
	return args.String(0)
}

// PanicExecutor always panics; used to pin the dispatcher's recovery
// behavior.
type PanicExecutor struct{}

// Execute panics unconditionally.
func (*PanicExecutor) Execute(map[string]interface{}) (string, error) {
	panic("executor blew up")
}

// Description returns a fixed description.
func (*PanicExecutor) Description() string {
	return "always panics"
}
