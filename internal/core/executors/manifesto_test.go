// SPDX-License-Identifier: Apache-2.0

package executors_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/piggie-dev/manifesto/internal/core/dispatch"
	"github.com/piggie-dev/manifesto/internal/core/executors"
	"github.com/piggie-dev/manifesto/internal/core/fsops"
	"github.com/piggie-dev/manifesto/internal/core/guard"
	"github.com/piggie-dev/manifesto/internal/core/models"
	"github.com/piggie-dev/manifesto/internal/testutil"
)

// newWorkspace wires a real-filesystem registry rooted in a temp dir.
func newWorkspace(t *testing.T) (*dispatch.Registry, string) {
	t.Helper()
	tempDir := t.TempDir()
	fs := fsops.NewOSFS()
	backups := fsops.NewBackupService(fs, filepath.Join(tempDir, ".manifesto", "backups"), nil)
	writer := fsops.NewWriter(fs, tempDir, backups, nil)

	registry := dispatch.NewRegistry()
	executors.RegisterDefaults(registry, executors.Deps{
		Writer:        writer,
		FS:            fs,
		Guard:         guard.New(fs),
		Backups:       backups,
		ManifestoPath: "manifesto.md",
	})
	return registry, tempDir
}

func runCommand(t *testing.T, registry *dispatch.Registry, cmd models.Command, data map[string]interface{}) (string, error) {
	t.Helper()
	ex, err := registry.Get(cmd)
	require.NoError(t, err)
	return ex.Execute(data)
}

func TestCreateManifestoFreshWorkspace(t *testing.T) {
	registry, tempDir := newWorkspace(t)

	message, err := runCommand(t, registry, models.CommandCreateManifesto, map[string]interface{}{
		"content": "# Project Rules\n\n- REQUIRED: tests for every fix\n",
	})

	require.NoError(t, err)
	assert.Contains(t, message, "written to")
	assert.Contains(t, message, "manifesto.md")

	data, err := os.ReadFile(filepath.Join(tempDir, "manifesto.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Project Rules")
}

func TestCreateManifestoBlockedByExistingFile(t *testing.T) {
	registry, tempDir := newWorkspace(t)

	existing := "# Existing\nRule A"
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "manifesto.md"), []byte(existing), 0644))

	message, err := runCommand(t, registry, models.CommandCreateManifesto, map[string]interface{}{
		"content": "# Replacement",
	})

	// A policy refusal is an informative success, not an error.
	require.NoError(t, err)
	assert.Contains(t, message, "Existing")
	assert.Contains(t, message, "No changes were made")

	data, err := os.ReadFile(filepath.Join(tempDir, "manifesto.md"))
	require.NoError(t, err)
	assert.Equal(t, existing, string(data))
}

func TestCreateManifestoForcedWithBackupWritesInOrder(t *testing.T) {
	mfs := new(testutil.MockFS)
	backups := fsops.NewBackupService(mfs, "", nil)
	writer := fsops.NewWriter(mfs, "/workspace", backups, nil)

	registry := dispatch.NewRegistry()
	executors.RegisterDefaults(registry, executors.Deps{
		Writer:        writer,
		FS:            mfs,
		Guard:         guard.New(mfs),
		Backups:       backups,
		ManifestoPath: "manifesto.md",
	})

	target := filepath.Join("/workspace", "manifesto.md")
	mfs.On("Exists", target).Return(true, nil)
	mfs.On("ReadText", target).Return("# Old", nil)
	mfs.On("WriteText", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	message, err := runCommand(t, registry, models.CommandCreateManifesto, map[string]interface{}{
		"content":        "# New Rules",
		"forceOverwrite": true,
		"createBackup":   true,
	})

	require.NoError(t, err)
	assert.Contains(t, message, "Backup saved to")
	assert.Contains(t, message, "written to")

	// Exactly two writes, in order: the backup carrying the old content,
	// then the new manifesto.
	var writes []mock.Call
	for _, call := range mfs.Calls {
		if call.Method == "WriteText" {
			writes = append(writes, call)
		}
	}
	require.Len(t, writes, 2)
	assert.Contains(t, writes[0].Arguments.String(0), "manifesto.md.backup.")
	assert.Equal(t, "# Old", writes[0].Arguments.String(1))
	assert.Equal(t, target, writes[1].Arguments.String(0))
	assert.Equal(t, "# New Rules", writes[1].Arguments.String(1))
}

func TestCreateManifestoBackupFailureAbortsOverwrite(t *testing.T) {
	mfs := new(testutil.MockFS)
	backups := fsops.NewBackupService(mfs, "", nil)
	writer := fsops.NewWriter(mfs, "/workspace", backups, nil)

	registry := dispatch.NewRegistry()
	executors.RegisterDefaults(registry, executors.Deps{
		Writer:        writer,
		FS:            mfs,
		Guard:         guard.New(mfs),
		Backups:       backups,
		ManifestoPath: "manifesto.md",
	})

	target := filepath.Join("/workspace", "manifesto.md")
	mfs.On("Exists", target).Return(true, nil)
	mfs.On("ReadText", target).Return("# Old", nil)
	mfs.On("WriteText", mock.MatchedBy(func(path string) bool {
		return strings.Contains(path, ".backup.")
	}), mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, err := runCommand(t, registry, models.CommandCreateManifesto, map[string]interface{}{
		"content":        "# New Rules",
		"forceOverwrite": true,
		"createBackup":   true,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "backup failed")

	// The primary write was never attempted.
	for _, call := range mfs.Calls {
		if call.Method == "WriteText" {
			assert.Contains(t, call.Arguments.String(0), ".backup.",
				"only the backup write may have been attempted")
		}
	}
}

// trackingFS delegates to a real filesystem while recording how many
// existence probes are in flight at once and every write target.
type trackingFS struct {
	inner fsops.FS

	mu          sync.Mutex
	inFlight    int
	maxInFlight int
	writes      []string
}

func (f *trackingFS) Exists(path string) (bool, error) {
	f.mu.Lock()
	f.inFlight++
	if f.inFlight > f.maxInFlight {
		f.maxInFlight = f.inFlight
	}
	f.mu.Unlock()

	// Widen the probe window so unserialized callers would overlap.
	time.Sleep(20 * time.Millisecond)
	exists, err := f.inner.Exists(path)

	f.mu.Lock()
	f.inFlight--
	f.mu.Unlock()
	return exists, err
}

func (f *trackingFS) ReadText(path string) (string, error) {
	return f.inner.ReadText(path)
}

func (f *trackingFS) WriteText(path, content string, perm os.FileMode) error {
	f.mu.Lock()
	f.writes = append(f.writes, path)
	f.mu.Unlock()
	return f.inner.WriteText(path, content, perm)
}

func (f *trackingFS) Delete(path string) error {
	return f.inner.Delete(path)
}

func (f *trackingFS) MkdirAll(path string, perm os.FileMode) error {
	return f.inner.MkdirAll(path, perm)
}

func TestCreateManifestoConcurrentCreatesDoNotBothWrite(t *testing.T) {
	tempDir := t.TempDir()
	tfs := &trackingFS{inner: fsops.NewOSFS()}
	backups := fsops.NewBackupService(tfs, filepath.Join(tempDir, ".manifesto", "backups"), nil)
	writer := fsops.NewWriter(tfs, tempDir, backups, nil)

	registry := dispatch.NewRegistry()
	executors.RegisterDefaults(registry, executors.Deps{
		Writer:        writer,
		FS:            tfs,
		Guard:         guard.New(tfs),
		Backups:       backups,
		ManifestoPath: "manifesto.md",
	})

	ex, err := registry.Get(models.CommandCreateManifesto)
	require.NoError(t, err)

	// Two simultaneous creates: without the target lock held across the
	// guard probe, both would see no file and both would write.
	messages := make([]string, 2)
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			messages[i], errs[i] = ex.Execute(map[string]interface{}{
				"content": fmt.Sprintf("# Rules %d\n", i),
			})
		}(i)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	// The guard probes never overlapped.
	assert.Equal(t, 1, tfs.maxInFlight)

	// Exactly one write reached the manifesto; the loser saw the winner's
	// file and was refused.
	target := filepath.Join(tempDir, "manifesto.md")
	var targetWrites int
	for _, path := range tfs.writes {
		if path == target {
			targetWrites++
		}
	}
	assert.Equal(t, 1, targetWrites)

	combined := messages[0] + "\n" + messages[1]
	assert.Contains(t, combined, "written to")
	assert.Contains(t, combined, "No changes were made")
}

func TestCreateManifestoRendersDefaultTemplate(t *testing.T) {
	registry, tempDir := newWorkspace(t)

	message, err := runCommand(t, registry, models.CommandCreateManifesto, map[string]interface{}{
		"type": "api",
	})

	require.NoError(t, err)
	assert.Contains(t, message, "(api)")

	data, err := os.ReadFile(filepath.Join(tempDir, "manifesto.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "API Development Manifesto")
	assert.Contains(t, string(data), "REQUIRED")
}

func TestPreviewManifestoWritesNothing(t *testing.T) {
	registry, tempDir := newWorkspace(t)

	message, err := runCommand(t, registry, models.CommandPreviewManifesto, map[string]interface{}{
		"type": "general",
	})

	require.NoError(t, err)
	assert.Contains(t, message, "Preview of general manifesto")
	assert.Contains(t, message, "Code Quality")

	assert.NoFileExists(t, filepath.Join(tempDir, "manifesto.md"))
}
