// SPDX-License-Identifier: Apache-2.0

package fsops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/piggie-dev/manifesto/internal/core/models"
	"go.uber.org/zap"
)

// SlowWriteBudget is the advisory per-call latency target. Calls over it
// log a warning; nothing is enforced.
const SlowWriteBudget = 200 * time.Millisecond

// Writer performs validated, path-safe file operations. Every failure is
// folded into the returned OperationResult; Write never panics and never
// returns an error value.
type Writer struct {
	fs            FS
	workspaceRoot string
	backups       *BackupService
	metrics       *MetricRing
	locks         *pathLocks
	logger        *zap.Logger

	// held is the resolved path whose lock the caller already owns, set
	// only on the writer handed to an Exclusive callback. write skips
	// re-acquiring it.
	held string
}

// NewWriter creates a writer rooted at workspaceRoot. An empty root falls
// back to the process working directory.
func NewWriter(fs FS, workspaceRoot string, backups *BackupService, logger *zap.Logger) *Writer {
	if workspaceRoot == "" {
		if wd, err := os.Getwd(); err == nil {
			workspaceRoot = wd
		}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{
		fs:            fs,
		workspaceRoot: workspaceRoot,
		backups:       backups,
		metrics:       NewMetricRing(DefaultMetricCapacity),
		locks:         newPathLocks(),
		logger:        logger,
	}
}

// Metrics exposes the retained per-call timings.
func (w *Writer) Metrics() *MetricRing {
	return w.metrics
}

// WorkspaceRoot returns the root all relative paths resolve against.
func (w *Writer) WorkspaceRoot() string {
	return w.workspaceRoot
}

// Resolve turns a workspace-relative path into an absolute one.
func (w *Writer) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(w.workspaceRoot, path)
}

// Exclusive runs fn while holding the operation lock for path,
// serializing it against every Write and every other Exclusive call on
// the same resolved path. Callers use it when a decision made before a
// write (an existence probe, a backup) must not interleave with another
// writer targeting the same file. fn receives a writer whose operations
// on that path run under the already-held lock.
func (w *Writer) Exclusive(path string, fn func(*Writer) error) error {
	target := w.Resolve(path)
	unlock := w.locks.lock(target)
	defer unlock()

	held := *w
	held.held = target
	return fn(&held)
}

// Write performs a single file operation. Validation, path security, and
// content sanitization all run before anything touches the filesystem; a
// rejected operation performs zero mutation.
func (w *Writer) Write(op models.FileOperation) models.OperationResult {
	start := time.Now()
	result := w.write(op)
	elapsed := time.Since(start)

	w.metrics.Record(Metric{
		Operation: string(op.Type),
		Path:      op.Path,
		Duration:  elapsed,
		Success:   result.Success,
		At:        start,
	})

	if elapsed > SlowWriteBudget {
		w.logger.Warn("file operation exceeded soft latency budget",
			zap.String("operation", string(op.Type)),
			zap.String("path", op.Path),
			zap.Duration("elapsed", elapsed))
	}

	return result
}

func (w *Writer) write(op models.FileOperation) models.OperationResult {
	if err := validateOperation(op); err != nil {
		return failure(op, err)
	}
	if err := ValidatePath(op.Path); err != nil {
		return failure(op, err)
	}

	target := w.Resolve(op.Path)
	if target != w.held {
		unlock := w.locks.lock(target)
		defer unlock()
	}

	content := SanitizeContent(op.Content)

	var backupPath string
	if op.Backup && op.Type == models.OpUpdate {
		existing, exists, err := w.readExisting(target)
		if err != nil {
			return failure(op, fmt.Errorf("error reading current content for backup: %w", err))
		}
		if exists {
			backupPath, err = w.backups.Backup(target, existing)
			if err != nil {
				// A requested backup that failed aborts the write.
				return failure(op, err)
			}
		}
	}

	switch op.Type {
	case models.OpCreate, models.OpUpdate:
		if err := w.fs.WriteText(target, content, 0644); err != nil {
			return failure(op, fmt.Errorf("error writing %s: %w", op.Path, err))
		}
	case models.OpDelete:
		if err := w.fs.Delete(target); err != nil {
			return failure(op, fmt.Errorf("error deleting %s: %w", op.Path, err))
		}
	case models.OpRead:
		// Reads are serviced by ReadText; the writer treats this as a
		// validated no-op so callers get a uniform result shape.
	}

	return models.OperationResult{
		Success:    true,
		Path:       w.relative(target),
		BackupPath: backupPath,
	}
}

// ReadText reads a workspace file after the same path validation the
// writer applies.
func (w *Writer) ReadText(path string) (string, error) {
	if err := ValidatePath(path); err != nil {
		return "", err
	}
	return w.fs.ReadText(w.Resolve(path))
}

func (w *Writer) readExisting(target string) (content string, exists bool, err error) {
	exists, err = w.fs.Exists(target)
	if err != nil || !exists {
		return "", exists, err
	}
	content, err = w.fs.ReadText(target)
	return content, true, err
}

func (w *Writer) relative(target string) string {
	rel, err := filepath.Rel(w.workspaceRoot, target)
	if err != nil || strings.HasPrefix(rel, "..") {
		return target
	}
	return rel
}

func validateOperation(op models.FileOperation) error {
	if !op.Type.Valid() {
		return fmt.Errorf("unknown operation type: %q", op.Type)
	}
	if op.Path == "" {
		return fmt.Errorf("operation path cannot be empty")
	}
	if op.Encoding != "" && !supportedEncoding(op.Encoding) {
		return fmt.Errorf("unsupported encoding: %q", op.Encoding)
	}
	return nil
}

// supportedEncoding accepts the encodings content can pass through
// unchanged. ASCII is a UTF-8 subset; anything else would need real
// transcoding and is rejected up front rather than written wrong.
func supportedEncoding(name string) bool {
	switch strings.ToLower(name) {
	case "utf-8", "utf8", "ascii", "us-ascii":
		return true
	}
	return false
}

func failure(op models.FileOperation, err error) models.OperationResult {
	return models.OperationResult{
		Success: false,
		Error:   fmt.Sprintf("%s %s: %v", op.Type, op.Path, err),
	}
}
