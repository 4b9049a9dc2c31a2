// SPDX-License-Identifier: Apache-2.0

package fsops

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// BackupService persists a copy of a file before it is overwritten.
// Two strategies are tried in order: the managed backup directory, then a
// sibling <path>.backup.<timestamp> file next to the original. Only when
// both fail does an error propagate, so a requested backup is never
// silently skipped.
type BackupService struct {
	fs     FS
	dir    string
	logger *zap.Logger
	now    func() time.Time
}

// NewBackupService creates a backup service writing into dir. An empty
// dir disables the managed location and goes straight to the sibling
// fallback.
func NewBackupService(fs FS, dir string, logger *zap.Logger) *BackupService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BackupService{
		fs:     fs,
		dir:    dir,
		logger: logger,
		now:    time.Now,
	}
}

// Backup persists content as a copy of the file at path. When no file
// exists at path there is nothing to preserve and the empty string is
// returned without error. On success the backup's path is returned.
func (s *BackupService) Backup(path, content string) (string, error) {
	exists, err := s.fs.Exists(path)
	if err != nil {
		return "", fmt.Errorf("error probing %s before backup: %w", path, err)
	}
	if !exists {
		return "", nil
	}

	stamp := Timestamp(s.now())

	if s.dir != "" {
		managed := filepath.Join(s.dir, backupName(filepath.Base(path), stamp))
		if err := s.fs.MkdirAll(s.dir, 0755); err == nil {
			if err := s.fs.WriteText(managed, content, 0644); err == nil {
				return managed, nil
			}
		}
		s.logger.Warn("managed backup location failed, using sibling fallback",
			zap.String("path", path),
			zap.String("backup_dir", s.dir))
	}

	fallback := fmt.Sprintf("%s.backup.%s", path, stamp)
	if err := s.fs.WriteText(fallback, content, 0644); err != nil {
		return "", fmt.Errorf("error writing backup for %s: %w", path, err)
	}
	return fallback, nil
}

// Timestamp formats t for use in a backup filename: RFC3339 with the
// colons and dots replaced by dashes so the name stays filesystem-safe.
func Timestamp(t time.Time) string {
	s := t.UTC().Format(time.RFC3339)
	s = strings.ReplaceAll(s, ":", "-")
	return strings.ReplaceAll(s, ".", "-")
}

// backupName builds manifesto.backup.<stamp>.md from manifesto.md.
func backupName(base, stamp string) string {
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return fmt.Sprintf("%s.backup.%s%s", stem, stamp, ext)
}
