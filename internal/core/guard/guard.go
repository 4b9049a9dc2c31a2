// SPDX-License-Identifier: Apache-2.0

// Package guard protects the project manifesto from silent overwrites.
// A write to an existing manifesto is blocked unless the caller passed an
// explicit override, and the block carries the current content so the
// user can decide what to do with it.
package guard

import (
	"fmt"

	"github.com/piggie-dev/manifesto/internal/core/fsops"
)

// PreviewLimit caps how much of the existing manifesto is echoed back in
// a blocked result.
const PreviewLimit = 500

// TruncationMarker is appended when the preview was cut short.
const TruncationMarker = "\n…truncated"

// Result classifies a guarded write request.
type Result struct {
	// Allowed means the write may proceed: either no file exists at the
	// target, or the caller forced the overwrite.
	Allowed bool
	// Preview holds the first PreviewLimit characters of the existing
	// content when the write was blocked. Empty when the existence probe
	// itself failed.
	Preview string
	// Message carries the guidance shown to the user on a block.
	Message string
}

// Guard checks manifesto write requests against the existing file.
type Guard struct {
	fs fsops.FS
}

// New creates a guard over the given filesystem.
func New(fs fsops.FS) *Guard {
	return &Guard{fs: fs}
}

// Check reports whether a write to path may proceed. A failed existence
// probe is never treated as safe: it blocks with a generic message
// instead of a content preview.
func (g *Guard) Check(path string, forceOverwrite bool) Result {
	exists, err := g.fs.Exists(path)
	if err != nil {
		return Result{
			Allowed: false,
			Message: guidance(path, "The existing file could not be inspected, so nothing was overwritten."),
		}
	}
	if !exists || forceOverwrite {
		return Result{Allowed: true}
	}

	content, err := g.fs.ReadText(path)
	if err != nil {
		return Result{
			Allowed: false,
			Message: guidance(path, "The existing file could not be read, so nothing was overwritten."),
		}
	}

	preview := content
	if len(preview) > PreviewLimit {
		preview = preview[:PreviewLimit] + TruncationMarker
	}

	return Result{
		Allowed: false,
		Preview: preview,
		Message: guidance(path, "A manifesto already exists at this location. No changes were made."),
	}
}

func guidance(path, reason string) string {
	return fmt.Sprintf(`%s

Target: %s

Options:
  1. Review the existing manifesto manually before replacing it
  2. Re-run with force overwrite and a backup to keep a copy of the current version
  3. Merge the new rules into the existing manifesto by hand`, reason, path)
}
