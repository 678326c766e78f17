package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/docmirror/docmirror-cli/internal/logger"
)

// Workspace is the scratch storage for one run's in-flight downloads,
// isolated from the target store until content is validated. It is
// released on every exit path unless the operator asked to keep it.
type Workspace struct {
	dir  string
	keep bool
}

// NewWorkspace creates a scratch directory for the run under the
// system temp directory.
func NewWorkspace(runID string, keep bool) (*Workspace, error) {
	dir, err := os.MkdirTemp("", "docmirror-"+runID+"-")
	if err != nil {
		return nil, fmt.Errorf("create scratch workspace: %w", err)
	}
	return &Workspace{dir: dir, keep: keep}, nil
}

// Dir returns the scratch directory.
func (w *Workspace) Dir() string {
	return w.dir
}

// Keep reports whether the workspace survives the run.
func (w *Workspace) Keep() bool {
	return w.keep
}

// LogPath returns the per-run log file location inside the workspace.
func (w *Workspace) LogPath() string {
	return filepath.Join(w.dir, "run.log")
}

// Release removes the scratch directory, or reports its location when
// the operator asked to keep it. Safe to call on every exit path.
func (w *Workspace) Release() error {
	if w.keep {
		logger.Info("Keeping scratch workspace: %s", w.dir)
		return nil
	}
	if err := os.RemoveAll(w.dir); err != nil {
		return fmt.Errorf("remove scratch workspace: %w", err)
	}
	return nil
}
