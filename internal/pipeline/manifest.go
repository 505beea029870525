package pipeline

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/backmassage/renumber/internal/naming"
)

// manifest is the append-only backup log: one "source -> target" line per
// completed rename, in execution order, synced per line so a crash mid-run
// still leaves a usable partial record. No header, no footer; the file is the
// sole recovery artifact and is never mutated after the run.
type manifest struct {
	file afero.File
	path string
}

// createManifest creates the timestamped backup file inside dir. O_EXCL makes
// a second run within the same second fail loudly instead of silently
// truncating the first run's record.
func createManifest(fsys afero.Fs, dir string, now time.Time) (*manifest, error) {
	path := filepath.Join(dir, naming.BackupFileName(now))
	f, err := fsys.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, &ManifestError{Path: path, Err: err}
	}
	return &manifest{file: f, path: path}, nil
}

// append writes one completed rename and flushes it to disk.
func (m *manifest) append(source, target string) error {
	if _, err := m.file.WriteString(source + " -> " + target + "\n"); err != nil {
		return &ManifestError{Path: m.path, Err: err}
	}
	if err := m.file.Sync(); err != nil {
		return &ManifestError{Path: m.path, Err: err}
	}
	return nil
}

func (m *manifest) close() error {
	return m.file.Close()
}
