package planner

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/backmassage/renumber/internal/naming"
)

// Sentinel errors for the validation failures Build can report. Callers
// match with errors.Is; the wrapped message carries the offending value.
var (
	ErrDirectoryNotFound = errors.New("directory not found")
	ErrInvalidExtension  = errors.New("invalid extension")
	ErrNoMatchingFiles   = errors.New("no matching files")
)

// Build produces the rename plan for dir: list regular files ending in
// ".<ext>", sort them, assign indices start, start+1, ... in sorted order,
// and classify each proposed rename. The listing and existence checks are the
// only filesystem access; Build never writes.
//
// Both the extension match and the sort are case-sensitive byte-wise; this is
// a fixed policy, matching directory semantics on case-sensitive filesystems
// and keeping plans deterministic everywhere else.
func Build(fsys afero.Fs, dir string, pat *naming.Pattern, ext string, start int) (*Plan, error) {
	if ext == "" {
		return nil, fmt.Errorf("%w: extension filter must not be empty", ErrInvalidExtension)
	}

	fi, err := fsys.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDirectoryNotFound, dir)
	}

	names, err := listMatching(fsys, dir, ext)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read %s: %v", ErrDirectoryNotFound, dir, err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no .%s files in %s", ErrNoMatchingFiles, ext, dir)
	}
	sort.Strings(names)

	plan := &Plan{Dir: dir, Entries: make([]Entry, 0, len(names))}
	claimed := make(map[string]string, len(names)) // target name → first source claiming it

	for k, source := range names {
		index := start + k
		target := pat.FileName(index, ext)
		entry := Entry{
			Source:     source,
			Target:     target,
			SourcePath: filepath.Join(dir, source),
			TargetPath: filepath.Join(dir, target),
			Index:      index,
		}
		classify(fsys, &entry, claimed)
		plan.Entries = append(plan.Entries, entry)
	}
	return plan, nil
}

// listMatching returns the base names of regular files in dir whose name ends
// with ".<ext>" (case-sensitive).
func listMatching(fsys afero.Fs, dir, ext string) ([]string, error) {
	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	suffix := "." + ext
	var names []string
	for _, fi := range infos {
		if !fi.Mode().IsRegular() {
			continue
		}
		if strings.HasSuffix(fi.Name(), suffix) {
			names = append(names, fi.Name())
		}
	}
	return names, nil
}
