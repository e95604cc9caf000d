// Package walk enumerates the files beneath a directory tree.
//
// The walker knows nothing about benchmark logs. Callers filter the
// yielded paths themselves.
package walk

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
)

// ErrNotDirectory is reported when the walk root exists but is not a
// directory.
var ErrNotDirectory = errors.New("not a directory")

// FilesystemError reports a directory that could not be read during a
// walk. It is always fatal to the walk that produced it.
type FilesystemError struct {
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("walk %s: %v", e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

var errStop = errors.New("walk stopped")

// Files returns a lazy sequence of every non-directory entry reachable from
// root by recursive descent. Paths are joined onto root, so they are
// relative when root is relative. Symbolic links to directories are
// neither followed nor yielded; other symbolic links, dangling ones
// included, are yielded like files.
//
// The sequence yields a single non-nil error and ends when root is missing,
// is not a directory, or when any subdirectory cannot be read. Ranging over
// the sequence again restarts the walk from scratch.
func Files(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		info, err := os.Stat(root)
		if err != nil {
			yield("", &FilesystemError{Path: root, Err: err})
			return
		}

		if !info.IsDir() {
			yield("", &FilesystemError{Path: root, Err: ErrNotDirectory})
			return
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return &FilesystemError{Path: path, Err: err}
			}
			if d.IsDir() {
				return nil
			}
			if d.Type()&fs.ModeSymlink != 0 && linksToDir(path) {
				return nil
			}
			if !yield(path, nil) {
				return errStop
			}

			return nil
		})
		if err != nil && !errors.Is(err, errStop) {
			yield("", err)
		}
	}
}

func linksToDir(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.IsDir()
}
