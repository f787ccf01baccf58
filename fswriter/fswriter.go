// Package fswriter provides the filesystem-backed FileWriter used by the
// generation engine. All paths are relative to a single project root; the
// writer creates parent directories on demand and never deletes anything.
package fswriter

import (
	"context"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
)

// Writer persists generated artifacts under a root directory on an afero
// filesystem. The zero value is not usable; construct with New or NewMem.
type Writer struct {
	fs   afero.Fs
	root string
}

// New returns a writer rooted at dir on the OS filesystem.
func New(dir string) *Writer {
	return &Writer{fs: afero.NewOsFs(), root: dir}
}

// NewMem returns a writer over an in-memory filesystem. Used by tests and by
// the preview server, which renders without touching disk.
func NewMem() *Writer {
	return &Writer{fs: afero.NewMemMapFs(), root: "/"}
}

// NewFs returns a writer rooted at dir on the given filesystem.
func NewFs(fs afero.Fs, dir string) *Writer {
	return &Writer{fs: fs, root: dir}
}

func (w *Writer) abs(relPath string) string {
	return filepath.Join(w.root, filepath.FromSlash(relPath))
}

// Write stores content at relPath, creating parent directories as needed.
// An existing file at the path is overwritten; write-once policy lives in
// the engine, not here.
func (w *Writer) Write(ctx context.Context, relPath string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target := w.abs(relPath)
	if err := w.fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return errors.Wrapf(err, "create directory for %s", relPath)
	}
	if err := afero.WriteFile(w.fs, target, content, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", relPath)
	}
	return nil
}

// Exists reports whether relPath names an existing file or directory.
// "." asks about the root itself.
func (w *Writer) Exists(relPath string) (bool, error) {
	_, err := w.fs.Stat(w.abs(relPath))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrapf(err, "stat %s", relPath)
}

// List returns the files directly inside dir, as slash-separated paths
// relative to the root. A missing directory is an error; the caller decides
// whether that means an empty project.
func (w *Writer) List(dir string) ([]string, error) {
	infos, err := afero.ReadDir(w.fs, w.abs(dir))
	if err != nil {
		return nil, errors.Wrapf(err, "read directory %s", dir)
	}
	out := make([]string, 0, len(infos))
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		out = append(out, dir+"/"+info.Name())
	}
	return out, nil
}
