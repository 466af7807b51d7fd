package container

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Writer receives the files of a repackaged bundle.
type Writer interface {
	// Create opens rel for writing. The caller must Close the stream before
	// creating the next one.
	Create(rel string) (io.WriteCloser, error)
	// Commit publishes everything written so far.
	Commit() error
	// Abort discards uncommitted output. It is safe to call after Commit.
	Abort() error
}

// NewWriter returns a ZipWriter when dest ends in .zip, otherwise a DirWriter.
func NewWriter(dest string) (Writer, error) {
	if filepath.Ext(dest) == ".zip" {
		return NewZipWriter(dest)
	}
	return NewDirWriter(dest)
}

// DirWriter writes files below a directory. Each file is written to a
// temporary sibling and renamed into place on Close, so a failed write
// never leaves a truncated file behind.
type DirWriter struct {
	dir string
}

// NewDirWriter creates dir if needed and returns a writer for it.
func NewDirWriter(dir string) (*DirWriter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &DirWriter{dir: dir}, nil
}

func (w *DirWriter) Create(rel string) (io.WriteCloser, error) {
	p, err := cleanRel(rel)
	if err != nil {
		return nil, err
	}
	if p == "" {
		return nil, fmt.Errorf("empty output path")
	}
	dst := filepath.Join(w.dir, filepath.FromSlash(p))
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return nil, err
	}
	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".tmp-*")
	if err != nil {
		return nil, err
	}
	return &atomicFile{f: tmp, dst: dst}, nil
}

func (w *DirWriter) Commit() error { return nil }
func (w *DirWriter) Abort() error  { return nil }

type atomicFile struct {
	f      *os.File
	dst    string
	err    error
	closed bool
}

func (a *atomicFile) Write(p []byte) (int, error) {
	if a.err != nil {
		return 0, a.err
	}
	n, err := a.f.Write(p)
	if err != nil {
		a.err = err
	}
	return n, err
}

func (a *atomicFile) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	tmp := a.f.Name()
	if err := a.f.Close(); err != nil && a.err == nil {
		a.err = err
	}
	if a.err != nil {
		os.Remove(tmp)
		return a.err
	}
	if err := os.Rename(tmp, a.dst); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// ZipWriter writes a zip archive to a temporary file that replaces the
// destination on Commit.
type ZipWriter struct {
	dest string
	tmp  *os.File
	zw   *zip.Writer
	open *zipEntry
	done bool
}

// NewZipWriter starts a new archive that will be published at dest.
func NewZipWriter(dest string) (*ZipWriter, error) {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+".tmp-*")
	if err != nil {
		return nil, err
	}
	return &ZipWriter{dest: dest, tmp: tmp, zw: zip.NewWriter(tmp)}, nil
}

var errEntryOpen = errors.New("previous archive entry is still open")

func (w *ZipWriter) Create(rel string) (io.WriteCloser, error) {
	if w.done {
		return nil, fmt.Errorf("archive %s already finished", w.dest)
	}
	if w.open != nil && !w.open.closed {
		return nil, errEntryOpen
	}
	p, err := cleanRel(rel)
	if err != nil {
		return nil, err
	}
	if p == "" {
		return nil, fmt.Errorf("empty output path")
	}
	ew, err := w.zw.Create(p)
	if err != nil {
		return nil, err
	}
	w.open = &zipEntry{w: ew}
	return w.open, nil
}

func (w *ZipWriter) Commit() error {
	if w.done {
		return fmt.Errorf("archive %s already finished", w.dest)
	}
	w.done = true
	tmp := w.tmp.Name()
	if err := w.zw.Close(); err != nil {
		w.tmp.Close()
		os.Remove(tmp)
		return err
	}
	if err := w.tmp.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, w.dest); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

func (w *ZipWriter) Abort() error {
	if w.done {
		return nil
	}
	w.done = true
	w.zw.Close()
	w.tmp.Close()
	return os.Remove(w.tmp.Name())
}

type zipEntry struct {
	w      io.Writer
	closed bool
}

func (e *zipEntry) Write(p []byte) (int, error) {
	if e.closed {
		return 0, os.ErrClosed
	}
	return e.w.Write(p)
}

// Close marks the entry finished; zip.Writer flushes it on the next Create.
func (e *zipEntry) Close() error {
	e.closed = true
	return nil
}
