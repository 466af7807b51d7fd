package container

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Folder is a Container backed by a directory on disk.
type Folder struct {
	base string
	root string
}

// NewFolder returns a Folder rooted at dir.
func NewFolder(dir string) *Folder {
	return &Folder{base: dir}
}

func (f *Folder) Name() string    { return filepath.Base(f.base) }
func (f *Folder) IsArchive() bool { return false }
func (f *Folder) Root() string    { return f.root }
func (f *Folder) Close() error    { return nil }

func (f *Folder) SetRoot(sub string) error {
	r, err := cleanRel(sub)
	if err != nil {
		return err
	}
	f.root = r
	return nil
}

func (f *Folder) fullPath(rel string) (string, error) {
	p, err := joinRel(f.root, rel)
	if err != nil {
		return "", err
	}
	return filepath.Join(f.base, filepath.FromSlash(p)), nil
}

func (f *Folder) Exists(rel string) bool {
	p, err := f.fullPath(rel)
	if err != nil {
		return false
	}
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}

func (f *Folder) Open(rel string) (io.ReadCloser, error) {
	p, err := f.fullPath(rel)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", rel, ErrNotFound)
		}
		return nil, err
	}
	return file, nil
}

var errFound = errors.New("found")

func (f *Folder) Find(filename string) (string, bool) {
	start, err := f.fullPath(".")
	if err != nil {
		return "", false
	}

	var match string
	// WalkDir visits entries in lexical order, so the first hit is stable.
	err = filepath.WalkDir(start, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if d.IsDir() || d.Name() != filename {
			return nil
		}
		rel, relErr := filepath.Rel(f.base, p)
		if relErr != nil {
			return nil
		}
		match = filepath.ToSlash(rel)
		return errFound
	})
	if match == "" || (err != nil && !errors.Is(err, errFound)) {
		return "", false
	}
	return match, true
}
