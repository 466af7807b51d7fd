// Package container gives folders and zip archives one read interface, and
// provides writers that publish output files atomically.
package container

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when a path does not exist inside a container.
var ErrNotFound = errors.New("not found")

// Container is a read-only view over a bundle. All paths use forward
// slashes and are relative to the current root unless stated otherwise.
type Container interface {
	// Name is the base name of the folder or archive.
	Name() string
	IsArchive() bool
	Exists(rel string) bool
	// Find returns the first file named filename below the current root.
	// The returned path is relative to the container base, ready for SetRoot.
	Find(filename string) (string, bool)
	Open(rel string) (io.ReadCloser, error)
	// SetRoot re-bases subsequent lookups. sub is relative to the container base.
	SetRoot(sub string) error
	Root() string
	Close() error
}

// Open opens location as a folder when it is a directory, otherwise as a
// zip archive.
func Open(location string) (Container, error) {
	info, err := os.Stat(location)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", location, ErrNotFound)
		}
		return nil, err
	}
	if info.IsDir() {
		return NewFolder(location), nil
	}
	return OpenArchive(location)
}

// ReadFile reads a whole file from c.
func ReadFile(c Container, rel string) ([]byte, error) {
	rc, err := c.Open(rel)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rc); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", rel, err)
	}
	return buf.Bytes(), nil
}

// CleanPath normalizes a bundle-relative path ("./a//b.png" becomes
// "a/b.png") and rejects paths that leave the container.
func CleanPath(rel string) (string, error) {
	p, err := cleanRel(rel)
	if err != nil {
		return "", err
	}
	if p == "" {
		return "", fmt.Errorf("path %q names no file", rel)
	}
	return p, nil
}

// cleanRel normalizes a container path and rejects paths escaping the root.
func cleanRel(rel string) (string, error) {
	p := filepath.ToSlash(rel)
	if strings.HasPrefix(p, "/") || filepath.IsAbs(rel) {
		return "", fmt.Errorf("path %q must be relative", rel)
	}
	p = path.Clean(p)
	if p == ".." || strings.HasPrefix(p, "../") {
		return "", fmt.Errorf("path %q escapes the container", rel)
	}
	if p == "." {
		return "", nil
	}
	return p, nil
}

func joinRel(root, rel string) (string, error) {
	r, err := cleanRel(rel)
	if err != nil {
		return "", err
	}
	if root == "" {
		return r, nil
	}
	if r == "" {
		return root, nil
	}
	return root + "/" + r, nil
}
