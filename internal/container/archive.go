package container

import (
	"archive/zip"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Archive is a Container backed by a zip file.
type Archive struct {
	name   string
	rc     *zip.ReadCloser
	files  map[string]*zip.File
	sorted []string
	root   string
}

// OpenArchive opens the zip file at location.
func OpenArchive(location string) (*Archive, error) {
	rc, err := zip.OpenReader(location)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive %s: %w", location, err)
	}

	a := &Archive{
		name:  filepath.Base(location),
		rc:    rc,
		files: make(map[string]*zip.File, len(rc.File)),
	}
	for _, f := range rc.File {
		if f.FileInfo().IsDir() {
			continue
		}
		name, err := cleanRel(f.Name)
		if err != nil || name == "" {
			continue // skip entries that would escape the archive
		}
		a.files[name] = f
		a.sorted = append(a.sorted, name)
	}
	sort.Slice(a.sorted, func(i, j int) bool { return walkLess(a.sorted[i], a.sorted[j]) })
	return a, nil
}

// walkLess orders paths the way filepath.WalkDir visits them: segment by
// segment, so "Glowy/x" comes before "Glowy-2/x".
func walkLess(a, b string) bool {
	as, bs := strings.Split(a, "/"), strings.Split(b, "/")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if as[i] != bs[i] {
			return as[i] < bs[i]
		}
	}
	return len(as) < len(bs)
}

func (a *Archive) Name() string    { return a.name }
func (a *Archive) IsArchive() bool { return true }
func (a *Archive) Root() string    { return a.root }
func (a *Archive) Close() error    { return a.rc.Close() }

func (a *Archive) SetRoot(sub string) error {
	r, err := cleanRel(sub)
	if err != nil {
		return err
	}
	a.root = r
	return nil
}

func (a *Archive) Exists(rel string) bool {
	p, err := joinRel(a.root, rel)
	if err != nil {
		return false
	}
	_, ok := a.files[p]
	return ok
}

func (a *Archive) Open(rel string) (io.ReadCloser, error) {
	p, err := joinRel(a.root, rel)
	if err != nil {
		return nil, err
	}
	f, ok := a.files[p]
	if !ok {
		return nil, fmt.Errorf("%s: %w", rel, ErrNotFound)
	}
	return f.Open()
}

func (a *Archive) Find(filename string) (string, bool) {
	prefix := ""
	if a.root != "" {
		prefix = a.root + "/"
	}
	for _, name := range a.sorted {
		if strings.HasPrefix(name, prefix) && path.Base(name) == filename {
			return name, true
		}
	}
	return "", false
}
