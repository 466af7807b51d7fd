// Package batch loads many variant bundles concurrently and registers the
// results in a deterministic order.
package batch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"userbrush/internal/registry"
	"userbrush/internal/variant"
)

const maxWorkers = 8

// Outcome statuses.
const (
	StatusLoaded    = "loaded"
	StatusWarnings  = "warnings"
	StatusFailed    = "failed"
	StatusDuplicate = "duplicate"
)

// Input names one bundle. Subfolder is only used for sketches.
type Input struct {
	Path      string
	Sketch    bool
	Subfolder string
}

// Result is the outcome of loading one bundle.
type Result struct {
	Path   string
	Status string
	Brush  *variant.Brush
	Err    error
}

// Discover lists the bundles directly inside dir: folders that hold a
// Brush.cfg and .zip archives, sorted by name.
func Discover(dir string) ([]Input, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read brushes directory: %w", err)
	}

	var inputs []Input
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		p := filepath.Join(dir, e.Name())
		switch {
		case e.IsDir():
			if _, err := os.Stat(filepath.Join(p, variant.ConfigFile)); err == nil {
				inputs = append(inputs, Input{Path: p})
			}
		case strings.EqualFold(filepath.Ext(e.Name()), ".zip"):
			inputs = append(inputs, Input{Path: p})
		}
	}
	sort.Slice(inputs, func(i, j int) bool { return inputs[i].Path < inputs[j].Path })
	return inputs, nil
}

// Load loads inputs concurrently using at most jobs workers (0 means the
// default). Workers only read reg. onDone (if non-nil) is called with each
// bundle's result as it finishes. Results keep input order.
func Load(inputs []Input, reg *registry.Registry, jobs int, onDone func(Result)) []Result {
	results := make([]Result, len(inputs))
	if len(inputs) == 0 {
		return results
	}
	if jobs <= 0 || jobs > maxWorkers {
		jobs = maxWorkers
	}

	sem := make(chan struct{}, jobs)
	var wg sync.WaitGroup

	for i, in := range inputs {
		wg.Add(1)
		sem <- struct{}{}
		go func(idx int, in Input) {
			defer wg.Done()
			defer func() { <-sem }()

			results[idx] = loadOne(in, reg)
			if onDone != nil {
				onDone(results[idx])
			}
		}(i, in)
	}
	wg.Wait()

	return results
}

func loadOne(in Input, reg *registry.Registry) Result {
	res := Result{Path: in.Path}

	var b *variant.Brush
	var err error
	if in.Sketch {
		b, err = variant.CreateFromSketch(in.Path, in.Subfolder, reg)
	} else {
		b, err = variant.Create(in.Path, reg)
	}
	if err != nil {
		res.Status = StatusFailed
		res.Err = err
		return res
	}

	res.Brush = b
	res.Status = StatusLoaded
	if len(b.Warnings) > 0 {
		res.Status = StatusWarnings
	}
	return res
}

// Commit registers every loaded variant in input order. When two bundles
// share a GUID the first one wins and the later ones are marked duplicate.
func Commit(results []Result, reg *registry.Registry) {
	for i := range results {
		r := &results[i]
		if r.Brush == nil {
			continue
		}
		if err := reg.Register(r.Brush.Descriptor); err != nil {
			r.Status = StatusDuplicate
			r.Err = &variant.LoadError{Location: r.Brush.Location(), Err: err}
			r.Brush = nil
		}
	}
}

// Run loads inputs and commits them.
func Run(inputs []Input, reg *registry.Registry, jobs int, onDone func(Result)) []Result {
	results := Load(inputs, reg, jobs, onDone)
	Commit(results, reg)
	return results
}

// Summary counts results by outcome.
type Summary struct {
	Loaded   int
	Warnings int
	Failed   int
}

// Summarize counts results. Duplicates count as failures.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		switch r.Status {
		case StatusLoaded:
			s.Loaded++
		case StatusWarnings:
			s.Loaded++
			s.Warnings++
		default:
			s.Failed++
		}
	}
	return s
}

// IsDuplicate reports whether err came from a GUID collision.
func IsDuplicate(err error) bool {
	return errors.Is(err, registry.ErrDuplicateGUID)
}
