package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"userbrush/internal/batch"
	"userbrush/internal/oplog"
	"userbrush/internal/ui"
)

func cmdBatch(args []string) error {
	start := time.Now()
	dir := ""
	jobs := -1
	sketch := false
	subfolder := ""
	quiet := false

	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--jobs" || args[i] == "-j":
			v, err := requireValue(args, i)
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return fmt.Errorf("invalid --jobs value %q", v)
			}
			jobs = n
			i++
		case args[i] == "--sketch" || args[i] == "-s":
			sketch = true
		case args[i] == "--subfolder":
			v, err := requireValue(args, i)
			if err != nil {
				return err
			}
			sketch = true
			subfolder = v
			i++
		case args[i] == "--quiet" || args[i] == "-q":
			quiet = true
		case args[i] == "--help" || args[i] == "-h":
			printBatchHelp()
			return nil
		case strings.HasPrefix(args[i], "-"):
			return fmt.Errorf("unknown option: %s", args[i])
		default:
			if dir != "" {
				return fmt.Errorf("unexpected argument: %s", args[i])
			}
			dir = args[i]
		}
	}

	cfg, reg, err := loadRuntime()
	if err != nil {
		return err
	}
	if dir == "" {
		dir = cfg.BrushesDir
	}
	if jobs < 0 {
		jobs = cfg.Jobs
	}
	if sketch && subfolder == "" {
		subfolder = cfg.SketchSubfolder
	}

	inputs, err := batch.Discover(dir)
	if err != nil {
		logOp(cfg, "batch", map[string]any{"source": dir}, start, err)
		return err
	}
	for i := range inputs {
		inputs[i].Sketch = sketch
		inputs[i].Subfolder = subfolder
	}
	if len(inputs) == 0 {
		ui.Info("No variant bundles found in %s", dir)
		logOp(cfg, "batch", map[string]any{"source": dir, "total": 0}, start, nil)
		return nil
	}

	progress := ui.StartLoadProgress("Loading variants", len(inputs))
	results := batch.Run(inputs, reg, jobs, func(r batch.Result) {
		progress.Done(filepath.Base(r.Path), loadOutcome(r.Status))
	})
	progress.Stop()

	for _, r := range results {
		logBatchResult(r)
	}
	if !quiet {
		fmt.Println()
		for _, r := range results {
			printResultStatus(r)
		}
	}

	summary := batch.Summarize(results)
	var failedNames []string
	for _, r := range results {
		if r.Err != nil {
			failedNames = append(failedNames, filepath.Base(r.Path))
			if quiet {
				ui.ListItem("error", filepath.Base(r.Path), r.Err.Error())
			}
		}
	}

	fmt.Println()
	ui.SummaryLine("Batch", time.Since(start),
		ui.Metric{Label: "loaded", Count: summary.Loaded},
		ui.Metric{Label: "warnings", Count: summary.Warnings},
		ui.Metric{Label: "failed", Count: summary.Failed},
	)

	var batchErr error
	if summary.Failed > 0 {
		batchErr = fmt.Errorf("%d of %d variants failed to load", summary.Failed, len(results))
	}
	logOp(cfg, "batch", map[string]any{
		"source":       dir,
		"total":        len(results),
		"loaded":       summary.Loaded,
		"warnings":     summary.Warnings,
		"failed":       summary.Failed,
		"failed_names": failedNames,
	}, start, batchErr)
	return batchErr
}

func loadOutcome(status string) ui.Outcome {
	switch status {
	case batch.StatusFailed:
		return ui.OutcomeFailed
	case batch.StatusWarnings:
		return ui.OutcomeWarnings
	}
	return ui.OutcomeLoaded
}

// logBatchResult records one bundle outcome in the loads log.
func logBatchResult(r batch.Result) {
	status := "ok"
	switch r.Status {
	case batch.StatusWarnings:
		status = "partial"
	case batch.StatusFailed, batch.StatusDuplicate:
		status = "error"
	}

	e := oplog.NewEntry("batch", status, 0)
	e.Args = map[string]any{"source": r.Path, "result": r.Status}
	if r.Brush != nil {
		e.Args["name"] = r.Brush.Descriptor.Name
		e.Args["guid"] = r.Brush.Descriptor.GUID
		e.Warnings = r.Brush.Warnings
	}
	if r.Err != nil {
		e.Message = r.Err.Error()
	}
	oplog.Write(oplog.LogDir(), oplog.LoadsFile, e) //nolint:errcheck
}

func printBatchHelp() {
	fmt.Println(`Usage: userbrush batch [DIR] [options]

Load every variant folder and .zip archive directly inside DIR
(default: brushes_dir from config). Bundles load in parallel and are
registered in name order; on a GUID collision the first bundle wins.

Options:
  --jobs, -j N         Parallel workers (default: jobs from config, max 8)
  --sketch, -s         Treat every archive as a sketch
  --subfolder SUB      Sketch folder holding variants (implies --sketch)
  --quiet, -q          Only print failures and the summary
  --help, -h           Show this help`)
}
