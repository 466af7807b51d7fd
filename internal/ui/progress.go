package ui

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"atomicgo.dev/cursor"
	"github.com/mattn/go-runewidth"
	"github.com/pterm/pterm"
)

// Outcome is how a single bundle finished loading.
type Outcome int

const (
	OutcomeLoaded Outcome = iota
	OutcomeWarnings
	OutcomeFailed
)

// loadTally is the state drawn on the status line.
type loadTally struct {
	total   int
	loaded  int
	warned  int
	failed  int
	last    string
	elapsed time.Duration
}

func (t loadTally) done() int { return t.loaded + t.warned + t.failed }

// LoadProgress tracks a batch of bundle loads. Workers report each bundle
// through Done; Done is safe for concurrent use.
type LoadProgress struct {
	title string
	start time.Time
	isTTY bool

	mu      sync.Mutex
	tally   loadTally
	stopped bool
}

// StartLoadProgress starts tracking total bundles.
func StartLoadProgress(title string, total int) *LoadProgress {
	p := &LoadProgress{title: title, start: time.Now(), isTTY: IsTTY()}
	p.tally.total = total
	if !p.isTTY {
		fmt.Printf("%s (%d bundles)\n", title, total)
		return p
	}
	cursor.Hide()
	p.render()
	return p
}

// Done records the outcome of one bundle. Off a terminal only failures
// are printed, one per line.
func (p *LoadProgress) Done(name string, outcome Outcome) {
	p.mu.Lock()
	switch outcome {
	case OutcomeFailed:
		p.tally.failed++
	case OutcomeWarnings:
		p.tally.warned++
	default:
		p.tally.loaded++
	}
	p.tally.last = name
	p.mu.Unlock()

	if p.isTTY {
		p.render()
	} else if outcome == OutcomeFailed {
		fmt.Printf("  ✗ %s\n", name)
	}
}

// Stop draws the final line and restores the cursor.
func (p *LoadProgress) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	p.tally.last = ""
	p.mu.Unlock()

	if !p.isTTY {
		return
	}
	p.render()
	fmt.Println()
	cursor.Show()
}

func (p *LoadProgress) render() {
	p.mu.Lock()
	t := p.tally
	p.mu.Unlock()
	t.elapsed = time.Since(p.start).Round(time.Second)

	width := pterm.GetTerminalWidth()
	fmt.Printf("\r%-*s", width, statusLine(p.title, t, width))
}

// statusLine renders the tally as one line fitting width columns:
// title, counter, bar, per-outcome counts, then the last bundle name.
func statusLine(title string, t loadTally, width int) string {
	counter := fmt.Sprintf("[%d/%d]", t.done(), t.total)
	counts := fmt.Sprintf("%d ok", t.loaded)
	countsC := Green + counts + Reset
	if t.warned > 0 {
		s := fmt.Sprintf(" · %d warn", t.warned)
		counts += s
		countsC += Yellow + s + Reset
	}
	if t.failed > 0 {
		s := fmt.Sprintf(" · %d failed", t.failed)
		counts += s
		countsC += Red + s + Reset
	}
	timeStr := fmt.Sprintf("| %s", t.elapsed)
	last := runewidth.Truncate(t.last, 20, "...")

	fixed := displayWidth(title) + 1 + len(counter) + 1 + 1 + displayWidth(counts) + 1 + len(timeStr)
	if last != "" {
		fixed += 1 + displayWidth(last)
	}
	barWidth := width - fixed
	if barWidth < 5 {
		barWidth = 5
	}
	filled := 0
	if t.total > 0 {
		filled = barWidth * t.done() / t.total
	}
	bar := barColor(t) + strings.Repeat("█", filled) + Gray + strings.Repeat("░", barWidth-filled) + Reset

	line := fmt.Sprintf("%s %s %s %s %s", Cyan+title+Reset, Gray+counter+Reset, bar, countsC, timeStr)
	if last != "" {
		line += " " + Gray + last + Reset
	}
	return line
}

// barColor is red once anything failed, yellow with warnings, green otherwise.
func barColor(t loadTally) string {
	switch {
	case t.failed > 0:
		return Red
	case t.warned > 0:
		return Yellow
	}
	return Green
}
