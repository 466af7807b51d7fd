package ui

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/pterm/pterm"
)

// ansiRegex matches ANSI escape sequences
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// displayWidth returns the visible width of a string (excluding ANSI codes, handling wide chars)
func displayWidth(s string) int {
	return runewidth.StringWidth(ansiRegex.ReplaceAllString(s, ""))
}

// padLines pads every line to the widest display width so boxes stay square.
func padLines(lines []string) string {
	maxLen := 0
	for _, line := range lines {
		if w := displayWidth(line); w > maxLen {
			maxLen = w
		}
	}

	var content strings.Builder
	for i, line := range lines {
		content.WriteString(line)
		if w := displayWidth(line); w < maxLen {
			content.WriteString(strings.Repeat(" ", maxLen-w))
		}
		if i < len(lines)-1 {
			content.WriteString("\n")
		}
	}
	return content.String()
}

// IsTTY returns true if stdout is a terminal
func IsTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// Box prints content in a styled box
func Box(title string, lines ...string) {
	if !IsTTY() {
		if title != "" {
			fmt.Printf("── %s ──\n", title)
		}
		for _, line := range lines {
			fmt.Println(line)
		}
		return
	}

	pterm.DefaultBox.WithTitle(title).Println(padLines(lines))
}

// HeaderBox prints command header box
func HeaderBox(command, subtitle string) {
	if !IsTTY() {
		fmt.Printf("%s\n%s\n", command, subtitle)
		return
	}

	pterm.DefaultBox.
		WithTitle(pterm.Cyan(command)).
		WithTitleTopLeft().
		Println(subtitle)
}

// Spinner wraps pterm spinner
type Spinner struct {
	spinner *pterm.SpinnerPrinter
	start   time.Time
}

// StartSpinner starts a spinner with message
func StartSpinner(message string) *Spinner {
	if !IsTTY() {
		fmt.Printf("... %s\n", message)
		return &Spinner{start: time.Now()}
	}

	s, _ := pterm.DefaultSpinner.Start(message)
	return &Spinner{spinner: s, start: time.Now()}
}

func (s *Spinner) timed(message string) string {
	elapsed := time.Since(s.start)
	if elapsed.Seconds() >= 0.05 {
		return fmt.Sprintf("%s (%.1fs)", message, elapsed.Seconds())
	}
	return message
}

// Success stops spinner with success
func (s *Spinner) Success(message string) {
	msg := s.timed(message)
	if s.spinner != nil {
		s.spinner.Success(msg)
	} else {
		fmt.Printf("✓ %s\n", msg)
	}
}

// Fail stops spinner with failure (red)
func (s *Spinner) Fail(message string) {
	if s.spinner != nil {
		s.spinner.Fail(message)
	} else {
		fmt.Printf("✗ %s\n", message)
	}
}

// Warn stops spinner with warning (yellow)
func (s *Spinner) Warn(message string) {
	msg := s.timed(message)
	if s.spinner != nil {
		s.spinner.Warning(msg)
	} else {
		fmt.Printf("! %s\n", msg)
	}
}

// WarningBox prints warning in a box
func WarningBox(title string, lines ...string) {
	if !IsTTY() {
		fmt.Printf("! %s\n", title)
		for _, line := range lines {
			fmt.Printf("  %s\n", line)
		}
		return
	}

	pterm.DefaultBox.
		WithTitle(pterm.Yellow(title)).
		WithBoxStyle(pterm.NewStyle(pterm.FgYellow)).
		Println(padLines(lines))
}

// SummaryBox prints a summary box with key-value pairs, sorted by key
func SummaryBox(title string, items map[string]string) {
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if !IsTTY() {
		fmt.Printf("── %s ──\n", title)
		for _, k := range keys {
			fmt.Printf("  %s: %s\n", k, items[k])
		}
		return
	}

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("  %-12s %s", k+":", items[k]))
	}
	pterm.DefaultBox.WithTitle(title).Println(padLines(lines))
}

// ListItem prints a list item with a status icon
func ListItem(status, name, detail string) {
	var statusIcon string
	var style pterm.Style

	switch status {
	case "success":
		statusIcon = "✓"
		style = *pterm.NewStyle(pterm.FgGreen)
	case "error":
		statusIcon = "✗"
		style = *pterm.NewStyle(pterm.FgRed)
	case "warning":
		statusIcon = "!"
		style = *pterm.NewStyle(pterm.FgYellow)
	default:
		statusIcon = "→"
		style = *pterm.NewStyle(pterm.FgCyan)
	}

	if IsTTY() {
		fmt.Printf("  %s %-24s %s\n", style.Sprint(statusIcon), name, pterm.Gray(detail))
	} else {
		fmt.Printf("  %s %-24s %s\n", statusIcon, name, detail)
	}
}

// BrushBox prints a brush with its description and key facts.
func BrushBox(name, description string, facts [][2]string) {
	if !IsTTY() {
		fmt.Printf("\n── %s ──\n", name)
		if description != "" {
			fmt.Printf("  %s\n", description)
		}
		for _, f := range facts {
			fmt.Printf("  %s: %s\n", f[0], f[1])
		}
		return
	}

	lines := []string{""}
	if description != "" {
		for _, line := range wrapText(description, 55) {
			lines = append(lines, "  "+line)
		}
		lines = append(lines, "")
	}
	for _, f := range facts {
		lines = append(lines, fmt.Sprintf("  %s %s", pterm.Gray(f[0]+":"), f[1]))
	}
	lines = append(lines, "")

	pterm.DefaultBox.
		WithTitle(pterm.Cyan(name)).
		WithTitleTopLeft().
		Println(padLines(lines))
}

// SectionLabel prints a dim section label for visual grouping.
func SectionLabel(label string) {
	if IsTTY() {
		fmt.Printf("\n  %s\n", pterm.Gray(label))
	} else {
		fmt.Printf("\n- %s\n", label)
	}
}

// wrapText wraps text to specified width
func wrapText(text string, width int) []string {
	if displayWidth(text) <= width {
		return []string{text}
	}

	var lines []string
	currentLine := ""
	for _, word := range strings.Fields(text) {
		switch {
		case currentLine == "":
			currentLine = word
		case displayWidth(currentLine)+1+displayWidth(word) <= width:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}
	return lines
}
