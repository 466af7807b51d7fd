package ui

import (
	"fmt"
)

// Colors for terminal output
const (
	Reset   = "\033[0m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[97m"
	Gray    = "\033[90m"
)

// Success prints a success message
func Success(format string, args ...interface{}) {
	fmt.Printf(Green+"✓ "+Reset+format+"\n", args...)
}

// Error prints an error message
func Error(format string, args ...interface{}) {
	fmt.Printf(Red+"✗ "+Reset+format+"\n", args...)
}

// Warning prints a warning message
func Warning(format string, args ...interface{}) {
	fmt.Printf(Yellow+"! "+Reset+format+"\n", args...)
}

// Info prints an info message
func Info(format string, args ...interface{}) {
	fmt.Printf(Cyan+"→ "+Reset+format+"\n", args...)
}

// Status prints a brush status line
func Status(name, status, detail string) {
	statusColor := Gray
	switch status {
	case "loaded", "base":
		statusColor = Green
	case "warnings", "hidden":
		statusColor = Yellow
	case "variant":
		statusColor = Blue
	case "failed", "duplicate":
		statusColor = Red
	}

	fmt.Printf("  %-24s %s%-10s%s %s\n", name, statusColor, status, Reset, Gray+detail+Reset)
}

// Header prints a section header
func Header(text string) {
	fmt.Printf("\n%s%s%s\n", Cyan, text, Reset)
	fmt.Println(Gray + "─────────────────────────────────────────" + Reset)
}
