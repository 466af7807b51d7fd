// Package diff renders line diffs between brush configurations.
package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"userbrush/internal/brush"
	"userbrush/internal/variant"
)

// Lines diffs oldText against newText line by line. Inserted lines are
// prefixed with "+ ", deleted lines with "- " and unchanged lines with "  ".
func Lines(oldText, newText string) string {
	return format(lineDiffs(oldText, newText))
}

// Stat counts inserted and deleted lines.
func Stat(oldText, newText string) (added, removed int) {
	for _, d := range lineDiffs(oldText, newText) {
		n := len(splitLines(d.Text))
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			added += n
		case diffmatchpatch.DiffDelete:
			removed += n
		}
	}
	return added, removed
}

// Changed returns only the inserted and deleted lines of the diff.
func Changed(oldText, newText string) string {
	var b strings.Builder
	for _, d := range lineDiffs(oldText, newText) {
		if d.Type == diffmatchpatch.DiffEqual {
			continue
		}
		b.WriteString(format([]diffmatchpatch.Diff{d}))
	}
	return b.String()
}

func lineDiffs(oldText, newText string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)
	return dmp.DiffCleanupSemantic(diffs)
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func format(diffs []diffmatchpatch.Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffEqual:
			prefix = "  "
		}
		for _, line := range splitLines(d.Text) {
			b.WriteString(prefix)
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Descriptors exports base and derived as configurations and diffs them,
// showing every value the variant ended up changing. Export warnings from
// both sides are returned.
func Descriptors(base, derived *brush.Descriptor) (string, []string, error) {
	oldProps, warnings := variant.ExportDescriptor(base)
	newProps, w := variant.ExportDescriptor(derived)
	warnings = append(warnings, w...)

	oldData, err := oldProps.Marshal()
	if err != nil {
		return "", warnings, err
	}
	newData, err := newProps.Marshal()
	if err != nil {
		return "", warnings, err
	}
	return Lines(string(oldData), string(newData)), warnings, nil
}
