package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"userbrush/internal/oplog"
	"userbrush/internal/ui"
)

const logDetailTruncateLen = 72

func formatLogTimestamp(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		if len(ts) >= 16 {
			return ts[:16]
		}
		return ts
	}
	return t.Format("2006-01-02 15:04")
}

func formatLogCommand(cmd string) string {
	if !ui.IsTTY() {
		return cmd
	}
	return "\033[1m" + strings.ToUpper(cmd) + "\033[0m"
}

func formatLogDetail(e oplog.Entry) string {
	detail := ""
	if e.Args != nil {
		switch e.Command {
		case "batch":
			detail = formatBatchLogDetail(e.Args)
		case "export":
			detail = formatExportLogDetail(e.Args)
		default:
			detail = formatGenericLogDetail(e.Args)
		}
	}

	switch {
	case e.Message != "" && detail != "":
		return truncateLogString(detail+" ("+e.Message+")", logDetailTruncateLen)
	case e.Message != "":
		return truncateLogString(e.Message, logDetailTruncateLen)
	default:
		return truncateLogString(detail, logDetailTruncateLen)
	}
}

func formatBatchLogDetail(args map[string]any) string {
	// Per-bundle entries in the loads log carry a result instead of counts.
	if result, ok := logArgString(args, "result"); ok {
		name, _ := logArgString(args, "name")
		if name == "" {
			name, _ = logArgString(args, "source")
		}
		return name + ": " + result
	}

	parts := make([]string, 0, 5)
	if total, ok := logArgInt(args, "total"); ok {
		parts = append(parts, fmt.Sprintf("total=%d", total))
	}
	if loaded, ok := logArgInt(args, "loaded"); ok {
		parts = append(parts, fmt.Sprintf("loaded=%d", loaded))
	}
	if warnings, ok := logArgInt(args, "warnings"); ok && warnings > 0 {
		parts = append(parts, fmt.Sprintf("warnings=%d", warnings))
	}
	if failed, ok := logArgInt(args, "failed"); ok && failed > 0 {
		parts = append(parts, fmt.Sprintf("failed=%d", failed))
	}
	if names, ok := logArgStringSlice(args, "failed_names"); ok {
		parts = append(parts, "failed="+strings.Join(names, ", "))
	}

	if len(parts) == 0 {
		return formatGenericLogDetail(args)
	}
	return strings.Join(parts, ", ")
}

func formatExportLogDetail(args map[string]any) string {
	parts := make([]string, 0, 3)
	if n, ok := logArgInt(args, "exported"); ok {
		parts = append(parts, fmt.Sprintf("exported=%d", n))
	}
	if names, ok := logArgStringSlice(args, "names"); ok {
		parts = append(parts, strings.Join(names, ", "))
	}
	if dest, ok := logArgString(args, "dest"); ok && dest != "" {
		parts = append(parts, "dest="+dest)
	}
	return strings.Join(parts, ", ")
}

func formatGenericLogDetail(args map[string]any) string {
	parts := make([]string, 0, 4)

	if name, ok := logArgString(args, "name"); ok {
		parts = append(parts, name)
	}
	if source, ok := logArgString(args, "source"); ok {
		parts = append(parts, source)
	}
	if target, ok := logArgString(args, "target"); ok {
		parts = append(parts, "-> "+target)
	}
	if base, ok := logArgString(args, "base"); ok {
		parts = append(parts, "base="+base)
	}

	return strings.Join(parts, ", ")
}

func logArgString(args map[string]any, key string) (string, bool) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", false
	}

	switch s := v.(type) {
	case string:
		return s, true
	default:
		return fmt.Sprintf("%v", v), true
	}
}

func logArgInt(args map[string]any, keys ...string) (int, bool) {
	for _, key := range keys {
		v, ok := args[key]
		if !ok || v == nil {
			continue
		}

		switch n := v.(type) {
		case int:
			return n, true
		case int64:
			return int(n), true
		case float64:
			return int(n), true
		case string:
			parsed, err := strconv.Atoi(strings.TrimSpace(n))
			if err == nil {
				return parsed, true
			}
		}
	}
	return 0, false
}

func logArgStringSlice(args map[string]any, key string) ([]string, bool) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, false
	}

	switch raw := v.(type) {
	case []string:
		if len(raw) == 0 {
			return nil, false
		}
		return raw, true
	case []any:
		items := make([]string, 0, len(raw))
		for _, it := range raw {
			s := strings.TrimSpace(fmt.Sprintf("%v", it))
			if s != "" {
				items = append(items, s)
			}
		}
		if len(items) == 0 {
			return nil, false
		}
		return items, true
	default:
		return nil, false
	}
}

func formatLogStatus(status string) string {
	if !ui.IsTTY() {
		return status
	}
	switch status {
	case "ok":
		return "\033[32mok\033[0m     "
	case "error":
		return "\033[31merror\033[0m  "
	case "partial":
		return "\033[33mpartial\033[0m"
	default:
		return status
	}
}

func formatLogDuration(ms int64) string {
	if ms <= 0 {
		return ""
	}
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	return fmt.Sprintf("%.1fs", float64(ms)/1000)
}

func truncateLogString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
