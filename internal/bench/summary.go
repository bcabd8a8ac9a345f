package bench

import (
	"fmt"
	"os"
	"strings"

	"polybench/internal/toolchain"
)

// AppendSummary appends one fixed-width row per benchmark to the
// running summary log, creating the file (with a header) when absent.
// The log is append-only by design: each run adds its rows and older
// rows are never rewritten, so the file accumulates a history across
// runs.
func AppendSummary(doc *Document, path string) error {
	info, err := os.Stat(path)
	writeHeader := os.IsNotExist(err) || (err == nil && info.Size() == 0)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open summary log: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	if writeHeader {
		sb.WriteString(summaryHeader())
	}
	for _, result := range doc.Benchmarks {
		sb.WriteString(summaryRow(doc.Timestamp, result))
	}

	if _, err := f.WriteString(sb.String()); err != nil {
		return fmt.Errorf("append summary rows: %w", err)
	}
	return nil
}

func summaryHeader() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-20s %-24s", "timestamp", "benchmark")
	for _, lang := range toolchain.Languages() {
		fmt.Fprintf(&sb, " %12s", lang.String())
	}
	sb.WriteByte('\n')
	return sb.String()
}

func summaryRow(timestamp string, r Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-20s %-24s", timestamp, r.Name)
	for _, lang := range toolchain.Languages() {
		tm := r.Times[lang]
		if tm.Usable() {
			fmt.Fprintf(&sb, " %12.3f", tm.Millis())
		} else {
			fmt.Fprintf(&sb, " %12s", "inf")
		}
	}
	sb.WriteByte('\n')
	return sb.String()
}
