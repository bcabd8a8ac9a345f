package main

import (
	"fmt"
	"log/slog"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"polybench/internal/bench"
	"polybench/internal/proc"
	"polybench/internal/registry"
	"polybench/internal/toolchain"
)

var (
	runOutput     string
	runIterations int
	runSummary    string
	runTimeout    int
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full benchmark suite across all languages",
	Long: `Executes every registered benchmark once per language toolchain,
averaging wall-clock time over the configured iteration count. Results
are written to a JSON document and appended to the running summary log.

A language whose toolchain is missing or whose snippet fails to compile
is recorded with the unusable sentinel; it never aborts the run.`,
	RunE: runAll,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "Output JSON file path (default compare_results.json)")
	runCmd.Flags().IntVarP(&runIterations, "iterations", "i", 0, "Iterations per benchmark (default 100)")
	runCmd.Flags().StringVar(&runSummary, "summary", "", "Summary log path; empty uses the default, '-' disables")
	runCmd.Flags().IntVar(&runTimeout, "timeout", 0, "Per-process timeout in seconds (default 60)")
}

func runAll(cmd *cobra.Command, args []string) error {
	output := runOutput
	if output == "" {
		output = viper.GetString("output")
	}
	iterations := runIterations
	if iterations <= 0 {
		iterations = viper.GetInt("iterations")
	}
	timeout := runTimeout
	if timeout <= 0 {
		timeout = viper.GetInt("process_timeout")
	}
	summary := runSummary
	if summary == "" {
		summary = viper.GetString("summary")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headerStyle.Render("polybench: language performance comparison"))
	fmt.Fprintf(out, "Running with %d iterations per benchmark...\n\n", iterations)

	adapter := toolchain.NewAdapter(
		proc.NewExecRunner(),
		toolchain.WithProcessTimeout(time.Duration(timeout)*time.Second),
	)
	runner := bench.NewRunner(registry.Default(), adapter, iterations, out, slog.Default())

	doc, err := runner.RunAll(cmd.Context())
	if err != nil {
		return fmt.Errorf("benchmark run failed: %w", err)
	}

	fmt.Fprintln(out)
	printResultsTable(cmd, doc)

	if err := bench.Save(doc, output); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}
	fmt.Fprintln(out, okStyle.Render(fmt.Sprintf("Results saved to %s", output)))

	if summary != "-" {
		if err := bench.AppendSummary(doc, summary); err != nil {
			return fmt.Errorf("failed to append summary: %w", err)
		}
		fmt.Fprintln(out, okStyle.Render(fmt.Sprintf("Summary appended to %s", summary)))
	}

	return nil
}

func printResultsTable(cmd *cobra.Command, doc *bench.Document) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)

	fmt.Fprint(w, "BENCHMARK")
	for _, lang := range toolchain.Languages() {
		fmt.Fprintf(w, "\t%s", lang.Display())
	}
	fmt.Fprintln(w)

	for _, result := range doc.Benchmarks {
		fmt.Fprint(w, result.Name)
		for _, lang := range toolchain.Languages() {
			tm := result.Timing(lang)
			if tm.Usable() {
				fmt.Fprintf(w, "\t%.3fms", tm.Millis())
			} else {
				fmt.Fprintf(w, "\t%s", warnStyle.Render("N/A"))
			}
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}
