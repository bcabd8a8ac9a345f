package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"polybench/internal/bench"
	"polybench/internal/git"
	"polybench/internal/report"
)

var (
	reportOutput    string
	reportCompare   string
	reportEstimates string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the HTML benchmark report",
	Long: `Renders a single self-contained HTML document from the latest
comparison results and, when present, the statistics engine's estimate
tree. Either input may be missing; the corresponding report section is
simply omitted.`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "Report output path (default benchmark_report/index.html)")
	reportCmd.Flags().StringVarP(&reportCompare, "compare", "c", "", "Comparison results JSON path (default compare_results.json)")
	reportCmd.Flags().StringVar(&reportEstimates, "estimates", "", "Statistics engine output directory (default target/criterion)")
}

func runReport(cmd *cobra.Command, args []string) error {
	output := reportOutput
	if output == "" {
		output = viper.GetString("report_output")
	}
	compare := reportCompare
	if compare == "" {
		compare = viper.GetString("output")
	}
	estimatesDir := reportEstimates
	if estimatesDir == "" {
		estimatesDir = viper.GetString("estimates_dir")
	}

	out := cmd.OutOrStdout()

	doc, err := bench.Load(compare)
	if err != nil {
		return fmt.Errorf("failed to load comparison results: %w", err)
	}
	if doc == nil {
		fmt.Fprintf(out, "No comparison results at %s; section will be omitted\n", compare)
	}

	estimates, err := report.LoadEstimates(estimatesDir)
	if err != nil {
		return fmt.Errorf("failed to load estimates: %w", err)
	}
	if estimates == nil {
		fmt.Fprintf(out, "No estimates under %s; section will be omitted\n", estimatesDir)
	}

	gen := report.NewGenerator(git.NewClient())
	html, err := gen.Render(doc, estimates)
	if err != nil {
		return err
	}

	if err := report.WriteFile(output, html); err != nil {
		return err
	}
	fmt.Fprintf(out, "Report saved to %s (%d bytes)\n", output, len(html))
	return nil
}
