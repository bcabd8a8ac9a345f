package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"polybench/internal/telemetry"
)

var exit = os.Exit
var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "polybench",
	Short: "Cross-language micro-benchmark harness",
	Long: `polybench runs a fixed suite of equivalent small programs across
several language toolchains, measures per-iteration wall-clock latency,
and aggregates the results into a JSON document, a running text summary,
and a self-contained HTML report.`,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'polybench --help' for usage.")
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./polybench.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("log-file", "", "Write structured logs to a file instead of stderr")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// explicit .env loading; a missing .env is fine
	godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("polybench")
	}

	viper.SetEnvPrefix("POLYBENCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("iterations", 100)
	viper.SetDefault("process_timeout", 60)
	viper.SetDefault("output", "compare_results.json")
	viper.SetDefault("summary", "benchmark_summary.txt")
	viper.SetDefault("report_output", "benchmark_report/index.html")
	viper.SetDefault("estimates_dir", "target/criterion")
	viper.SetDefault("verbose", false)

	// A missing config file is the common case; only a malformed one
	// matters and it surfaces when values are read.
	viper.ReadInConfig()

	telemetry.InitLogger(viper.GetBool("verbose"), viper.GetString("log_file"))
}
