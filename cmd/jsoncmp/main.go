package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	suiteFile string
	expected  string
	actual    string
	at        string
	mode      string
	include   string
	workers   int
	verbose   bool
	colorMode string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jsoncmp",
		Short: "Compare the structure of JSON documents",
		Long: `jsoncmp checks that an actual JSON document has the same structure as an
expected one: same keys, same value types, same array lengths and no blank
strings. The first difference is reported with its path, e.g. data.items[2].name.`,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVarP(&suiteFile, "config", "c", "", "Suite configuration file")
	rootCmd.Flags().StringVarP(&expected, "expected", "e", "", "Expected file or directory")
	rootCmd.Flags().StringVarP(&actual, "actual", "a", "", "Actual file or directory")
	rootCmd.Flags().StringVar(&at, "at", "", "Only compare the sub-tree at this path, e.g. data.items[0]")
	rootCmd.Flags().StringVar(&mode, "mode", "auto", "Root kind: auto, object or array")
	rootCmd.Flags().StringVar(&include, "include", "", "Directory mode file filter, e.g. '@^api/.*\\.json$@'")
	rootCmd.Flags().IntVarP(&workers, "workers", "w", 1, "Number of concurrent comparisons")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every comparison")
	rootCmd.Flags().StringVar(&colorMode, "color", "auto", "Colorize output: auto, always or never")

	rootCmd.MarkFlagsRequiredTogether("expected", "actual")
	rootCmd.MarkFlagsMutuallyExclusive("config", "expected")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
