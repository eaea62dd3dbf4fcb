package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"jsoncmp/pkg/processor"
	"jsoncmp/pkg/suite"
)

func run(cmd *cobra.Command, args []string) error {
	if err := setupColor(cmd.OutOrStdout()); err != nil {
		return err
	}

	logger := zap.NewNop()
	if verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		logger = l
		defer logger.Sync()
	}

	s, err := loadSuite()
	if err != nil {
		return err
	}

	proc := processor.New(processor.WithLogger(logger), processor.WithWorkers(workers))

	reports, err := proc.RunSuite(cmd.Context(), s)
	if err != nil {
		return err
	}

	failed := printReports(cmd.OutOrStdout(), reports)
	if failed > 0 {
		return fmt.Errorf("%d of %d comparisons failed", failed, len(reports))
	}
	return nil
}

// loadSuite 从配置文件或命令行参数构造比较用例
func loadSuite() (*suite.Suite, error) {
	if suiteFile != "" {
		s, err := suite.LoadFromFile(suiteFile)
		if err != nil {
			return nil, fmt.Errorf("load suite: %w", err)
		}
		return s, nil
	}

	if expected == "" {
		return nil, fmt.Errorf("either --config or --expected/--actual is required")
	}

	info, err := os.Stat(expected)
	if err != nil {
		return nil, fmt.Errorf("stat expected: %w", err)
	}

	s := &suite.Suite{}

	if info.IsDir() {
		// 目录模式
		cases, err := processor.CasesFromDirs(expected, actual, include)
		if err != nil {
			return nil, err
		}
		for _, c := range cases {
			c.At = at
			c.Mode = suite.Mode(mode)
		}
		s.Cases = cases
	} else {
		// 文件模式
		s.Cases = []*suite.Case{{
			Expected: expected,
			Actual:   actual,
			At:       at,
			Mode:     suite.Mode(mode),
		}}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

func printReports(w io.Writer, reports []processor.Report) int {
	ok := color.New(color.FgGreen).SprintFunc()
	bad := color.New(color.FgRed).SprintFunc()

	failed := 0
	for _, r := range reports {
		switch {
		case r.Err != nil:
			failed++
			fmt.Fprintf(w, "%s %s: %v\n", bad("✗"), r.Case.Title(), r.Err)
		case !r.Outcome.Equal():
			failed++
			fmt.Fprintf(w, "%s %s: %s\n", bad("✗"), r.Case.Title(), r.Outcome.Message())
		default:
			fmt.Fprintf(w, "%s %s\n", ok("✓"), r.Case.Title())
		}
	}
	return failed
}

func setupColor(w io.Writer) error {
	switch colorMode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	case "auto":
		f, ok := w.(*os.File)
		color.NoColor = !ok || !isatty.IsTerminal(f.Fd())
	default:
		return fmt.Errorf("unknown color mode: %s", colorMode)
	}
	return nil
}
