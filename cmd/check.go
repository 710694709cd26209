package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoverse/fixpoint/fmtcmd"
	"github.com/gnoverse/fixpoint/internal/report"
	"github.com/gnoverse/fixpoint/runner"
)

var (
	formatterOverride string
	maxIterations     int
	checkJsonOutput   bool
	outPath           string
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Check that the configured formatter is idempotent on the given files",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		cfg := loadConfig()
		reports := runChecks(ctx, logger, cfg, args)
		printReports(reports, checkJsonOutput, outPath)

		if report.Misbehaved(reports) > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	checkCmd.Flags().StringVar(&formatterOverride, "formatter", "", "Formatter command, overrides the configuration file")
	checkCmd.Flags().IntVar(&maxIterations, "max-iterations", 0, "Maximum formatter applications before reporting divergence")
	checkCmd.Flags().BoolVar(&checkJsonOutput, "json", false, "Output reports in JSON format")
	checkCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
}

func loadConfig() runner.Config {
	cfg, err := runner.ParseConfigFile(cfgFile)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Fatal("Failed to read configuration", zap.String("path", cfgFile), zap.Error(err))
		}
		cfg = runner.DefaultConfig()
	}
	if formatterOverride != "" {
		cfg.Formatter = strings.Fields(formatterOverride)
	}
	if maxIterations > 0 {
		cfg.MaxIterations = maxIterations
	}
	return cfg
}

func runChecks(ctx context.Context, logger *zap.Logger, cfg runner.Config, paths []string) []runner.Report {
	if len(cfg.Formatter) == 0 {
		fmt.Println("error: no formatter configured, use --formatter or a configuration file")
		os.Exit(1)
	}

	f := fmtcmd.Command(cfg.Formatter[0], cfg.Formatter[1:]...)
	check := runner.FileChecker(f, cfg.MaxIterations)

	reports, err := runner.ProcessFiles(ctx, logger, check, paths, cfg.Extensions)
	if err != nil {
		logger.Error("Error processing files", zap.Error(err))
		os.Exit(1)
	}
	return reports
}

func printReports(reports []runner.Report, isJson bool, jsonOutput string) {
	if !isJson {
		fmt.Print(report.Format(reports))
		fmt.Println(report.Summary(reports))
		return
	}

	d, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		logger.Error("Error marshaling reports to JSON", zap.Error(err))
		os.Exit(1)
	}
	if jsonOutput == "" {
		fmt.Println(string(d))
		return
	}
	if err := os.WriteFile(jsonOutput, d, 0o644); err != nil {
		logger.Error("Error writing JSON output", zap.String("path", jsonOutput), zap.Error(err))
		os.Exit(1)
	}
	fmt.Printf("Reports written to: %s\n", jsonOutput)
}
