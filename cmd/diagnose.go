package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoverse/fixpoint/internal/report"
	"github.com/gnoverse/fixpoint/runner"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose [paths...]",
	Short: "Check the given files and dump each formatter step of misbehaved ones",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		cfg := loadConfig()
		reports := runChecks(ctx, logger, cfg, args)
		writeDiagnosis(cfg, reports)

		fmt.Print(report.Format(reports))
		fmt.Println(report.Summary(reports))

		if report.Misbehaved(reports) > 0 {
			os.Exit(1)
		}
	},
}

func writeDiagnosis(cfg runner.Config, reports []runner.Report) {
	for _, r := range reports {
		if r.WellBehaved {
			continue
		}
		written, err := runner.Diagnose(cfg.DiagnoseDir, r.Result)
		if err != nil {
			logger.Error("Error writing diagnosis", zap.String("file", r.File), zap.Error(err))
			continue
		}
		fmt.Printf("step files for %s written to %s (%d steps)\n", r.File, cfg.DiagnoseDir, len(written))
	}
}
