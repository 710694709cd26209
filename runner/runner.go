// Package runner checks formatter convergence across many files, walking
// directories with a bounded worker pool and collecting one report per
// checked file.
package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/gnoverse/fixpoint"
	"github.com/gnoverse/fixpoint/fmtcmd"
)

// Report is the outcome of checking a single file.
type Report struct {
	File        string           `json:"file"`
	Kind        string           `json:"outcome"`
	Steps       int              `json:"steps"`
	WellBehaved bool             `json:"well_behaved"`
	Message     string           `json:"message"`
	Outcome     fixpoint.Outcome `json:"-"`
	Result      *fixpoint.Result `json:"-"`
}

// Checker runs the convergence analysis for a single file. It exists so
// tests can substitute an in-process transformation for an external
// formatter.
type Checker func(path string) (*fixpoint.Result, error)

// checkOutcome carries one worker's report together with its error.
type checkOutcome struct {
	report *Report
	err    error
}

// FileChecker returns a Checker that reads each file, normalizes its line
// endings, and analyzes it with f. maxIterations <= 0 means the fixpoint
// default.
func FileChecker(f fixpoint.Func, maxIterations int) Checker {
	return func(path string) (*fixpoint.Result, error) {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		original := fmtcmd.ToUnix(string(content))

		var opts []fixpoint.Option
		if maxIterations > 0 {
			opts = append(opts, fixpoint.WithMaxIterations(maxIterations))
		}
		return fixpoint.Check(f, path, original, opts...)
	}
}

// ProcessFiles checks every given path (files or directories) and returns
// the collected reports.
func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	check Checker,
	paths []string,
	extensions []string,
) ([]Report, error) {
	var allReports []Report
	for _, path := range paths {
		reports, err := ProcessPath(ctx, logger, check, path, extensions)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		allReports = append(allReports, reports...)
	}
	return allReports, nil
}

// ProcessPath checks a single file, or walks a directory and checks every
// file with a desired extension using a bounded worker pool.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	check Checker,
	path string,
	extensions []string,
) ([]Report, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	var reports []Report
	if info.IsDir() {
		var files []string
		err := filepath.Walk(path, func(filePath string, fileInfo os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !fileInfo.IsDir() && hasDesiredExtension(filePath, extensions) {
				files = append(files, filePath)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("error walking directory %s: %w", path, err)
		}

		// one value per file, report and error travel together so a
		// failure can never pair up with another file's report
		outcomes := make(chan checkOutcome, len(files))

		// limit the number of workers
		maxWorkers := runtime.NumCPU()
		sem := make(chan struct{}, maxWorkers)

		bar := progressbar.NewOptions(len(files),
			progressbar.OptionSetDescription(path),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))

		for _, filePath := range files {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
				sem <- struct{}{}
				go func(fp string) {
					defer func() { <-sem }()

					report, err := checkFile(check, fp)
					if err != nil && logger != nil {
						logger.Error("Error checking file", zap.String("file", fp), zap.Error(err))
					}
					outcomes <- checkOutcome{report: report, err: err}
					bar.Add(1)
				}(filePath)
			}
		}

		// collect all results; failed files are logged and skipped
		for range files {
			outcome := <-outcomes
			if outcome.err != nil || outcome.report == nil {
				continue
			}
			reports = append(reports, *outcome.report)
		}

		fmt.Println()
		sort.Slice(reports, func(i, j int) bool { return reports[i].File < reports[j].File })
		return reports, nil
	} else if hasDesiredExtension(path, extensions) {
		report, err := checkFile(check, path)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *report)
	}

	return reports, nil
}

func checkFile(check Checker, path string) (*Report, error) {
	result, err := check(path)
	if err != nil {
		return nil, err
	}
	return &Report{
		File:        path,
		Kind:        result.Outcome().String(),
		Steps:       len(result.Steps()),
		WellBehaved: result.WellBehaved(),
		Message:     result.Describe(),
		Outcome:     result.Outcome(),
		Result:      result,
	}, nil
}

func hasDesiredExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}
