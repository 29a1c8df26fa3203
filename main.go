// Package main implements the main entry point for the ZX Spectrum Next system information tool
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/nextsysinfo/internal/cli"
	"github.com/retroenv/nextsysinfo/internal/config"
	"github.com/retroenv/nextsysinfo/internal/fileprocessor"
	"github.com/retroenv/nextsysinfo/internal/report"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fileprocessor.PrintBanner(logger, opts, version, commit, date)
			logger.Error(usageErr.Error())
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("version: %s\n", buildinfo.Version(version, commit, date))
		return
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	fileprocessor.PrintBanner(logger, opts, version, commit, date)

	err = fileprocessor.ProcessFile(ctx, logger, opts, version)
	var softErr *report.SoftError
	switch {
	case err == nil:
	case errors.As(err, &softErr):
		logger.Warn("Report is incomplete",
			log.Int("failures", softErr.Failures),
			log.Err(softErr.Err),
		)
	case errors.Is(err, context.Canceled):
		// Ctrl+C
		logger.Info("Operation cancelled")
	default:
		logger.Error("Creating report failed", log.Err(err))
		os.Exit(1)
	}
}
