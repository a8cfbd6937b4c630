package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/llehouerou/timesplit/internal/app"
	"github.com/llehouerou/timesplit/internal/config"
	"github.com/llehouerou/timesplit/internal/errmsg"
	"github.com/llehouerou/timesplit/internal/logging"
)

type flags struct {
	config   string
	total    string
	minShare float64
	noPush   bool
	logFile  string
	logLevel string
	set      *pflag.FlagSet
}

func parseFlags(args []string) (flags, error) {
	var f flags
	fs := pflag.NewFlagSet("timesplit", pflag.ContinueOnError)
	fs.StringVarP(&f.config, "config", "c", "", "path to a config file")
	fs.StringVarP(&f.total, "total", "t", "", `duration to split, e.g. "7h30m"`)
	fs.Float64Var(&f.minShare, "min-share", 0, "minimum share per item, in (0,1)")
	fs.BoolVar(&f.noPush, "no-push", false, "clamp separators instead of pushing neighbors")
	fs.StringVar(&f.logFile, "log-file", "", "write logs to this file")
	fs.StringVar(&f.logLevel, "log-level", "", "debug, info, warn, or error")
	if err := fs.Parse(args); err != nil {
		return flags{}, err
	}
	f.set = fs
	return f, nil
}

// apply overrides config values with flags given on the command line.
func (f flags) apply(cfg *config.Config) {
	if f.set.Changed("total") {
		cfg.Total = f.total
	}
	if f.set.Changed("min-share") {
		minShare := f.minShare
		cfg.MinShare = &minShare
	}
	if f.set.Changed("no-push") {
		push := !f.noPush
		cfg.Push = &push
	}
	if f.set.Changed("log-file") {
		cfg.LogFile = f.logFile
	}
	if f.set.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
}

func main() {
	f, err := parseFlags(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Println(errmsg.Format(errmsg.OpParseFlags, err))
		os.Exit(1)
	}

	cfg, err := config.Load(f.config)
	if err != nil {
		fmt.Println(errmsg.Format(errmsg.OpConfigLoad, err))
		os.Exit(1)
	}
	f.apply(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Println(errmsg.Format(errmsg.OpConfigValidate, err))
		os.Exit(1)
	}

	logger, flush, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Println(errmsg.Format(errmsg.OpLoggerInit, err))
		os.Exit(1)
	}
	defer flush()

	m, err := app.New(cfg, logger)
	if err != nil {
		fmt.Println(errmsg.Format(errmsg.OpInitialize, err))
		flush()
		os.Exit(1) //nolint:gocritic // flushed above
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error(err, "program exited")
		fmt.Println(errmsg.Format(errmsg.OpRun, err))
		flush()
		os.Exit(1)
	}
}
