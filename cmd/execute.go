package cmd

import (
	"errors"
	"os"
	"path/filepath"

	"amplc/build"
	"amplc/common"
	"amplc/config"
	"amplc/report"

	"github.com/ComedicChimera/olive"
)

// Execute runs the main `amplc` application
func Execute() {
	// set up the argument parser
	cli := olive.NewCLI("amplc", "amplc checks AMPL-2023 programs", true)
	cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, report.LogLevelNames)
	cli.AddFlag("trace", "t", "print the productions entered and left by the parser")
	cli.AddFlag("symbols", "s", "print each scope of the symbol table before it is destroyed")
	cli.AddStringArg("config", "c", "the path to the config file", false)
	cli.AddPrimaryArg("source-file", "the path to the source file", true)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.ReportFatal("usage error: %s", err)
	}

	srcPath, _ := result.PrimaryArg()

	conf, err := loadConfig(result, srcPath)
	if err != nil {
		report.ReportFatal("%s", err)
	}

	// initialize the reporter
	report.InitReporter(conf.LogLevel)

	for _, key := range conf.UnknownKeys {
		report.ReportWarning("Config", "unknown key `%s` ignored", key)
	}

	if filepath.Ext(srcPath) != common.SrcFileExtension {
		report.ReportWarning("Source", "`%s` does not have the `%s` extension", srcPath, common.SrcFileExtension)
	}

	report.ReportCompileHeader(common.AmplcVersion, srcPath)

	c := build.NewCompiler(srcPath, conf)
	if err := c.Compile(); err != nil {
		var cerr *report.CompileError
		if errors.As(err, &cerr) {
			report.ReportCompileError(srcPath, cerr)
		} else {
			report.ReportStdError(err)
		}
	}

	report.ReportCompilationFinished()

	if report.AnyErrors() {
		os.Exit(1)
	}
}

// loadConfig loads the settings of the compilation: the config file named on
// the command line or the one next to the source file, if any, overridden by
// the command line flags.
func loadConfig(result *olive.ArgParseResult, srcPath string) (*config.Config, error) {
	conf := config.Default()

	var err error
	if confPath, ok := result.Arguments["config"]; ok {
		if conf, err = config.LoadConfig(confPath.(string)); err != nil {
			return nil, err
		}
	} else if confPath, ok := config.Locate(srcPath); ok {
		if conf, err = config.LoadConfig(confPath); err != nil {
			return nil, err
		}
	}

	if logLevel, ok := result.Arguments["loglevel"]; ok {
		if conf.LogLevel, err = report.ParseLogLevel(logLevel.(string)); err != nil {
			return nil, err
		}
	}

	if result.HasFlag("trace") {
		conf.Trace = true
	}

	if result.HasFlag("symbols") {
		conf.DumpSymbols = true
	}

	return conf, nil
}
