package main

// --------------------------------------------------------------------------
//
//	Gurux Ltd
//
// Filename:        $HeadURL$
//
// Version:         $Revision$,
//
//	$Date$
//	$Author$
//
// # Copyright (c) Gurux Ltd
//
// ---------------------------------------------------------------------------
//
//	DESCRIPTION
//
// This file is a part of Gurux Device Framework.
//
// Gurux Device Framework is Open Source software; you can redistribute it
// and/or modify it under the terms of the GNU General Public License
// as published by the Free Software Foundation; version 2 of the License.
// Gurux Device Framework is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU General Public License for more details.
//
// More information of Gurux products: https://www.gurux.org
//
// This code is licensed under the GNU General Public License v2.
// Full text may be retrieved at http://www.gnu.org/licenses/gpl-2.0.txt
// ---------------------------------------------------------------------------

import (
	"fmt"
	"os"
	"strings"

	"github.com/Gurux/gxcommon-go"
	"github.com/Gurux/protocon-go"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

var (
	// Global flags
	cfgFile     string
	quiet       bool
	encoding    string
	crcName     string
	logLevel    string
	traceLevel  string
	lang        string
	historyFile string
)

// rootCmd connects to the target URL and runs scripts against it.
var rootCmd = &cobra.Command{
	Use:   "protocon [flags] TARGET_URL [SCRIPT...]",
	Short: "Prototype protocols by scripting sends and receives over a transport",
	Long: `protocon opens a connection described by TARGET_URL and runs line
oriented commands against it. Commands are read from the SCRIPT files in
order, or from stdin when no script is given.

Supported connection URLs:
` + urlExamples() + `
Commands: ` + strings.Join(protocon.Commands(), ", ") + `
Variables: ` + strings.Join(protocon.VariableNames(), ", "),
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// RootCmd returns the root cobra.Command for testing purposes.
func RootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is ~/.config/protocon/config.toml)")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not print hex dumps of sent and received data")
	rootCmd.Flags().StringVar(&encoding, "encoding", "", "data encoding: "+strings.Join(protocon.Encodings, ", "))
	rootCmd.Flags().StringVar(&crcName, "crc", "", "checksum algorithm: "+strings.Join(protocon.CRC{}.Algorithms(), ", "))
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level (env "+logLevelEnv+")")
	rootCmd.Flags().StringVar(&traceLevel, "trace", "", "driver trace level: Off, Error, Warning, Info, Verbose")
	rootCmd.Flags().StringVar(&lang, "lang", "", "message language (default from LANG)")
	rootCmd.Flags().StringVar(&historyFile, "history-file", "", "write the session history as YAML to this file")
}

func urlExamples() string {
	var b strings.Builder
	for _, t := range protocon.DefaultRegistry().Types() {
		for _, it := range t.Examples {
			fmt.Fprintf(&b, "  %-8s %s\n", t.Name, it)
		}
	}
	return b.String()
}

// driverFailure reports that the connection could not be established.
type driverFailure struct {
	err error
}

func (e *driverFailure) Error() string {
	return "Driver error: " + e.err.Error()
}

func (e *driverFailure) Unwrap() error {
	return e.err
}

// resolveConfig merges the config file and the flags that were given.
func resolveConfig(cmd *cobra.Command) (config, error) {
	path, explicit := cfgFile, cfgFile != ""
	if !explicit {
		path = defaultConfigPath()
	}
	cfg, err := loadConfig(path, explicit)
	if err != nil {
		return config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("encoding") {
		cfg.Encoding = encoding
	}
	if flags.Changed("crc") {
		cfg.CRC = crcName
	}
	if quiet {
		cfg.PrintSend = false
		cfg.PrintRecv = false
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	} else if env := envLogLevel(); env != "" {
		cfg.LogLevel = env
	}
	if flags.Changed("trace") {
		cfg.Trace = traceLevel
	}
	if flags.Changed("lang") {
		cfg.Language = lang
	}
	if flags.Changed("history-file") {
		cfg.HistoryFile = historyFile
	}
	return cfg, nil
}

// currentLanguage returns the language named by LANG.
func currentLanguage() language.Tag {
	langEnv := os.Getenv("LANG")
	if langEnv == "" {
		return language.AmericanEnglish
	}
	langEnv = strings.Split(langEnv, ".")[0]
	tag, err := language.Parse(langEnv)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	tag := currentLanguage()
	if cfg.Language != "" {
		if tag, err = language.Parse(cfg.Language); err != nil {
			return fmt.Errorf("invalid language %q: %w", cfg.Language, err)
		}
	}
	out := newStylePrinter(cmd.OutOrStdout())

	driver, err := protocon.DefaultRegistry().NewDriver(args[0])
	if err != nil {
		return &driverFailure{err: err}
	}
	driver.Localize(tag)
	if err := wireTrace(driver, cfg.Trace, logger); err != nil {
		return err
	}

	engine := protocon.NewEngine(driver, out)
	engine.SetLogger(logger)
	engine.Localize(tag)
	for name, value := range map[string]any{
		"encoding":   cfg.Encoding,
		"crc":        cfg.CRC,
		"print-send": cfg.PrintSend,
		"print-recv": cfg.PrintRecv,
	} {
		if err := engine.Set(name, value); err != nil {
			return err
		}
	}

	if err := driver.Open(); err != nil {
		return &driverFailure{err: err}
	}
	defer driver.Close()
	engine.Banner()

	if len(args) == 1 {
		err = engine.RunScript(cmd.InOrStdin())
	} else {
		for _, path := range args[1:] {
			if engine.Done() {
				break
			}
			logger.Info().Str("script", path).Msg("run script")
			if err = engine.RunScriptFile(path); err != nil {
				break
			}
		}
	}
	if cerr := driver.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if cfg.HistoryFile != "" {
		if herr := writeHistory(cfg.HistoryFile, newHistoryRecord(args[0], engine.History())); herr != nil && err == nil {
			err = herr
		}
	}
	return err
}

// wireTrace forwards driver trace and state events into the logger.
func wireTrace(driver protocon.Driver, level string, logger zerolog.Logger) error {
	driver.SetOnMediaStateChange(func(d protocon.Driver, e gxcommon.MediaStateEventArgs) {
		logger.Debug().Str("url", d.Target().String()).Str("state", e.State().String()).Msg("media state change")
	})
	if level == "" {
		return nil
	}
	tl, err := gxcommon.TraceLevelParse(level)
	if err != nil {
		return err
	}
	if err := driver.SetTrace(tl); err != nil {
		return err
	}
	driver.SetOnTrace(func(d protocon.Driver, e gxcommon.TraceEventArgs) {
		logger.Info().Str("url", d.Target().String()).Msg(e.String())
	})
	return nil
}
