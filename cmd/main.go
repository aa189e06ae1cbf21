// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"ferret-records/internal/classifier"
	"ferret-records/internal/config"
	"ferret-records/internal/core"
	"ferret-records/internal/help"
	"ferret-records/internal/observability"
	"ferret-records/internal/records"
	"ferret-records/internal/version"

	"ferret-records/internal/formatters"
	_ "ferret-records/internal/formatters/csv"
	_ "ferret-records/internal/formatters/json"
	_ "ferret-records/internal/formatters/text"
	_ "ferret-records/internal/formatters/yaml"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// configFlags holds command line flag values
type configFlags struct {
	inputFile    string
	outputFile   string
	configFile   string
	profileName  string
	listProfiles bool
	outputFormat string
	checksToRun  string
	delimiter    string
	workers      int
	verbose      bool
	verboseShort bool
	debug        bool
	noColor      bool
	listChecks   bool
	showCheck    string
	showHelp     bool
	showVersion  bool
}

// finalConfiguration holds resolved configuration values
type finalConfiguration struct {
	format        string
	checksToRun   string
	outputFile    string
	delimiter     string
	workers       int
	noMatchMarker string
	verbose       bool
	debug         bool
	noColor       bool
	columns       records.Columns
}

// usageError is a problem with how the tool was invoked
type usageError struct {
	msg  string
	hint string
}

func (e *usageError) Error() string {
	return e.msg
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, isTerminal(os.Stdout)))
}

// run executes the CLI and returns its exit code
func run(args []string, stdout, stderr io.Writer, interactive bool) int {
	fs := flag.NewFlagSet("ferret-records", flag.ContinueOnError)
	fs.SetOutput(stderr)

	flags := &configFlags{}
	fs.StringVar(&flags.inputFile, "file", "", "Path to the delimited input file (CSV, or TSV for .tsv/.tab)")
	fs.StringVar(&flags.outputFile, "output", "", "Path of the classified output file (default: arranged_financial_data.csv)")
	fs.StringVar(&flags.configFile, "config", "", "Path to configuration file (YAML)")
	fs.StringVar(&flags.profileName, "profile", "", "Profile name to use from config file")
	fs.BoolVar(&flags.listProfiles, "list-profiles", false, "List available profiles in config file")
	fs.StringVar(&flags.outputFormat, "format", "", "Report format: text, json, yaml, csv (default: text)")
	fs.StringVar(&flags.checksToRun, "checks", "", "Checks to run: MBI, CREDIT_CARD, PHONE, or combinations like 'MBI,PHONE'")
	fs.StringVar(&flags.delimiter, "delimiter", "", "Input delimiter: a single character, or tab, comma, semicolon, pipe")
	fs.IntVar(&flags.workers, "workers", 0, "Number of classification workers, 0 for one per CPU (default: 1)")
	fs.BoolVar(&flags.verbose, "verbose", false, "Print the row count and the classified table")
	fs.BoolVar(&flags.verboseShort, "v", false, "Alias for --verbose")
	fs.BoolVar(&flags.debug, "debug", false, "Enable debug logging of the classification flow")
	fs.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&flags.listChecks, "list-checks", false, "List all available checks")
	fs.StringVar(&flags.showCheck, "show-check", "", "Show detailed help for a specific check")
	fs.BoolVar(&flags.showHelp, "help", false, "Show help information")
	fs.BoolVar(&flags.showVersion, "version", false, "Show version information")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	setFlags := visitedFlags(fs)

	// Handle version command
	if flags.showVersion {
		fmt.Fprintln(stdout, version.Info())
		return exitOK
	}

	// Auto-detect non-interactive environment
	if !interactive || os.Getenv("NO_COLOR") != "" {
		flags.noColor = true
		setFlags["no-color"] = true
	}

	// Handle help commands before touching any config file
	if flags.showHelp || flags.listChecks || flags.showCheck != "" {
		return runHelp(flags, fs.Args(), stdout, stderr)
	}

	// Load configuration
	cfg, configPath, err := config.LoadConfigOrDefault(flags.configFile)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(stderr, "Using default configuration\n")
	}

	if flags.listProfiles {
		listProfiles(cfg, configPath, stdout)
		return exitOK
	}

	code, err := classify(cfg, flags, setFlags, fs.Args(), stdout, stderr)
	if err != nil {
		printError(stderr, err)
	}
	return code
}

// classify resolves the configuration, runs the classification and prints
// the report
func classify(cfg *config.Config, flags *configFlags, setFlags map[string]bool, args []string, stdout, stderr io.Writer) (int, error) {
	if len(args) > 0 {
		return exitUsage, &usageError{
			msg:  fmt.Sprintf("unexpected arguments: %s", strings.Join(args, " ")),
			hint: "Pass the input file with --file",
		}
	}
	if flags.inputFile == "" {
		return exitUsage, &usageError{
			msg:  "input file is required",
			hint: "Use 'ferret-records --file <path-to-csv>' or 'ferret-records --help'",
		}
	}

	activeProfile, err := selectProfile(cfg, flags.profileName)
	if err != nil {
		return exitUsage, err
	}

	finalConfig := resolveConfiguration(cfg, activeProfile, flags, setFlags)

	// Check if FERRET_DEBUG environment variable is set
	if os.Getenv("FERRET_DEBUG") != "" {
		finalConfig.debug = true
	}
	if finalConfig.noColor {
		color.NoColor = true
	}

	if _, ok := formatters.Get(finalConfig.format); !ok {
		return exitUsage, &usageError{
			msg:  fmt.Sprintf("unsupported format '%s'", finalConfig.format),
			hint: fmt.Sprintf("Available formats: %s", strings.Join(formatters.List(), ", ")),
		}
	}
	enabledChecks, err := config.ParseChecks(finalConfig.checksToRun)
	if err != nil {
		return exitUsage, &usageError{msg: err.Error(), hint: "Use 'ferret-records --list-checks' to see available checks"}
	}
	delimiter, err := config.ParseDelimiter(finalConfig.delimiter)
	if err != nil {
		return exitUsage, &usageError{msg: err.Error()}
	}
	if finalConfig.workers < 0 || finalConfig.workers > config.MaxWorkers {
		return exitUsage, &usageError{msg: fmt.Sprintf("workers must be between 0 and %d", config.MaxWorkers)}
	}

	observer := observability.NewObserver(finalConfig.debug, stderr)
	observer.LogDetail("config", fmt.Sprintf("format=%s checks=%s workers=%d output=%s",
		finalConfig.format, finalConfig.checksToRun, finalConfig.workers, finalConfig.outputFile))

	result, err := core.ClassifyFile(core.ScanConfig{
		FilePath:      flags.inputFile,
		OutputPath:    finalConfig.outputFile,
		Delimiter:     delimiter,
		Columns:       finalConfig.columns,
		Checks:        enabledChecks,
		Workers:       finalConfig.workers,
		NoMatchMarker: finalConfig.noMatchMarker,
		Observer:      observer,
	})
	if err != nil {
		return exitError, err
	}

	if len(result.MissingColumns) > 0 {
		color.New(color.FgYellow).Fprintf(stderr, "Warning: input has no %s column(s); they were added to the output with no values\n",
			strings.Join(result.MissingColumns, ", "))
	}

	output, err := formatters.Export(finalConfig.format, result.Report, formatters.FormatterOptions{
		Verbose: finalConfig.verbose,
		NoColor: finalConfig.noColor,
	})
	if err != nil {
		return exitError, err
	}
	fmt.Fprintln(stdout, output)

	return exitOK, nil
}

// resolveConfiguration resolves final configuration values from config file, profile, and command line flags
func resolveConfiguration(cfg *config.Config, activeProfile *config.Profile, flags *configFlags, setFlags map[string]bool) *finalConfiguration {
	final := &finalConfiguration{}
	defaults := cfg.Defaults

	// Format
	final.format = config.DefaultFormat
	if defaults.Format != "" {
		final.format = defaults.Format
	}
	if activeProfile != nil && activeProfile.Format != "" {
		final.format = activeProfile.Format
	}
	if setFlags["format"] && flags.outputFormat != "" {
		final.format = flags.outputFormat
	}

	// Checks to run
	final.checksToRun = config.DefaultChecks
	if defaults.Checks != "" {
		final.checksToRun = defaults.Checks
	}
	if activeProfile != nil && activeProfile.Checks != "" {
		final.checksToRun = activeProfile.Checks
	}
	if setFlags["checks"] && flags.checksToRun != "" {
		final.checksToRun = flags.checksToRun
	}

	// Output file
	final.outputFile = config.DefaultOutputFile
	if defaults.Output != "" {
		final.outputFile = defaults.Output
	}
	if activeProfile != nil && activeProfile.Output != "" {
		final.outputFile = activeProfile.Output
	}
	if setFlags["output"] && flags.outputFile != "" {
		final.outputFile = flags.outputFile
	}

	// Delimiter
	final.delimiter = defaults.Delimiter
	if activeProfile != nil && activeProfile.Delimiter != "" {
		final.delimiter = activeProfile.Delimiter
	}
	if setFlags["delimiter"] {
		final.delimiter = flags.delimiter
	}

	// Workers
	final.workers = config.DefaultWorkers
	if defaults.Workers > 0 {
		final.workers = defaults.Workers
	}
	if activeProfile != nil && activeProfile.Workers > 0 {
		final.workers = activeProfile.Workers
	}
	if setFlags["workers"] {
		final.workers = flags.workers
	}

	// No-match marker has no flag
	final.noMatchMarker = defaults.NoMatchMarker
	if activeProfile != nil && activeProfile.NoMatchMarker != "" {
		final.noMatchMarker = activeProfile.NoMatchMarker
	}

	// Columns
	final.columns = defaults.Columns
	if activeProfile != nil {
		final.columns = overrideColumns(final.columns, activeProfile.Columns)
	}
	final.columns = final.columns.WithDefaults()

	// Verbose
	final.verbose = defaults.Verbose
	if activeProfile != nil {
		final.verbose = activeProfile.Verbose
	}
	if setFlags["verbose"] || setFlags["v"] {
		final.verbose = flags.verbose || flags.verboseShort
	}

	// Debug
	final.debug = defaults.Debug
	if activeProfile != nil {
		final.debug = activeProfile.Debug
	}
	if setFlags["debug"] {
		final.debug = flags.debug
	}

	// No color
	final.noColor = defaults.NoColor
	if activeProfile != nil {
		final.noColor = activeProfile.NoColor
	}
	if setFlags["no-color"] {
		final.noColor = flags.noColor
	}

	return final
}

func overrideColumns(base, override records.Columns) records.Columns {
	if override.MedicareID != "" {
		base.MedicareID = override.MedicareID
	}
	if override.CardNumber != "" {
		base.CardNumber = override.CardNumber
	}
	if override.PhoneNumber != "" {
		base.PhoneNumber = override.PhoneNumber
	}
	return base
}

// selectProfile returns the named profile, nil when no profile was requested
func selectProfile(cfg *config.Config, profileName string) (*config.Profile, error) {
	if profileName == "" {
		return nil, nil
	}
	activeProfile := cfg.GetProfile(profileName)
	if activeProfile == nil {
		return nil, &usageError{
			msg:  fmt.Sprintf("profile '%s' not found in config file", profileName),
			hint: "Check available profiles with --list-profiles or verify config file",
		}
	}
	return activeProfile, nil
}

// listProfiles prints the profiles of the loaded config file
func listProfiles(cfg *config.Config, configPath string, stdout io.Writer) {
	if configPath == "" {
		fmt.Fprintln(stdout, "No configuration file found. No profiles available.")
		return
	}

	profiles := cfg.ListProfiles()
	if len(profiles) == 0 {
		fmt.Fprintln(stdout, "No profiles defined in configuration file.")
		return
	}

	fmt.Fprintln(stdout, "Available profiles:")
	for _, name := range profiles {
		profile := cfg.GetProfile(name)
		if profile != nil && profile.Description != "" {
			fmt.Fprintf(stdout, "  - %s: %s\n", name, profile.Description)
		} else {
			fmt.Fprintf(stdout, "  - %s\n", name)
		}
	}
}

// runHelp handles --help, --list-checks and --show-check
func runHelp(flags *configFlags, args []string, stdout, stderr io.Writer) int {
	helpSystem := help.NewSystem(stdout, flags.noColor)

	// Register every validator as a help provider
	for _, validator := range classifier.StandardValidators() {
		if provider, ok := validator.(help.Provider); ok {
			helpSystem.RegisterProvider(provider)
		}
	}

	if flags.listChecks {
		helpSystem.ShowChecksHelp()
		return exitOK
	}
	if flags.showCheck != "" {
		if helpSystem.ShowCheckHelp(flags.showCheck) {
			return exitOK
		}
		return exitUsage
	}

	switch len(args) {
	case 0:
		helpSystem.ShowGeneralHelp()
		return exitOK
	case 1:
		if strings.EqualFold(args[0], "checks") {
			helpSystem.ShowChecksHelp()
			return exitOK
		}
		if helpSystem.ShowCheckHelp(args[0]) {
			return exitOK
		}
		return exitUsage
	default:
		fmt.Fprintln(stderr, "Error: Too many arguments for help command")
		fmt.Fprintln(stderr, "Use 'ferret-records --help', 'ferret-records --help checks', or 'ferret-records --help <check>'")
		return exitUsage
	}
}

// printError writes an error and an optional hint to stderr
func printError(stderr io.Writer, err error) {
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(stderr, "Error: %s\n", usageErr.msg)
		if usageErr.hint != "" {
			fmt.Fprintln(stderr, usageErr.hint)
		}
		return
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
}

// visitedFlags returns the names of flags explicitly set on the command line
func visitedFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// isTerminal checks if the file descriptor is a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
