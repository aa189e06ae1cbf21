// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

// CheckInfo contains standardized information about a check
type CheckInfo struct {
	Name                string   // Name of the check (e.g., "CREDIT_CARD")
	ShortDescription    string   // Short description for the checks list
	DetailedDescription string   // Detailed description of what the check does
	Column              string   // Default input column the check reads
	StrippedCharacters  []string // Formatting characters removed before validation
	Rules               []string // Syntactic rules a normalized value must satisfy
	Metadata            []string // Derived metadata written alongside matches
	Examples            []string // Usage examples
}

// Provider defines the interface for help content providers
type Provider interface {
	GetCheckInfo() CheckInfo
}

// System manages help content for the application
type System struct {
	providers map[string]Provider
	out       io.Writer
	colors    map[string]*color.Color
}

// NewSystem creates a new help system writing to out
func NewSystem(out io.Writer, noColor bool) *System {
	// Disable colors if requested
	if noColor {
		color.NoColor = true
	}

	return &System{
		providers: make(map[string]Provider),
		out:       out,
		colors: map[string]*color.Color{
			"title":    color.New(color.FgWhite, color.Bold),
			"header":   color.New(color.FgBlue, color.Bold),
			"item":     color.New(color.FgCyan),
			"emphasis": color.New(color.FgWhite, color.Bold),
			"negative": color.New(color.FgRed),
			"example":  color.New(color.FgMagenta),
		},
	}
}

// RegisterProvider adds a help provider to the system
func (h *System) RegisterProvider(provider Provider) {
	info := provider.GetCheckInfo()
	h.providers[strings.ToLower(info.Name)] = provider
}

// ShowGeneralHelp displays general help information
func (h *System) ShowGeneralHelp() {
	h.colors["title"].Fprintln(h.out, "Ferret Records - Sensitive Column Classifier")
	fmt.Fprintln(h.out, "============================================")
	fmt.Fprintln(h.out)
	h.colors["header"].Fprintln(h.out, "USAGE:")
	fmt.Fprintln(h.out, "  ferret-records --file <path-to-csv> [options]")
	fmt.Fprintln(h.out)

	h.colors["header"].Fprintln(h.out, "OPTIONS:")

	w := tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  --file\t<path>\tPath to the delimited input file (required)")
	fmt.Fprintln(w, "  --output\t<path>\tPath of the classified output file (default: arranged_financial_data.csv)")
	fmt.Fprintln(w, "  --format\t<format>\tReport format: text, json, yaml, csv (default: text)")
	fmt.Fprintln(w, "  --verbose, -v\t\tPrint the row count and the classified table")
	fmt.Fprintln(w, "  --checks\t<checks>\tChecks to run: MBI, CREDIT_CARD, PHONE, or all (default: all)")
	fmt.Fprintln(w, "  --delimiter\t<char>\tInput delimiter (default: tab for .tsv/.tab, comma otherwise)")
	fmt.Fprintln(w, "  --workers\t<n>\tNumber of classification workers, 0 for one per CPU (default: 1)")
	fmt.Fprintln(w, "  --config\t<path>\tPath to configuration file (YAML)")
	fmt.Fprintln(w, "  --profile\t<name>\tProfile name to use from config file")
	fmt.Fprintln(w, "  --list-profiles\t\tList available profiles in config file")
	fmt.Fprintln(w, "  --debug\t\tEnable debug logging of the classification flow")
	fmt.Fprintln(w, "  --no-color\t\tDisable colored output")
	fmt.Fprintln(w, "  --list-checks\t\tList all available checks")
	fmt.Fprintln(w, "  --show-check\t<check>\tShow detailed help for a specific check")
	fmt.Fprintln(w, "  --version\t\tShow version information")
	w.Flush()

	fmt.Fprintln(h.out)
	h.colors["header"].Fprintln(h.out, "EXAMPLES:")
	h.colors["example"].Fprintln(h.out, "  ferret-records --file financials.csv")
	h.colors["example"].Fprintln(h.out, "  ferret-records --file financials.csv -v --output classified.csv")
	h.colors["example"].Fprintln(h.out, "  ferret-records --file financials.tsv --format json --workers 4")
	fmt.Fprintln(h.out)
	h.colors["header"].Fprintln(h.out, "CONFIGURATION:")
	fmt.Fprintln(h.out, "  Project config: ferret-records.yaml or .ferret-records.yaml (in current directory)")
	fmt.Fprintln(h.out, "  User config: $XDG_CONFIG_HOME/ferret-records/config.yaml")
}

// ShowChecksHelp displays information about all available checks
func (h *System) ShowChecksHelp() {
	h.colors["title"].Fprintln(h.out, "Available Checks in Ferret Records")
	fmt.Fprintln(h.out, "==================================")
	fmt.Fprintln(h.out)

	w := tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0)
	h.colors["header"].Fprintln(w, "  CHECK\tCOLUMN\tDESCRIPTION")
	h.colors["header"].Fprintln(w, "  -----\t------\t-----------")

	for _, info := range h.sortedInfos() {
		fmt.Fprintf(w, "  ")
		h.colors["emphasis"].Fprintf(w, "%s", info.Name)
		fmt.Fprintf(w, "\t%s\t%s\n", info.Column, info.ShortDescription)
	}
	w.Flush()

	fmt.Fprintln(h.out)
	fmt.Fprintln(h.out, "For detailed information about a specific check, use:")
	h.colors["example"].Fprintln(h.out, "  ferret-records --show-check <check>")
}

// ShowCheckHelp displays detailed help for a specific check
func (h *System) ShowCheckHelp(checkName string) bool {
	provider, exists := h.providers[strings.ToLower(checkName)]
	if !exists {
		h.colors["negative"].Fprintf(h.out, "Error: Check '%s' not found.\n", checkName)
		fmt.Fprintln(h.out, "Use 'ferret-records --list-checks' to see a list of available checks.")
		return false
	}

	info := provider.GetCheckInfo()

	h.colors["title"].Fprintf(h.out, "%s Check\n", info.Name)
	fmt.Fprintln(h.out, strings.Repeat("=", len(info.Name)+6))
	fmt.Fprintln(h.out)
	fmt.Fprintln(h.out, info.DetailedDescription)
	fmt.Fprintln(h.out)

	if info.Column != "" {
		h.colors["header"].Fprintln(h.out, "COLUMN:")
		fmt.Fprintf(h.out, "  %s\n\n", info.Column)
	}

	if len(info.StrippedCharacters) > 0 {
		h.colors["header"].Fprintln(h.out, "NORMALIZATION (characters removed):")
		quoted := make([]string, len(info.StrippedCharacters))
		for i, c := range info.StrippedCharacters {
			quoted[i] = fmt.Sprintf("%q", c)
		}
		fmt.Fprintf(h.out, "  %s\n\n", strings.Join(quoted, " "))
	}

	h.printList("RULES:", info.Rules)
	h.printList("METADATA:", info.Metadata)

	if len(info.Examples) > 0 {
		h.colors["header"].Fprintln(h.out, "EXAMPLES:")
		for _, example := range info.Examples {
			fmt.Fprint(h.out, "  ")
			h.colors["example"].Fprintln(h.out, example)
		}
	}

	return true
}

func (h *System) printList(title string, items []string) {
	if len(items) == 0 {
		return
	}
	h.colors["header"].Fprintln(h.out, title)
	for _, item := range items {
		fmt.Fprint(h.out, "  - ")
		h.colors["item"].Fprintln(h.out, item)
	}
	fmt.Fprintln(h.out)
}

func (h *System) sortedInfos() []CheckInfo {
	infos := make([]CheckInfo, 0, len(h.providers))
	for _, provider := range h.providers {
		infos = append(infos, provider.GetCheckInfo())
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}
