// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"ferret-records/internal/detector"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	configPath := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return configPath
}

func TestLoadConfigOrDefault_NoFile(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	// With no config file, should return defaults without error
	cfg, path, err := LoadConfigOrDefault("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "" {
		t.Errorf("expected no config path, got %q", path)
	}
	if cfg.Defaults.Format != DefaultFormat {
		t.Errorf("expected default format, got %q", cfg.Defaults.Format)
	}
}

func TestLoadConfigOrDefault_NonexistentFile(t *testing.T) {
	// A path that doesn't exist should fall back to defaults and report the error
	cfg, _, err := LoadConfigOrDefault("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected a load error")
	}
	if cfg == nil {
		t.Fatal("expected non-nil config (fallback to defaults)")
	}
	if cfg.Defaults.Output != DefaultOutputFile {
		t.Errorf("expected default output, got %q", cfg.Defaults.Output)
	}
}

func TestLoadConfig_ValidFile(t *testing.T) {
	configPath := writeConfig(t, t.TempDir(), "config.yaml", `
defaults:
  format: json
  checks: MBI,phone
  delimiter: tab
  workers: 4
  no_match_marker: "-"
  columns:
    cc_num: card
profiles:
  audit:
    description: Full verbose audit
    verbose: true
    format: yaml
`)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Defaults.Format != "json" {
		t.Errorf("expected format=json, got %q", cfg.Defaults.Format)
	}
	if cfg.Defaults.Workers != 4 {
		t.Errorf("expected workers=4, got %d", cfg.Defaults.Workers)
	}
	if cfg.Defaults.NoMatchMarker != "-" {
		t.Errorf("expected no_match_marker=-, got %q", cfg.Defaults.NoMatchMarker)
	}
	if cfg.Defaults.Output != DefaultOutputFile {
		t.Errorf("expected output to keep its default, got %q", cfg.Defaults.Output)
	}

	cols := cfg.Defaults.Columns
	if cols.CardNumber != "card" || cols.MedicareID != "medicare_id" || cols.PhoneNumber != "phone_num" {
		t.Errorf("unexpected columns: %+v", cols)
	}

	profile := cfg.GetProfile("audit")
	if profile == nil {
		t.Fatal("expected audit profile")
	}
	if !profile.Verbose || profile.Format != "yaml" || profile.Description != "Full verbose audit" {
		t.Errorf("unexpected profile: %+v", profile)
	}
	if cfg.GetProfile("missing") != nil {
		t.Error("expected nil for unknown profile")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	configPath := writeConfig(t, t.TempDir(), "bad.yaml", ":::invalid yaml:::")

	if _, err := LoadConfig(configPath); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"workers too high", "defaults:\n  workers: 100\n"},
		{"negative workers", "defaults:\n  workers: -1\n"},
		{"multi-char delimiter", "defaults:\n  delimiter: ab\n"},
		{"unknown check", "defaults:\n  checks: SSN\n"},
		{"bad profile", "profiles:\n  fast:\n    workers: 64\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := writeConfig(t, t.TempDir(), "config.yaml", tt.content)
			if _, err := LoadConfig(configPath); err == nil {
				t.Errorf("expected validation error for %q", tt.content)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Defaults.Format != "text" {
		t.Errorf("expected default format=text, got %q", cfg.Defaults.Format)
	}
	if cfg.Defaults.Checks != "all" {
		t.Errorf("expected default checks=all, got %q", cfg.Defaults.Checks)
	}
	if cfg.Defaults.Workers != 1 {
		t.Errorf("expected default workers=1, got %d", cfg.Defaults.Workers)
	}
	if cfg.Profiles == nil {
		t.Error("expected profiles map to be initialized")
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	xdg := t.TempDir()
	chdir(t, dir)
	t.Setenv("XDG_CONFIG_HOME", xdg)

	if got := FindConfigFile(); got != "" {
		t.Errorf("expected no config, got %q", got)
	}

	userConfig := writeConfig(t, xdg, filepath.Join("ferret-records", "config.yaml"), "defaults: {}\n")
	if got := FindConfigFile(); got != userConfig {
		t.Errorf("expected %q, got %q", userConfig, got)
	}

	writeConfig(t, dir, ".ferret-records.yaml", "defaults: {}\n")
	if got := FindConfigFile(); got != ".ferret-records.yaml" {
		t.Errorf("expected hidden project config, got %q", got)
	}

	writeConfig(t, dir, "ferret-records.yaml", "defaults: {}\n")
	if got := FindConfigFile(); got != "ferret-records.yaml" {
		t.Errorf("expected project config, got %q", got)
	}
}

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		input   string
		want    rune
		wantErr bool
	}{
		{"", 0, false},
		{"tab", '\t', false},
		{`\t`, '\t', false},
		{"TAB", '\t', false},
		{";", ';', false},
		{"pipe", '|', false},
		{"::", 0, true},
		{`"`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDelimiter(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDelimiter(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDelimiter(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseChecks(t *testing.T) {
	all, err := ParseChecks("all")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != len(detector.Categories) {
		t.Errorf("expected every check enabled, got %v", all)
	}

	some, err := ParseChecks(" mbi , CREDIT_CARD ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !some[detector.CategoryMBI] || !some[detector.CategoryCreditCard] || some[detector.CategoryPhone] {
		t.Errorf("unexpected checks: %v", some)
	}

	if _, err := ParseChecks("EMAIL"); err == nil {
		t.Error("expected error for unknown check")
	}
	if _, err := ParseChecks(" , "); err == nil {
		t.Error("expected error for empty selection")
	}
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir in Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
