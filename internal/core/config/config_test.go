// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-21
// Last Modified: 2026-08-28

package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestConfigDefaults verifies that default values are applied correctly.
func TestConfigDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if !cfg.SuggestPullRequests() {
		t.Error("Expected SuggestPullRequests to default to true")
	}
	if !cfg.EncourageFeatures() {
		t.Error("Expected EncourageFeatures to default to true")
	}
	if cfg.Defaults.SecurityPolicyURL == "" {
		t.Error("Expected a default security policy URL")
	}
}

func TestBoolDefaultsCanBeDisabled(t *testing.T) {
	disabled := false
	cfg := &Config{Defaults: DefaultsConfig{SuggestPullRequests: &disabled}}
	cfg.applyDefaults()

	if cfg.SuggestPullRequests() {
		t.Error("Expected SuggestPullRequests to be disabled")
	}
	if !cfg.EncourageFeatures() {
		t.Error("Expected EncourageFeatures to stay enabled")
	}
}

func TestLoadExpandsEnvVars(t *testing.T) {
	t.Setenv("TEMPLI_TEST_POLICY", "https://example.com/policy")

	dir := t.TempDir()
	path := filepath.Join(dir, "templi.yaml")
	content := "defaults:\n  security_policy_url: ${TEMPLI_TEST_POLICY}\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Defaults.SecurityPolicyURL != "https://example.com/policy" {
		t.Errorf("Expected env expansion, got %q", cfg.Defaults.SecurityPolicyURL)
	}
}

func TestMergeConfigs(t *testing.T) {
	off := false
	parent := &Config{
		Workflow: "submission-check",
		BotUsers: []string{"templi-bot"},
		Defaults: DefaultsConfig{SecurityPolicyURL: "https://parent.example/policy"},
		Repositories: []RepositoryConfig{
			{Org: "templigh", Repo: "demo", Enabled: true},
		},
	}
	child := &Config{
		Defaults: DefaultsConfig{SuggestPullRequests: &off},
	}

	merged := mergeConfigs(parent, child)

	if merged.Workflow != "submission-check" {
		t.Errorf("Expected parent workflow to survive, got %q", merged.Workflow)
	}
	if merged.SuggestPullRequests() {
		t.Error("Expected child override to disable PR suggestions")
	}
	if merged.Defaults.SecurityPolicyURL != "https://parent.example/policy" {
		t.Errorf("Expected parent policy URL to survive, got %q", merged.Defaults.SecurityPolicyURL)
	}
	if len(merged.Repositories) != 1 {
		t.Errorf("Expected parent repositories to survive, got %+v", merged.Repositories)
	}
}

func TestLoadWithInheritance(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "templi.yaml")
	content := "extends: templigh/templi-config@main\nworkflow: lint\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	fetched := ""
	fetcher := func(ref string) ([]byte, error) {
		fetched = ref
		return []byte("bot_users: [\"org-bot\"]\nworkflow: submission-check\n"), nil
	}

	cfg, err := LoadWithInheritance(path, fetcher)
	if err != nil {
		t.Fatalf("LoadWithInheritance failed: %v", err)
	}
	if fetched != "templigh/templi-config@main" {
		t.Errorf("Expected parent ref to be fetched, got %q", fetched)
	}
	if cfg.Workflow != "lint" {
		t.Errorf("Expected child workflow to win, got %q", cfg.Workflow)
	}
	if len(cfg.BotUsers) != 1 || cfg.BotUsers[0] != "org-bot" {
		t.Errorf("Expected parent bot_users to survive, got %+v", cfg.BotUsers)
	}
}

func TestParseExtendsRef(t *testing.T) {
	tests := []struct {
		name       string
		ref        string
		shouldFail bool
		path       string
	}{
		{name: "with branch", ref: "org/repo@main", path: ".github/templi.yaml"},
		{name: "with path", ref: "org/repo@main:custom/templi.yaml", path: "custom/templi.yaml"},
		{name: "missing branch", ref: "org/repo", shouldFail: true},
		{name: "missing repo", ref: "org@main", shouldFail: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			org, repo, branch, path, err := ParseExtendsRef(tt.ref)
			if tt.shouldFail {
				if err == nil {
					t.Fatalf("Expected error for ref %q", tt.ref)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if org != "org" || repo != "repo" || branch != "main" {
				t.Errorf("Unexpected components: %s %s %s", org, repo, branch)
			}
			if path != tt.path {
				t.Errorf("Expected path %q, got %q", tt.path, path)
			}
		})
	}
}
