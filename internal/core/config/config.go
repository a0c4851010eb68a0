// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-21
// Last Modified: 2026-08-28

// Package config handles loading and merging Templi configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	// Extends allows inheriting from a remote config (e.g., "org/repo@branch").
	Extends string `yaml:"extends,omitempty"`

	// Workflow is a preset workflow name (e.g., "submission-check").
	Workflow string `yaml:"workflow,omitempty"`

	// Steps is a custom list of pipeline steps (overrides workflow).
	Steps []string `yaml:"steps,omitempty"`

	// BotUsers lists additional accounts whose events are skipped.
	BotUsers []string `yaml:"bot_users,omitempty"`

	// Defaults contains default behavior settings.
	Defaults DefaultsConfig `yaml:"defaults"`

	// Repositories lists the repositories this config applies to.
	Repositories []RepositoryConfig `yaml:"repositories,omitempty"`
}

// DefaultsConfig holds default behavior settings.
type DefaultsConfig struct {
	// SuggestPullRequests adds the companion-PR note to compliant bug reports.
	SuggestPullRequests *bool `yaml:"suggest_pull_requests,omitempty"`

	// EncourageFeatures adds the encouragement note to compliant feature requests.
	EncourageFeatures *bool `yaml:"encourage_features,omitempty"`

	// SecurityPolicyURL is linked from the security disclosure reminder.
	// Supports the {{repo}} substitution token.
	SecurityPolicyURL string `yaml:"security_policy_url,omitempty"`
}

// RepositoryConfig defines a repository and its settings.
type RepositoryConfig struct {
	Org     string `yaml:"org"`
	Repo    string `yaml:"repo"`
	Enabled bool   `yaml:"enabled"`
}

// SuggestPullRequests reports whether compliant bug reports get the
// companion-PR note. Defaults to true.
func (c *Config) SuggestPullRequests() bool {
	return c.Defaults.SuggestPullRequests == nil || *c.Defaults.SuggestPullRequests
}

// EncourageFeatures reports whether compliant feature requests get the
// encouragement note. Defaults to true.
func (c *Config) EncourageFeatures() bool {
	return c.Defaults.EncourageFeatures == nil || *c.Defaults.EncourageFeatures
}

// Default returns a config with defaults applied, for runs without a config file.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a config file from the given path and expands environment variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// LoadWithInheritance loads a config and resolves the 'extends' chain.
// The fetcher function is used to retrieve remote configs.
func LoadWithInheritance(path string, fetcher func(ref string) ([]byte, error)) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if cfg.Extends == "" {
		return cfg, nil
	}

	// Fetch and parse the parent config
	parentData, err := fetcher(cfg.Extends)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch parent config '%s': %w", cfg.Extends, err)
	}

	expanded := os.ExpandEnv(string(parentData))
	var parentCfg Config
	if err := yaml.Unmarshal([]byte(expanded), &parentCfg); err != nil {
		return nil, fmt.Errorf("failed to parse parent config: %w", err)
	}

	// Merge: child overrides parent
	merged := mergeConfigs(&parentCfg, cfg)
	merged.applyDefaults()

	return merged, nil
}

// FindConfigPath searches for a config file in standard locations.
func FindConfigPath(explicit string) string {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit
		}
		return ""
	}

	candidates := []string{
		".github/templi.yaml",
		".github/templi.yml",
		".templi.yaml",
		".templi.yml",
	}

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			abs, _ := filepath.Abs(c)
			return abs
		}
	}

	return ""
}

// applyDefaults sets default values for unset fields.
func (c *Config) applyDefaults() {
	if c.Defaults.SecurityPolicyURL == "" {
		c.Defaults.SecurityPolicyURL = "https://github.com/{{repo}}/security/policy"
	}
}

// mergeConfigs merges a child config onto a parent config.
// Non-zero values in child override parent.
func mergeConfigs(parent, child *Config) *Config {
	result := *parent

	if child.Workflow != "" {
		result.Workflow = child.Workflow
	}
	if len(child.Steps) > 0 {
		result.Steps = child.Steps
	}
	if len(child.BotUsers) > 0 {
		result.BotUsers = child.BotUsers
	}

	// Defaults: pointer fields override only when set in the child
	if child.Defaults.SuggestPullRequests != nil {
		result.Defaults.SuggestPullRequests = child.Defaults.SuggestPullRequests
	}
	if child.Defaults.EncourageFeatures != nil {
		result.Defaults.EncourageFeatures = child.Defaults.EncourageFeatures
	}
	if child.Defaults.SecurityPolicyURL != "" {
		result.Defaults.SecurityPolicyURL = child.Defaults.SecurityPolicyURL
	}

	// Repositories: child completely overrides if non-empty
	if len(child.Repositories) > 0 {
		result.Repositories = child.Repositories
	}

	return &result
}

// ParseExtendsRef parses "org/repo@branch" into components.
func ParseExtendsRef(ref string) (org, repo, branch, path string, err error) {
	// Format: org/repo@branch or org/repo@branch:path
	parts := strings.SplitN(ref, "@", 2)
	if len(parts) != 2 {
		return "", "", "", "", fmt.Errorf("invalid extends reference: %s (expected org/repo@branch)", ref)
	}

	orgRepo := strings.SplitN(parts[0], "/", 2)
	if len(orgRepo) != 2 {
		return "", "", "", "", fmt.Errorf("invalid extends reference: %s (expected org/repo)", ref)
	}

	org = orgRepo[0]
	repo = orgRepo[1]

	branchPath := strings.SplitN(parts[1], ":", 2)
	branch = branchPath[0]
	if len(branchPath) == 2 {
		path = branchPath[1]
	} else {
		path = ".github/templi.yaml" // default path
	}

	return org, repo, branch, path, nil
}
