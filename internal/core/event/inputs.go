// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/kavirubc
// Created: 2026-08-22
// Last Modified: 2026-08-28

package event

import (
	"fmt"
	"strings"

	envparse "github.com/caarlos0/env/v10"
)

// Inputs are the invocation inputs the hosting platform provides through the
// environment. The token value itself is opaque to this bot; it is handed to
// the platform client unchanged.
type Inputs struct {
	Token      string `env:"GITHUB_TOKEN"`
	EventName  string `env:"GITHUB_EVENT_NAME"`
	EventPath  string `env:"GITHUB_EVENT_PATH"`
	Repository string `env:"GITHUB_REPOSITORY"`
	CI         bool   `env:"CI"`
}

// LoadInputs binds the action inputs from the current environment.
func LoadInputs() (*Inputs, error) {
	var in Inputs
	if err := envparse.Parse(&in); err != nil {
		return nil, fmt.Errorf("failed to parse action inputs: %w", err)
	}
	return &in, nil
}

// RepoCoordinates splits the "owner/repo" value of GITHUB_REPOSITORY.
func (in *Inputs) RepoCoordinates() (org, repo string, ok bool) {
	parts := strings.SplitN(in.Repository, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
