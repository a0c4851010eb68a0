// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-21
// Last Modified: 2026-08-28

// Package event parses the platform event payload that triggers an
// invocation and extracts the submission under evaluation.
package event

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Kind distinguishes the two submission natures. They map to different
// comment primitives on the platform and must not be conflated.
type Kind string

const (
	KindIssue       Kind = "issue"
	KindPullRequest Kind = "pull-request"
)

// ErrIgnoredEvent marks triggers the bot deliberately does not act on:
// irrelevant lifecycle actions and payloads carrying no submission. Callers
// treat it as a successful no-op, not a failure.
var ErrIgnoredEvent = errors.New("event not relevant for submission checks")

// relevantActions are the lifecycle actions that trigger a check.
var relevantActions = map[string]bool{
	"opened":   true,
	"reopened": true,
	"edited":   true,
}

// IsRelevantAction reports whether a lifecycle action triggers a check.
// The single source of truth for trigger relevance; the gatekeeper step
// consults it too for submissions built outside the event path.
func IsRelevantAction(action string) bool {
	return relevantActions[action]
}

// Submission is the issue or pull request under evaluation. It is immutable
// for the duration of one invocation and sourced from the triggering event.
type Submission struct {
	Kind       Kind
	Org        string
	Repo       string
	Number     int
	Title      string
	Body       string
	Author     string // sender login
	Action     string
	URL        string
	BaseBranch string // pull requests only
}

// Payload mirrors the subset of the event file this bot consumes. Issue and
// PullRequest are mutually exclusive.
type Payload struct {
	Action      string       `json:"action"`
	Issue       *Thread      `json:"issue"`
	PullRequest *PullRequest `json:"pull_request"`
	Sender      *Account     `json:"sender"`
	Repository  *Repository  `json:"repository"`
}

// Thread is the shared shape of an issue or pull request payload.
type Thread struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	HTMLURL string `json:"html_url"`
}

// PullRequest extends Thread with the merge target.
type PullRequest struct {
	Thread
	Base *Branch `json:"base"`
}

// Branch identifies a git ref in the payload.
type Branch struct {
	Ref string `json:"ref"`
}

// Account identifies a platform user.
type Account struct {
	Login string `json:"login"`
}

// Repository carries the owning repository coordinates.
type Repository struct {
	Name  string   `json:"name"`
	Owner *Account `json:"owner"`
}

// Parse decodes an event payload from raw JSON.
func Parse(data []byte) (*Payload, error) {
	var payload Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse event payload: %w", err)
	}
	return &payload, nil
}

// ParseFile reads and decodes the event payload file written by the
// platform (GITHUB_EVENT_PATH).
func ParseFile(path string) (*Payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read event file: %w", err)
	}
	return Parse(data)
}

// Submission extracts the submission under evaluation.
//
// A missing sender is a precondition violation and returns a hard error.
// An irrelevant action, or a payload with neither issue nor pull request,
// returns ErrIgnoredEvent.
func (p *Payload) Submission() (*Submission, error) {
	if p.Sender == nil || p.Sender.Login == "" {
		return nil, errors.New("event has no sender")
	}

	if !relevantActions[p.Action] {
		return nil, fmt.Errorf("%w: action %q", ErrIgnoredEvent, p.Action)
	}

	sub := &Submission{
		Action: p.Action,
		Author: p.Sender.Login,
	}
	if p.Repository != nil {
		sub.Repo = p.Repository.Name
		if p.Repository.Owner != nil {
			sub.Org = p.Repository.Owner.Login
		}
	}

	switch {
	case p.PullRequest != nil:
		sub.Kind = KindPullRequest
		sub.Number = p.PullRequest.Number
		sub.Title = p.PullRequest.Title
		sub.Body = p.PullRequest.Body
		sub.URL = p.PullRequest.HTMLURL
		if p.PullRequest.Base != nil {
			sub.BaseBranch = p.PullRequest.Base.Ref
		}
	case p.Issue != nil:
		sub.Kind = KindIssue
		sub.Number = p.Issue.Number
		sub.Title = p.Issue.Title
		sub.Body = p.Issue.Body
		sub.URL = p.Issue.HTMLURL
	default:
		return nil, fmt.Errorf("%w: neither issue nor pull request present", ErrIgnoredEvent)
	}

	return sub, nil
}
