// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/kavirubc
// Created: 2026-08-26
// Last Modified: 2026-08-29

// Package main serves a small local web UI for previewing how Templi-Bot
// judges a submission body. It never writes to any repository.
package main

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"

	"github.com/templigh/templi-bot/internal/core/config"
	"github.com/templigh/templi-bot/internal/core/event"
	"github.com/templigh/templi-bot/internal/core/pipeline"
	"github.com/templigh/templi-bot/internal/steps"
)

//go:embed static/*
var staticFiles embed.FS

// LintRequest represents the incoming submission from the frontend
type LintRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Org   string `json:"org"`
	Repo  string `json:"repo"`
	Kind  string `json:"kind"` // "issue" or "pull-request"
}

// LintResponse represents the response sent to the frontend
type LintResponse struct {
	Success     bool     `json:"success"`
	Error       string   `json:"error,omitempty"`
	Subtype     string   `json:"subtype"`
	Outcome     string   `json:"outcome"`
	Passed      bool     `json:"passed"`
	FailedRules []string `json:"failed_rules"`
	Comment     string   `json:"comment"`
}

var cfg *config.Config

func main() {
	// Load configuration
	cfgPath := config.FindConfigPath("")
	var err error
	if cfgPath != "" {
		cfg, err = config.Load(cfgPath)
		if err != nil {
			log.Printf("Warning: Failed to load config: %v", err)
			cfg = config.Default()
		}
	} else {
		cfg = config.Default()
	}

	// Setup routes
	staticFS, _ := fs.Sub(staticFiles, "static")
	http.Handle("/", http.FileServer(http.FS(staticFS)))
	http.HandleFunc("/api/lint", handleLint)
	http.HandleFunc("/api/health", handleHealth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("\n🤖 Templi Web UI running at http://localhost:%s\n", port)
	fmt.Println("   Press Ctrl+C to stop")

	log.Fatal(http.ListenAndServe(":"+port, nil))
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		log.Printf("Failed to encode health response: %v", err)
	}
}

func handleLint(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req LintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeResponse(w, LintResponse{Success: false, Error: "Invalid JSON: " + err.Error()})
		return
	}

	if req.Body == "" {
		writeResponse(w, LintResponse{Success: false, Error: "Body is required"})
		return
	}

	// Default org/repo if not provided
	if req.Org == "" {
		req.Org = "templigh"
	}
	if req.Repo == "" {
		req.Repo = "templi-bot"
	}

	kind := event.KindIssue
	if req.Kind == "pull-request" {
		kind = event.KindPullRequest
	}

	sub := &event.Submission{
		Kind:   kind,
		Org:    req.Org,
		Repo:   req.Repo,
		Number: 0, // preview, not a real submission
		Title:  req.Title,
		Body:   req.Body,
		Author: "preview-user",
		Action: "opened",
	}

	pCtx, err := runLintPipeline(sub)
	if err != nil {
		writeResponse(w, LintResponse{Success: false, Error: "Pipeline error: " + err.Error()})
		return
	}

	resp := LintResponse{
		Success: true,
		Subtype: string(pCtx.Result.Subtype),
		Outcome: string(pCtx.Result.Outcome),
	}
	if pCtx.Verdict != nil {
		resp.Passed = pCtx.Verdict.Passed()
		for _, m := range pCtx.Verdict.Failed {
			resp.FailedRules = append(resp.FailedRules, m.Label)
		}
	}
	if comment, ok := pCtx.Metadata["comment"].(string); ok {
		resp.Comment = comment
	}
	writeResponse(w, resp)
}

func writeResponse(w http.ResponseWriter, resp LintResponse) {
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func runLintPipeline(sub *event.Submission) (*pipeline.Context, error) {
	pCtx := pipeline.NewContext(context.Background(), sub, cfg)

	registry := pipeline.NewRegistry()
	steps.RegisterAll(registry)

	// Always dry-run for the web UI
	deps := &pipeline.Dependencies{DryRun: true}

	builtPipeline, err := registry.BuildFromNames(pipeline.Presets["lint"], deps)
	if err != nil {
		return nil, err
	}

	if err := builtPipeline.Run(pCtx); err != nil {
		return nil, err
	}

	return pCtx, nil
}
