// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-21
// Last Modified: 2026-08-28

package github

import (
	"context"
	"testing"
)

func TestCreateIssueCommentValidation(t *testing.T) {
	// Test that CreateIssueComment rejects empty body
	client := &Client{client: nil} // nil client for validation testing

	err := client.CreateIssueComment(context.Background(), "org", "repo", 1, "")
	if err == nil {
		t.Error("Expected error for empty comment body")
	}

	err = client.CreateIssueComment(context.Background(), "org", "repo", 1, "   ")
	if err == nil {
		t.Error("Expected error for whitespace-only comment body")
	}
}

func TestUpdateIssueCommentValidation(t *testing.T) {
	client := &Client{client: nil}

	if err := client.UpdateIssueComment(context.Background(), "org", "repo", 99, ""); err == nil {
		t.Error("Expected error for empty comment body")
	}
}

func TestReviewBodyValidation(t *testing.T) {
	client := &Client{client: nil}

	if err := client.CreateReview(context.Background(), "org", "repo", 1, ""); err == nil {
		t.Error("Expected error for empty review body")
	}
	if err := client.UpdateReview(context.Background(), "org", "repo", 1, 42, "  "); err == nil {
		t.Error("Expected error for whitespace-only review body")
	}
}
