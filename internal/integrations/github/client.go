// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-21
// Last Modified: 2026-08-28

package github

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v60/github"
)

// Comment is a platform comment as seen by the synchronizer: either a plain
// issue comment or a pull request review. The two are distinct platform
// primitives; callers must write back through the primitive they came from.
type Comment struct {
	ID   int64
	Body string
}

// API is the subset of platform operations the pipeline consumes.
// *Client implements it; tests substitute fakes.
type API interface {
	ListIssueComments(ctx context.Context, org, repo string, number int) ([]Comment, error)
	CreateIssueComment(ctx context.Context, org, repo string, number int, body string) error
	UpdateIssueComment(ctx context.Context, org, repo string, commentID int64, body string) error
	ListReviews(ctx context.Context, org, repo string, number int) ([]Comment, error)
	CreateReview(ctx context.Context, org, repo string, number int, body string) error
	UpdateReview(ctx context.Context, org, repo string, number int, reviewID int64, body string) error
}

// Client wraps the GitHub API client.
type Client struct {
	client *github.Client
}

// ListIssueComments fetches all comments on an issue in ascending creation
// order, following pagination to the end.
func (c *Client) ListIssueComments(ctx context.Context, org, repo string, number int) ([]Comment, error) {
	opts := &github.IssueListCommentsOptions{
		Sort:        github.String("created"),
		Direction:   github.String("asc"),
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var all []Comment
	for {
		comments, resp, err := c.client.Issues.ListComments(ctx, org, repo, number, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list comments: %w", err)
		}
		for _, comment := range comments {
			all = append(all, Comment{ID: comment.GetID(), Body: comment.GetBody()})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// CreateIssueComment posts a comment on an issue.
func (c *Client) CreateIssueComment(ctx context.Context, org, repo string, number int, body string) error {
	if strings.TrimSpace(body) == "" {
		return fmt.Errorf("comment body cannot be empty")
	}

	comment := &github.IssueComment{
		Body: github.String(body),
	}
	_, _, err := c.client.Issues.CreateComment(ctx, org, repo, number, comment)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// UpdateIssueComment overwrites the body of an existing issue comment.
func (c *Client) UpdateIssueComment(ctx context.Context, org, repo string, commentID int64, body string) error {
	if strings.TrimSpace(body) == "" {
		return fmt.Errorf("comment body cannot be empty")
	}

	comment := &github.IssueComment{
		Body: github.String(body),
	}
	_, _, err := c.client.Issues.EditComment(ctx, org, repo, commentID, comment)
	if err != nil {
		return fmt.Errorf("failed to update comment %d: %w", commentID, err)
	}
	return nil
}

// ListReviews fetches all reviews on a pull request in ascending creation
// order, following pagination to the end.
func (c *Client) ListReviews(ctx context.Context, org, repo string, number int) ([]Comment, error) {
	opts := &github.ListOptions{PerPage: 100}

	var all []Comment
	for {
		reviews, resp, err := c.client.PullRequests.ListReviews(ctx, org, repo, number, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list reviews: %w", err)
		}
		for _, review := range reviews {
			all = append(all, Comment{ID: review.GetID(), Body: review.GetBody()})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// CreateReview posts a comment-only review on a pull request.
func (c *Client) CreateReview(ctx context.Context, org, repo string, number int, body string) error {
	if strings.TrimSpace(body) == "" {
		return fmt.Errorf("review body cannot be empty")
	}

	review := &github.PullRequestReviewRequest{
		Body:  github.String(body),
		Event: github.String("COMMENT"),
	}
	_, _, err := c.client.PullRequests.CreateReview(ctx, org, repo, number, review)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// UpdateReview overwrites the body of an existing pull request review.
func (c *Client) UpdateReview(ctx context.Context, org, repo string, number int, reviewID int64, body string) error {
	if strings.TrimSpace(body) == "" {
		return fmt.Errorf("review body cannot be empty")
	}

	_, _, err := c.client.PullRequests.UpdateReview(ctx, org, repo, number, reviewID, body)
	if err != nil {
		return fmt.Errorf("failed to update review %d: %w", reviewID, err)
	}
	return nil
}

// GetFileContent fetches a file from a repository at a given ref.
// Used to resolve remote config inheritance.
func (c *Client) GetFileContent(ctx context.Context, org, repo, path, ref string) ([]byte, error) {
	opts := &github.RepositoryContentGetOptions{Ref: ref}
	file, _, _, err := c.client.Repositories.GetContents(ctx, org, repo, path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s@%s:%s: %w", repo, ref, path, err)
	}
	if file == nil {
		return nil, fmt.Errorf("%s is not a file", path)
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return []byte(content), nil
}
