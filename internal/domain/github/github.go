package github

import (
	"context"
	"time"
)

// Repo is the subset of a GitHub repository listing shown on a profile page.
type Repo struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	FullName        string    `json:"full_name"`
	HTMLURL         string    `json:"html_url"`
	Description     string    `json:"description,omitempty"`
	StargazersCount int       `json:"stargazers_count"`
	WatchersCount   int       `json:"watchers_count"`
	ForksCount      int       `json:"forks_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// Service lists a user's repositories from the external hosting service.
// Implementations return apperror.ErrNotFound when the service reports no
// such user and apperror.ErrUnavailable on transport failures; neither
// outcome ever touches profile persistence.
type Service interface {
	ListByUsername(ctx context.Context, username string) ([]Repo, error)
}
