// Package github provides the GitHub API client and authentication.
// It abstracts client creation with token-based authentication sourced from
// the environment or the OS keyring, and exposes type aliases for the
// go-github types used by the controllers so they don't depend on the
// client library directly.
package github

import (
	"context"
	"net/http"
	"os"

	"github.com/google/go-github/v74/github"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

type (
	Client            = github.Client
	Commit            = github.Commit
	GitObject         = github.GitObject
	ListOptions       = github.ListOptions
	Reference         = github.Reference
	RepositoryRelease = github.RepositoryRelease
	RepositoryTag     = github.RepositoryTag
	Response          = github.Response
)

// New creates a GitHub API client. Authentication uses GITHUB_TOKEN if set,
// falls back to the OS keyring when PINBUMP_KEYRING_ENABLED=true, and
// otherwise degrades to unauthenticated access.
func New(ctx context.Context, logE *logrus.Entry) *Client {
	return github.NewClient(httpClient(ctx, logE, os.Getenv("GITHUB_TOKEN")))
}

func Ptr[T any](v T) *T {
	return github.Ptr(v)
}

func keyringEnabled() bool {
	return os.Getenv("PINBUMP_KEYRING_ENABLED") == "true"
}

func httpClient(ctx context.Context, logE *logrus.Entry, token string) *http.Client {
	if token == "" {
		if keyringEnabled() {
			return oauth2.NewClient(ctx, NewKeyringTokenSource(logE))
		}
		return http.DefaultClient
	}
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	))
}
