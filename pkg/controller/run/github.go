package run

import (
	"context"

	"github.com/pinbump/pinbump/pkg/github"
)

// RepositoriesService is the subset of the GitHub Repositories API the
// resolver depends on. All operations are read-only.
type RepositoriesService interface {
	GetLatestRelease(ctx context.Context, owner, repo string) (*github.RepositoryRelease, *github.Response, error)
	ListReleases(ctx context.Context, owner, repo string, opts *github.ListOptions) ([]*github.RepositoryRelease, *github.Response, error)
	GetCommitSHA1(ctx context.Context, owner, repo, ref, lastSHA string) (string, *github.Response, error)
}

// GitService is the subset of the GitHub Git Database API the resolver
// depends on.
type GitService interface {
	GetRef(ctx context.Context, owner, repo, ref string) (*github.Reference, *github.Response, error)
}
