package run

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/hashicorp/go-version"
	"github.com/pinbump/pinbump/pkg/github"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

var shortTagPattern = regexp.MustCompile(`^v\d+$`)

// resolveLatest maps an action to the pin of its latest published release:
// "<sha> # <tag>", or the bare tag name if the tag reference can't be
// resolved to a commit hash. Results are memoized per action.
func (c *Controller) resolveLatest(ctx context.Context, logE *logrus.Entry, action string) (string, error) {
	if r, ok := c.cache.Latest(action); ok {
		return r.pin, r.err
	}
	pin, err := c.latestPin(ctx, logE, action)
	c.cache.SetLatest(action, pin, err)
	return pin, err
}

func (c *Controller) latestPin(ctx context.Context, logE *logrus.Entry, action string) (string, error) {
	owner, repo, ok := splitAction(action)
	if !ok {
		return "", errors.New("the action isn't a owner/repo identifier")
	}
	release, _, err := c.repositoriesService.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		return "", fmt.Errorf("get the latest release: %w", err)
	}
	tag := release.GetTagName()
	if tag == "" {
		return "", errors.New("the latest release has no tag name")
	}
	sha, err := c.tagSHA(ctx, owner, repo, tag)
	if err != nil {
		logerr.WithError(logE, err).WithField("tag", tag).Debug("resolve the release tag to a commit hash")
		return tag, nil
	}
	return sha + " # " + tag, nil
}

// resolveMigration maps an action and tag to a commit hash pin annotated
// with the original tag: "<sha> # <tag>". Results are memoized per
// action@tag.
func (c *Controller) resolveMigration(ctx context.Context, logE *logrus.Entry, action, tag string) (string, error) {
	if r, ok := c.cache.Tag(action, tag); ok {
		return r.pin, r.err
	}
	pin, err := c.migrationPin(ctx, logE, action, tag)
	c.cache.SetTag(action, tag, pin, err)
	return pin, err
}

func (c *Controller) migrationPin(ctx context.Context, logE *logrus.Entry, action, tag string) (string, error) {
	owner, repo, ok := splitAction(action)
	if !ok {
		return "", errors.New("the action isn't a owner/repo identifier")
	}
	if shortTagPattern.MatchString(tag) {
		return c.majorVersionPin(ctx, logE, owner, repo, tag)
	}
	sha, err := c.tagSHA(ctx, owner, repo, tag)
	if err != nil {
		logerr.WithError(logE, err).WithField("tag", tag).Debug("get a tag reference")
		// Some tags are only resolvable as commit-like refs.
		commitSHA, _, cErr := c.repositoriesService.GetCommitSHA1(ctx, owner, repo, tag, "")
		if cErr != nil {
			return "", fmt.Errorf("resolve %s as a tag or a commit: %w", tag, cErr)
		}
		sha = commitSHA
	}
	return sha + " # " + tag, nil
}

// majorVersionPin disambiguates a major version shorthand such as v1 by
// selecting the release with the numerically greatest (minor, patch) pair
// within that major version family. The comment carries the short tag the
// workflow originally specified, not the expanded one.
func (c *Controller) majorVersionPin(ctx context.Context, logE *logrus.Entry, owner, repo, tag string) (string, error) {
	familyPattern := regexp.MustCompile(`^` + regexp.QuoteMeta(tag) + `\.\d+\.\d+$`)
	var latest *version.Version
	latestTag := ""
	opts := &github.ListOptions{
		PerPage: 100, //nolint:mnd
	}
	for range 10 {
		releases, _, err := c.repositoriesService.ListReleases(ctx, owner, repo, opts)
		if err != nil {
			return "", fmt.Errorf("list releases: %w", err)
		}
		for _, release := range releases {
			if release.GetDraft() {
				continue
			}
			name := release.GetTagName()
			if !familyPattern.MatchString(name) {
				continue
			}
			v, err := version.NewVersion(name)
			if err != nil {
				logerr.WithError(logE, err).WithField("tag", name).Debug("parse a release tag as a version")
				continue
			}
			if latest == nil || v.GreaterThan(latest) {
				latest = v
				latestTag = name
			}
		}
		if len(releases) < opts.PerPage {
			break
		}
		opts.Page++
	}
	if latestTag == "" {
		return "", fmt.Errorf("no release matches the major version %s", tag)
	}
	sha, err := c.tagSHA(ctx, owner, repo, latestTag)
	if err != nil {
		logerr.WithError(logE, err).WithField("tag", latestTag).Debug("resolve the selected tag to a commit hash")
		return latestTag, nil
	}
	return sha + " # " + tag, nil
}

func (c *Controller) tagSHA(ctx context.Context, owner, repo, tag string) (string, error) {
	ref, _, err := c.gitService.GetRef(ctx, owner, repo, "tags/"+tag)
	if err != nil {
		return "", fmt.Errorf("get a tag reference: %w", err)
	}
	sha := ref.GetObject().GetSHA()
	if sha == "" {
		return "", errors.New("the tag reference has no commit hash")
	}
	return sha, nil
}
