package run

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

var ErrNoWorkflowFiles = errors.New("no workflow files are found")

func (c *Controller) Run(ctx context.Context, logE *logrus.Entry) error {
	if err := c.readConfig(); err != nil {
		return err
	}
	files, err := c.searchFiles()
	if err != nil {
		return fmt.Errorf("search target files: %w", err)
	}
	if len(files) == 0 {
		return ErrNoWorkflowFiles
	}
	logE.WithField("num_of_files", len(files)).Info("workflow files found")

	contents := map[string]string{}
	scanned := make([]string, 0, len(files))
	scan := NewScanResult()
	for _, file := range files {
		b, err := afero.ReadFile(c.fs, file)
		if err != nil {
			// A single unreadable file must not abort the run.
			logerr.WithError(logE, err).WithField("workflow_file", file).Warn("read a workflow file")
			continue
		}
		contents[file] = string(b)
		scanned = append(scanned, file)
		c.scanContent(string(b), scan)
	}
	c.logScan(logE, scan)

	rewrites := c.buildRewrites(ctx, logE, scan)
	result := NewResult()
	for _, file := range scanned {
		if err := c.rewriteFile(logE, file, contents[file], rewrites, result); err != nil {
			return err
		}
	}
	if c.param.SarifPath != "" {
		if err := c.outputSarif(result); err != nil {
			return fmt.Errorf("output a SARIF file: %w", err)
		}
	}
	c.logSummary(logE, result)
	return nil
}

func (c *Controller) readConfig() error {
	p, err := c.cfgFinder.Find(c.param.ConfigFilePath)
	if err != nil {
		return fmt.Errorf("find a configuration file: %w", err)
	}
	c.param.ConfigFilePath = p
	if err := c.cfgReader.Read(c.cfg, p); err != nil {
		return fmt.Errorf("read a config file: %w", err)
	}
	return nil
}

func (c *Controller) logScan(logE *logrus.Entry, scan *ScanResult) {
	index := scan.Hashes
	if c.param.Migrate {
		index = scan.Tags
	}
	logE.WithField("num_of_actions", len(index)).Info("actions found")
}

// buildRewrites resolves every distinct action (or action and tag) once
// and expands the outcome into per-old-version rewrites. Resolution
// failures skip the action with a warning and never abort the run.
func (c *Controller) buildRewrites(ctx context.Context, logE *logrus.Entry, scan *ScanResult) []*Rewrite {
	if c.param.Migrate {
		return c.buildMigrationRewrites(ctx, logE, scan)
	}
	rewrites := []*Rewrite{}
	for _, action := range scan.Hashes.Actions() {
		logE := logE.WithField("action", action)
		pin, err := c.resolveLatest(ctx, logE, action)
		if err != nil {
			logE.Warn("skip the action because the latest release can't be resolved")
			logerr.WithError(logE, err).Debug("resolve the latest release")
			continue
		}
		logE.WithField("pin", pin).Info("resolved the latest release")
		for _, old := range scan.Hashes.Versions(action) {
			rewrites = append(rewrites, NewRewrite(action, old, pin))
		}
	}
	return rewrites
}

func (c *Controller) buildMigrationRewrites(ctx context.Context, logE *logrus.Entry, scan *ScanResult) []*Rewrite {
	rewrites := []*Rewrite{}
	for _, action := range scan.Tags.Actions() {
		for _, tag := range scan.Tags.Versions(action) {
			logE := logE.WithFields(logrus.Fields{
				"action": action,
				"tag":    tag,
			})
			pin, err := c.resolveMigration(ctx, logE, action, tag)
			if err != nil {
				logE.Warn("skip the action because the tag can't be resolved")
				logerr.WithError(logE, err).Debug("resolve the tag")
				continue
			}
			logE.WithField("pin", pin).Info("resolved the tag")
			rewrites = append(rewrites, NewRewrite(action, tag, pin))
		}
	}
	return rewrites
}

// rewriteFile computes the whole rewritten content in memory before any
// write, so a failure can't leave a partially written file behind.
func (c *Controller) rewriteFile(logE *logrus.Entry, file, content string, rewrites []*Rewrite, result *Result) error {
	newContent, counts := RewriteContent(content, rewrites, func(lineNumber int, oldLine, newLine string) {
		f := &Finding{
			File:    file,
			Line:    lineNumber,
			OldLine: oldLine,
			NewLine: newLine,
		}
		result.Findings = append(result.Findings, f)
		c.logger.Change(f)
	})
	for action, n := range counts {
		result.ActionCounts[action] += n
	}
	logE = logE.WithField("workflow_file", file)
	if newContent == content {
		logE.Debug("the file isn't changed")
		return nil
	}
	result.ChangedFiles = append(result.ChangedFiles, file)
	if c.param.DryRun {
		logE.Info("the file would be modified")
		return nil
	}
	mode := fs.FileMode(0o644) //nolint:mnd
	if stat, err := c.fs.Stat(file); err == nil {
		mode = stat.Mode()
	}
	if err := afero.WriteFile(c.fs, file, []byte(newContent), mode); err != nil {
		return fmt.Errorf("write a workflow file: %w", err)
	}
	logE.Info("the file was modified")
	return nil
}

func (c *Controller) logSummary(logE *logrus.Entry, result *Result) {
	replaced := 0
	for _, n := range result.ActionCounts {
		replaced += n
	}
	logE.WithFields(logrus.Fields{
		"files_changed":   len(result.ChangedFiles),
		"actions_updated": len(result.ActionCounts),
		"pins_replaced":   replaced,
	}).Info("done")
}
