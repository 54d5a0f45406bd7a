package run

import (
	"regexp"
	"sort"
	"strings"
)

// Reference is a single uses declaration extracted from workflow file text.
type Reference struct {
	Action  string
	Version string
	Comment string
}

type PinKind int

const (
	PinKindTag PinKind = iota
	PinKindHash
)

func (k PinKind) String() string {
	if k == PinKindHash {
		return "hash"
	}
	return "tag"
}

var (
	usesPattern       = regexp.MustCompile(`^[ \t]*(?:- )?uses:[ \t]+([^\s@]+/[^\s@]+)@([^\s#]+)[ \t]*(#[^\n]*)?$`)
	fullCommitPattern = regexp.MustCompile(`^[0-9a-f]{40}$`)
)

// ParseReference extracts a uses declaration from a single line.
// It returns nil if the line doesn't reference an action.
// A trailing carriage return is ignored so CRLF files are scanned too.
func ParseReference(line string) *Reference {
	line = strings.TrimSuffix(line, "\r")
	matches := usesPattern.FindStringSubmatch(line)
	if matches == nil {
		return nil
	}
	return &Reference{
		Action:  matches[1],
		Version: matches[2],
		Comment: strings.TrimSpace(strings.TrimPrefix(matches[3], "#")),
	}
}

// Kind classifies the version: a pin is a hash iff it is exactly 40
// lowercase hexadecimal characters, otherwise it is a tag.
func (r *Reference) Kind() PinKind {
	if fullCommitPattern.MatchString(r.Version) {
		return PinKindHash
	}
	return PinKindTag
}

func splitAction(action string) (string, string, bool) {
	a := strings.Split(action, "/")
	if len(a) < 2 { //nolint:mnd
		return "", "", false
	}
	return a[0], a[1], true
}

// VersionIndex groups the distinct pinned versions observed per action.
type VersionIndex map[string]map[string]struct{}

func (idx VersionIndex) Add(action, version string) {
	versions, ok := idx[action]
	if !ok {
		versions = map[string]struct{}{}
		idx[action] = versions
	}
	versions[version] = struct{}{}
}

func (idx VersionIndex) Actions() []string {
	actions := make([]string, 0, len(idx))
	for action := range idx {
		actions = append(actions, action)
	}
	sort.Strings(actions)
	return actions
}

func (idx VersionIndex) Versions(action string) []string {
	versions := make([]string, 0, len(idx[action]))
	for version := range idx[action] {
		versions = append(versions, version)
	}
	sort.Strings(versions)
	return versions
}

// ScanResult holds the hash-pinned and tag-pinned indices built in one
// pass over all scanned files.
type ScanResult struct {
	Hashes VersionIndex
	Tags   VersionIndex
}

func NewScanResult() *ScanResult {
	return &ScanResult{
		Hashes: VersionIndex{},
		Tags:   VersionIndex{},
	}
}

func (c *Controller) scanContent(content string, result *ScanResult) {
	for _, line := range strings.Split(content, "\n") {
		ref := ParseReference(line)
		if ref == nil {
			continue
		}
		if c.excluded(ref.Action) {
			continue
		}
		if _, _, ok := splitAction(ref.Action); !ok {
			continue
		}
		switch ref.Kind() {
		case PinKindHash:
			result.Hashes.Add(ref.Action, ref.Version)
		case PinKindTag:
			result.Tags.Add(ref.Action, ref.Version)
		}
	}
}

// excluded reports whether an action is dropped before grouping, either
// because a target-action filter is configured and doesn't list it, or
// because the configuration ignores it.
func (c *Controller) excluded(action string) bool {
	if len(c.targets) > 0 {
		if _, ok := c.targets[action]; !ok {
			return true
		}
	}
	for _, ia := range c.cfg.IgnoreActions {
		if ia.Name == action {
			return true
		}
	}
	return false
}
