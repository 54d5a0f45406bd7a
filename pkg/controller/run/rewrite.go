package run

import (
	"regexp"
	"strings"
)

// Rewrite maps one observed pin of an action to its resolved replacement.
// The pattern matches the whole uses line including any trailing comment,
// so the old comment is always discarded, never merged with the new pin's
// comment.
type Rewrite struct {
	Action     string
	OldVersion string
	NewPin     string
	pattern    *regexp.Regexp
}

func NewRewrite(action, oldVersion, newPin string) *Rewrite {
	return &Rewrite{
		Action:     action,
		OldVersion: oldVersion,
		NewPin:     newPin,
		pattern: regexp.MustCompile(
			`^([ \t]*(?:- )?uses:[ \t]+` + regexp.QuoteMeta(action) + `)@` + regexp.QuoteMeta(oldVersion) + `[ \t]*(?:#.*)?$`,
		),
	}
}

// Apply rewrites a single line. It returns the line unchanged when the
// line doesn't match or when the rewrite is already applied, which makes
// repeated runs no-ops. A trailing carriage return is kept as is so CRLF
// files keep their line endings.
func (rw *Rewrite) Apply(line string) (string, bool) {
	body, hasCR := strings.CutSuffix(line, "\r")
	matches := rw.pattern.FindStringSubmatch(body)
	if matches == nil {
		return line, false
	}
	newLine := matches[1] + "@" + rw.NewPin
	if hasCR {
		newLine += "\r"
	}
	if newLine == line {
		return line, false
	}
	return newLine, true
}

// Result accumulates rewrite outcomes across files. It is returned by the
// rewrite pass rather than kept as ambient state so the logic is testable
// in isolation from I/O.
type Result struct {
	ChangedFiles []string
	ActionCounts map[string]int
	Findings     []*Finding
}

func NewResult() *Result {
	return &Result{
		ActionCounts: map[string]int{},
	}
}

// RewriteContent applies every rewrite to the file content and reports the
// number of replaced occurrences per action. Every byte outside the
// matched spans is preserved.
func RewriteContent(content string, rewrites []*Rewrite, onChange func(lineNumber int, oldLine, newLine string)) (string, map[string]int) {
	lines := strings.Split(content, "\n")
	counts := map[string]int{}
	changed := false
	for i, line := range lines {
		for _, rw := range rewrites {
			newLine, ok := rw.Apply(line)
			if !ok {
				continue
			}
			counts[rw.Action]++
			if onChange != nil {
				onChange(i+1, line, newLine)
			}
			lines[i] = newLine
			changed = true
			// A line holds at most one uses declaration.
			break
		}
	}
	if !changed {
		return content, counts
	}
	return strings.Join(lines, "\n"), counts
}
