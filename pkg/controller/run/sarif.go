package run

import (
	"encoding/json"
	"fmt"

	"github.com/pinbump/pinbump/pkg/sarif"
)

const ruleOutdatedPin = "outdated-pin"

func (c *Controller) outputSarif(result *Result) error {
	results := make([]sarif.Result, 0, len(result.Findings))
	for _, f := range result.Findings {
		results = append(results, sarif.Result{
			RuleID: ruleOutdatedPin,
			Level:  "note",
			Message: sarif.Message{
				Text: fmt.Sprintf("replace %q with %q", f.OldLine, f.NewLine),
			},
			Locations: []sarif.Location{
				{
					PhysicalLocation: sarif.PhysicalLocation{
						ArtifactLocation: sarif.ArtifactLocation{
							URI: f.File,
						},
						Region: sarif.Region{
							StartLine: f.Line,
						},
					},
				},
			},
		})
	}
	log := sarif.New(results)
	f, err := c.fs.Create(c.param.SarifPath)
	if err != nil {
		return fmt.Errorf("create a SARIF file: %w", err)
	}
	defer f.Close()
	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(log); err != nil {
		return fmt.Errorf("encode results as SARIF: %w", err)
	}
	return nil
}
