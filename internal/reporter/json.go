package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"credit-scan/internal/model"
)

// JSONReporter writes results in the same shape the remediation
// endpoint returns, so CLI and HTTP consumers can share tooling.
type JSONReporter struct {
	target string
}

// NewJSONReporter writes to the given file, or stdout when target is
// empty.
func NewJSONReporter(target string) *JSONReporter {
	return &JSONReporter{target: target}
}

func (r *JSONReporter) Report(results []model.UnitResult) error {
	annotated := make([]model.AnnotatedUnit, 0, len(results))
	for _, res := range results {
		annotated = append(annotated, res.Annotated())
	}

	var out io.Writer = os.Stdout
	if r.target != "" {
		f, err := os.Create(r.target)
		if err != nil {
			return fmt.Errorf("create report file: %w", err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(annotated); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
