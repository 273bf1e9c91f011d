package ai

import (
	"context"

	"github.com/k0de1ne/hh-parser-analyzer/internal/analysis"
)

// Advice is model-generated resume guidance derived from a computed report.
// The advisor rewords statistics that are already calculated; it never
// classifies or normalizes skills itself.
type Advice struct {
	Summary string
	Items   []string
	Raw     string
}

type Advisor interface {
	Advise(ctx context.Context, report *analysis.Report) (*Advice, error)
}
