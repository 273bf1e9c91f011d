// Package filtering applies sequential cleanup steps to a vacancy collection
// before analysis.
package filtering

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/k0de1ne/hh-parser-analyzer/internal/vacancy"
)

// Filter represents a single filtering step applied to vacancies.
type Filter interface {
	Name() string
	IsEnabled() bool
	Apply(v *vacancy.Vacancies) (*vacancy.Vacancies, Step, error)
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Filtering runs a fixed sequence of filters.
type Filtering struct {
	steps  []Filter
	logger *zap.Logger
}

func New(steps []Filter, logger *zap.Logger) *Filtering {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Filtering{steps: steps, logger: logger}
}

// Run executes the filters sequentially and returns the resulting collection.
func (f *Filtering) Run(v *vacancy.Vacancies) (*vacancy.Vacancies, error) {
	for _, step := range f.steps {
		if !step.IsEnabled() {
			f.logger.Info("filter disabled", zap.String("name", step.Name()))
			continue
		}

		next, info, err := step.Apply(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		f.logger.Info("filter step",
			zap.String("name", step.Name()),
			zap.Int("initial", info.Initial),
			zap.Int("dropped", info.Dropped),
			zap.Int("left", info.Left),
		)

		v = next
	}

	return v, nil
}
