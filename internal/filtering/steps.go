package filtering

import (
	"strings"

	"go.uber.org/zap"

	"github.com/k0de1ne/hh-parser-analyzer/internal/vacancy"
)

type titleKeywordsFilter struct {
	keywords []string
	logger   *zap.Logger
}

// NewTitleKeywords creates a filter that keeps only vacancies whose title
// contains at least one of the keywords, case-insensitively. With no
// keywords the filter is disabled.
func NewTitleKeywords(keywords []string, logger *zap.Logger) Filter {
	return &titleKeywordsFilter{keywords: keywords, logger: logger}
}

func (f *titleKeywordsFilter) Name() string { return "title_keywords" }

func (f *titleKeywordsFilter) IsEnabled() bool { return len(f.keywords) > 0 }

func (f *titleKeywordsFilter) Apply(v *vacancy.Vacancies) (*vacancy.Vacancies, Step, error) {
	initial := v.Len()

	removed := v.Drop(func(vac *vacancy.Vacancy) bool {
		title := strings.ToLower(vac.Title)
		for _, keyword := range f.keywords {
			if strings.Contains(title, strings.ToLower(keyword)) {
				return false
			}
		}
		return true
	})

	if f.logger != nil && len(removed) > 0 {
		titles := make([]string, 0, len(removed))
		for _, vac := range removed {
			titles = append(titles, vac.Title)
		}
		f.logger.Info("excluding vacancies by title keywords",
			zap.Strings("keywords", f.keywords),
			zap.Strings("excluded_titles", titles),
			zap.Int("vacancies_left", v.Len()),
		)
	}

	return v, Step{Initial: initial, Dropped: len(removed), Left: v.Len()}, nil
}

type archivedFilter struct {
	logger *zap.Logger
}

// NewArchived creates a filter that removes archived vacancies.
func NewArchived(logger *zap.Logger) Filter {
	return &archivedFilter{logger: logger}
}

func (f *archivedFilter) Name() string { return "archived" }

func (f *archivedFilter) IsEnabled() bool { return true }

func (f *archivedFilter) Apply(v *vacancy.Vacancies) (*vacancy.Vacancies, Step, error) {
	initial := v.Len()

	removed := v.Drop(func(vac *vacancy.Vacancy) bool { return vac.Archived })

	if f.logger != nil && len(removed) > 0 {
		f.logger.Info("excluding archived vacancies",
			zap.Int("excluded", len(removed)),
			zap.Int("vacancies_left", v.Len()),
		)
	}

	return v, Step{Initial: initial, Dropped: len(removed), Left: v.Len()}, nil
}

type employersFilter struct {
	employers []string
	logger    *zap.Logger
}

// NewEmployers creates a filter that removes vacancies from the configured
// companies.
func NewEmployers(employers []string, logger *zap.Logger) Filter {
	return &employersFilter{employers: employers, logger: logger}
}

func (f *employersFilter) Name() string { return "employers" }

func (f *employersFilter) IsEnabled() bool { return len(f.employers) > 0 }

func (f *employersFilter) Apply(v *vacancy.Vacancies) (*vacancy.Vacancies, Step, error) {
	initial := v.Len()

	removed := v.Drop(func(vac *vacancy.Vacancy) bool {
		for _, name := range f.employers {
			if strings.EqualFold(vac.Company.Name, name) {
				return true
			}
		}
		return false
	})

	if f.logger != nil && len(removed) > 0 {
		f.logger.Info("excluding vacancies by employers",
			zap.Strings("excluded_employers", f.employers),
			zap.Int("excluded", len(removed)),
			zap.Int("vacancies_left", v.Len()),
		)
	}

	return v, Step{Initial: initial, Dropped: len(removed), Left: v.Len()}, nil
}
