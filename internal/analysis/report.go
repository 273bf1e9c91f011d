// Package analysis computes aggregate statistics over a vacancy collection
// and assembles the final report.
package analysis

import (
	"encoding/json"
	"os"
	"time"

	"github.com/k0de1ne/hh-parser-analyzer/internal/skills"
	"github.com/k0de1ne/hh-parser-analyzer/internal/vacancy"
)

// Meta describes the analyzed collection.
type Meta struct {
	Total      int    `json:"total"`
	AnalyzedAt string `json:"analyzed_at"`
}

// Report is the complete analysis output.
type Report struct {
	Meta         Meta              `json:"meta"`
	Skills       *skills.Report    `json:"skills"`
	Salaries     *SalaryStats      `json:"salaries"`
	Experience   CountMap          `json:"experience"`
	Companies    *CompanyStats     `json:"companies"`
	Titles       *TitleStats       `json:"titles"`
	Locations    *LocationStats    `json:"locations"`
	Descriptions *DescriptionStats `json:"descriptions"`
	Insights     []Insight         `json:"insights"`
}

// Build runs every analyzer over the collection in one pass and derives the
// insight blocks from the assembled sections.
func Build(vacancies *vacancy.Vacancies, normalizer *skills.Normalizer) *Report {
	report := &Report{
		Meta: Meta{
			Total:      vacancies.Len(),
			AnalyzedAt: time.Now().Format("2006-01-02"),
		},
		Skills:       skills.Analyze(vacancies.SkillLists(), normalizer),
		Salaries:     Salaries(vacancies),
		Experience:   Experience(vacancies),
		Companies:    Companies(vacancies),
		Titles:       Titles(vacancies),
		Locations:    Locations(vacancies),
		Descriptions: Descriptions(vacancies),
	}
	report.Insights = Insights(report)

	return report
}

// SaveFile writes the report as indented JSON.
func (r *Report) SaveFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
