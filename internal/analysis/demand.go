package analysis

import "github.com/k0de1ne/hh-parser-analyzer/internal/vacancy"

// Experience counts vacancies by required experience, most frequent first.
func Experience(vacancies *vacancy.Vacancies) CountMap {
	counter := make(map[string]int)
	for _, v := range vacancies.Items {
		exp := v.Experience
		if exp == "" {
			exp = labelNotSpecified
		}
		counter[exp]++
	}
	return sortedByCount(counter)
}

// CompanyStats lists hiring companies with their vacancy counts.
type CompanyStats struct {
	All   PairList `json:"all"`
	Total int      `json:"total"`
}

// Companies counts vacancies by hiring company, most frequent first.
func Companies(vacancies *vacancy.Vacancies) *CompanyStats {
	counter := make(map[string]int)
	for _, v := range vacancies.Items {
		name := v.Company.Name
		if name == "" {
			name = "Не указана"
		}
		counter[name]++
	}

	return &CompanyStats{
		All:   PairList(sortedByCount(counter)),
		Total: len(counter),
	}
}
