package analysis

import (
	"fmt"
	"sort"

	"github.com/k0de1ne/hh-parser-analyzer/internal/vacancy"
)

const (
	// Gross salaries are converted to net with the standard 13% income tax.
	netMultiplier = 0.87
	// Distribution bucket width in roubles.
	distributionStep = 50000

	labelNotSpecified = "Не указан"
)

// SalaryStats aggregates salary figures across the collection. All values are
// net monthly amounts.
type SalaryStats struct {
	WithSalary    int `json:"with_salary"`
	WithoutSalary int `json:"without_salary"`

	Min    int `json:"min,omitempty"`
	Max    int `json:"max,omitempty"`
	Avg    int `json:"avg,omitempty"`
	Median int `json:"median,omitempty"`
	P10    int `json:"p10,omitempty"`
	P25    int `json:"p25,omitempty"`
	P75    int `json:"p75,omitempty"`
	P90    int `json:"p90,omitempty"`

	Distribution CountMap                     `json:"distribution,omitempty"`
	ByExperience map[string]*ExperienceSalary `json:"by_experience,omitempty"`
}

// ExperienceSalary is the per-experience-level salary breakdown.
type ExperienceSalary struct {
	Min    int `json:"min"`
	Max    int `json:"max"`
	Avg    int `json:"avg"`
	Median int `json:"median"`
	P25    int `json:"p25"`
	P75    int `json:"p75"`
	Count  int `json:"count"`
}

// Salaries computes salary statistics. A vacancy with a salary block counts
// as "with salary" even when both bounds are missing; gross amounts are
// reduced to net; a single bound is used as-is, two bounds are averaged.
func Salaries(vacancies *vacancy.Vacancies) *SalaryStats {
	var values []int
	byExperience := make(map[string][]int)
	withSalary := 0

	for _, v := range vacancies.Items {
		if v.Salary == nil {
			continue
		}
		withSalary++

		multiplier := 1.0
		if v.Salary.Gross {
			multiplier = netMultiplier
		}

		var avg int
		switch {
		case v.Salary.From != 0 && v.Salary.To != 0:
			avg = int(float64(v.Salary.From+v.Salary.To) / 2 * multiplier)
		case v.Salary.From != 0:
			avg = int(float64(v.Salary.From) * multiplier)
		case v.Salary.To != 0:
			avg = int(float64(v.Salary.To) * multiplier)
		default:
			continue
		}

		exp := v.Experience
		if exp == "" {
			exp = labelNotSpecified
		}

		values = append(values, avg)
		byExperience[exp] = append(byExperience[exp], avg)
	}

	if len(values) == 0 {
		return &SalaryStats{WithoutSalary: vacancies.Len()}
	}

	sort.Ints(values)

	stats := &SalaryStats{
		WithSalary:    withSalary,
		WithoutSalary: vacancies.Len() - withSalary,
		Min:           values[0],
		Max:           values[len(values)-1],
		Avg:           mean(values),
		Median:        values[len(values)/2],
		P10:           percentile(values, 10),
		P25:           percentile(values, 25),
		P75:           percentile(values, 75),
		P90:           percentile(values, 90),
		Distribution:  distribution(values),
		ByExperience:  make(map[string]*ExperienceSalary, len(byExperience)),
	}

	for exp, sals := range byExperience {
		sort.Ints(sals)
		stats.ByExperience[exp] = &ExperienceSalary{
			Min:    sals[0],
			Max:    sals[len(sals)-1],
			Avg:    mean(sals),
			Median: sals[len(sals)/2],
			P25:    percentile(sals, 25),
			P75:    percentile(sals, 75),
			Count:  len(sals),
		}
	}

	return stats
}

// percentile interpolates linearly between the two nearest ranks. The input
// must be sorted.
func percentile(sorted []int, p int) int {
	k := float64(len(sorted)-1) * float64(p) / 100
	f := int(k)
	c := f + 1
	if c >= len(sorted) {
		c = f
	}
	return int(float64(sorted[f]) + (k-float64(f))*float64(sorted[c]-sorted[f]))
}

func mean(values []int) int {
	sum := 0
	for _, v := range values {
		sum += v
	}
	return sum / len(values)
}

// distribution buckets the sorted values into fixed-width ranges, labelled
// like "200k-250k". Empty buckets are omitted.
func distribution(sorted []int) CountMap {
	var dist CountMap

	current := (sorted[0] / distributionStep) * distributionStep
	max := sorted[len(sorted)-1]

	for current <= max {
		next := current + distributionStep
		count := 0
		for _, v := range sorted {
			if v >= current && v < next {
				count++
			}
		}
		if count > 0 {
			label := fmt.Sprintf("%dk-%dk", current/1000, next/1000)
			dist = append(dist, Entry{Key: label, Count: count})
		}
		current = next
	}

	return dist
}
