// Package vacancy models an exported hh.ru vacancy collection and the
// loose-JSON loader for it.
package vacancy

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type Vacancies struct {
	Items []*Vacancy `json:"vacancies"`
}

type Vacancy struct {
	ID      string `json:"id,omitempty"`
	Title   string `json:"title,omitempty"`
	Company struct {
		Name string `json:"name,omitempty"`
	} `json:"company,omitempty"`
	Salary      *Salary  `json:"salary,omitempty"`
	Experience  string   `json:"experience,omitempty"`
	Location    string   `json:"location,omitempty"`
	Description string   `json:"description,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	KeySkills   []struct {
		Name string `json:"name,omitempty"`
	} `json:"key_skills,omitempty"`
	Archived    bool   `json:"archived,omitempty"`
	PublishedAt string `json:"published_at,omitempty"`
}

type Salary struct {
	From     int    `json:"from,omitempty"`
	To       int    `json:"to,omitempty"`
	Currency string `json:"currency,omitempty"`
	Gross    bool   `json:"gross,omitempty"`
}

// SkillList returns the vacancy's raw skill mentions. Exports carry either a
// plain string list or hh-API-style key_skills objects; both are merged,
// duplicates and spelling kept as-is. A missing list yields an empty slice.
func (va *Vacancy) SkillList() []string {
	skills := make([]string, 0, len(va.Skills)+len(va.KeySkills))
	skills = append(skills, va.Skills...)
	for _, ks := range va.KeySkills {
		skills = append(skills, ks.Name)
	}
	return skills
}

func (v *Vacancies) Len() int {
	return len(v.Items)
}

func (v *Vacancies) FindByID(id string) *Vacancy {
	for _, vacancy := range v.Items {
		if vacancy.ID == id {
			return vacancy
		}
	}
	return nil
}

// SkillLists returns one raw skill list per vacancy, preserving order.
func (v *Vacancies) SkillLists() [][]string {
	lists := make([][]string, 0, len(v.Items))
	for _, vacancy := range v.Items {
		lists = append(lists, vacancy.SkillList())
	}
	return lists
}

// Drop removes every vacancy matching the predicate, preserving the order of
// the remaining items, and returns the removed ones.
func (v *Vacancies) Drop(pred func(*Vacancy) bool) []*Vacancy {
	kept := v.Items[:0]
	var removed []*Vacancy
	for _, vacancy := range v.Items {
		if pred(vacancy) {
			removed = append(removed, vacancy)
			continue
		}
		kept = append(kept, vacancy)
	}
	v.Items = kept
	return removed
}

// ReportByCompany groups vacancy summaries by hiring company.
func (v *Vacancies) ReportByCompany() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, vacancy := range v.Items {
		name := vacancy.Company.Name
		if name == "" {
			name = "Не указана"
		}

		entry := map[string]string{
			"title":      vacancy.Title,
			"location":   vacancy.Location,
			"experience": vacancy.Experience,
			"skills":     strings.Join(vacancy.SkillList(), ", "),
		}
		if vacancy.Salary != nil {
			entry["salary"] = fmt.Sprintf("%d-%d %s", vacancy.Salary.From, vacancy.Salary.To, vacancy.Salary.Currency)
		}

		report[name] = append(report[name], entry)
	}
	return report
}

// DumpToTmpFile writes the collection to a temporary JSON file and returns
// its name.
func (v *Vacancies) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "vacancies_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return file.Name(), nil
}
