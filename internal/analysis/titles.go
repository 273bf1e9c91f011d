package analysis

import (
	"regexp"
	"strings"

	"github.com/k0de1ne/hh-parser-analyzer/internal/vacancy"
)

type titleRule struct {
	label    string
	patterns []*regexp.Regexp
}

func newTitleRule(label string, exprs ...string) titleRule {
	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		patterns = append(patterns, regexp.MustCompile(expr))
	}
	return titleRule{label: label, patterns: patterns}
}

// Rule order matters: the first matching level wins, so "Senior Team Lead"
// counts as Senior.
var seniorityRules = []titleRule{
	newTitleRule("Junior", `junior`, `джуниор`, `младш`, `\bjr\b`),
	newTitleRule("Middle", `middle`, `миддл`, `\bmid\b`),
	newTitleRule("Senior", `senior`, `сеньор`, `старш`, `\bsr\b`),
	newTitleRule("Lead", `lead`, `лид`, `ведущ`, `principal`, `staff`, `team\s*lead`),
	newTitleRule("Architect", `architect`, `архитектор`),
}

var roleRules = []titleRule{
	newTitleRule("Backend", `backend`, `back-end`, `back end`, `бэкенд`, `бекенд`),
	newTitleRule("Fullstack", `fullstack`, `full-stack`, `full stack`, `фулстек`),
	newTitleRule("DevOps/SRE", `devops`, `sre`, `platform`, `infrastructure`, `инфраструктур`),
	newTitleRule("Data/ML", `\bdata\b`, `\bml\b`, `machine`, `аналитик`, `data\s*engineer`),
	newTitleRule("Frontend", `frontend`, `front-end`, `front end`, `фронтенд`),
}

// TitleStats breaks job titles down by seniority and role.
type TitleStats struct {
	Seniority CountMap `json:"seniority"`
	Roles     CountMap `json:"roles"`
	All       PairList `json:"all"`
}

// Titles classifies every vacancy title against the seniority and role
// pattern sets, first match wins in each dimension.
func Titles(vacancies *vacancy.Vacancies) *TitleStats {
	seniority := make(map[string]int)
	roles := make(map[string]int)
	all := make(PairList, 0, vacancies.Len())

	for _, v := range vacancies.Items {
		title := strings.ToLower(v.Title)

		seniority[matchTitle(seniorityRules, title, labelNotSpecified)]++
		roles[matchTitle(roleRules, title, "Developer")]++
		all = append(all, Entry{Key: v.Title, Count: 1})
	}

	return &TitleStats{
		Seniority: sortedByCount(seniority),
		Roles:     sortedByCount(roles),
		All:       all,
	}
}

func matchTitle(rules []titleRule, title, fallback string) string {
	for _, rule := range rules {
		for _, pattern := range rule.patterns {
			if pattern.MatchString(title) {
				return rule.label
			}
		}
	}
	return fallback
}
