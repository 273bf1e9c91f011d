package analysis

import (
	"regexp"
	"strings"

	"github.com/k0de1ne/hh-parser-analyzer/internal/vacancy"
)

type keywordPattern struct {
	name    string
	pattern *regexp.Regexp
}

func newKeyword(name, expr string) keywordPattern {
	return keywordPattern{name: name, pattern: regexp.MustCompile(expr)}
}

var descriptionKeywords = []keywordPattern{
	newKeyword("Микросервисы", `микросервис|microservice`),
	newKeyword("Highload", `высоконагруж|highload|high.?load|нагрузк`),
	newKeyword("Распределённые системы", `распределен|distributed`),
	// RE2's \b is ASCII-only, so the cyrillic stem needs an explicit boundary.
	newKeyword("Тестирование", `(?:^|[^\p{L}\p{N}_])тест|test|unit.?test|интеграцион`),
	newKeyword("Agile/Scrum", `agile|scrum|kanban|спринт`),
	newKeyword("REST API", `rest\s*api|restful`),
	newKeyword("gRPC", `grpc`),
	newKeyword("GraphQL", `graphql`),
	newKeyword("Cloud", `облак|cloud|aws|gcp|azure|yandex.?cloud`),
	newKeyword("Безопасность", `безопасност|security|защит`),
	newKeyword("Оптимизация", `оптимизац|optimization|performance|производительн`),
	newKeyword("Архитектура", `архитектур|architecture|design.?pattern`),
	newKeyword("CI/CD", `ci.?cd|деплой|deploy|pipeline`),
	newKeyword("Мониторинг", `мониторинг|monitoring|observability|метрик`),
	newKeyword("Код-ревью", `код.?ревью|code.?review|ревью кода`),
	newKeyword("Менторство", `ментор|mentor|обучен|наставн`),
}

// DescriptionStats counts concept keywords across vacancy descriptions.
type DescriptionStats struct {
	Keywords             CountMap `json:"keywords"`
	TotalWithDescription int      `json:"total_with_description"`
}

// Descriptions matches every keyword pattern against lower-cased descriptions
// and reports non-zero counts, most frequent first.
func Descriptions(vacancies *vacancy.Vacancies) *DescriptionStats {
	withDescription := 0
	counter := make(map[string]int)

	for _, v := range vacancies.Items {
		if v.Description == "" {
			continue
		}
		withDescription++

		desc := strings.ToLower(v.Description)
		for _, kw := range descriptionKeywords {
			if kw.pattern.MatchString(desc) {
				counter[kw.name]++
			}
		}
	}

	return &DescriptionStats{
		Keywords:             sortedByCount(counter),
		TotalWithDescription: withDescription,
	}
}
