package skills

import "regexp"

// Category labels a raw skill mention. Every mention belongs to exactly one
// category, assigned by the first matching rule.
type Category string

const (
	CategoryTechnical Category = "technical"
	CategorySoft      Category = "soft"
	CategoryLanguage  Category = "language"
)

// Vacancy skill lists on hh.ru mix Russian and English free text, so the
// pattern sets carry stems for both. The sets are heuristic: false positives
// and negatives are accepted, not corrected.
var languageLevelPatterns = compilePatterns([]string{
	`английский.*[—\-–].*[A-C][1-2]`,
	`english.*[—\-–].*[A-C][1-2]`,
	`^[A-C][1-2]\s*[—\-–]`,
	`(intermediate|upper|beginner|advanced|native|fluent)`,
	`(средний|продвинут|начальн|свободн|базов).*уровень`,
})

var softSkillPatterns = compilePatterns([]string{
	`коммуникаб`, `ответствен`, `стрессоуст`, `самостоятел`,
	`инициатив`, `обучаем`, `внимател`, `аккуратн`,
	`командн`, `работа в команд`, `team.?work`, `communication`,
	`leadership`, `лидерств`, `мотивац`, `дисциплин`,
	`пунктуальн`, `исполнительн`, `креатив`, `гибкост`,
	`адаптив`, `многозадачн`, `тайм.?менеджмент`, `time.?management`,
	`problem.?solving`, `решение проблем`, `аналитическ.*мышлен`,
	`критическ.*мышлен`, `переговор`, `презентац`,
})

type classifyRule struct {
	category Category
	patterns []*regexp.Regexp
}

// Rules are evaluated in order and the first match wins. Language-proficiency
// detection must run before soft skills: phrases like "свободный уровень
// английского" would otherwise leak into the soft bucket.
var classifyRules = []classifyRule{
	{CategoryLanguage, languageLevelPatterns},
	{CategorySoft, softSkillPatterns},
}

// Classify assigns a category to a raw skill string. It is a pure total
// function: any input, including the empty string, yields a category.
// Unmatched strings are considered technical.
func Classify(skill string) Category {
	for _, rule := range classifyRules {
		for _, pattern := range rule.patterns {
			if pattern.MatchString(skill) {
				return rule.category
			}
		}
	}
	return CategoryTechnical
}

func compilePatterns(exprs []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		compiled = append(compiled, regexp.MustCompile(`(?i)`+expr))
	}
	return compiled
}
