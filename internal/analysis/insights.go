package analysis

import (
	"fmt"
	"sort"
	"strings"
)

// Insight is one actionable advice block for resume building.
type Insight struct {
	Title string   `json:"title"`
	Text  string   `json:"text"`
	Items []string `json:"items"`
}

const (
	topResumeSkills   = 12
	topResumeKeywords = 5
	topCombinations   = 5
)

// Insights derives the advice blocks from an assembled report: resume
// keywords, frequent skill combinations, the dominant experience requirement
// and the dominant job title.
func Insights(r *Report) []Insight {
	var insights []Insight

	keywords := resumeKeywords(r)
	insights = append(insights, Insight{
		Title: "Ключевые слова для резюме",
		Text:  "Обязательно включите эти технологии и концепции в свое резюме, чтобы пройти HR-фильтры.",
		Items: keywords,
	})

	combos := []string{}
	for i, pair := range r.Skills.Combinations {
		if i >= topCombinations {
			break
		}
		combos = append(combos, fmt.Sprintf("%s + %s", pair.Skills[0], pair.Skills[1]))
	}
	insights = append(insights, Insight{
		Title: "Частые комбинации навыков",
		Text:  "Эти навыки часто требуются вместе. Знание этих связок — большой плюс.",
		Items: combos,
	})

	if len(r.Experience) > 0 {
		top := r.Experience[0]
		items := make([]string, 0, len(r.Experience))
		for _, entry := range r.Experience {
			items = append(items, fmt.Sprintf("%s: %d вак.", entry.Key, entry.Count))
		}
		insights = append(insights, Insight{
			Title: "Востребованный опыт",
			Text: fmt.Sprintf(
				"Самое частое требование к опыту: %s (%d из %d вакансий). Убедитесь, что ваш опыт соответствует этому.",
				top.Key, top.Count, r.Meta.Total,
			),
			Items: items,
		})
	}

	if len(r.Titles.Roles) > 0 && r.Meta.Total > 0 {
		top := r.Titles.Roles[0]
		items := make([]string, 0, len(r.Titles.Roles))
		for _, entry := range r.Titles.Roles {
			percent := int(float64(entry.Count)/float64(r.Meta.Total)*100 + 0.5)
			items = append(items, fmt.Sprintf("%s: %d%%", entry.Key, percent))
		}
		insights = append(insights, Insight{
			Title: "Как назвать свою должность",
			Text: fmt.Sprintf(
				"Большинство позиций — это '%s'. Рассмотрите возможность использования этого или похожего названия должности в резюме.",
				top.Key,
			),
			Items: items,
		})
	}

	return insights
}

// resumeKeywords merges the top technical skills with the top description
// keywords, de-duplicated and sorted case-insensitively.
func resumeKeywords(r *Report) []string {
	seen := make(map[string]struct{})
	keywords := []string{}

	add := func(keyword string) {
		if _, ok := seen[keyword]; ok {
			return
		}
		seen[keyword] = struct{}{}
		keywords = append(keywords, keyword)
	}

	for i, bucket := range r.Skills.Technical {
		if i >= topResumeSkills {
			break
		}
		add(bucket.Name)
	}
	for i, entry := range r.Descriptions.Keywords {
		if i >= topResumeKeywords {
			break
		}
		add(entry.Key)
	}

	sort.Slice(keywords, func(i, j int) bool {
		return strings.ToLower(keywords[i]) < strings.ToLower(keywords[j])
	})
	return keywords
}
