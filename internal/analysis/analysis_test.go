package analysis

import (
	"encoding/json"
	"testing"

	"github.com/k0de1ne/hh-parser-analyzer/internal/vacancy"
)

func titled(title string) *vacancy.Vacancy {
	return &vacancy.Vacancy{Title: title}
}

func TestExperience(t *testing.T) {
	t.Parallel()

	vacancies := &vacancy.Vacancies{Items: []*vacancy.Vacancy{
		{Experience: "1-3 года"},
		{Experience: "1-3 года"},
		{Experience: "3-6 лет"},
		{},
	}}

	counts := Experience(vacancies)

	if len(counts) != 3 {
		t.Fatalf("expected 3 entries, got %+v", counts)
	}
	if counts[0].Key != "1-3 года" || counts[0].Count != 2 {
		t.Fatalf("expected most frequent first, got %+v", counts[0])
	}

	found := false
	for _, entry := range counts {
		if entry.Key == labelNotSpecified && entry.Count == 1 {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing fallback bucket: %+v", counts)
	}
}

func TestCompanies(t *testing.T) {
	t.Parallel()

	acme := struct {
		Name string `json:"name,omitempty"`
	}{Name: "Acme"}

	vacancies := &vacancy.Vacancies{Items: []*vacancy.Vacancy{
		{Company: acme},
		{Company: acme},
		{},
	}}

	stats := Companies(vacancies)

	if stats.Total != 2 {
		t.Fatalf("expected 2 distinct companies, got %d", stats.Total)
	}
	if stats.All[0].Key != "Acme" || stats.All[0].Count != 2 {
		t.Fatalf("unexpected leader: %+v", stats.All[0])
	}
}

func TestTitles(t *testing.T) {
	t.Parallel()

	vacancies := &vacancy.Vacancies{Items: []*vacancy.Vacancy{
		titled("Senior Golang Backend Developer"),
		titled("Junior Go Developer"),
		titled("Ведущий разработчик Go"),
		titled("Go Developer"),
		titled("Фронтенд-разработчик"),
	}}

	stats := Titles(vacancies)

	seniority := map[string]int{}
	for _, entry := range stats.Seniority {
		seniority[entry.Key] = entry.Count
	}
	if seniority["Senior"] != 1 || seniority["Junior"] != 1 || seniority["Lead"] != 1 || seniority[labelNotSpecified] != 2 {
		t.Fatalf("unexpected seniority: %+v", stats.Seniority)
	}

	roles := map[string]int{}
	for _, entry := range stats.Roles {
		roles[entry.Key] = entry.Count
	}
	if roles["Backend"] != 1 || roles["Frontend"] != 1 || roles["Developer"] != 3 {
		t.Fatalf("unexpected roles: %+v", stats.Roles)
	}

	if len(stats.All) != vacancies.Len() {
		t.Fatalf("expected all titles listed, got %d", len(stats.All))
	}
}

func TestTitlesFirstMatchWins(t *testing.T) {
	t.Parallel()

	stats := Titles(&vacancy.Vacancies{Items: []*vacancy.Vacancy{
		titled("Senior Team Lead"),
	}})

	if stats.Seniority[0].Key != "Senior" {
		t.Fatalf("expected Senior to win over Lead, got %+v", stats.Seniority)
	}
}

func TestLocations(t *testing.T) {
	t.Parallel()

	vacancies := &vacancy.Vacancies{Items: []*vacancy.Vacancy{
		{Location: "Москва, м. Тверская", Description: "Работа удаленно из любой точки"},
		{Location: "Москва", Description: "Гибридный формат: офис и удаленка"},
		{Location: "Санкт-Петербург"},
		{},
	}}

	stats := Locations(vacancies)

	cities := map[string]int{}
	for _, entry := range stats.Cities {
		cities[entry.Key] = entry.Count
	}
	if cities["Москва"] != 2 || cities["Санкт-Петербург"] != 1 || cities[labelNotSpecified] != 1 {
		t.Fatalf("unexpected cities: %+v", stats.Cities)
	}

	if stats.RemoteMentions != 2 {
		t.Fatalf("expected 2 remote mentions, got %d", stats.RemoteMentions)
	}
	if stats.HybridMentions != 1 {
		t.Fatalf("expected 1 hybrid mention, got %d", stats.HybridMentions)
	}
	if stats.RemotePercent != 50.0 {
		t.Fatalf("expected 50%% remote, got %v", stats.RemotePercent)
	}
}

func TestDescriptions(t *testing.T) {
	t.Parallel()

	vacancies := &vacancy.Vacancies{Items: []*vacancy.Vacancy{
		{Description: "Разрабатываем микросервисы на Go, REST API и gRPC"},
		{Description: "Microservice platform, CI/CD pipeline"},
		{},
	}}

	stats := Descriptions(vacancies)

	if stats.TotalWithDescription != 2 {
		t.Fatalf("expected 2 with description, got %d", stats.TotalWithDescription)
	}

	keywords := map[string]int{}
	for _, entry := range stats.Keywords {
		keywords[entry.Key] = entry.Count
	}
	if keywords["Микросервисы"] != 2 {
		t.Fatalf("expected both microservice mentions counted, got %+v", stats.Keywords)
	}
	if keywords["gRPC"] != 1 || keywords["CI/CD"] != 1 {
		t.Fatalf("unexpected keyword counts: %+v", stats.Keywords)
	}
	if _, ok := keywords["GraphQL"]; ok {
		t.Fatalf("zero-count keyword leaked into output: %+v", stats.Keywords)
	}
}

func TestDescriptionsCyrillicTestingKeyword(t *testing.T) {
	t.Parallel()

	stats := Descriptions(&vacancy.Vacancies{Items: []*vacancy.Vacancy{
		{Description: "Требуется опыт: тестирование кода"},
	}})

	if len(stats.Keywords) != 1 || stats.Keywords[0].Key != "Тестирование" {
		t.Fatalf("russian-only description not counted: %+v", stats.Keywords)
	}
}

func TestCountMapMarshalKeepsOrder(t *testing.T) {
	t.Parallel()

	m := CountMap{{Key: "b", Count: 2}, {Key: "a", Count: 1}}

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `{"b":2,"a":1}` {
		t.Fatalf("unexpected JSON: %s", data)
	}
}

func TestPairListMarshal(t *testing.T) {
	t.Parallel()

	l := PairList{{Key: "Acme", Count: 3}}

	data, err := json.Marshal(l)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `[["Acme",3]]` {
		t.Fatalf("unexpected JSON: %s", data)
	}
}
