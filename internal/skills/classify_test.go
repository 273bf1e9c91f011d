package skills

import "testing"

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		skill  string
		expect Category
	}{
		{
			name:   "plain technology is technical",
			skill:  "PostgreSQL",
			expect: CategoryTechnical,
		},
		{
			name:   "empty string is technical",
			skill:  "",
			expect: CategoryTechnical,
		},
		{
			name:   "russian soft skill stem",
			skill:  "стрессоустойчивость",
			expect: CategorySoft,
		},
		{
			name:   "english soft skill",
			skill:  "Team Work",
			expect: CategorySoft,
		},
		{
			name:   "soft skill case insensitive",
			skill:  "LEADERSHIP",
			expect: CategorySoft,
		},
		{
			name:   "cefr level with dash",
			skill:  "B2 — English",
			expect: CategoryLanguage,
		},
		{
			name:   "english with level",
			skill:  "Английский — B1",
			expect: CategoryLanguage,
		},
		{
			name:   "proficiency word",
			skill:  "Upper Intermediate",
			expect: CategoryLanguage,
		},
		{
			name:   "russian proficiency phrase",
			skill:  "свободный уровень английского",
			expect: CategoryLanguage,
		},
		{
			name:   "language rules win over soft rules",
			skill:  "fluent communication in English",
			expect: CategoryLanguage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Classify(tt.skill); got != tt.expect {
				t.Fatalf("Classify(%q) = %q, want %q", tt.skill, got, tt.expect)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	t.Parallel()

	inputs := []string{"Golang", "коммуникабельность", "B2 — English", "", "docker"}
	for _, skill := range inputs {
		first := Classify(skill)
		for i := 0; i < 5; i++ {
			if got := Classify(skill); got != first {
				t.Fatalf("Classify(%q) changed between calls: %q then %q", skill, first, got)
			}
		}
	}
}

func TestClassifyPartition(t *testing.T) {
	t.Parallel()

	mentions := []string{
		"Go", "Docker", "ответственность", "英語", "Advanced English",
		"SQL", "работа в команде", "свободный уровень", "Kubernetes", "",
	}

	counts := map[Category]int{}
	for _, skill := range mentions {
		counts[Classify(skill)]++
	}

	total := counts[CategoryTechnical] + counts[CategorySoft] + counts[CategoryLanguage]
	if total != len(mentions) {
		t.Fatalf("categories sum to %d, want %d", total, len(mentions))
	}
}
