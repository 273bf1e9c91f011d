package skills

import "testing"

func TestKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		expect string
	}{
		{"CI/CD", "cicd"},
		{"ci cd", "cicd"},
		{"Go", "go"},
		{"go-lang", "golang"},
		{"  REST API  ", "restapi"},
		{"Стрессоустойчивость", "стрессоустойчивость"},
		{"", ""},
		{"+-/", ""},
	}

	for _, tt := range tests {
		if got := Key(tt.input); got != tt.expect {
			t.Fatalf("Key(%q) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}

func TestNormalizeDictionaryLookup(t *testing.T) {
	t.Parallel()

	normalizer := NewNormalizer(DefaultSynonyms)

	// Variants differing only in case and punctuation share a key and must
	// resolve identically.
	for _, variant := range []string{"Go", "GO", "go", "go-lang", "golang", "Golang"} {
		if got := normalizer.Normalize(variant); got != "Golang" {
			t.Fatalf("Normalize(%q) = %q, want Golang", variant, got)
		}
	}

	tests := []struct {
		input  string
		expect string
	}{
		{"postgres", "PostgreSQL"},
		{"PostgreSQL", "PostgreSQL"},
		{"k8s", "Kubernetes"},
		{"CI/CD", "CI/CD"},
		{"rest api", "REST"},
		{"node.js", "Node.js"},
	}

	for _, tt := range tests {
		if got := normalizer.Normalize(tt.input); got != tt.expect {
			t.Fatalf("Normalize(%q) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}

func TestNormalizeFallback(t *testing.T) {
	t.Parallel()

	normalizer := NewNormalizer(DefaultSynonyms)

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "title cases unknown russian skill",
			input:  "стрессоустойчивость",
			expect: "Стрессоустойчивость",
		},
		{
			name:   "trims surrounding whitespace",
			input:  "  design review  ",
			expect: "Design Review",
		},
		{
			name:   "keeps existing capitals",
			input:  "gRPC Gateway",
			expect: "GRPC Gateway",
		},
		{
			name:   "empty input stays empty",
			input:  "   ",
			expect: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := normalizer.Normalize(tt.input); got != tt.expect {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

// Spelling variants outside the curated table canonicalize independently.
// This is documented behavior, not a defect: downstream consumers rely on the
// exact canonical strings.
func TestNormalizeFallbackKeepsNearDuplicates(t *testing.T) {
	t.Parallel()

	normalizer := NewNormalizer(DefaultSynonyms)

	a := normalizer.Normalize("Event Sourcing")
	b := normalizer.Normalize("EventSourcing")
	if a == b {
		t.Fatalf("expected distinct canonical names, got %q for both", a)
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	t.Parallel()

	normalizer := NewNormalizer(DefaultSynonyms)
	for _, input := range []string{"Go", "что-то новое", "REST API", ""} {
		first := normalizer.Normalize(input)
		for i := 0; i < 5; i++ {
			if got := normalizer.Normalize(input); got != first {
				t.Fatalf("Normalize(%q) changed between calls: %q then %q", input, first, got)
			}
		}
	}
}
