package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/k0de1ne/hh-parser-analyzer/internal/analysis"
	"github.com/k0de1ne/hh-parser-analyzer/internal/skills"
)

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func testReport() *analysis.Report {
	return &analysis.Report{
		Meta: analysis.Meta{Total: 2},
		Skills: &skills.Report{
			Technical: []skills.Bucket{{Name: "Golang", TotalCount: 2}},
		},
		Descriptions: &analysis.DescriptionStats{},
		Titles:       &analysis.TitleStats{},
	}
}

func TestAdvisorAdvise(t *testing.T) {
	t.Parallel()

	stub := &stubGenerator{response: `{"summary": "Упор на Golang", "items": ["Добавьте Golang в заголовок", "Укажите опыт с Docker"]}`}
	advisor := NewAdvisor(stub, 0, zap.NewNop())

	advice, err := advisor.Advise(context.Background(), testReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if advice.Summary != "Упор на Golang" {
		t.Fatalf("unexpected summary: %q", advice.Summary)
	}
	if len(advice.Items) != 2 {
		t.Fatalf("unexpected items: %v", advice.Items)
	}
	if advice.Raw == "" {
		t.Fatalf("expected raw response to be kept")
	}
	if !strings.Contains(stub.lastPrompt, `"Golang"`) {
		t.Fatalf("prompt does not embed the report: %q", stub.lastPrompt)
	}
}

func TestAdvisorAdviseStripsMarkdownFence(t *testing.T) {
	t.Parallel()

	stub := &stubGenerator{response: "```json\n{\"summary\": \"ok\", \"items\": []}\n```"}
	advisor := NewAdvisor(stub, 0, zap.NewNop())

	advice, err := advisor.Advise(context.Background(), testReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if advice.Summary != "ok" {
		t.Fatalf("unexpected summary: %q", advice.Summary)
	}
}

func TestAdvisorAdviseGeneratorError(t *testing.T) {
	t.Parallel()

	stub := &stubGenerator{err: errors.New("quota exceeded")}
	advisor := NewAdvisor(stub, 0, zap.NewNop())

	if _, err := advisor.Advise(context.Background(), testReport()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestAdvisorAdviseMalformedResponse(t *testing.T) {
	t.Parallel()

	stub := &stubGenerator{response: "not json at all"}
	advisor := NewAdvisor(stub, 0, zap.NewNop())

	if _, err := advisor.Advise(context.Background(), testReport()); err == nil {
		t.Fatalf("expected parse error")
	}
}
