package skills

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalizer maps raw skill strings to canonical display names. Lookup is
// punctuation- and case-insensitive: both the table keys and the probe are
// reduced to their lower-cased alphanumeric form, so "Golang", "go-lang" and
// "GOLANG" share one key. Strings outside the table fall back to a trimmed,
// title-cased copy, which may leave near-duplicates like "Node JS" vs
// "Nodejs"; that is accepted.
type Normalizer struct {
	synonyms map[string]string
}

// NewNormalizer builds a Normalizer from the given canonical table. The table
// maps alphanumeric keys (see Key) to display names and is copied, so the
// Normalizer is immutable after construction.
func NewNormalizer(synonyms map[string]string) *Normalizer {
	table := make(map[string]string, len(synonyms))
	for key, canonical := range synonyms {
		table[Key(key)] = canonical
	}
	return &Normalizer{synonyms: table}
}

// Normalize returns the canonical name for a raw skill string.
func (n *Normalizer) Normalize(skill string) string {
	if canonical, ok := n.synonyms[Key(skill)]; ok {
		return canonical
	}
	caser := cases.Title(language.Und, cases.NoLower)
	return caser.String(strings.TrimSpace(skill))
}

// Key reduces a string to its lower-cased alphanumeric form: "CI/CD" and
// "ci cd" both become "cicd".
func Key(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DefaultSynonyms is the curated canonical table for skills commonly found in
// Golang vacancies on hh.ru. It is process-wide static configuration; callers
// that need a different table pass their own to NewNormalizer.
var DefaultSynonyms = map[string]string{
	"go":              "Golang",
	"golang":          "Golang",
	"golanggo":        "Golang",
	"postgres":        "PostgreSQL",
	"postgre":         "PostgreSQL",
	"postgresql":      "PostgreSQL",
	"psql":            "PostgreSQL",
	"mysql":           "MySQL",
	"mongo":           "MongoDB",
	"mongodb":         "MongoDB",
	"redis":           "Redis",
	"clickhouse":      "ClickHouse",
	"kafka":           "Kafka",
	"apachekafka":     "Kafka",
	"rabbitmq":        "RabbitMQ",
	"nats":            "NATS",
	"docker":          "Docker",
	"dockercompose":   "Docker Compose",
	"k8s":             "Kubernetes",
	"kubernetes":      "Kubernetes",
	"kuber":           "Kubernetes",
	"helm":            "Helm",
	"terraform":       "Terraform",
	"ansible":         "Ansible",
	"git":             "Git",
	"gitlab":          "GitLab",
	"gitlabci":        "GitLab CI",
	"gitlabcicd":      "GitLab CI",
	"github":          "GitHub",
	"cicd":            "CI/CD",
	"ci":              "CI/CD",
	"linux":           "Linux",
	"bash":            "Bash",
	"sql":             "SQL",
	"nosql":           "NoSQL",
	"rest":            "REST",
	"restapi":         "REST",
	"restful":         "REST",
	"restfulapi":      "REST",
	"grpc":            "gRPC",
	"graphql":         "GraphQL",
	"protobuf":        "Protobuf",
	"protocolbuffers": "Protobuf",
	"js":              "JavaScript",
	"javascript":      "JavaScript",
	"ts":              "TypeScript",
	"typescript":      "TypeScript",
	"nodejs":          "Node.js",
	"python":          "Python",
	"java":            "Java",
	"gin":             "Gin",
	"gorm":            "GORM",
	"swagger":         "Swagger",
	"openapi":         "OpenAPI",
	"prometheus":      "Prometheus",
	"grafana":         "Grafana",
	"elasticsearch":   "Elasticsearch",
	"elk":             "ELK",
	"aws":             "AWS",
	"gcp":             "GCP",
	"микросервисы":    "Микросервисы",
	"микросервиснаяархитектура": "Микросервисы",
	"highload":    "Highload",
	"unittesting": "Unit Testing",
	"unittests":   "Unit Testing",
	"юниттесты":   "Unit Testing",
}
