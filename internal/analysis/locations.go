package analysis

import (
	"math"
	"regexp"
	"strings"

	"github.com/k0de1ne/hh-parser-analyzer/internal/vacancy"
)

var remotePatterns = compileAll(`удален`, `remote`, `дистанц`, `из любой точки`, `home\s*office`)

var hybridPattern = regexp.MustCompile(`гибрид|hybrid|офис.*удален|удален.*офис`)

// LocationStats counts vacancies per city and remote/hybrid mentions in
// descriptions.
type LocationStats struct {
	Cities         CountMap `json:"cities"`
	RemoteMentions int      `json:"remote_mentions"`
	HybridMentions int      `json:"hybrid_mentions"`
	RemotePercent  float64  `json:"remote_percent"`
}

// Locations takes the city as the first comma-separated component of the
// location field and scans descriptions for remote-work wording.
func Locations(vacancies *vacancy.Vacancies) *LocationStats {
	cities := make(map[string]int)
	remote := 0
	hybrid := 0

	for _, v := range vacancies.Items {
		if v.Location != "" {
			city := strings.TrimSpace(strings.SplitN(v.Location, ",", 2)[0])
			cities[city]++
		} else {
			cities[labelNotSpecified]++
		}

		desc := strings.ToLower(v.Description)
		for _, pattern := range remotePatterns {
			if pattern.MatchString(desc) {
				remote++
				break
			}
		}
		if hybridPattern.MatchString(desc) {
			hybrid++
		}
	}

	percent := 0.0
	if vacancies.Len() > 0 {
		percent = math.Round(float64(remote)/float64(vacancies.Len())*1000) / 10
	}

	return &LocationStats{
		Cities:         sortedByCount(cities),
		RemoteMentions: remote,
		HybridMentions: hybrid,
		RemotePercent:  percent,
	}
}

func compileAll(exprs ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		patterns = append(patterns, regexp.MustCompile(expr))
	}
	return patterns
}
