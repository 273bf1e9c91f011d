package skills

import (
	"encoding/json"
	"sort"
	"strings"
)

// MaxPairs caps the co-occurrence result at the most frequent pairs.
const MaxPairs = 30

// Pair is an unordered pair of two distinct canonical technical skills that
// appeared together on at least one vacancy. Skills are stored in
// lexicographic order so that (A,B) and (B,A) are the same pair.
type Pair struct {
	Skills [2]string
	Count  int
}

// MarshalJSON renders the pair as [[a, b], count].
func (p Pair) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{[]string{p.Skills[0], p.Skills[1]}, p.Count})
}

// CoOccurrences counts, for every unordered pair of canonical technical
// skills, the number of vacancies mentioning both. Each element of skillLists
// is one vacancy's raw skill list. Soft and language-proficiency mentions are
// discarded, the rest is normalized and de-duplicated per vacancy, so a skill
// mentioned twice on one vacancy still contributes to each pair once. The
// result holds at most MaxPairs entries, most frequent first.
func CoOccurrences(skillLists [][]string, normalizer *Normalizer) []Pair {
	counts := make(map[[2]string]int)

	for _, rawSkills := range skillLists {
		set := make(map[string]struct{})
		for _, raw := range rawSkills {
			if Classify(raw) != CategoryTechnical {
				continue
			}
			name := normalizer.Normalize(raw)
			if strings.TrimSpace(name) == "" {
				continue
			}
			set[name] = struct{}{}
		}

		names := make([]string, 0, len(set))
		for name := range set {
			names = append(names, name)
		}
		sort.Strings(names)

		for i := 0; i < len(names); i++ {
			for j := i + 1; j < len(names); j++ {
				counts[[2]string{names[i], names[j]}]++
			}
		}
	}

	pairs := make([]Pair, 0, len(counts))
	for key, count := range counts {
		pairs = append(pairs, Pair{Skills: key, Count: count})
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Count != pairs[j].Count {
			return pairs[i].Count > pairs[j].Count
		}
		if pairs[i].Skills[0] != pairs[j].Skills[0] {
			return pairs[i].Skills[0] < pairs[j].Skills[0]
		}
		return pairs[i].Skills[1] < pairs[j].Skills[1]
	})

	if len(pairs) > MaxPairs {
		pairs = pairs[:MaxPairs]
	}
	return pairs
}
