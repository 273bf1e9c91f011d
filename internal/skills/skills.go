// Package skills normalizes free-text vacancy skill mentions into canonical
// names, classifies them into technical, soft and language-proficiency
// categories and computes pairwise co-occurrence statistics across vacancies.
package skills

// Report is the full skills section of the analysis output.
type Report struct {
	Technical []Bucket `json:"technical"`
	Soft      []Bucket `json:"soft"`
	Languages []Bucket `json:"languages"`

	TotalMentions    int `json:"total_mentions"`
	UniqueRaw        int `json:"unique_raw"`
	UniqueNormalized int `json:"unique_normalized"`

	Combinations []Pair `json:"combinations"`
}

// Analyze runs the whole pipeline over per-vacancy raw skill lists: every
// mention is classified and normalized, grouped into canonical buckets per
// category, and technical skills are counted pairwise per vacancy.
func Analyze(skillLists [][]string, normalizer *Normalizer) *Report {
	var mentions []Mention
	for _, rawSkills := range skillLists {
		for _, raw := range rawSkills {
			mentions = append(mentions, Mention{Raw: raw, Category: Classify(raw)})
		}
	}

	agg := Aggregate(mentions, normalizer)

	return &Report{
		Technical:        agg.Technical,
		Soft:             agg.Soft,
		Languages:        agg.Languages,
		TotalMentions:    agg.TotalMentions,
		UniqueRaw:        agg.UniqueRaw,
		UniqueNormalized: agg.UniqueNormalized,
		Combinations:     CoOccurrences(skillLists, normalizer),
	}
}
