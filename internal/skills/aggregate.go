package skills

import (
	"encoding/json"
	"sort"
	"strings"
)

// Mention is one raw skill string from one vacancy together with its
// category. The same text may appear many times across vacancies.
type Mention struct {
	Raw      string
	Category Category
}

// Variant is a raw spelling contributing to a canonical bucket.
type Variant struct {
	Raw   string
	Count int
}

// MarshalJSON renders the variant as a [raw, count] pair.
func (v Variant) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{v.Raw, v.Count})
}

// Bucket is a canonical skill with its total occurrence count and the raw
// variants it was assembled from, most frequent variant first.
type Bucket struct {
	Name       string    `json:"name"`
	TotalCount int       `json:"total_count"`
	Variants   []Variant `json:"variants"`
}

// Aggregation groups canonical skill buckets by category, most frequent
// bucket first, plus collection-wide scalars.
type Aggregation struct {
	Technical []Bucket `json:"technical"`
	Soft      []Bucket `json:"soft"`
	Languages []Bucket `json:"languages"`

	// TotalMentions counts every raw mention, UniqueRaw the distinct raw
	// strings and UniqueNormalized the distinct canonical names, all three
	// across every category.
	TotalMentions    int `json:"total_mentions"`
	UniqueRaw        int `json:"unique_raw"`
	UniqueNormalized int `json:"unique_normalized"`
}

// Aggregate groups raw mentions by canonical form within each category.
// Whitespace-only mentions are counted in the scalars but excluded from the
// buckets so that no empty-named canonical skill reaches the output.
func Aggregate(mentions []Mention, normalizer *Normalizer) *Aggregation {
	rawCounts := make(map[string]int)
	categories := make(map[string]Category)
	for _, m := range mentions {
		rawCounts[m.Raw]++
		if _, ok := categories[m.Raw]; !ok {
			categories[m.Raw] = m.Category
		}
	}

	buckets := map[Category]map[string]*Bucket{
		CategoryTechnical: {},
		CategorySoft:      {},
		CategoryLanguage:  {},
	}
	canonicals := make(map[string]struct{})

	for raw, count := range rawCounts {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		name := normalizer.Normalize(raw)
		canonicals[name] = struct{}{}

		byName := buckets[categories[raw]]
		bucket, ok := byName[name]
		if !ok {
			bucket = &Bucket{Name: name}
			byName[name] = bucket
		}
		bucket.TotalCount += count
		bucket.Variants = append(bucket.Variants, Variant{Raw: raw, Count: count})
	}

	return &Aggregation{
		Technical:        sortBuckets(buckets[CategoryTechnical]),
		Soft:             sortBuckets(buckets[CategorySoft]),
		Languages:        sortBuckets(buckets[CategoryLanguage]),
		TotalMentions:    len(mentions),
		UniqueRaw:        len(rawCounts),
		UniqueNormalized: len(canonicals),
	}
}

func sortBuckets(byName map[string]*Bucket) []Bucket {
	ordered := make([]Bucket, 0, len(byName))
	for _, bucket := range byName {
		sort.Slice(bucket.Variants, func(i, j int) bool {
			a, b := bucket.Variants[i], bucket.Variants[j]
			if a.Count != b.Count {
				return a.Count > b.Count
			}
			return a.Raw < b.Raw
		})
		ordered = append(ordered, *bucket)
	}

	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].TotalCount != ordered[j].TotalCount {
			return ordered[i].TotalCount > ordered[j].TotalCount
		}
		return ordered[i].Name < ordered[j].Name
	})

	return ordered
}
