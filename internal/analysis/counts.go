package analysis

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Entry is one labelled count.
type Entry struct {
	Key   string
	Count int
}

// CountMap is an ordered set of labelled counts. It marshals to a JSON object
// whose keys keep the slice order, matching report consumers that expect
// most-frequent-first objects.
type CountMap []Entry

func (m CountMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		count, err := json.Marshal(entry.Count)
		if err != nil {
			return nil, err
		}
		buf.Write(count)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// PairList marshals the same data as a list of [key, count] pairs.
type PairList []Entry

func (l PairList) MarshalJSON() ([]byte, error) {
	pairs := make([][]any, 0, len(l))
	for _, entry := range l {
		pairs = append(pairs, []any{entry.Key, entry.Count})
	}
	return json.Marshal(pairs)
}

// sortedByCount returns the counter's entries ordered by descending count,
// ties broken by key.
func sortedByCount(counter map[string]int) []Entry {
	entries := make([]Entry, 0, len(counter))
	for key, count := range counter {
		entries = append(entries, Entry{Key: key, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Key < entries[j].Key
	})
	return entries
}
