package vacancy

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// LoadFile reads a vacancy collection from an exported JSON file. Items are
// decoded leniently: numeric ids become strings, missing or null skill lists
// become empty, unknown fields are ignored.
func LoadFile(path string) (*Vacancies, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var raw struct {
		Vacancies []any `json:"vacancies"`
	}
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	items, err := decodeItems(raw.Vacancies)
	if err != nil {
		return nil, fmt.Errorf("decoding vacancies from %s: %w", path, err)
	}

	return &Vacancies{Items: items}, nil
}

func decodeItems(items []any) ([]*Vacancy, error) {
	var vacancies []*Vacancy

	cfg := &mapstructure.DecoderConfig{
		Result:           &vacancies,
		TagName:          "json",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(items); err != nil {
		return nil, err
	}

	if vacancies == nil {
		vacancies = []*Vacancy{}
	}
	return vacancies, nil
}

// SaveFile writes the collection back as indented JSON.
func (v *Vacancies) SaveFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
