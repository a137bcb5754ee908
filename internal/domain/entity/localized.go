// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "encoding/json"

// LocalizedText is a bilingual display string. Legacy documents sometimes
// store a plain string instead of the {ar, en} object, so unmarshalling
// accepts both shapes and normalizes to the record form.
type LocalizedText struct {
	AR string `json:"ar,omitempty" firestore:"ar,omitempty"`
	EN string `json:"en,omitempty" firestore:"en,omitempty"`
}

// Display resolves the text for rendering. Fallback order: Arabic,
// then English, then the supplied default.
func (t LocalizedText) Display(fallback string) string {
	if t.AR != "" {
		return t.AR
	}
	if t.EN != "" {
		return t.EN
	}

	return fallback
}

// IsZero reports whether neither language is set.
func (t LocalizedText) IsZero() bool {
	return t.AR == "" && t.EN == ""
}

// UnmarshalJSON accepts either a bare string (stored in both languages' absence
// as the Arabic value, since the catalog is Arabic-first) or the full record.
func (t *LocalizedText) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		t.AR = plain
		t.EN = ""

		return nil
	}

	type alias LocalizedText
	var record alias
	if err := json.Unmarshal(data, &record); err != nil {
		return err
	}
	*t = LocalizedText(record)

	return nil
}
