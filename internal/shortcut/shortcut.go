// Package shortcut holds the ranked collection of keyboard shortcuts and its
// JSON persistence.
package shortcut

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Shortcut is one key combination with its description and how often it was looked up.
// Identity is positional: a shortcut is addressed by its index in a List.
type Shortcut struct {
	LookupCount uint   `json:"lookup_count"`
	KeyCombo    string `json:"key_combo"`
	Description string `json:"description"`
}

// New creates a shortcut that has never been looked up.
func New(keyCombo, description string) Shortcut {
	return Shortcut{KeyCombo: keyCombo, Description: description}
}

func (s Shortcut) String() string {
	return fmt.Sprintf("%s %s (%d)", s.KeyCombo, s.Description, s.LookupCount)
}

// UnmarshalJSON requires all three fields to be present.
func (s *Shortcut) UnmarshalJSON(data []byte) error {
	var raw struct {
		LookupCount *uint   `json:"lookup_count"`
		KeyCombo    *string `json:"key_combo"`
		Description *string `json:"description"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch {
	case raw.LookupCount == nil:
		return errors.New("missing field lookup_count")
	case raw.KeyCombo == nil:
		return errors.New("missing field key_combo")
	case raw.Description == nil:
		return errors.New("missing field description")
	}
	*s = Shortcut{
		LookupCount: *raw.LookupCount,
		KeyCombo:    *raw.KeyCombo,
		Description: *raw.Description,
	}
	return nil
}
