package models

import (
	"encoding/json"
	"time"
)

// SavedItem is one record in a user's saved list. Besides the generated id
// and timestamp it carries arbitrary caller-supplied fields, preserved as-is
// through persistence.
type SavedItem struct {
	ID        string
	CreatedAt time.Time
	Fields    map[string]any
}

// MarshalJSON flattens Fields into the top-level object alongside id and
// createdAt, matching the persisted wire format.
func (s SavedItem) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(s.Fields)+2)
	for k, v := range s.Fields {
		m[k] = v
	}
	m["id"] = s.ID
	m["createdAt"] = s.CreatedAt.UTC().Format(time.RFC3339Nano)
	return json.Marshal(m)
}

// UnmarshalJSON splits the flattened object back into id, createdAt and the
// remaining caller fields. An unparsable createdAt is left as the zero time
// rather than failing the whole list.
func (s *SavedItem) UnmarshalJSON(b []byte) error {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}

	if id, ok := m["id"].(string); ok {
		s.ID = id
	}
	if raw, ok := m["createdAt"].(string); ok {
		if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			s.CreatedAt = t
		}
	}
	delete(m, "id")
	delete(m, "createdAt")
	s.Fields = m
	return nil
}
