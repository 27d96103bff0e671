package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// BackendLayout is the zone-less form the backend accepts for event times.
const BackendLayout = "2006-01-02T15:04:05"

var timestampLayouts = []string{
	time.RFC3339Nano,
	BackendLayout,
	"2006-01-02T15:04",
	"2006-01-02T15:04:05.999999999",
}

// Timestamp decodes both zone-less and RFC 3339 strings. Zone-less values are
// read in the local zone. The zero value encodes as null.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func ParseTimestamp(s string) (Timestamp, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return Timestamp{Time: t}, nil
		}
	}

	return Timestamp{}, fmt.Errorf("unsupported timestamp %q", s)
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*t = Timestamp{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	if s == "" {
		*t = Timestamp{}
		return nil
	}

	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(t.Format(BackendLayout))
}
