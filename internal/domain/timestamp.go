package domain

import (
	"bytes"
	"fmt"
	"time"
)

// localDateTimeLayout is the zone-less form the order service serializes
const localDateTimeLayout = "2006-01-02T15:04:05.999999999"

// Timestamp is a time that decodes from either RFC 3339 or a zone-less
// local date-time. Zone-less values are interpreted as UTC.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("timestamp must be a JSON string, got %s", string(data))
	}
	s := string(data[1 : len(data)-1])
	if s == "" {
		return nil
	}

	if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
		t.Time = parsed
		return nil
	}
	parsed, err := time.ParseInLocation(localDateTimeLayout, s, time.UTC)
	if err != nil {
		return fmt.Errorf("failed to parse timestamp %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}
