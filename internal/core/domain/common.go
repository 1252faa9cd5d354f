package domain

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// timestampLayouts lists the layouts accepted when decoding a stored timestamp.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Timestamp is a point in time that decodes leniently: a missing, null or
// unparseable value becomes the zero Timestamp instead of failing the whole document.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t, dropping the monotonic clock reading.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.Round(0)}
}

// MarshalJSON renders the zero value as null.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

// UnmarshalJSON never fails on a malformed value.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	t.Time = time.Time{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	raw = strings.TrimSpace(raw)
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return nil
}

// AuditFields holds the creation and modification stamps shared by sales and purchases.
type AuditFields struct {
	CreatedAt Timestamp  `json:"created_at"`
	UpdatedAt *Timestamp `json:"updated_at,omitempty"`
}

// Touch stamps UpdatedAt with now.
func (a *AuditFields) Touch(now time.Time) {
	ts := NewTimestamp(now)
	a.UpdatedAt = &ts
}
