package record

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestampJSONRoundTrip(t *testing.T) {
	now := Timestamp{Time: time.Date(2026, time.August, 31, 14, 30, 5, 0, time.UTC)}

	data, err := json.Marshal(&now)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2026-08-31T14:30:05Z"` {
		t.Fatalf("unexpected serialized form: %s", data)
	}

	var back Timestamp
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(now.Time) {
		t.Fatalf("round-trip changed the time: %v vs %v", back, now)
	}
}

func TestTimestampZeroMarshalsEmpty(t *testing.T) {
	var zero Timestamp
	data, err := json.Marshal(&zero)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `""` {
		t.Fatalf("zero timestamp should serialize empty, got %s", data)
	}

	var back Timestamp
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.IsZero() {
		t.Fatalf("empty string should hydrate to the zero time")
	}
}

func TestSameDayIgnoresTimeOfDay(t *testing.T) {
	morning := Timestamp{Time: time.Date(2026, time.August, 31, 1, 0, 0, 0, time.Local)}
	evening := time.Date(2026, time.August, 31, 23, 59, 0, 0, time.Local)
	if !morning.SameDay(evening) {
		t.Fatalf("same calendar day not recognized")
	}
	if morning.SameDay(evening.AddDate(0, 0, 1)) {
		t.Fatalf("different days matched")
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("duplicate id after %d generations: %s", i, id)
		}
		seen[id] = true
	}
}
