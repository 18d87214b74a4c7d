// Package ingest provides the one-shot JSON-Lines bulk loaders that seed
// the event store.
package ingest

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Timestamp layouts accepted for string values, tried in order. The raw
// fixtures mostly carry epoch milliseconds; exports from other systems
// use ISO-8601, sometimes without an offset.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseTimestamp converts a raw JSON timestamp value into a UTC time.
// JSON numbers are Unix epoch milliseconds; strings are ISO-8601 (a
// trailing Z or numeric offset is honored, naive values are taken as
// UTC). Anything else is an error.
func ParseTimestamp(raw json.RawMessage) (time.Time, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return time.Time{}, fmt.Errorf("'timestamp' field is required")
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return time.Time{}, fmt.Errorf("invalid timestamp string: %w", err)
		}
		return parseTimestampString(s)
	}

	ms, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse timestamp; expected ISO-8601 or epoch ms, got %s", raw)
	}
	return time.UnixMilli(int64(ms)).UTC(), nil
}

func parseTimestampString(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse timestamp string %q; expected ISO-8601 or epoch ms", s)
}
