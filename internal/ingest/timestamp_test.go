package ingest

import (
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr bool
	}{
		{
			name: "epoch milliseconds",
			raw:  "1700000000000",
			want: time.UnixMilli(1700000000000).UTC(),
		},
		{
			name: "epoch milliseconds as float",
			raw:  "1700000000000.0",
			want: time.UnixMilli(1700000000000).UTC(),
		},
		{
			name: "iso with Z suffix",
			raw:  `"2024-03-05T12:30:00Z"`,
			want: time.Date(2024, 3, 5, 12, 30, 0, 0, time.UTC),
		},
		{
			name: "iso with offset",
			raw:  `"2024-03-05T12:30:00+02:00"`,
			want: time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC),
		},
		{
			name: "iso with fractional seconds",
			raw:  `"2024-03-05T12:30:00.250Z"`,
			want: time.Date(2024, 3, 5, 12, 30, 0, 250000000, time.UTC),
		},
		{
			name: "naive datetime treated as UTC",
			raw:  `"2024-03-05T12:30:00"`,
			want: time.Date(2024, 3, 5, 12, 30, 0, 0, time.UTC),
		},
		{
			name: "naive datetime with space separator",
			raw:  `"2024-03-05 12:30:00"`,
			want: time.Date(2024, 3, 5, 12, 30, 0, 0, time.UTC),
		},
		{
			name: "date only",
			raw:  `"2024-03-05"`,
			want: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "missing value",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "null value",
			raw:     "null",
			wantErr: true,
		},
		{
			name:    "garbage string",
			raw:     `"not a timestamp"`,
			wantErr: true,
		},
		{
			name:    "boolean",
			raw:     "true",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(json.RawMessage(tt.raw))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if got.Location() != time.UTC {
				t.Errorf("expected UTC location, got %v", got.Location())
			}
		})
	}
}

// TestProperty_TimestampFormats checks that the two wire encodings of
// the same instant, epoch milliseconds and RFC3339, parse to equal
// times for any instant in a realistic range.
func TestProperty_TimestampFormats(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("epoch ms and RFC3339 agree", prop.ForAll(
		func(ms int64) bool {
			fromNumber, err := ParseTimestamp(json.RawMessage(strconv.FormatInt(ms, 10)))
			if err != nil {
				return false
			}

			iso := time.UnixMilli(ms).UTC().Format(time.RFC3339Nano)
			fromString, err := ParseTimestamp(json.RawMessage(strconv.Quote(iso)))
			if err != nil {
				return false
			}

			return fromNumber.Equal(fromString) && fromNumber.Location() == time.UTC
		},
		gen.Int64Range(0, 2000000000000), // 1970 through 2033
	))

	properties.Property("parsed epoch ms round-trips", prop.ForAll(
		func(ms int64) bool {
			parsed, err := ParseTimestamp(json.RawMessage(strconv.FormatInt(ms, 10)))
			if err != nil {
				return false
			}
			return parsed.UnixMilli() == ms
		},
		gen.Int64Range(0, 2000000000000),
	))

	properties.TestingRun(t)
}
