package timeparse

import (
	"testing"
	"time"
)

func TestNormalize_ISO(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want time.Time
	}{
		{
			name: "naive datetime treated as UTC",
			in:   "2024-01-01T12:00:00",
			want: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			name: "offset-aware converted to UTC",
			in:   "2024-01-01T17:30:00+05:30",
			want: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			name: "zulu suffix",
			in:   "2024-01-01T12:00:00Z",
			want: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			name: "fractional seconds",
			in:   "2024-01-01T12:00:00.250",
			want: time.Date(2024, 1, 1, 12, 0, 0, 250_000_000, time.UTC),
		},
		{
			name: "space separator",
			in:   "2024-01-01 12:00:00",
			want: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Normalize(tc.in)
			if !ok {
				t.Fatalf("Normalize(%q) unusable, want %v", tc.in, tc.want)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("Normalize(%q) = %v, want %v", tc.in, got, tc.want)
			}
			if got.Location() != time.UTC {
				t.Fatalf("Normalize(%q) not in UTC: %v", tc.in, got.Location())
			}
		})
	}
}

func TestNormalize_EpochMillis(t *testing.T) {
	// 1704110400000 ms is 2024-01-01T12:00:00Z, same instant as the
	// canonical ISO case above.
	got, ok := Normalize("1704110400000")
	if !ok {
		t.Fatal("epoch millis reported unusable")
	}
	want := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNormalize_MillisExactToTheNanosecond(t *testing.T) {
	// Whole-millisecond inputs must not pick up float rounding noise.
	got, ok := Normalize("1704110400001")
	if !ok {
		t.Fatal("unusable")
	}
	want := time.Date(2024, 1, 1, 12, 0, 0, 1_000_000, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got.Nanosecond() != 1_000_000 {
		t.Fatalf("nanoseconds = %d, want exactly 1000000", got.Nanosecond())
	}
}

func TestNormalize_FractionalMillis(t *testing.T) {
	got, ok := Normalize("1704110400000.5")
	if !ok {
		t.Fatal("fractional millis reported unusable")
	}
	want := time.Date(2024, 1, 1, 12, 0, 0, 500_000, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNormalize_Unusable(t *testing.T) {
	for _, in := range []string{"", "   ", "not-a-time", "2024-13-99", "NaN", "+Inf"} {
		if got, ok := Normalize(in); ok {
			t.Errorf("Normalize(%q) = %v, want unusable", in, got)
		}
	}
}

func TestNormalize_ISOTriedBeforeMillis(t *testing.T) {
	// A full date-time must never be handed to the float parser.
	got, ok := Normalize("2024-01-01T00:00:00")
	if !ok {
		t.Fatal("unusable")
	}
	if got.Year() != 2024 {
		t.Fatalf("parsed as something other than a date: %v", got)
	}
}
