package utils

import (
	"reflect"
	"testing"
)

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{540, "09:00"},
		{615, "10:15"},
		{1439, "23:59"},
		{1440, "24:00"},
	}
	for _, test := range tests {
		if got := FormatMinutes(test.in); got != test.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", test.in, got, test.want)
		}
	}
}

func TestParseHHMM(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"09:00", 540, false},
		{"00:00", 0, false},
		{"24:00", 1440, false},
		{"23:59", 1439, false},
		{"25:00", 0, true},
		{"12:60", 0, true},
		{"noon", 0, true},
	}
	for _, test := range tests {
		got, err := ParseHHMM(test.in)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseHHMM(%q) error = %v, wantErr %v", test.in, err, test.wantErr)
			continue
		}
		if !test.wantErr && got != test.want {
			t.Errorf("ParseHHMM(%q) = %d, want %d", test.in, got, test.want)
		}
	}
}

func TestDatesBetween(t *testing.T) {
	got, err := DatesBetween("2026-08-30", "2026-09-02")
	if err != nil {
		t.Fatalf("DatesBetween: %v", err)
	}
	want := []string{"2026-08-30", "2026-08-31", "2026-09-01", "2026-09-02"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DatesBetween = %v, want %v", got, want)
	}

	empty, err := DatesBetween("2026-09-02", "2026-09-01")
	if err != nil {
		t.Fatalf("DatesBetween reversed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("reversed range = %v, want empty", empty)
	}
}

func TestNextDate(t *testing.T) {
	got, err := NextDate("2026-08-31")
	if err != nil {
		t.Fatalf("NextDate: %v", err)
	}
	if got != "2026-09-01" {
		t.Errorf("NextDate(2026-08-31) = %s, want 2026-09-01", got)
	}
}

func TestPrevDate(t *testing.T) {
	got, err := PrevDate("2026-09-01")
	if err != nil {
		t.Fatalf("PrevDate: %v", err)
	}
	if got != "2026-08-31" {
		t.Errorf("PrevDate(2026-09-01) = %s, want 2026-08-31", got)
	}
	if _, err := PrevDate("someday"); err == nil {
		t.Error("PrevDate with bad input succeeded, want error")
	}
}
