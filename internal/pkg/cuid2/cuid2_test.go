package cuid2

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestEncodeTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		seconds  int64
		expected string
	}{
		{"Zero timestamp", 0, "000000"},
		{"One second", 1, "000001"},
		{"62 seconds", 62, "000010"},
		{"One minute", 60, "00000y"},
		{"One hour", 3600, "0000w4"},
		{"One day", 86400, "000MTY"},
		{"Unix epoch test", 1704067200, "1rK5iq"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EncodeTimestamp(tt.seconds)
			if result != tt.expected {
				t.Errorf("EncodeTimestamp(%d) = %s, want %s", tt.seconds, result, tt.expected)
			}
		})
	}
}

func TestRandomString(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		s, err := randomString(24)
		if err != nil {
			t.Fatalf("randomString failed: %v", err)
		}
		if len(s) != 24 {
			t.Errorf("length = %d, want 24", len(s))
		}
		for _, c := range s {
			if !strings.ContainsRune(base62Alphabet, c) {
				t.Errorf("non-base62 character %c in %s", c, s)
			}
		}
		if seen[s] {
			t.Errorf("duplicate random string: %s", s)
		}
		seen[s] = true
	}
}

func TestNewImportIDFormat(t *testing.T) {
	id, err := NewImportID()
	if err != nil {
		t.Fatalf("NewImportID failed: %v", err)
	}

	matched, _ := regexp.MatchString(`^imp_[0-9A-Za-z]{24}$`, id)
	if !matched {
		t.Errorf("ID format doesn't match expected pattern: %s", id)
	}
}

func TestNewIsTimeSortable(t *testing.T) {
	earlier, err := newAt("imp", time.Unix(1704067200, 0))
	if err != nil {
		t.Fatal(err)
	}
	later, err := newAt("imp", time.Unix(1704067200+3600, 0))
	if err != nil {
		t.Fatal(err)
	}

	if earlier[4:10] >= later[4:10] {
		t.Errorf("Timestamps not sorted: %s >= %s", earlier[4:10], later[4:10])
	}
	if !strings.HasPrefix(earlier, "imp_1rK5iq") {
		t.Errorf("unexpected timestamp segment: %s", earlier)
	}
}

func TestNewUniqueness(t *testing.T) {
	ids := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		id, err := New("imp")
		if err != nil {
			t.Fatal(err)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}
}
