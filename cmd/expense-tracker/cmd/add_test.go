package cmd

import (
	"testing"
	"time"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected uint
		wantErr  bool
	}{
		{"simple", "2", 2, false},
		{"zero", "0", 0, false},
		{"negative", "-1", 0, true},
		{"fractional", "1.5", 0, true},
		{"not a number", "two", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseQuantity(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseQuantity(%q) succeeded, expected an error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseQuantity(%q) error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("parseQuantity(%q) = %d, expected %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		wantErr  bool
	}{
		{"decimal", "1.75", 1.75, false},
		{"integer", "2", 2, false},
		{"negative accepted", "-0.50", -0.50, false},
		{"not a number", "free", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePrice(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parsePrice(%q) succeeded, expected an error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parsePrice(%q) error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("parsePrice(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestAddArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"without date", []string{"Coffee", "2", "1.75"}, false},
		{"with date", []string{"Coffee", "2", "1.75", "2024-01-05"}, false},
		{"too few", []string{"Coffee", "2"}, true},
		{"too many", []string{"Coffee", "2", "1.75", "2024-01-05", "extra"}, true},
		{"bad quantity", []string{"Coffee", "two", "1.75"}, true},
		{"bad price", []string{"Coffee", "2", "cheap"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := addArgs(addCmd, tt.args)
			if tt.wantErr && err == nil {
				t.Errorf("addArgs(%v) succeeded, expected an error", tt.args)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("addArgs(%v) error: %v", tt.args, err)
			}
		})
	}
}

func TestToday(t *testing.T) {
	got := today()

	parsed, err := time.ParseInLocation("2006-01-02", got, time.Local)
	if err != nil {
		t.Fatalf("today() = %q, not in YYYY-MM-DD format: %v", got, err)
	}

	now := time.Now()
	if parsed.Year() != now.Year() || parsed.Month() != now.Month() || parsed.Day() != now.Day() {
		t.Errorf("today() = %q, expected the current local date", got)
	}
}
