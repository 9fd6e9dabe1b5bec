package sanitizer

import "testing"

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"spaces only", "   ", ""},
		{"leading and trailing", "  Safari Deluxe  ", "Safari Deluxe"},
		{"interior runs collapse", "Masai   Mara\t\tCamp", "Masai Mara Camp"},
		{"already clean", "Kenya", "Kenya"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndNormalize(tt.input); got != tt.expected {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "Alice@X.Com", "alice@x.com"},
		{"trims", "  alice@x.com ", "alice@x.com"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeEmail(tt.input); got != tt.expected {
				t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeContact(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"digits pass through", "0721234567", "0721234567"},
		{"separators stripped", "072 123-4567", "0721234567"},
		{"leading plus kept", "+254721234567", "+254721234567"},
		{"interior plus dropped", "07+21", "0721"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeContact(tt.input); got != tt.expected {
				t.Errorf("NormalizeContact(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
