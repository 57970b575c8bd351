package utils

import "testing"

func TestNormalizePlate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"abc1234", "ABC1234"},
		{" ABC1234 ", "ABC1234"},
		{"ab 123 cd", "AB123CD"},
		{"ABC1234", "ABC1234"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizePlate(tt.in); got != tt.want {
			t.Errorf("NormalizePlate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
