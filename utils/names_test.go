package utils

import "testing"

func TestNameFromEmail(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"john.doe@example.com", "John Doe"},
		{"jane_smith@example.com", "Jane Smith"},
		{"single@example.com", "Single"},
		{"a.b_c@example.com", "A B C"},
		{"no-at-sign", "No-at-sign"},
		{"double..dot@example.com", "Double  Dot"},
	}
	for _, tt := range tests {
		if got := NameFromEmail(tt.email); got != tt.want {
			t.Errorf("NameFromEmail(%q) = %q, want %q", tt.email, got, tt.want)
		}
	}
}
