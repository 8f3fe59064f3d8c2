package sanitizer

import "testing"

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ana maria", "Ana Maria"},
		{"  ana   maria  ", "Ana Maria"},
		{"ANA", "Ana"},
		{"ana-maria popescu", "Ana-maria Popescu"},
		{"", ""},
		{"   ", ""},
		{"ștefan", "Ștefan"},
	}

	for _, tt := range tests {
		if got := SanitizeName(tt.input); got != tt.want {
			t.Errorf("SanitizeName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSanitizeName_Idempotent(t *testing.T) {
	inputs := []string{"  ana   maria  ", "ION", "ștefan cel mare"}
	for _, in := range inputs {
		once := SanitizeName(in)
		twice := SanitizeName(once)
		if once != twice {
			t.Errorf("SanitizeName not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestSanitizePhone(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"+40 721 000 000", "+40721000000"},
		{"0721-000-000", "0721000000"},
		{"(0721) 000 000", "0721000000"},
		{"+40+721", "+40721"},
		{"", ""},
		{"abc", ""},
	}

	for _, tt := range tests {
		if got := SanitizePhone(tt.input); got != tt.want {
			t.Errorf("SanitizePhone(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSanitizeToken(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{" masina1 ", "masina1"},
		{"2024 -01- 10", "2024-01-10"},
		{"09: 00", "09:00"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := SanitizeToken(tt.input); got != tt.want {
			t.Errorf("SanitizeToken(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
