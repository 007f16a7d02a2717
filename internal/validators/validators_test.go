package validators

import "testing"

func TestIsValidEmail(t *testing.T) {
	valid := []string{"maria@example.com", "anna.bianchi@salone.it", "a@b.co"}
	invalid := []string{"", "maria", "maria@", "@example.com", "maria @example.com", "maria@example"}

	for _, s := range valid {
		if !IsValidEmail(s) {
			t.Errorf("IsValidEmail(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidEmail(s) {
			t.Errorf("IsValidEmail(%q) = true, want false", s)
		}
	}
}

func TestIsValidPhone(t *testing.T) {
	valid := []string{"3331234567", "+39 333 1234567", "0039 333 1234567", "333-1234567", "02 12345678"}
	invalid := []string{"", "12", "abcdefghij", "+1 555 0100 9999 11"}

	for _, s := range valid {
		if !IsValidPhone(s) {
			t.Errorf("IsValidPhone(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidPhone(s) {
			t.Errorf("IsValidPhone(%q) = true, want false", s)
		}
	}
}
