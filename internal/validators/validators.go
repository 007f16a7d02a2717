package validators

import "regexp"

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Italian numbers, optional +39/0039 prefix.
	phoneRe = regexp.MustCompile(`^(\+39|0039|39)?[\s-]?([0-9]{2,4})[\s-]?([0-9]{6,8})$`)
)

func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

func IsValidPhone(phone string) bool {
	return phoneRe.MatchString(phone)
}
