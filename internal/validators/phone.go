package validators

import "strings"

// IsPhoneValid accepts E.164-ish numbers: optional leading +, then
// 7 to 15 digits. Login is phone-based, so this runs on registration.
func IsPhoneValid(phone string) bool {
	p := strings.TrimPrefix(phone, "+")
	if len(p) < 7 || len(p) > 15 {
		return false
	}
	for _, r := range p {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
