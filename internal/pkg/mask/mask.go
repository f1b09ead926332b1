package mask

import "strings"

// Email keeps the first and last rune of the local part and the full
// domain: "budi.s@example.com" -> "b****s@example.com".
func Email(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return mask(email)
	}
	return mask(email[:at]) + email[at:]
}

// Phone keeps the last four digits: "+628123456789" -> "********6789".
func Phone(phone string) string {
	if phone == "" {
		return ""
	}
	const visible = 4
	if len(phone) <= visible {
		return strings.Repeat("*", len(phone))
	}
	return strings.Repeat("*", len(phone)-visible) + phone[len(phone)-visible:]
}

func mask(s string) string {
	runes := []rune(s)
	if len(runes) <= 2 {
		return strings.Repeat("*", len(runes))
	}
	return string(runes[0]) + strings.Repeat("*", len(runes)-2) + string(runes[len(runes)-1])
}
