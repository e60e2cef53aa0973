// Package mask provides irreversible partial redaction of email addresses
// so that PII never reaches logs or API responses in raw form.
package mask

import "strings"

// InvalidEmail is returned for anything that does not look like an email.
const InvalidEmail = "[invalid-email]"

// Email redacts the local part of an email address. The first two characters
// survive when the local part is longer than two characters; otherwise only
// the first character does, followed by a single star. Input that does not
// split into two non-empty parts around a single @ yields InvalidEmail.
func Email(email string) string {
	if email == "" {
		return InvalidEmail
	}

	local, dom, ok := strings.Cut(email, "@")
	if !ok || local == "" || dom == "" || strings.Contains(dom, "@") {
		return InvalidEmail
	}

	if len(local) > 2 {
		return local[:2] + strings.Repeat("*", len(local)-2) + "@" + dom
	}
	return local[:1] + "*@" + dom
}
