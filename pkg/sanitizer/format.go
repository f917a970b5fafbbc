package sanitizer

import (
	"net/url"
	"strings"
	"unicode"
)

// NormalizeEmail trims and lowercases an address and collapses repeated
// dots of its local part. Input without exactly one '@' is only trimmed and
// lowercased.
func NormalizeEmail(email string) string {
	email = TrimToLower(email)

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	var b strings.Builder
	b.Grow(len(local))
	var prevDot bool
	for _, r := range local {
		if r == '.' && prevDot {
			continue
		}
		prevDot = r == '.'
		b.WriteRune(r)
	}
	return strings.Trim(b.String(), ".") + "@" + domain
}

// NormalizePhone strips formatting characters, keeping digits and a leading
// '+': "+1 (555) 123-4567" becomes "+15551234567".
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)

	var b strings.Builder
	b.Grow(len(phone))
	if strings.HasPrefix(phone, "+") {
		b.WriteByte('+')
	}
	for _, r := range phone {
		if r <= unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 1 && strings.HasPrefix(phone, "+") {
		return ""
	}
	return b.String()
}

// NormalizeURL trims a URL, lowercases its scheme and host and drops a bare
// trailing slash. Unparsable input is returned trimmed.
func NormalizeURL(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	if u.Path == "/" {
		u.Path = ""
	}
	return u.String()
}
