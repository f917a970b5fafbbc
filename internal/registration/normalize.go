package registration

import "github.com/dmitrymomot/validationkit/pkg/sanitizer"

var (
	cleanText     = sanitizer.Compose(sanitizer.NFC, sanitizer.RemoveControlChars, sanitizer.Trim)
	cleanPassword = sanitizer.Compose(sanitizer.NFC, sanitizer.RemoveControlChars)
	cleanMail     = sanitizer.Compose(cleanText, sanitizer.NormalizeEmail)
	cleanWebsite  = sanitizer.Optional(sanitizer.Compose(cleanText, sanitizer.NormalizeURL))
	cleanPhone    = sanitizer.Optional(sanitizer.Compose(cleanText, sanitizer.NormalizePhone))
)

// Normalize returns a copy of r with input noise removed: surrounding
// whitespace, control characters, letter case of mail addresses and hosts,
// phone formatting. Blank optional fields become nil. Passwords are only
// NFC composed so that what the user typed is what gets hashed.
func (r Registration) Normalize() Registration {
	return Registration{
		Username:             cleanText(r.Username),
		Password:             cleanPassword(r.Password),
		PasswordConfirmation: cleanPassword(r.PasswordConfirmation),
		Mail:                 cleanMail(r.Mail),
		Website:              cleanWebsite(r.Website),
		Phone:                cleanPhone(r.Phone),
	}
}

// Normalize cleans credentials the way Registration.Normalize does.
func (c Credentials) Normalize() Credentials {
	return Credentials{
		Username: cleanText(c.Username),
		Password: cleanPassword(c.Password),
	}
}
