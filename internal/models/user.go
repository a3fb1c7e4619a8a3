package models

// User is a stored account record as it appears in the directory
// source. Email is the natural lookup key; records are immutable at
// runtime, so components outside the directory only ever see copies.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash,omitempty"`
}

// Redacted returns a copy of the user with the credential hash
// cleared. The cleared hash is omitted from JSON entirely, so redacted
// values never carry the field.
func (u User) Redacted() User {
	u.PasswordHash = ""
	return u
}
