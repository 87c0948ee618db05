package auth

import "golang.org/x/crypto/bcrypt"

// CredentialVerifier checks a presented password against the stored
// secret. The seed roster stores plain text, so PlainVerifier is the
// default; BcryptVerifier is the drop-in for a hashed roster.
type CredentialVerifier interface {
	Verify(stored, presented string) bool
}

type PlainVerifier struct{}

func (PlainVerifier) Verify(stored, presented string) bool {
	return stored != "" && stored == presented
}

type BcryptVerifier struct{}

func (BcryptVerifier) Verify(stored, presented string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(presented)) == nil
}
