package utils // package utils provides helper functions for token creation and hashing

import "golang.org/x/crypto/bcrypt" // bcrypt hashing for stored passwords

// HashPassword hashes a plain-text password with bcrypt at the given
// cost.  The resulting string embeds the salt and cost, so it can be
// verified later without storing anything else.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether the plain-text password matches the
// stored bcrypt hash.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
