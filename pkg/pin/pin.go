// Package pin hashes and verifies the 4-digit booking PINs and the admin
// password. Reservations created before hashing was introduced store the PIN
// in plaintext; those legacy credentials are recognized by their fixed
// 4-character length and compared directly instead of through bcrypt.
package pin

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Length is the fixed PIN length. A bcrypt hash always encodes to 60
// characters, so length alone distinguishes the two stored formats.
const Length = 4

// Hash derives a salted, slow hash suitable for credential storage.
func Hash(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether secret produced the given bcrypt credential.
func Verify(secret, credential string) bool {
	return bcrypt.CompareHashAndPassword([]byte(credential), []byte(secret)) == nil
}

// IsLegacyPlaintext reports whether a stored credential is an un-hashed
// legacy PIN.
func IsLegacyPlaintext(credential string) bool {
	return len(credential) == Length
}

// Matches applies the dual-format verification policy: legacy plaintext
// credentials are compared by equality, hashed ones through Verify. The
// format is decided here, once, so both code paths stay in one place.
func Matches(secret, credential string) bool {
	if IsLegacyPlaintext(credential) {
		return subtle.ConstantTimeCompare([]byte(secret), []byte(credential)) == 1
	}
	return Verify(secret, credential)
}
