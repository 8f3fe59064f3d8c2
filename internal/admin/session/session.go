// Package session issues and verifies the opaque admin session token. The
// token is the admin email plus an expiry timestamp, sealed with AES-GCM
// under the configured key, and travels in an HTTP-only cookie.
package session

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const CookieName = "admin_session"

type Manager struct {
	key []byte
	ttl time.Duration

	// now is injectable for expiry tests.
	now func() time.Time
}

func NewManager(encodedKey string, ttl time.Duration) (*Manager, error) {
	key, err := base64.StdEncoding.DecodeString(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("session key is not valid base64: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("session key must be 32 bytes, got %d", len(key))
	}

	return &Manager{
		key: key,
		ttl: ttl,
		now: time.Now,
	}, nil
}

// Issue seals email and expiry into an opaque token.
func (m *Manager) Issue(email string) (string, error) {
	expiresAt := m.now().Add(m.ttl).Unix()
	plaintext := []byte(fmt.Sprintf("%s:%d", email, expiresAt))

	block, err := aes.NewCipher(m.key)
	if err != nil {
		return "", err
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aesgcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ct := aesgcm.Seal(nonce, nonce, plaintext, nil)
	return base64.RawURLEncoding.EncodeToString(ct), nil
}

// Verify opens the token and returns the embedded email. Tampered,
// malformed, or expired tokens all fail the same way.
func (m *Manager) Verify(token string) (string, error) {
	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("invalid token encoding")
	}

	block, err := aes.NewCipher(m.key)
	if err != nil {
		return "", err
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonceSize := aesgcm.NonceSize()
	if len(data) < nonceSize {
		return "", fmt.Errorf("invalid token length")
	}
	nonce := data[:nonceSize]
	ciphertext := data[nonceSize:]

	pt, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("invalid token")
	}

	parts := strings.SplitN(string(pt), ":", 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid token format")
	}

	expiresAt, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "", fmt.Errorf("invalid token expiry")
	}
	if m.now().Unix() >= expiresAt {
		return "", fmt.Errorf("token expired")
	}

	return parts[0], nil
}

// IsAdmin reports whether the request carries a valid, unexpired admin
// session cookie. Any failure means not admin.
func (m *Manager) IsAdmin(r *http.Request) bool {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return false
	}
	_, err = m.Verify(cookie.Value)
	return err == nil
}

// SetCookie attaches the session cookie to the response.
func (m *Manager) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie.
func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
