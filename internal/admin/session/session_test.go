package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Same shape as the default dev key: base64-encoded 32 bytes.
const testKey = "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA="

func TestIssueAndVerify(t *testing.T) {
	m, err := NewManager(testKey, time.Hour)
	require.NoError(t, err)

	token, err := m.Issue("admin@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", email)
}

func TestVerify_Expired(t *testing.T) {
	m, err := NewManager(testKey, time.Minute)
	require.NoError(t, err)

	issued := time.Now()
	m.now = func() time.Time { return issued }
	token, err := m.Issue("admin@example.com")
	require.NoError(t, err)

	m.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = m.Verify(token)
	assert.Error(t, err)
}

func TestVerify_Garbage(t *testing.T) {
	m, err := NewManager(testKey, time.Hour)
	require.NoError(t, err)

	for _, token := range []string{"", "not-a-token", "AAAA", "!!!!"} {
		_, err := m.Verify(token)
		assert.Error(t, err, "token %q should not verify", token)
	}
}

func TestVerify_WrongKey(t *testing.T) {
	m1, err := NewManager(testKey, time.Hour)
	require.NoError(t, err)
	m2, err := NewManager("lfQVRuulcL2iOhOJ2r8BYTweoSKwVAJnIF9U+AL+M60=", time.Hour)
	require.NoError(t, err)

	token, err := m1.Issue("admin@example.com")
	require.NoError(t, err)

	_, err = m2.Verify(token)
	assert.Error(t, err)
}

func TestNewManager_RejectsBadKeys(t *testing.T) {
	_, err := NewManager("not base64!", time.Hour)
	assert.Error(t, err)

	// Valid base64 but only 8 bytes.
	_, err = NewManager("AAAAAAAAAAA=", time.Hour)
	assert.Error(t, err)
}

func TestIsAdmin(t *testing.T) {
	m, err := NewManager(testKey, time.Hour)
	require.NoError(t, err)

	token, err := m.Issue("admin@example.com")
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, m.IsAdmin(r), "request without cookie")

	r.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	assert.True(t, m.IsAdmin(r), "request with valid cookie")

	r2 := httptest.NewRequest(http.MethodGet, "/", nil)
	r2.AddCookie(&http.Cookie{Name: CookieName, Value: "tampered"})
	assert.False(t, m.IsAdmin(r2), "request with invalid cookie")
}

func TestCookieRoundTrip(t *testing.T) {
	m, err := NewManager(testKey, time.Hour)
	require.NoError(t, err)

	token, err := m.Issue("admin@example.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	m.SetCookie(w, token)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, token, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	w2 := httptest.NewRecorder()
	m.ClearCookie(w2)
	cleared := w2.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, -1, cleared[0].MaxAge)
}
