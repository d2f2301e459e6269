package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func issue(t *testing.T, c *Codec, rec Record) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	c.SetCookie(w, rec)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestCookieRoundTrip(t *testing.T) {
	c := NewCodec("test-secret", false)
	rec := Record{ID: "abc123", ExpiresAt: time.Now().Add(TTL)}
	cookie := issue(t, c, rec)

	require.Equal(t, CookieName, cookie.Name)
	require.True(t, cookie.HttpOnly)
	require.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	require.False(t, cookie.Secure)

	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(cookie)
	require.Equal(t, "abc123", c.SessionID(r))
}

func TestCookieSecureInProd(t *testing.T) {
	c := NewCodec("test-secret", true)
	cookie := issue(t, c, Record{ID: "abc123", ExpiresAt: time.Now().Add(TTL)})
	require.True(t, cookie.Secure)
}

func TestTamperedCookieIsRejected(t *testing.T) {
	c := NewCodec("test-secret", false)
	cookie := issue(t, c, Record{ID: "abc123", ExpiresAt: time.Now().Add(TTL)})

	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "evil" + cookie.Value})
	require.Empty(t, c.SessionID(r))

	r = httptest.NewRequest("GET", "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "unsigned-value"})
	require.Empty(t, c.SessionID(r))

	// signed with a different secret
	other := NewCodec("other-secret", false)
	foreign := issue(t, other, Record{ID: "abc123", ExpiresAt: time.Now().Add(TTL)})
	r = httptest.NewRequest("GET", "/", nil)
	r.AddCookie(foreign)
	require.Empty(t, c.SessionID(r))
}

func TestMissingCookie(t *testing.T) {
	c := NewCodec("test-secret", false)
	require.Empty(t, c.SessionID(httptest.NewRequest("GET", "/", nil)))
}

func TestClearCookie(t *testing.T) {
	c := NewCodec("test-secret", false)
	w := httptest.NewRecorder()
	c.ClearCookie(w)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Empty(t, cookies[0].Value)
	require.Less(t, cookies[0].MaxAge, 0)
}
