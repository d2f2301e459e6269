package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"strings"
	"time"
)

const (
	CookieName = "sid"

	// DefaultSecret exists so the demo runs out of the box. Serving with it
	// triggers a startup warning, production deployments must override it.
	DefaultSecret = "change_me_for_demo"
)

type (
	// Codec writes and reads the sid cookie. The value is the session id
	// plus an HMAC over it, so a tampered lookup key is rejected before it
	// ever reaches the store.
	Codec struct {
		secret []byte
		secure bool
	}
)

func NewCodec(secret string, secure bool) *Codec {
	return &Codec{secret: []byte(secret), secure: secure}
}

func (c *Codec) sign(id string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(id))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func (c *Codec) SetCookie(w http.ResponseWriter, rec Record) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    rec.ID + "." + c.sign(rec.ID),
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  rec.ExpiresAt,
		MaxAge:   int(time.Until(rec.ExpiresAt) / time.Second),
	})
}

// ClearCookie instructs the client to discard its sid cookie.
func (c *Codec) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// SessionID extracts and authenticates the session id presented by the
// request. Missing, malformed and tampered cookies all come back empty.
func (c *Codec) SessionID(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	id, sig, ok := strings.Cut(cookie.Value, ".")
	if !ok {
		return ""
	}
	if subtle.ConstantTimeCompare([]byte(sig), []byte(c.sign(id))) != 1 {
		return ""
	}
	return id
}
