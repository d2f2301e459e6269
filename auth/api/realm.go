// Package api gates http handlers behind the session store.
package api

import (
	"io"
	"net/http"

	"github.com/lmoreau/intranet/auth"
	"github.com/lmoreau/intranet/auth/session"
	"github.com/lmoreau/intranet/internal/logutil"
)

type (
	Realm struct {
		users    *auth.Store
		sessions *session.Store
		codec    *session.Codec
	}
)

func NewRealm(users *auth.Store, sessions *session.Store, codec *session.Codec) *Realm {
	return &Realm{
		users:    users,
		sessions: sessions,
		codec:    codec,
	}
}

// Current resolves the one session presented by the request cookie, if any.
func (rl *Realm) Current(r *http.Request) (session.Record, bool) {
	rec, err := rl.sessions.Resolve(rl.codec.SessionID(r))
	if err != nil {
		return session.Record{}, false
	}
	return rec, true
}

// RequireLogin halts with 401 unless the request carries a live session.
func (rl *Realm) RequireLogin(sensitive http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := rl.Current(r); !ok {
			Unauthorized(w)
			return
		}
		sensitive.ServeHTTP(w, r)
	})
}

// RequireAdmin halts with 401 when there is no session and 403 when the
// session's user is not an administrator. The role is read from the live
// user record rather than the login-time snapshot, so a revoked admin
// loses access before the session expires.
func (rl *Realm) RequireAdmin(sensitive http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec, ok := rl.Current(r)
		if !ok {
			Unauthorized(w)
			return
		}
		user, err := rl.users.FindByID(rec.UserID)
		if err != nil {
			log := logutil.GetOrDefault(r.Context())
			log.Error().Err(err).Str("session.id", rec.ID).Msg("session references an unknown user")
			rl.sessions.Destroy(rec.ID)
			Unauthorized(w)
			return
		}
		if !user.Admin {
			Forbidden(w)
			return
		}
		sensitive.ServeHTTP(w, r)
	})
}

func Unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	io.WriteString(w, `<h1>401 - Auth required</h1><p>You must be logged in to access this page. <a href="/login">Log in</a></p>`)
}

func Forbidden(w http.ResponseWriter) {
	http.Error(w, "Access denied", http.StatusForbidden)
}
