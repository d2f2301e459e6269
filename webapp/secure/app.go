// Package secure is the hardened revision of the intranet demo: session
// based login and an admin-gated flag download. It supersedes the
// baseline revision used as the attack target in the training scenario.
package secure

import (
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/lmoreau/intranet/auth"
	authapi "github.com/lmoreau/intranet/auth/api"
	"github.com/lmoreau/intranet/auth/session"
	"github.com/lmoreau/intranet/internal/logutil"
	"github.com/lmoreau/intranet/vault"
)

type (
	app struct {
		users    *auth.Store
		sessions *session.Store
		codec    *session.Codec
		realm    *authapi.Realm
		flags    *vault.V
	}
)

func AsHandler(users *auth.Store, sessions *session.Store, codec *session.Codec, flags *vault.V) http.Handler {
	a := &app{
		users:    users,
		sessions: sessions,
		codec:    codec,
		realm:    authapi.NewRealm(users, sessions, codec),
		flags:    flags,
	}
	router := httprouter.New()
	router.HandlerFunc("GET", "/", a.home)
	router.HandlerFunc("GET", "/login", a.loginForm)
	router.HandlerFunc("POST", "/login", a.login)
	router.HandlerFunc("POST", "/logout", a.logout)
	router.Handler("GET", "/flag", a.realm.RequireAdmin(http.HandlerFunc(a.flag)))
	router.Handler("GET", "/api/whoami", a.realm.RequireLogin(http.HandlerFunc(a.whoami)))
	return router
}

func (a *app) home(w http.ResponseWriter, r *http.Request) {
	identity := "none"
	if rec, ok := a.realm.Current(r); ok {
		if user, err := a.users.FindByID(rec.UserID); err == nil {
			identity = user.Username
		}
	}
	writeHTML(w, http.StatusOK, fmt.Sprintf(`<h1>Intranet RH - Demo</h1>
<p>Logged in as: %v</p>
<p><a href="/login">/login</a> | <a href="/flag">/flag</a> (protected)</p>
<form method="POST" action="/logout" style="display:inline"><button>Logout</button></form>`,
		html.EscapeString(identity)))
}

func (a *app) loginForm(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, http.StatusOK, `<h1>Login</h1>
<form method="POST" action="/login">
<label>username: <input name="username" /></label><br/>
<label>password: <input type="password" name="password" /></label><br/>
<button>Log in</button>
</form>`)
}

func (a *app) login(w http.ResponseWriter, r *http.Request) {
	log := logutil.GetOrDefault(r.Context())
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		http.Error(w, "username & password required", http.StatusBadRequest)
		return
	}
	user, err := a.users.FindByUsername(username)
	if err != nil {
		// same answer as the bad-password branch, a distinct one would
		// tell an attacker which usernames exist
		rejectLogin(w)
		return
	}
	ok, err := auth.VerifyPassword(password, user.PasswordDigest)
	if err != nil {
		log.Error().Err(err).Msg("unable to verify password")
		http.Error(w, "Session error", http.StatusInternalServerError)
		return
	}
	if !ok {
		rejectLogin(w)
		return
	}
	// a fresh id on every login, so a pre-login cookie can never turn
	// into an authenticated session (fixation)
	if old := a.codec.SessionID(r); old != "" {
		a.sessions.Destroy(old)
	}
	rec, err := a.sessions.Create(user.ID, user.Admin)
	if err != nil {
		log.Error().Err(err).Msg("unable to create session")
		http.Error(w, "Session error", http.StatusInternalServerError)
		return
	}
	a.codec.SetCookie(w, rec)
	writeHTML(w, http.StatusOK, fmt.Sprintf(`<p>Logged in as <strong>%v</strong>. <a href="/">Home</a></p>`,
		html.EscapeString(user.Username)))
}

func (a *app) logout(w http.ResponseWriter, r *http.Request) {
	if id := a.codec.SessionID(r); id != "" {
		a.sessions.Destroy(id)
	}
	a.codec.ClearCookie(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (a *app) flag(w http.ResponseWriter, r *http.Request) {
	a.flags.ServeFlag(w, r)
}

func (a *app) whoami(w http.ResponseWriter, r *http.Request) {
	rec, _ := a.realm.Current(r)
	user, err := a.users.FindByID(rec.UserID)
	if err != nil {
		authapi.Unauthorized(w)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"username": user.Username,
		"admin":    user.Admin,
	})
}

func rejectLogin(w http.ResponseWriter) {
	http.Error(w, "Invalid credentials", http.StatusUnauthorized)
}

func writeHTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	io.WriteString(w, body)
}
