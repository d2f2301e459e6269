// Package baseline is the deliberately insecure first revision of the
// intranet demo. It exists as the attack target of the training scenario
// and must stay naive: query-string token auth, an unprotected flag
// download and an unbounded directory search.
package baseline

import (
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/lmoreau/intranet/roster"
	"github.com/lmoreau/intranet/vault"
)

// the token lives in the source on purpose, finding it is the exercise
const adminToken = "admintoken123"

type (
	app struct {
		employees *roster.R
		flags     *vault.V
	}
)

func AsHandler(employees *roster.R, flags *vault.V) http.Handler {
	a := &app{
		employees: employees,
		flags:     flags,
	}
	router := httprouter.New()
	router.HandlerFunc("GET", "/", a.home)
	router.HandlerFunc("POST", "/search", a.search)
	router.HandlerFunc("GET", "/admin", a.admin)
	router.HandlerFunc("GET", "/flag", a.flag)
	return router
}

func (a *app) home(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, http.StatusOK, `<h1>Intranet RH - Demo</h1>
<p>Welcome to the demo intranet. Use the form to search for an employee.</p>
<form method="POST" action="/search">
<input name="q" placeholder="Name or part of a name" />
<button>Search</button>
</form>
<p>Useful endpoints: <code>/search</code> (POST), <code>/admin</code> (protected), <code>/flag</code> (secret)</p>`)
}

func (a *app) search(w http.ResponseWriter, r *http.Request) {
	q := r.PostFormValue("q")
	hits := a.employees.Search(q)
	out := "None"
	if len(hits) > 0 {
		out = strings.Join(hits, "\n")
	}
	// only the echoed query is escaped, matching the original app
	writeHTML(w, http.StatusOK, fmt.Sprintf(`<h2>Results</h2><p>Query: <code>%v</code></p><pre>%v</pre>`,
		html.EscapeString(q), out))
}

func (a *app) admin(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("token") == adminToken {
		writeHTML(w, http.StatusOK, `<h1>Admin Console</h1><p>Welcome, administrator.</p>`)
		return
	}
	http.Error(w, "Missing or invalid token", http.StatusUnauthorized)
}

func (a *app) flag(w http.ResponseWriter, r *http.Request) {
	a.flags.ServeFlag(w, r)
}

func writeHTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	io.WriteString(w, body)
}
