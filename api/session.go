package api

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	sessionName = "portfolio-session"
	loggedInKey = "loggedIn"
)

// sessionManager keeps the admin login flag and flash messages in a signed cookie. The cookie has
// no Max-Age, so closing the browser ends the session.
type sessionManager struct {
	store *sessions.CookieStore
}

func newSessionManager(secret []byte, secure bool) sessionManager {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   0,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return sessionManager{store: store}
}

// session never fails: a cookie that cannot be decoded yields a fresh, logged-out session.
func (m sessionManager) session(r *http.Request) *sessions.Session {
	s, _ := m.store.Get(r, sessionName)
	return s
}

func (m sessionManager) loggedIn(r *http.Request) bool {
	v, _ := m.session(r).Values[loggedInKey].(bool)
	return v
}

func (m sessionManager) setLoggedIn(w http.ResponseWriter, r *http.Request, loggedIn bool) error {
	s := m.session(r)
	if loggedIn {
		s.Values[loggedInKey] = true
	} else {
		delete(s.Values, loggedInKey)
	}
	return s.Save(r, w)
}

func (m sessionManager) addFlash(w http.ResponseWriter, r *http.Request, message string) error {
	s := m.session(r)
	s.AddFlash(message)
	return s.Save(r, w)
}

// popFlash returns the pending flash message, if any, and clears it.
func (m sessionManager) popFlash(w http.ResponseWriter, r *http.Request) string {
	s := m.session(r)
	flashes := s.Flashes()
	if len(flashes) == 0 {
		return ""
	}
	_ = s.Save(r, w)
	message, _ := flashes[len(flashes)-1].(string)
	return message
}
