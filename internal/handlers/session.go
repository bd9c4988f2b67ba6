package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"hobbyhub/internal/board"
	"hobbyhub/internal/session"
)

const sessionCookie = "session_id"

type contextKey string

const sessionContextKey contextKey = "session"

// WithSession attaches the caller's session to the request context, starting
// a new one when the cookie is missing or stale.
func WithSession(store *session.Store, errs *ErrorHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := sessionFromRequest(store, w, r)
			if err != nil {
				log.Println("session error:", err)
				errs.Render(w, http.StatusInternalServerError, "Could not start a session")
				return
			}
			ctx := context.WithValue(r.Context(), sessionContextKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFrom returns the session attached by WithSession.
func SessionFrom(r *http.Request) *session.Session {
	sess, _ := r.Context().Value(sessionContextKey).(*session.Session)
	return sess
}

func sessionFromRequest(store *session.Store, w http.ResponseWriter, r *http.Request) (*session.Session, error) {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		sess, ok, err := store.Get(cookie.Value)
		if err != nil {
			return nil, err
		}
		if ok {
			setSessionCookie(w, sess)
			return sess, nil
		}
	}

	sess, err := store.Create()
	if err != nil {
		return nil, err
	}
	log.Printf("new session %s", sess.ID)
	setSessionCookie(w, sess)
	return sess, nil
}

// setSessionCookie (re)issues the cookie so the browser's expiry follows the
// session's sliding expiry.
func setSessionCookie(w http.ResponseWriter, sess *session.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sess.ID,
		Expires:  sess.Expires(),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})
}

// snapshot runs fn, when given, against the request's board and returns the
// resulting snapshot, all under the session lock.
func snapshot(r *http.Request, fn func(b *board.Board)) board.Snapshot {
	var snap board.Snapshot
	SessionFrom(r).Do(func(b *board.Board) {
		if fn != nil {
			fn(b)
		}
		snap = b.Snapshot()
	})
	return snap
}

// withBoard runs fn against the request's board under the session lock.
func withBoard(r *http.Request, fn func(b *board.Board)) {
	SessionFrom(r).Do(fn)
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:    sessionCookie,
		Value:   "",
		Path:    "/",
		Expires: time.Unix(0, 0),
		MaxAge:  -1,
	})
}

func SetFlash(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:  name,
		Value: value,
		Path:  "/",
	})
}

func GetFlash(w http.ResponseWriter, r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err == nil {
		http.SetCookie(w, &http.Cookie{
			Name:   name,
			Value:  "",
			Path:   "/",
			MaxAge: -1,
		})
		return cookie.Value
	}
	return ""
}
