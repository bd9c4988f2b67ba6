package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hobbyhub/internal/board"
	"hobbyhub/internal/db"
	"hobbyhub/internal/handlers"
	"hobbyhub/internal/session"
)

type testApp struct {
	t       *testing.T
	handler http.Handler
	store   *session.Store
	cookies map[string]*http.Cookie
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	conn, err := db.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	tmpl, err := handlers.LoadTemplates("../../templates")
	require.NoError(t, err)

	store := session.NewStore(conn, time.Hour)
	return &testApp{
		t:     t,
		store: store,
		handler: handlers.NewRouter(handlers.Deps{
			Sessions:  store,
			Templates: tmpl,
			StaticDir: "../../static",
			SiteTitle: "HobbyHub",
		}),
		cookies: map[string]*http.Cookie{},
	}
}

// client returns a second browser against the same server.
func (a *testApp) client() *testApp {
	return &testApp{t: a.t, handler: a.handler, store: a.store, cookies: map[string]*http.Cookie{}}
}

func (a *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	a.t.Helper()
	for _, c := range a.cookies {
		req.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	}
	w := httptest.NewRecorder()
	a.handler.ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		if c.MaxAge < 0 || c.Value == "" {
			delete(a.cookies, c.Name)
			continue
		}
		a.cookies[c.Name] = c
	}
	return w
}

func (a *testApp) get(path string) *httptest.ResponseRecorder {
	a.t.Helper()
	return a.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (a *testApp) post(path string, form url.Values) *httptest.ResponseRecorder {
	a.t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return a.do(req)
}

func (a *testApp) postJSON(path string, v interface{}) *httptest.ResponseRecorder {
	a.t.Helper()
	body, err := json.Marshal(v)
	require.NoError(a.t, err)
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	return a.do(req)
}

func (a *testApp) snapshot() board.Snapshot {
	a.t.Helper()
	w := a.get("/api/board")
	require.Equal(a.t, http.StatusOK, w.Code)
	var snap board.Snapshot
	require.NoError(a.t, json.NewDecoder(w.Body).Decode(&snap))
	return snap
}

func (a *testApp) createPost(title, content string) {
	a.t.Helper()
	w := a.post("/posts", url.Values{"title": {title}, "content": {content}})
	require.Equal(a.t, http.StatusSeeOther, w.Code)
}

func titles(snap board.Snapshot) []string {
	out := make([]string, 0, len(snap.Posts))
	for _, p := range snap.Posts {
		out = append(out, p.Title)
	}
	return out
}
