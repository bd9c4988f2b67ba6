package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHome_StartsSession(t *testing.T) {
	app := newTestApp(t)

	w := app.get("/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No posts yet")
	require.Contains(t, app.cookies, "session_id")
	assert.Equal(t, 1, app.store.Len())

	app.get("/")
	assert.Equal(t, 1, app.store.Len(), "cookie must reuse the session")
}

func TestCreatePost_Success(t *testing.T) {
	app := newTestApp(t)

	w := app.post("/posts", url.Values{
		"title":     {"Test Post"},
		"content":   {"This is a post."},
		"image_url": {"http://example.com/a.png"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	body := app.get("/").Body.String()
	assert.Contains(t, body, "Test Post")
	assert.Contains(t, body, "This is a post.")
	assert.Contains(t, body, `src="http://example.com/a.png"`)
	assert.Contains(t, body, "Post created")

	assert.NotContains(t, app.get("/").Body.String(), "Post created", "flash shows once")
}

func TestCreatePost_EmptyTitle(t *testing.T) {
	app := newTestApp(t)

	w := app.post("/posts", url.Values{"title": {""}, "content": {"kept content"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Title is required")
	assert.Contains(t, w.Body.String(), "kept content")
	snap := app.snapshot()
	assert.Equal(t, 0, snap.Total)
	assert.Equal(t, "kept content", snap.CreateDraft.Content)
}

func TestEditFlow(t *testing.T) {
	app := newTestApp(t)
	app.createPost("Old title", "Old content")

	w := app.post("/posts/1/edit", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, app.get("/").Body.String(), `action="/posts/1/update"`)

	w = app.post("/posts/1/update", url.Values{"title": {"New title"}, "content": {""}})
	require.Equal(t, http.StatusSeeOther, w.Code)

	snap := app.snapshot()
	require.Len(t, snap.Posts, 1)
	assert.Equal(t, "New title", snap.Posts[0].Title)
	assert.Equal(t, "Old content", snap.Posts[0].Content)
	assert.Nil(t, snap.Editing)
}

func TestUpdatePost_WithoutEditTarget(t *testing.T) {
	app := newTestApp(t)
	app.createPost("A", "a")
	app.createPost("B", "b")
	app.post("/posts/1/edit", nil)

	app.post("/posts/2/update", url.Values{"title": {"B2"}})

	snap := app.snapshot()
	assert.Equal(t, []string{"B2", "A"}, titles(snap))
	assert.Nil(t, snap.Editing)
}

func TestUpdatePost_Missing(t *testing.T) {
	app := newTestApp(t)

	w := app.post("/posts/9/update", url.Values{"title": {"x"}})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, app.get("/").Body.String(), "Post not found")
}

func TestBeginEdit_Missing(t *testing.T) {
	app := newTestApp(t)

	app.post("/posts/3/edit", nil)

	assert.Contains(t, app.get("/").Body.String(), "Post not found")
	assert.Nil(t, app.snapshot().Editing)
}

func TestCancelEdit(t *testing.T) {
	app := newTestApp(t)
	app.createPost("A", "a")
	app.post("/posts/1/edit", nil)

	w := app.post("/posts/1/cancel", nil)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	snap := app.snapshot()
	assert.Nil(t, snap.Editing)
	assert.Equal(t, "A", snap.Posts[0].Title)
}

func TestDeletePost(t *testing.T) {
	app := newTestApp(t)
	app.createPost("A", "a")
	app.createPost("B", "b")

	w := app.post("/posts/1/delete", nil)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, []string{"B"}, titles(app.snapshot()))

	app.post("/posts/1/delete", nil)
	assert.Equal(t, 1, app.snapshot().Total)
}

func TestInvalidPostID(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/posts/abc/upvote", "/posts/0/edit", "/posts/-1/delete"} {
		w := app.post(path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}

func TestUnknownRoute(t *testing.T) {
	app := newTestApp(t)

	w := app.get("/nope")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page not found")
}

func TestMethodNotAllowed(t *testing.T) {
	app := newTestApp(t)

	w := app.get("/posts")

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestStaticFiles(t *testing.T) {
	app := newTestApp(t)

	w := app.get("/static/live.js")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "WebSocket")
	assert.Equal(t, 0, app.store.Len(), "static files need no session")
}

func TestSessionsAreIsolated(t *testing.T) {
	app := newTestApp(t)
	other := app.client()

	app.createPost("Mine", "")

	assert.Equal(t, 1, app.snapshot().Total)
	assert.Equal(t, 0, other.snapshot().Total)
	assert.Equal(t, 2, app.store.Len())
}

func sessionCookieFrom(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == "session_id" {
			return c
		}
	}
	require.FailNow(t, "response set no session_id cookie")
	return nil
}

func TestSessionCookieSlides(t *testing.T) {
	app := newTestApp(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	app.store.Now = func() time.Time { return now }

	created := sessionCookieFrom(t, app.get("/"))
	now = now.Add(30 * time.Minute)
	renewed := sessionCookieFrom(t, app.get("/"))

	assert.Equal(t, created.Value, renewed.Value)
	assert.True(t, renewed.Expires.After(created.Expires))
	assert.Equal(t, now.Add(time.Hour), renewed.Expires.UTC())
	assert.Equal(t, 1, app.store.Len())
}

func TestImageURLIsFreeText(t *testing.T) {
	app := newTestApp(t)
	app.post("/tab", url.Values{"tab": {"createPost"}})

	body := app.get("/").Body.String()
	assert.Contains(t, body, `<input type="text" id="image_url" name="image_url"`)
	assert.NotContains(t, body, `type="url"`)

	app.post("/posts", url.Values{"title": {"Cat"}, "image_url": {"cat.png"}})
	app.post("/tab", url.Values{"tab": {"home"}})
	app.post("/posts/1/edit", nil)

	body = app.get("/").Body.String()
	assert.Contains(t, body, `<input type="text" name="image_url" value="cat.png"`)
	assert.NotContains(t, body, `type="url"`)
}
