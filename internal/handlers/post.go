package handlers

import (
	"bytes"
	"errors"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"hobbyhub/internal/board"
)

type PostHandler struct {
	Templates *template.Template
	Err       *ErrorHandler
	SiteTitle string
}

// Home renders whichever tab the board has active.
func (h *PostHandler) Home(w http.ResponseWriter, r *http.Request) {
	snap := snapshot(r, nil)
	page := "home"
	if snap.Tab == board.TabCreatePost {
		page = "create"
	}
	h.render(w, r, http.StatusOK, page, snap, nil)
}

func (h *PostHandler) render(w http.ResponseWriter, r *http.Request, status int, page string, snap board.Snapshot, formErrors map[string]string) {
	if formErrors == nil {
		formErrors = map[string]string{}
	}
	flash := GetFlash(w, r, "flash")

	var buf bytes.Buffer
	err := h.Templates.ExecuteTemplate(&buf, "layout", map[string]interface{}{
		"Title":  h.SiteTitle,
		"Page":   page,
		"Board":  snap,
		"Flash":  flash,
		"Errors": formErrors,
	})
	if err != nil {
		log.Println("render page:", err)
		h.Err.Render(w, http.StatusInternalServerError, "Could not render page")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Err.Render(w, http.StatusBadRequest, "Invalid form")
		return
	}
	draft := board.Draft{
		Title:    r.FormValue("title"),
		Content:  r.FormValue("content"),
		ImageURL: r.FormValue("image_url"),
	}

	var createErr error
	var created int
	snap := snapshot(r, func(b *board.Board) {
		post, err := b.CreatePost(draft.Title, draft.Content, draft.ImageURL)
		if err != nil {
			createErr = err
			b.SetCreateDraft(draft)
			return
		}
		created = post.ID
	})

	if errors.Is(createErr, board.ErrTitleRequired) {
		h.render(w, r, http.StatusOK, "create", snap, map[string]string{
			"Title": "Title is required",
		})
		return
	}

	log.Printf("post %d created", created)
	SetFlash(w, "flash", "Post created")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *PostHandler) BeginEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(r)
	if !ok {
		h.Err.NotFound(w, r)
		return
	}

	var err error
	withBoard(r, func(b *board.Board) { err = b.BeginEdit(id) })
	if errors.Is(err, board.ErrPostNotFound) {
		SetFlash(w, "flash", "Post not found")
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// UpdatePost saves the edit form. The submitted fields become the edit
// buffers, so a form posted after the edit target was lost still applies.
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(r)
	if !ok {
		h.Err.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.Err.Render(w, http.StatusBadRequest, "Invalid form")
		return
	}
	draft := board.Draft{
		Title:    r.FormValue("title"),
		Content:  r.FormValue("content"),
		ImageURL: r.FormValue("image_url"),
	}

	var updated bool
	withBoard(r, func(b *board.Board) {
		if target, editing := b.Editing(); !editing || target.PostID != id {
			if err := b.BeginEdit(id); err != nil {
				b.CancelEdit()
				return
			}
		}
		b.SetEditDraft(draft)
		updated = b.CommitEdit(id)
	})
	if !updated {
		SetFlash(w, "flash", "Post not found")
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *PostHandler) CancelEdit(w http.ResponseWriter, r *http.Request) {
	withBoard(r, func(b *board.Board) { b.CancelEdit() })
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(r)
	if !ok {
		h.Err.NotFound(w, r)
		return
	}
	var deleted bool
	withBoard(r, func(b *board.Board) { deleted = b.DeletePost(id) })
	if deleted {
		log.Printf("post %d deleted", id)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func postID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
