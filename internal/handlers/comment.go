package handlers

import (
	"log"
	"net/http"

	"hobbyhub/internal/board"
)

type CommentHandler struct {
	Err *ErrorHandler
}

// AddComment appends the submitted comment to the post. A post that no
// longer exists is ignored.
func (h *CommentHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(r)
	if !ok {
		h.Err.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.Err.Render(w, http.StatusBadRequest, "Invalid form")
		return
	}
	text := r.FormValue("comment")

	withBoard(r, func(b *board.Board) {
		if c, ok := b.AddComment(id, text); ok {
			log.Printf("comment %d added to post %d", c.ID, id)
		}
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
