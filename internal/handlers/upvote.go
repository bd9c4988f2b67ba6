package handlers

import (
	"net/http"

	"hobbyhub/internal/board"
)

type UpvoteHandler struct {
	Err *ErrorHandler
}

func (h *UpvoteHandler) Upvote(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(r)
	if !ok {
		h.Err.NotFound(w, r)
		return
	}
	withBoard(r, func(b *board.Board) { b.Upvote(id) })
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
