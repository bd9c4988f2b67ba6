package handlers

import (
	"log"
	"net/http"

	"hobbyhub/internal/board"
	"hobbyhub/internal/session"
)

// FilterHandler changes how the board is shown: active tab, search query
// and ordering.
type FilterHandler struct {
	Sessions *session.Store
	Err      *ErrorHandler
}

func (h *FilterHandler) SetTab(w http.ResponseWriter, r *http.Request) {
	tab, err := board.ParseTab(r.FormValue("tab"))
	if err != nil {
		h.Err.Render(w, http.StatusBadRequest, "Unknown tab")
		return
	}
	withBoard(r, func(b *board.Board) { b.SetActiveTab(tab) })
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *FilterHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.FormValue("q")
	withBoard(r, func(b *board.Board) { b.SetSearchQuery(q) })
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *FilterHandler) SetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := board.ParseOrder(r.FormValue("order"))
	if err != nil {
		h.Err.Render(w, http.StatusBadRequest, "Unknown order")
		return
	}
	withBoard(r, func(b *board.Board) { b.SetOrderBy(order) })
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *FilterHandler) ToggleSortByUpvotes(w http.ResponseWriter, r *http.Request) {
	withBoard(r, func(b *board.Board) { b.ToggleSortByUpvotes() })
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Reset throws the caller's board away, like reloading a page that keeps
// everything in memory.
func (h *FilterHandler) Reset(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r)
	if err := h.Sessions.Delete(sess.ID); err != nil {
		log.Println("reset session:", err)
		h.Err.Render(w, http.StatusInternalServerError, "Could not reset the board")
		return
	}
	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
