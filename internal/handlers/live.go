package handlers

import (
	"bytes"
	"encoding/json"
	"html/template"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"hobbyhub/internal/board"
	"hobbyhub/internal/session"
)

// LiveHandler serves the websocket the page uses for search-as-you-type and
// in-place updates. Every message is an action; every reply is the freshly
// rendered post list. The socket closes once its session is gone.
type LiveHandler struct {
	Sessions  *session.Store
	Templates *template.Template
	Upgrader  websocket.Upgrader
}

type liveMessage struct {
	HTML  string `json:"html,omitempty"`
	Total int    `json:"total"`
	Error string `json:"error,omitempty"`
}

func (h *LiveHandler) Serve(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r)
	// Upgrade writes its own response, so a cookie for a new session has to
	// be handed over explicitly.
	var header http.Header
	if cookies := w.Header().Values("Set-Cookie"); len(cookies) > 0 {
		header = http.Header{"Set-Cookie": cookies}
	}
	conn, err := h.Upgrader.Upgrade(w, r, header)
	if err != nil {
		log.Println("websocket upgrade:", err)
		return
	}
	defer conn.Close()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Println("websocket read:", err)
			}
			return
		}

		if _, ok, err := h.Sessions.Get(sess.ID); err != nil || !ok {
			if err != nil {
				log.Println("websocket session:", err)
			}
			conn.WriteJSON(liveMessage{Error: "session ended"})
			return
		}

		var a board.Action
		if err := json.Unmarshal(data, &a); err != nil {
			if err := conn.WriteJSON(liveMessage{Error: "invalid action"}); err != nil {
				return
			}
			continue
		}

		var applyErr error
		var snap board.Snapshot
		sess.Do(func(b *board.Board) {
			applyErr = b.Apply(a)
			snap = b.Snapshot()
		})

		msg := liveMessage{Total: len(snap.Posts)}
		if applyErr != nil {
			msg.Error = applyErr.Error()
		}
		var buf bytes.Buffer
		if err := h.Templates.ExecuteTemplate(&buf, "posts", map[string]interface{}{"Board": snap}); err != nil {
			log.Println("render posts:", err)
			msg.Error = "could not render posts"
		} else {
			msg.HTML = buf.String()
		}

		if err := conn.WriteJSON(msg); err != nil {
			log.Println("websocket write:", err)
			return
		}
	}
}
