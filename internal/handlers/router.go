package handlers

import (
	"html/template"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"hobbyhub/internal/session"
)

type Deps struct {
	Sessions  *session.Store
	Templates *template.Template
	StaticDir string
	SiteTitle string
}

// NewRouter wires every route. Static files are served without a session.
func NewRouter(d Deps) http.Handler {
	errs := &ErrorHandler{Templates: d.Templates, SiteTitle: d.SiteTitle}
	posts := &PostHandler{Templates: d.Templates, Err: errs, SiteTitle: d.SiteTitle}
	comments := &CommentHandler{Err: errs}
	upvotes := &UpvoteHandler{Err: errs}
	filters := &FilterHandler{Sessions: d.Sessions, Err: errs}
	api := &APIHandler{}
	live := &LiveHandler{
		Sessions:  d.Sessions,
		Templates: d.Templates,
		Upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}

	r := mux.NewRouter()
	r.Use(WithSession(d.Sessions, errs))
	r.NotFoundHandler = http.HandlerFunc(errs.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		errs.Render(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.HandleFunc("/", posts.Home).Methods(http.MethodGet)
	r.HandleFunc("/tab", filters.SetTab).Methods(http.MethodPost)
	r.HandleFunc("/search", filters.Search).Methods(http.MethodPost)
	r.HandleFunc("/order", filters.SetOrder).Methods(http.MethodPost)
	r.HandleFunc("/sort/upvotes", filters.ToggleSortByUpvotes).Methods(http.MethodPost)
	r.HandleFunc("/reset", filters.Reset).Methods(http.MethodPost)

	r.HandleFunc("/posts", posts.CreatePost).Methods(http.MethodPost)
	r.HandleFunc("/posts/{id}/upvote", upvotes.Upvote).Methods(http.MethodPost)
	r.HandleFunc("/posts/{id}/edit", posts.BeginEdit).Methods(http.MethodPost)
	r.HandleFunc("/posts/{id}/update", posts.UpdatePost).Methods(http.MethodPost)
	r.HandleFunc("/posts/{id}/cancel", posts.CancelEdit).Methods(http.MethodPost)
	r.HandleFunc("/posts/{id}/delete", posts.DeletePost).Methods(http.MethodPost)
	r.HandleFunc("/posts/{id}/comments", comments.AddComment).Methods(http.MethodPost)

	r.HandleFunc("/api/board", api.Board).Methods(http.MethodGet)
	r.HandleFunc("/api/actions", api.Actions).Methods(http.MethodPost)
	r.HandleFunc("/ws", live.Serve)

	root := http.NewServeMux()
	if d.StaticDir != "" {
		root.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(d.StaticDir))))
	}
	root.Handle("/", r)

	return LogRequests(errs.RecoveryMiddleware(root))
}
