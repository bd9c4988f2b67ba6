package main

import (
	"log"
	"net/http"
	"time"

	"hobbyhub/internal/config"
	"hobbyhub/internal/db"
	"hobbyhub/internal/handlers"
	"hobbyhub/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config: ", err)
	}

	conn, err := db.Open(db.MemoryDSN)
	if err != nil {
		log.Fatal("database: ", err)
	}
	defer conn.Close()

	templates, err := handlers.LoadTemplates(cfg.TemplatesDir)
	if err != nil {
		log.Fatal("templates: ", err)
	}
	for _, tmpl := range templates.Templates() {
		log.Println("loaded template:", tmpl.Name())
	}

	sessions := session.NewStore(conn, cfg.SessionTTL)
	go prune(sessions, cfg.PruneInterval)

	router := handlers.NewRouter(handlers.Deps{
		Sessions:  sessions,
		Templates: templates,
		StaticDir: cfg.StaticDir,
		SiteTitle: cfg.SiteTitle,
	})

	log.Printf("%s listening on http://localhost%s", cfg.SiteTitle, cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatal("server: ", err)
	}
}

func prune(sessions *session.Store, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for range ticker.C {
		n, err := sessions.Prune()
		if err != nil {
			log.Println("prune sessions:", err)
			continue
		}
		if n > 0 {
			log.Printf("pruned %d expired sessions, %d active", n, sessions.Len())
		}
	}
}
