package handlers

import (
	"bytes"
	"html/template"
	"log"
	"net/http"
	"time"
)

type ErrorHandler struct {
	Templates *template.Template
	SiteTitle string
}

func (h *ErrorHandler) Render(w http.ResponseWriter, status int, msg string) {
	if h == nil || h.Templates == nil {
		http.Error(w, msg, status)
		return
	}
	var buf bytes.Buffer
	err := h.Templates.ExecuteTemplate(&buf, "layout", map[string]interface{}{
		"Title":  h.SiteTitle,
		"Page":   "error",
		"Error":  msg,
		"Status": status,
	})
	if err != nil {
		log.Println("render error page:", err)
		http.Error(w, msg, status)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (h *ErrorHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.Render(w, http.StatusNotFound, "Page not found")
}

func (h *ErrorHandler) RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic serving %s %s: %v", r.Method, r.URL.Path, rec)
				h.Render(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func LogRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start).Truncate(time.Microsecond))
	})
}
