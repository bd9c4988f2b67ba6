package handlers

import (
	"fmt"
	"html/template"
	"path/filepath"
	"time"
)

// LoadTemplates parses every *.html file in dir with the helpers the pages use.
func LoadTemplates(dir string) (*template.Template, error) {
	tmpl := template.New("").Funcs(template.FuncMap{
		"formatTime": formatTime,
	})
	tmpl, err := tmpl.ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("parse templates in %s: %w", dir, err)
	}
	return tmpl, nil
}

func formatTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04:05")
}
