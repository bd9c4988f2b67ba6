package models

import "time"

type Post struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	Upvotes   int       `json:"upvotes"`
	Comments  []Comment `json:"comments"`
}

// Clone returns a copy that shares no comment storage with p.
func (p Post) Clone() Post {
	c := p
	c.Comments = append([]Comment(nil), p.Comments...)
	if c.Comments == nil {
		c.Comments = []Comment{}
	}
	return c
}
