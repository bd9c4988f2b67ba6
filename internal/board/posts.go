package board

import "hobbyhub/internal/models"

// CreatePost appends a new post and clears the create form buffers.
func (b *Board) CreatePost(title, content, imageURL string) (models.Post, error) {
	if title == "" {
		return models.Post{}, ErrTitleRequired
	}

	post := models.Post{
		ID:        b.nextPostID,
		Title:     title,
		Content:   content,
		ImageURL:  imageURL,
		CreatedAt: b.now(),
		Comments:  []models.Comment{},
	}
	b.nextPostID++
	b.nextCommentID[post.ID] = 1
	b.posts = append(b.posts, post)
	b.createDraft = Draft{}

	return post.Clone(), nil
}

// BeginEdit opens the post for editing with its current values loaded into
// the edit buffers. Any previous edit target is dropped.
func (b *Board) BeginEdit(id int) error {
	i := b.indexOf(id)
	if i < 0 {
		return ErrPostNotFound
	}
	p := b.posts[i]
	b.editing = &EditTarget{
		PostID: id,
		Draft:  Draft{Title: p.Title, Content: p.Content, ImageURL: p.ImageURL},
	}
	return nil
}

// CommitEdit applies the non-empty edit buffers to the post and closes the
// edit. It reports whether a post was updated.
func (b *Board) CommitEdit(id int) bool {
	var d Draft
	if b.editing != nil {
		d = b.editing.Draft
	}
	b.editing = nil

	i := b.indexOf(id)
	if i < 0 {
		return false
	}
	p := &b.posts[i]
	if d.Title != "" {
		p.Title = d.Title
	}
	if d.Content != "" {
		p.Content = d.Content
	}
	if d.ImageURL != "" {
		p.ImageURL = d.ImageURL
	}
	return true
}

func (b *Board) CancelEdit() { b.editing = nil }

func (b *Board) Upvote(id int) bool {
	i := b.indexOf(id)
	if i < 0 {
		return false
	}
	b.posts[i].Upvotes++
	return true
}

// AddComment appends a comment to the post. The comment buffer is cleared
// whether or not the post exists.
func (b *Board) AddComment(id int, text string) (models.Comment, bool) {
	b.commentDraft = ""

	i := b.indexOf(id)
	if i < 0 {
		return models.Comment{}, false
	}
	c := models.Comment{
		ID:        b.nextCommentID[id],
		Content:   text,
		CreatedAt: b.now(),
	}
	b.nextCommentID[id]++
	b.posts[i].Comments = append(b.posts[i].Comments, c)
	return c, true
}

func (b *Board) DeletePost(id int) bool {
	i := b.indexOf(id)
	if i < 0 {
		return false
	}
	b.posts = append(b.posts[:i], b.posts[i+1:]...)
	delete(b.nextCommentID, id)
	if b.editing != nil && b.editing.PostID == id {
		b.editing = nil
	}
	return true
}
