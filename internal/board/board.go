// Package board holds the view state of one HobbyHub board: the posts, the
// UI flags that shape the visible list, and the input buffers of the forms.
// A Board is not safe for concurrent use; callers serialize access.
package board

import (
	"errors"
	"fmt"
	"time"

	"hobbyhub/internal/models"
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrPostNotFound  = errors.New("post not found")
	ErrUnknownTab    = errors.New("unknown tab")
	ErrUnknownOrder  = errors.New("unknown order")
	ErrUnknownAction = errors.New("unknown action")
)

type Tab string

const (
	TabHome       Tab = "home"
	TabCreatePost Tab = "createPost"
)

func ParseTab(s string) (Tab, error) {
	switch Tab(s) {
	case TabHome, TabCreatePost:
		return Tab(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
}

type Order string

const (
	OrderNewest Order = "newest"
	OrderOldest Order = "oldest"
)

func ParseOrder(s string) (Order, error) {
	switch Order(s) {
	case OrderNewest, OrderOldest:
		return Order(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOrder, s)
}

// Draft is the content of a post form that has not been submitted yet.
type Draft struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"image_url"`
}

// EditTarget is the one post currently open for editing, with its buffers.
type EditTarget struct {
	PostID int   `json:"post_id"`
	Draft  Draft `json:"draft"`
}

type Board struct {
	posts         []models.Post
	nextPostID    int
	nextCommentID map[int]int

	activeTab     Tab
	searchQuery   string
	orderBy       Order
	sortByUpvotes bool

	editing      *EditTarget
	createDraft  Draft
	commentDraft string

	now func() time.Time
}

type Option func(*Board)

// WithClock replaces time.Now as the source of creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(b *Board) { b.now = now }
}

func New(opts ...Option) *Board {
	b := &Board{
		nextPostID:    1,
		nextCommentID: make(map[int]int),
		activeTab:     TabHome,
		orderBy:       OrderNewest,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Board) ActiveTab() Tab { return b.activeTab }

func (b *Board) SetActiveTab(tab Tab) { b.activeTab = tab }

func (b *Board) SearchQuery() string { return b.searchQuery }

func (b *Board) SetSearchQuery(q string) { b.searchQuery = q }

func (b *Board) OrderBy() Order { return b.orderBy }

func (b *Board) SetOrderBy(order Order) { b.orderBy = order }

func (b *Board) SortByUpvotes() bool { return b.sortByUpvotes }

// ToggleSortByUpvotes flips the upvote sort and reports the new setting.
func (b *Board) ToggleSortByUpvotes() bool {
	b.sortByUpvotes = !b.sortByUpvotes
	return b.sortByUpvotes
}

func (b *Board) CreateDraft() Draft { return b.createDraft }

func (b *Board) SetCreateDraft(d Draft) { b.createDraft = d }

func (b *Board) CommentDraft() string { return b.commentDraft }

func (b *Board) SetCommentDraft(text string) { b.commentDraft = text }

// Editing returns the current edit target, if any.
func (b *Board) Editing() (EditTarget, bool) {
	if b.editing == nil {
		return EditTarget{}, false
	}
	return *b.editing, true
}

// SetEditDraft overwrites the edit buffers. It reports false when no post is
// being edited.
func (b *Board) SetEditDraft(d Draft) bool {
	if b.editing == nil {
		return false
	}
	b.editing.Draft = d
	return true
}

func (b *Board) Len() int { return len(b.posts) }

func (b *Board) Post(id int) (models.Post, bool) {
	i := b.indexOf(id)
	if i < 0 {
		return models.Post{}, false
	}
	return b.posts[i].Clone(), true
}

func (b *Board) indexOf(id int) int {
	for i := range b.posts {
		if b.posts[i].ID == id {
			return i
		}
	}
	return -1
}
