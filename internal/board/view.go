package board

import (
	"sort"
	"strings"

	"hobbyhub/internal/models"
)

// View returns the visible posts: sorted by the active order, then filtered
// by the search query. Ties keep creation order.
func (b *Board) View() []models.Post {
	sorted := make([]models.Post, len(b.posts))
	for i := range b.posts {
		sorted[i] = b.posts[i].Clone()
	}

	switch {
	case b.sortByUpvotes:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Upvotes > sorted[j].Upvotes
		})
	case b.orderBy == OrderOldest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		})
	}

	q := strings.ToLower(b.searchQuery)
	visible := sorted[:0]
	for _, p := range sorted {
		if strings.Contains(strings.ToLower(p.Title), q) {
			visible = append(visible, p)
		}
	}
	return visible
}

// Snapshot is everything a front end needs to draw the board.
type Snapshot struct {
	Tab           Tab           `json:"active_tab"`
	SearchQuery   string        `json:"search_query"`
	OrderBy       Order         `json:"order_by"`
	SortByUpvotes bool          `json:"sort_by_upvotes"`
	Editing       *EditTarget   `json:"editing,omitempty"`
	CreateDraft   Draft         `json:"create_draft"`
	CommentDraft  string        `json:"comment_draft"`
	Posts         []models.Post `json:"posts"`
	Total         int           `json:"total"`
}

func (b *Board) Snapshot() Snapshot {
	s := Snapshot{
		Tab:           b.activeTab,
		SearchQuery:   b.searchQuery,
		OrderBy:       b.orderBy,
		SortByUpvotes: b.sortByUpvotes,
		CreateDraft:   b.createDraft,
		CommentDraft:  b.commentDraft,
		Posts:         b.View(),
		Total:         len(b.posts),
	}
	if b.editing != nil {
		e := *b.editing
		s.Editing = &e
	}
	return s
}

// IsEditing reports whether the post with the given id is the edit target.
func (s Snapshot) IsEditing(id int) bool {
	return s.Editing != nil && s.Editing.PostID == id
}
