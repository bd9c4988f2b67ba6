package board

import "fmt"

// Action is one user action in wire form, as sent by the JSON API and the
// websocket. Only the fields its Type needs are read.
type Action struct {
	Type     string `json:"type"`
	PostID   int    `json:"post_id,omitempty"`
	Title    string `json:"title,omitempty"`
	Content  string `json:"content,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	Text     string `json:"text,omitempty"`
	Tab      string `json:"tab,omitempty"`
	Order    string `json:"order,omitempty"`
	Query    string `json:"query"`
}

const (
	ActionCreatePost          = "create_post"
	ActionSetCreateDraft      = "set_create_draft"
	ActionBeginEdit           = "begin_edit"
	ActionSetEditDraft        = "set_edit_draft"
	ActionCommitEdit          = "commit_edit"
	ActionCancelEdit          = "cancel_edit"
	ActionUpvote              = "upvote"
	ActionSetCommentDraft     = "set_comment_draft"
	ActionAddComment          = "add_comment"
	ActionDeletePost          = "delete_post"
	ActionSetTab              = "set_tab"
	ActionSetOrder            = "set_order"
	ActionToggleSortByUpvotes = "toggle_sort_by_upvotes"
	ActionSearch              = "search"
)

// Apply runs the operation named by a.Type. Lookups that match nothing are
// no-ops, except begin_edit which reports ErrPostNotFound.
func (b *Board) Apply(a Action) error {
	switch a.Type {
	case ActionCreatePost:
		_, err := b.CreatePost(a.Title, a.Content, a.ImageURL)
		return err
	case ActionSetCreateDraft:
		b.SetCreateDraft(Draft{Title: a.Title, Content: a.Content, ImageURL: a.ImageURL})
	case ActionBeginEdit:
		return b.BeginEdit(a.PostID)
	case ActionSetEditDraft:
		b.SetEditDraft(Draft{Title: a.Title, Content: a.Content, ImageURL: a.ImageURL})
	case ActionCommitEdit:
		b.CommitEdit(a.PostID)
	case ActionCancelEdit:
		b.CancelEdit()
	case ActionUpvote:
		b.Upvote(a.PostID)
	case ActionSetCommentDraft:
		b.SetCommentDraft(a.Text)
	case ActionAddComment:
		b.AddComment(a.PostID, a.Text)
	case ActionDeletePost:
		b.DeletePost(a.PostID)
	case ActionSetTab:
		tab, err := ParseTab(a.Tab)
		if err != nil {
			return err
		}
		b.SetActiveTab(tab)
	case ActionSetOrder:
		order, err := ParseOrder(a.Order)
		if err != nil {
			return err
		}
		b.SetOrderBy(order)
	case ActionToggleSortByUpvotes:
		b.ToggleSortByUpvotes()
	case ActionSearch:
		b.SetSearchQuery(a.Query)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
	}
	return nil
}
