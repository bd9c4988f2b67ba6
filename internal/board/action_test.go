package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_PostLifecycle(t *testing.T) {
	b := New(WithClock(tickingClock()))

	steps := []Action{
		{Type: ActionSetCreateDraft, Title: "dra"},
		{Type: ActionCreatePost, Title: "Zelda", Content: "BotW", ImageURL: "http://z"},
		{Type: ActionUpvote, PostID: 1},
		{Type: ActionSetCommentDraft, Text: "nice"},
		{Type: ActionAddComment, PostID: 1, Text: "nice"},
		{Type: ActionBeginEdit, PostID: 1},
		{Type: ActionSetEditDraft, Title: "Zelda TotK"},
		{Type: ActionCommitEdit, PostID: 1},
	}
	for _, a := range steps {
		require.NoError(t, b.Apply(a), a.Type)
	}

	p, ok := b.Post(1)
	require.True(t, ok)
	assert.Equal(t, "Zelda TotK", p.Title)
	assert.Equal(t, "BotW", p.Content)
	assert.Equal(t, 1, p.Upvotes)
	require.Len(t, p.Comments, 1)
	assert.Equal(t, "nice", p.Comments[0].Content)
	assert.Empty(t, b.CommentDraft())
	assert.Equal(t, Draft{}, b.CreateDraft())

	require.NoError(t, b.Apply(Action{Type: ActionDeletePost, PostID: 1}))
	assert.Equal(t, 0, b.Len())
}

func TestApply_Flags(t *testing.T) {
	b := New()

	require.NoError(t, b.Apply(Action{Type: ActionSetTab, Tab: "createPost"}))
	require.NoError(t, b.Apply(Action{Type: ActionSetOrder, Order: "oldest"}))
	require.NoError(t, b.Apply(Action{Type: ActionToggleSortByUpvotes}))
	require.NoError(t, b.Apply(Action{Type: ActionSearch, Query: "mario"}))

	assert.Equal(t, TabCreatePost, b.ActiveTab())
	assert.Equal(t, OrderOldest, b.OrderBy())
	assert.True(t, b.SortByUpvotes())
	assert.Equal(t, "mario", b.SearchQuery())
}

func TestApply_CancelEdit(t *testing.T) {
	b := newTestBoard(t, "A")
	require.NoError(t, b.Apply(Action{Type: ActionBeginEdit, PostID: 1}))

	require.NoError(t, b.Apply(Action{Type: ActionCancelEdit}))

	_, ok := b.Editing()
	assert.False(t, ok)
}

func TestApply_Errors(t *testing.T) {
	b := newTestBoard(t, "A")

	tests := []struct {
		name   string
		action Action
		want   error
	}{
		{"empty title", Action{Type: ActionCreatePost}, ErrTitleRequired},
		{"edit missing post", Action{Type: ActionBeginEdit, PostID: 9}, ErrPostNotFound},
		{"bad tab", Action{Type: ActionSetTab, Tab: "nope"}, ErrUnknownTab},
		{"bad order", Action{Type: ActionSetOrder, Order: "sideways"}, ErrUnknownOrder},
		{"unknown type", Action{Type: "launch"}, ErrUnknownAction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, b.Apply(tt.action), tt.want)
		})
	}
	assert.Equal(t, 1, b.Len())
}

func TestApply_MissingPostIsSilent(t *testing.T) {
	b := newTestBoard(t, "A")

	for _, typ := range []string{ActionUpvote, ActionAddComment, ActionDeletePost, ActionCommitEdit} {
		assert.NoError(t, b.Apply(Action{Type: typ, PostID: 404}), typ)
	}
	assert.Equal(t, 1, b.Len())
}
