// Package tui is a terminal front end for a single HobbyHub board.
package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"hobbyhub/internal/board"
	"hobbyhub/internal/models"
)

type focus int

const (
	focusList focus = iota
	focusSearch
	focusForm
	focusComment
)

type formMode int

const (
	formCreate formMode = iota
	formEdit
)

const (
	fieldTitle = iota
	fieldContent
	fieldImage
	fieldCount
)

type Model struct {
	board     *board.Board
	siteTitle string
	keys      keyMap
	help      help.Model

	focus  focus
	cursor int

	search  textinput.Model
	comment textinput.Model

	mode         formMode
	field        int
	titleInput   textinput.Model
	contentInput textarea.Model
	imageInput   textinput.Model

	status    string
	statusErr bool
	width     int
}

func New(b *board.Board, siteTitle string) Model {
	search := textinput.New()
	search.Prompt = "Search: "
	search.Placeholder = "post titles"

	comment := textinput.New()
	comment.Prompt = "Comment: "
	comment.Placeholder = "Add a comment"

	title := textinput.New()
	title.Prompt = ""
	title.Placeholder = "Title"

	content := textarea.New()
	content.Placeholder = "Content"
	content.ShowLineNumbers = false
	content.SetWidth(60)
	content.SetHeight(4)
	content.KeyMap.InsertNewline.SetEnabled(false)

	image := textinput.New()
	image.Prompt = ""
	image.Placeholder = "Image URL"

	m := Model{
		board:        b,
		siteTitle:    siteTitle,
		keys:         defaultKeyMap(),
		help:         help.New(),
		search:       search,
		comment:      comment,
		titleInput:   title,
		contentInput: content,
		imageInput:   image,
	}
	if b.ActiveTab() == board.TabCreatePost {
		m.openCreateForm()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		switch m.focus {
		case focusSearch:
			return m.updateSearch(msg)
		case focusForm:
			return m.updateForm(msg)
		case focusComment:
			return m.updateComment(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Home):
		m.board.SetActiveTab(board.TabHome)
	case key.Matches(msg, m.keys.Create):
		m.board.SetActiveTab(board.TabCreatePost)
		cmd = m.openCreateForm()
	case key.Matches(msg, m.keys.Search):
		m.search.SetValue(m.board.SearchQuery())
		m.focus = focusSearch
		cmd = m.search.Focus()
	case key.Matches(msg, m.keys.Newest):
		m.board.SetOrderBy(board.OrderNewest)
	case key.Matches(msg, m.keys.Oldest):
		m.board.SetOrderBy(board.OrderOldest)
	case key.Matches(msg, m.keys.SortUpvotes):
		m.board.ToggleSortByUpvotes()
	case key.Matches(msg, m.keys.Up):
		m.cursor--
	case key.Matches(msg, m.keys.Down):
		m.cursor++
	case key.Matches(msg, m.keys.Upvote):
		if p, ok := m.selected(); ok {
			m.board.Upvote(p.ID)
		}
	case key.Matches(msg, m.keys.Edit):
		if p, ok := m.selected(); ok {
			cmd = m.openEditForm(p.ID)
		}
	case key.Matches(msg, m.keys.Delete):
		if p, ok := m.selected(); ok && m.board.DeletePost(p.ID) {
			m.setStatus("Post deleted", false)
		}
	case key.Matches(msg, m.keys.Comment):
		if _, ok := m.selected(); ok {
			m.comment.SetValue(m.board.CommentDraft())
			m.focus = focusComment
			cmd = m.comment.Focus()
		}
	}

	m.clampCursor()
	return m, cmd
}

// updateSearch filters the list on every keystroke.
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Submit) || key.Matches(msg, m.keys.Cancel) {
		m.search.Blur()
		m.focus = focusList
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.board.SetSearchQuery(m.search.Value())
	m.clampCursor()
	return m, cmd
}

func (m Model) updateComment(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.comment.Blur()
		m.focus = focusList
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		p, ok := m.selected()
		if ok {
			m.board.AddComment(p.ID, m.comment.Value())
			m.setStatus("Comment added", false)
		}
		m.comment.Reset()
		m.comment.Blur()
		m.focus = focusList
		return m, nil
	}
	var cmd tea.Cmd
	m.comment, cmd = m.comment.Update(msg)
	m.board.SetCommentDraft(m.comment.Value())
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		if m.mode == formEdit {
			m.board.CancelEdit()
		} else {
			m.board.SetActiveTab(board.TabHome)
		}
		m.closeForm()
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		step := 1
		if msg.String() == "shift+tab" {
			step = fieldCount - 1
		}
		return m, m.focusField((m.field + step) % fieldCount)
	case key.Matches(msg, m.keys.Submit):
		return m.submitForm()
	}

	var cmd tea.Cmd
	switch m.field {
	case fieldTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case fieldContent:
		m.contentInput, cmd = m.contentInput.Update(msg)
	case fieldImage:
		m.imageInput, cmd = m.imageInput.Update(msg)
	}
	if m.mode == formEdit {
		m.board.SetEditDraft(m.formDraft())
	} else {
		m.board.SetCreateDraft(m.formDraft())
	}
	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	d := m.formDraft()

	if m.mode == formEdit {
		target, ok := m.board.Editing()
		m.board.SetEditDraft(d)
		if ok && m.board.CommitEdit(target.PostID) {
			m.setStatus("Post updated", false)
		}
		m.closeForm()
		return m, nil
	}

	_, err := m.board.CreatePost(d.Title, d.Content, d.ImageURL)
	if errors.Is(err, board.ErrTitleRequired) {
		m.setStatus("Title is required", true)
		return m, m.focusField(fieldTitle)
	}
	m.setStatus("Post created", false)
	m.loadForm(board.Draft{})
	return m, m.focusField(fieldTitle)
}

func (m *Model) openCreateForm() tea.Cmd {
	m.mode = formCreate
	m.focus = focusForm
	m.loadForm(m.board.CreateDraft())
	return m.focusField(fieldTitle)
}

func (m *Model) openEditForm(id int) tea.Cmd {
	if err := m.board.BeginEdit(id); err != nil {
		m.setStatus("Post not found", true)
		return nil
	}
	target, _ := m.board.Editing()
	m.mode = formEdit
	m.focus = focusForm
	m.loadForm(target.Draft)
	return m.focusField(fieldTitle)
}

func (m *Model) closeForm() {
	m.titleInput.Blur()
	m.contentInput.Blur()
	m.imageInput.Blur()
	m.focus = focusList
}

func (m *Model) loadForm(d board.Draft) {
	m.titleInput.SetValue(d.Title)
	m.contentInput.SetValue(d.Content)
	m.imageInput.SetValue(d.ImageURL)
}

func (m *Model) focusField(field int) tea.Cmd {
	m.field = field
	m.titleInput.Blur()
	m.contentInput.Blur()
	m.imageInput.Blur()
	switch field {
	case fieldContent:
		return m.contentInput.Focus()
	case fieldImage:
		return m.imageInput.Focus()
	}
	return m.titleInput.Focus()
}

func (m Model) formDraft() board.Draft {
	return board.Draft{
		Title:    m.titleInput.Value(),
		Content:  m.contentInput.Value(),
		ImageURL: m.imageInput.Value(),
	}
}

func (m Model) selected() (models.Post, bool) {
	if m.board.ActiveTab() != board.TabHome {
		return models.Post{}, false
	}
	posts := m.board.View()
	if m.cursor < 0 || m.cursor >= len(posts) {
		return models.Post{}, false
	}
	return posts[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.board.View())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}
