package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Home        key.Binding
	Create      key.Binding
	Search      key.Binding
	Newest      key.Binding
	Oldest      key.Binding
	SortUpvotes key.Binding
	Up          key.Binding
	Down        key.Binding
	Upvote      key.Binding
	Edit        key.Binding
	Delete      key.Binding
	Comment     key.Binding
	Submit      key.Binding
	NextField   key.Binding
	Cancel      key.Binding
	Help        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Home:        key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "home")),
		Create:      key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "new post")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Newest:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "newest")),
		Oldest:      key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "oldest")),
		SortUpvotes: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "sort by upvotes")),
		Up:          key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		Upvote:      key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "upvote")),
		Edit:        key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Comment:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "comment")),
		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		NextField:   key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next field")),
		Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Upvote, k.Comment, k.Search, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Upvote, k.Edit, k.Delete, k.Comment},
		{k.Home, k.Create, k.Search, k.Newest, k.Oldest, k.SortUpvotes},
		{k.Submit, k.NextField, k.Cancel, k.Help, k.Quit},
	}
}

// formKeys is the help shown while an input has focus.
type formKeys struct{ keyMap }

func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.NextField, k.Cancel}
}

func (k formKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
