package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"hobbyhub/internal/board"
	"hobbyhub/internal/models"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6600"))
	tabStyle      = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245"))
	activeTab     = tabStyle.Foreground(lipgloss.Color("255")).Background(lipgloss.Color("236")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	metaStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	bodyStyle     = lipgloss.NewStyle().PaddingLeft(4)
	formBox       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Bold(true)
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(m.siteTitle))
	b.WriteString("\n")
	b.WriteString(m.tabsView())
	b.WriteString("\n\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	if m.board.ActiveTab() == board.TabCreatePost {
		b.WriteString(m.formView("Create a post"))
	} else {
		b.WriteString(m.listView())
	}

	if m.status != "" {
		style := okStyle
		if m.statusErr {
			style = errStyle
		}
		b.WriteString("\n")
		b.WriteString(style.Render(m.status))
	}

	b.WriteString("\n\n")
	if m.focus == focusList {
		b.WriteString(m.help.View(m.keys))
	} else {
		b.WriteString(m.help.View(formKeys{m.keys}))
	}
	return b.String()
}

func (m Model) tabsView() string {
	home, create := tabStyle, tabStyle
	if m.board.ActiveTab() == board.TabCreatePost {
		create = activeTab
	} else {
		home = activeTab
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, home.Render("1 Home"), create.Render("2 Create Post"))
}

func (m Model) listView() string {
	posts := m.board.View()
	if len(posts) == 0 {
		if m.board.Len() == 0 {
			return metaStyle.Render("No posts yet. Press 2 to create one.")
		}
		return metaStyle.Render("No posts match your search.")
	}

	order := "newest first"
	if m.board.SortByUpvotes() {
		order = "most upvoted"
	} else if m.board.OrderBy() == board.OrderOldest {
		order = "oldest first"
	}

	var b strings.Builder
	b.WriteString(metaStyle.Render(fmt.Sprintf("%d of %d posts, %s", len(posts), m.board.Len(), order)))
	b.WriteString("\n")

	target, editing := m.board.Editing()
	for i, p := range posts {
		if editing && target.PostID == p.ID && m.focus == focusForm {
			b.WriteString(m.formView("Editing post"))
			b.WriteString("\n")
			continue
		}
		line := fmt.Sprintf("%s  ▲ %d  💬 %d", p.Title, p.Upvotes, len(p.Comments))
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
			b.WriteString("\n")
			b.WriteString(bodyStyle.Render(m.detailView(p)))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) detailView(p models.Post) string {
	var lines []string
	if p.Content != "" {
		lines = append(lines, p.Content)
	}
	if p.ImageURL != "" {
		lines = append(lines, metaStyle.Render("Image: "+p.ImageURL))
	}
	lines = append(lines, metaStyle.Render("Created At: "+formatTime(p.CreatedAt)))
	for _, c := range p.Comments {
		lines = append(lines, "- "+c.Content)
		lines = append(lines, metaStyle.Render("  Commented At: "+formatTime(c.CreatedAt)))
	}
	if m.focus == focusComment {
		lines = append(lines, m.comment.View())
	}
	return strings.Join(lines, "\n")
}

func (m Model) formView(heading string) string {
	label := func(field int, name string) string {
		if m.focus == focusForm && m.field == field {
			return labelStyle.Render(name)
		}
		return name
	}
	rows := []string{
		headerStyle.Render(heading),
		label(fieldTitle, "Title"),
		m.titleInput.View(),
		label(fieldContent, "Content"),
		m.contentInput.View(),
		label(fieldImage, "Image URL"),
		m.imageInput.View(),
	}
	return formBox.Render(strings.Join(rows, "\n"))
}

func formatTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04:05")
}
