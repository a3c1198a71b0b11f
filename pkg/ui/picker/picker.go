// Package picker implements an interactive article list for terminals using
// the Charm bubbletea framework. The cursor selects an article and the open
// key passes its URL to a launcher, such as a web browser.
package picker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	// Packages
	help "github.com/charmbracelet/bubbles/help"
	key "github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	lipgloss "github.com/charmbracelet/lipgloss"
	truncate "github.com/muesli/reflow/truncate"
	news "github.com/mutablelogic/go-news"
	newsapi "github.com/mutablelogic/go-news/pkg/newsapi"
	term "golang.org/x/term"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// OpenFunc is called with the URL of the selected article
type OpenFunc func(url string) error

// Model is the bubbletea model for the picker
type Model struct {
	heading  string
	articles []newsapi.Article
	open     OpenFunc
	keys     keyMap
	help     help.Model
	cursor   int
	offset   int
	width    int
	height   int
	status   string
	failed   bool
	quitting bool
}

type keyMap struct {
	Up   key.Binding
	Down key.Binding
	Open key.Binding
	Quit key.Binding
}

// openedMsg reports the result of opening a URL
type openedMsg struct {
	url string
	err error
}

///////////////////////////////////////////////////////////////////////////////
// STYLES

var (
	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")) // yellow
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")) // blue
	urlStyle      = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("39"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")) // red
	dimStyle      = lipgloss.NewStyle().Faint(true)
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	cursorMark    = "› "
	defaultWidth  = 80
	defaultHeight = 24
	chromeHeight  = 6 // lines used by everything except the rows
)

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter", "o"),
		key.WithHelp("enter/o", "open"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a picker model for the articles, which calls open when an
// article is chosen
func New(heading string, articles []newsapi.Article, open OpenFunc) *Model {
	return &Model{
		heading:  heading,
		articles: articles,
		open:     open,
		keys:     keys,
		help:     help.New(),
		width:    defaultWidth,
		height:   defaultHeight,
	}
}

// Run shows the picker on the terminal until the user quits or ctx is
// cancelled. Standard input and output must be a terminal.
func Run(ctx context.Context, heading string, articles []newsapi.Article, open OpenFunc) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return news.ErrBadRequest.With("interactive mode requires a terminal")
	}
	if len(articles) == 0 {
		return news.ErrBadRequest.With("no articles to choose from")
	}

	_, err := tea.NewProgram(New(heading, articles, open), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Cursor returns the index of the selected article
func (m *Model) Cursor() int {
	return m.cursor
}

// Selected returns the selected article, or nil if there are none
func (m *Model) Selected() *newsapi.Article {
	if m.cursor < 0 || m.cursor >= len(m.articles) {
		return nil
	}
	return &m.articles[m.cursor]
}

///////////////////////////////////////////////////////////////////////////////
// BUBBLETEA MODEL

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.move(-1)
		case key.Matches(msg, m.keys.Down):
			m.move(1)
		case key.Matches(msg, m.keys.Open):
			if article := m.Selected(); article != nil && m.open != nil {
				return m, m.openCmd(article.Url)
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.scroll()
	case openedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Unable to open %s: %v", msg.url, msg.err)
			m.failed = true
		} else {
			m.status = "Opened " + msg.url
			m.failed = false
		}
	}
	return m, nil
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render(m.heading) + "\n\n")

	// Visible rows
	end := min(m.offset+m.rows(), len(m.articles))
	for i := m.offset; i < end; i++ {
		b.WriteString(m.row(i) + "\n")
	}

	// Selected URL
	if article := m.Selected(); article != nil {
		b.WriteString("\n" + urlStyle.Render(m.truncate(article.Url, 0)) + "\n")
	}

	// Status and help
	switch {
	case m.status == "":
		b.WriteString("\n")
	case m.failed:
		b.WriteString(errorStyle.Render(m.truncate(m.status, 0)) + "\n")
	default:
		b.WriteString(dimStyle.Render(m.truncate(m.status, 0)) + "\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

///////////////////////////////////////////////////////////////////////////////
// KEYMAP

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// move the cursor by delta, stopping at the first and last article
func (m *Model) move(delta int) {
	m.cursor = max(0, min(m.cursor+delta, len(m.articles)-1))
	m.scroll()
}

// scroll keeps the cursor within the visible rows
func (m *Model) scroll() {
	rows := m.rows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	} else if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	m.offset = max(0, m.offset)
}

// rows returns the number of articles which fit on the screen
func (m *Model) rows() int {
	return max(1, m.height-chromeHeight)
}

func (m *Model) row(i int) string {
	index := fmt.Sprintf("%d. ", i+1)
	indent := lipgloss.Width(cursorMark) + len(index)
	title := m.truncate(strings.Join(strings.Fields(m.articles[i].Title), " "), indent)
	if i == m.cursor {
		return selectedStyle.Render(cursorMark + index + title)
	}
	return strings.Repeat(" ", lipgloss.Width(cursorMark)) + index + title
}

// truncate s to the screen width, less indent columns
func (m *Model) truncate(s string, indent int) string {
	w := m.width - indent
	if w <= 1 {
		return s
	}
	return truncate.StringWithTail(s, uint(w), "…")
}

// openCmd opens the URL outside the update loop
func (m *Model) openCmd(url string) tea.Cmd {
	open := m.open
	return func() tea.Msg {
		return openedMsg{url: url, err: open(url)}
	}
}
