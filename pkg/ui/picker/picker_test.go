package picker_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	// Packages
	tea "github.com/charmbracelet/bubbletea"
	news "github.com/mutablelogic/go-news"
	newsapi "github.com/mutablelogic/go-news/pkg/newsapi"
	picker "github.com/mutablelogic/go-news/pkg/ui/picker"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

///////////////////////////////////////////////////////////////////////////////
// TEST SET-UP

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func articles(n int) []newsapi.Article {
	result := make([]newsapi.Article, 0, n)
	for i := range n {
		result = append(result, newsapi.Article{
			Title: fmt.Sprintf("Story %d", i+1),
			Url:   fmt.Sprintf("https://example.com/%d", i+1),
		})
	}
	return result
}

// update sends msg to the model and returns the command it produced
func update(m *picker.Model, msg tea.Msg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_picker_001(t *testing.T) {
	// Cursor stays within the list
	assert := assert.New(t)
	m := picker.New("Top headlines", articles(3), nil)
	assert.Equal(0, m.Cursor())

	update(m, keyUp)
	assert.Equal(0, m.Cursor())
	update(m, keyDown)
	update(m, runes("j"))
	assert.Equal(2, m.Cursor())
	update(m, keyDown)
	assert.Equal(2, m.Cursor())
	update(m, runes("k"))
	assert.Equal(1, m.Cursor())
	assert.Equal("Story 2", m.Selected().Title)
}

func Test_picker_002(t *testing.T) {
	// Enter and o open the selected URL
	assert := assert.New(t)
	var opened []string
	m := picker.New("Top headlines", articles(3), func(url string) error {
		opened = append(opened, url)
		return nil
	})

	update(m, keyDown)
	cmd := update(m, keyEnter)
	require.NotNil(t, cmd)
	assert.Empty(opened, "opened outside the update loop")
	update(m, cmd())
	assert.Equal([]string{"https://example.com/2"}, opened)
	assert.Contains(m.View(), "Opened https://example.com/2")

	update(m, keyDown)
	cmd = update(m, runes("o"))
	require.NotNil(t, cmd)
	update(m, cmd())
	assert.Equal([]string{"https://example.com/2", "https://example.com/3"}, opened)
}

func Test_picker_003(t *testing.T) {
	// Launcher errors are shown, and the picker keeps running
	assert := assert.New(t)
	m := picker.New("Top headlines", articles(1), func(string) error {
		return errors.New("no browser")
	})

	cmd := update(m, keyEnter)
	require.NotNil(t, cmd)
	assert.Nil(update(m, cmd()))
	assert.Contains(m.View(), "no browser")
}

func Test_picker_004(t *testing.T) {
	// Quit keys
	for _, msg := range []tea.KeyMsg{runes("q"), keyEsc, keyCtrlC} {
		t.Run(msg.String(), func(t *testing.T) {
			assert := assert.New(t)
			opened := false
			m := picker.New("Top headlines", articles(2), func(string) error {
				opened = true
				return nil
			})

			cmd := update(m, msg)
			require.NotNil(t, cmd)
			_, quit := cmd().(tea.QuitMsg)
			assert.True(quit)
			assert.False(opened)
			assert.Empty(m.View())
		})
	}
}

func Test_picker_005(t *testing.T) {
	// Nothing to open in an empty list
	assert := assert.New(t)
	m := picker.New("Top headlines", nil, func(string) error {
		t.Fatal("unexpected open")
		return nil
	})
	update(m, keyDown)
	assert.Nil(update(m, keyEnter))
	assert.Nil(m.Selected())
	assert.Contains(m.View(), "Top headlines")
}

func Test_picker_006(t *testing.T) {
	// The view scrolls to keep the cursor visible
	assert := assert.New(t)
	m := picker.New("Top headlines", articles(50), nil)
	update(m, tea.WindowSizeMsg{Width: 60, Height: 12})

	view := m.View()
	assert.Contains(view, "Story 1\n")
	assert.NotContains(view, "Story 20\n")

	for range 19 {
		update(m, keyDown)
	}
	view = m.View()
	assert.Contains(view, "20. Story 20")
	assert.NotContains(view, "Story 1\n")
	assert.Contains(view, "https://example.com/20")
}

func Test_picker_007(t *testing.T) {
	// Long titles are truncated to the width
	assert := assert.New(t)
	m := picker.New("Top headlines", []newsapi.Article{{Title: strings.Repeat("x", 200), Url: "https://example.com"}}, nil)
	update(m, tea.WindowSizeMsg{Width: 40, Height: 20})
	assert.Contains(m.View(), "…")
	assert.NotContains(m.View(), strings.Repeat("x", 40))
}

func Test_picker_008(t *testing.T) {
	// Run requires a terminal
	assert := assert.New(t)
	err := picker.Run(context.Background(), "Top headlines", articles(1), nil)
	assert.ErrorIs(err, news.ErrBadRequest)
}
