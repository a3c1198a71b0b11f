package markdown

import (
	"strings"

	// Packages
	glamour "github.com/charmbracelet/glamour"
	ansi "github.com/charmbracelet/glamour/ansi"
	styles "github.com/charmbracelet/glamour/styles"
	termenv "github.com/muesli/termenv"
	newsapi "github.com/mutablelogic/go-news/pkg/newsapi"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Renderer renders article documents with ANSI styling for the terminal
type Renderer struct {
	*glamour.TermRenderer
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultWidth = 80
	accentColor  = "39"  // blue
	headerColor  = "11"  // yellow
	quoteColor   = "255" // white
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a renderer which wraps text at width columns. When width is
// zero a default is used. Additional glamour options are applied last.
func New(width int, dark bool, opts ...glamour.TermRendererOption) (*Renderer, error) {
	if width <= 0 {
		width = defaultWidth
	}
	opts = append([]glamour.TermRendererOption{
		glamour.WithStyles(Theme(dark)),
		glamour.WithWordWrap(width),
	}, opts...)
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}
	return &Renderer{r}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// DarkBackground reports whether the terminal has a dark background. Call
// this before any interactive program takes over the terminal input.
func DarkBackground() bool {
	return termenv.HasDarkBackground()
}

// Theme returns the glamour style used for article documents
func Theme(dark bool) ansi.StyleConfig {
	style := styles.LightStyleConfig
	if dark {
		style = styles.DarkStyleConfig
	}

	// Headings
	style.H1.Prefix = ""
	style.H1.Suffix = ""
	style.H1.BackgroundColor = nil
	style.H1.Color = types.Ptr(headerColor)
	style.H1.Bold = types.Ptr(true)

	// Titles
	style.Code.Color = types.Ptr(accentColor)
	style.Code.BackgroundColor = nil
	style.Code.Prefix = ""
	style.Code.Suffix = ""

	// URLs
	style.BlockQuote.IndentToken = types.Ptr("┃ ")
	style.BlockQuote.Color = types.Ptr(accentColor)
	if dark {
		style.Emph.Color = types.Ptr(quoteColor)
	}

	return style
}

// RenderArticles renders the document for the articles
func (r *Renderer) RenderArticles(heading string, articles []newsapi.Article) (string, error) {
	out, err := r.Render(Document(heading, articles))
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n") + "\n", nil
}
