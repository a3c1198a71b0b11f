package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	newsapi "github.com/mutablelogic/go-news/pkg/newsapi"
	markdown "github.com/mutablelogic/go-news/pkg/ui/markdown"
	version "github.com/mutablelogic/go-news/pkg/version"
	gotenv "github.com/subosito/gotenv"
	trace "go.opentelemetry.io/otel/trace"
	term "golang.org/x/term"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool             `name:"debug" help:"Enable debug output"`
	Verbose bool             `name:"verbose" help:"Enable verbose output"`
	Version kong.VersionFlag `name:"version" help:"Print version and exit"`

	// NewsAPI
	NewsAPI `embed:"" help:"NewsAPI configuration"`

	// Context
	ctx    context.Context
	tracer trace.Tracer
	stdout io.Writer
	width  int
	dark   bool
}

type NewsAPI struct {
	APIKey   string        `name:"api-key" env:"API_KEY,NEWSAPI_KEY" help:"NewsAPI key"`
	Endpoint string        `name:"api-endpoint" env:"NEWSAPI_ENDPOINT" help:"NewsAPI base URL" default:"https://newsapi.org/v2"`
	Timeout  time.Duration `name:"timeout" help:"Request timeout" default:"30s"`
}

type CLI struct {
	Globals

	// Commands
	Fetch     FetchCommand     `cmd:"" name:"fetch" default:"withargs" help:"Fetch top headlines or search articles."`
	Countries CountriesCommand `cmd:"" name:"countries" help:"List supported countries."`
	About     VersionCommand   `cmd:"" name:"version" help:"Print version information."`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	configPath = "~/.config/news/config.json"
)

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Load environment from .env in the working directory, if it exists
	_ = gotenv.Load()

	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("News headlines and search from the command line"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Configuration(kong.JSON, configPath),
		kong.Vars{
			"version":   version.Version(),
			"countries": strings.Join(countryCodes(), ", "),
		},
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx

	// Terminal
	cli.Globals.stdout = os.Stdout
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			cli.Globals.width = w
		}
		cli.Globals.dark = markdown.DarkBackground()
	}

	// Tracing
	provider, shutdown, err := newTracerProvider(ctx, execName())
	cmd.FatalIfErrorf(err)
	cli.Globals.tracer = provider.Tracer(execName())

	// Run the command, then flush any spans
	err = cmd.Run(&cli.Globals)
	shutdownTracerProvider(shutdown)
	cmd.FatalIfErrorf(err)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}

func countryCodes() []string {
	result := make([]string, 0, len(newsapi.Countries()))
	for _, country := range newsapi.Countries() {
		result = append(result, country.String())
	}
	return result
}

func shutdownTracerProvider(shutdown func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = shutdown(ctx)
}
