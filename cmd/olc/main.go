package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/redhoddie/olc"
	"github.com/redhoddie/olc/etree"
	"github.com/redhoddie/olc/gemini"
	"github.com/redhoddie/olc/goquery"
	olchttp "github.com/redhoddie/olc/http"
	"github.com/redhoddie/olc/jsonfile"
	olcslog "github.com/redhoddie/olc/slog"
	"github.com/redhoddie/olc/sqlite"
	"github.com/redhoddie/olc/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	var stdin io.Reader
	if stat, err := os.Stdin.Stat(); err == nil && stat.Mode()&os.ModeCharDevice == 0 {
		stdin = os.Stdin
	}

	if err := m.Run(ctx, os.Args[1:], stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Store path. Set before calling Run().
	StorePath string

	// SQLite database, set only when StorePath selects the sqlite backend.
	DB *sqlite.DB

	// Service for end-to-end testing.
	Links olc.LinkService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		StorePath: defaultStorePath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments. stdin should be nil
// unless input is piped into the process.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:      ctx,
		Stdout:   stdout,
		Stderr:   stderr,
		Stdin:    stdin,
		Exporter: etree.NewExporter(),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("olc"),
		kong.Description("OSINT link catalogue with AI classification"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'olc --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// The selected command comes from the parser, not args[0]: global
	// flags like --verbose may precede the command name.
	cmd := strings.Fields(kongCtx.Command())[0]

	logLevel := slog.LevelWarn
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	// Open the store: a path ending in .db selects the SQLite backend,
	// anything else the JSON document store.
	if strings.HasSuffix(m.StorePath, ".db") {
		m.DB = sqlite.NewDB(m.StorePath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set OLC_STORE to use a different store path\n")
			return fmt.Errorf("failed to open store at %q: %w", m.StorePath, err)
		}
		m.Links = sqlite.NewLinkService(m.DB)
	} else {
		store := jsonfile.NewStore(m.StorePath)
		if err := store.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set OLC_STORE to use a different store path\n")
			return fmt.Errorf("failed to open store at %q: %w", m.StorePath, err)
		}
		if store.Corrupted() {
			fmt.Fprintf(stderr, "warning: %s is not valid JSON; starting with an empty catalogue\n", m.StorePath)
		}
		m.Links = store
	}
	defer m.Close()
	deps.Links = m.Links

	// Commands that may reach out to pages get a fetcher regardless of
	// classifier availability (add --no-ai inspects page metadata).
	if cmd == "add" || cmd == "edit" || cmd == "import" {
		fetcher := olchttp.NewFetcher()
		defer fetcher.Close()
		deps.Fetcher = fetcher
		deps.Extractor = trafilatura.NewExtractor()
		deps.Inspector = goquery.NewInspector()

		if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}
			deps.Classifier = gemini.NewClassifier(client)
			if cli.Verbose {
				deps.Classifier = olcslog.NewLoggingClassifier(deps.Classifier, deps.Logger)
			}
		}
	}

	// Import always classifies; fail before reading any input.
	if cmd == "import" && deps.Classifier == nil {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return olc.Errorf(olc.EUNAUTHORIZED, "GEMINI_API_KEY not set")
	}

	return kongCtx.Run(deps)
}

func defaultStorePath() string {
	if path := os.Getenv("OLC_STORE"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "links.json"
	}
	dir := filepath.Join(home, ".olc")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "links.json")
}
