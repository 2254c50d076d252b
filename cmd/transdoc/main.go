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
	"github.com/fwojciec/transdoc/etree"
	"github.com/fwojciec/transdoc/extract"
	"github.com/fwojciec/transdoc/fitz"
	"github.com/fwojciec/transdoc/fs"
	"github.com/fwojciec/transdoc/gemini"
	"github.com/fwojciec/transdoc/gtts"
	tdslog "github.com/fwojciec/transdoc/slog"
	"github.com/fwojciec/transdoc/sqlite"
	"github.com/fwojciec/transdoc/translate"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	_ = godotenv.Load() // .env is optional

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Configuration. Set before calling Run().
	DBPath   string
	AudioDir string
	Model    string
	APIKey   string

	// SQLite database backing the translation cache.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main configured from the environment.
func NewMain() *Main {
	return &Main{
		DBPath:   defaultDBPath(),
		AudioDir: envOr("TRANSDOC_AUDIO_DIR", fs.DefaultAudioDir),
		Model:    envOr("TRANSDOC_MODEL", gemini.DefaultModel),
		APIKey:   os.Getenv("GEMINI_API_KEY"),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("transdoc"),
		kong.Description("Translate text and documents, and optionally speak the result."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		Vars(),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'transdoc --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	deps.Extractor = tdslog.NewLoggingExtractor(&extract.Dispatcher{
		Plain:         extract.NewPlainExtractor(),
		WordProcessor: etree.NewExtractor(),
		PDF:           fitz.NewExtractor(),
	}, logger)

	svc := &translate.Service{Extractor: deps.Extractor}
	deps.Service = svc

	if cmd == "translate" || cmd == "document" {
		if m.APIKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  m.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		if err := m.openDB(stderr); err != nil {
			return err
		}
		defer m.Close()

		deps.Cache = sqlite.NewTranslationCache(m.DB)
		svc.Translator = tdslog.NewLoggingTranslator(&translate.CachingTranslator{
			Translator: gemini.NewTranslator(client, m.Model),
			Cache:      deps.Cache,
		}, logger)
	}

	if cmd == "cache" {
		if err := m.openDB(stderr); err != nil {
			return err
		}
		defer m.Close()

		deps.Cache = sqlite.NewTranslationCache(m.DB)
	}

	speak := cmd == "speak" ||
		(cmd == "translate" && cli.Translate.Speak) ||
		(cmd == "document" && cli.Document.Speak)
	if speak {
		svc.Speak = cmd != "speak"
		svc.Synthesizer = tdslog.NewLoggingSynthesizer(gtts.NewSynthesizer(), logger)
		svc.Audio = tdslog.NewLoggingAudioStore(fs.NewAudioStore(m.AudioDir), logger)
	}

	return kongCtx.Run(deps)
}

// openDB opens the translation cache database.
func (m *Main) openDB(stderr io.Writer) error {
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set TRANSDOC_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	return nil
}

func defaultDBPath() string {
	if path := os.Getenv("TRANSDOC_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "transdoc.db"
	}
	dir := filepath.Join(home, ".transdoc")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "cache.db")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
