package main

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/transdoc"
	"github.com/fwojciec/transdoc/translate"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Extractor transdoc.Extractor
	Service   *translate.Service
	Cache     transdoc.TranslationCache
}

// Vars returns the variables interpolated into help text.
func Vars() kong.Vars {
	var tags []string
	for _, f := range transdoc.Formats() {
		tags = append(tags, f.String())
	}
	return kong.Vars{"formats": strings.Join(tags, ", ")}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log service calls to stderr"`

	Translate TranslateCmd `cmd:"" help:"Translate text"`
	Document  DocumentCmd  `cmd:"" help:"Translate the beginning of a document"`
	Extract   ExtractCmd   `cmd:"" help:"Print the text of a document"`
	Speak     SpeakCmd     `cmd:"" help:"Speak text and save the audio"`
	Languages LanguagesCmd `cmd:"" help:"List supported languages"`
	Cache     CacheCmd     `cmd:"" help:"Manage the translation cache"`
}

// TranslateCmd is the "translate" subcommand.
type TranslateCmd struct {
	Text  string `arg:"" help:"Text to translate"`
	To    string `short:"t" required:"" help:"Target language name or code"`
	Speak bool   `short:"s" help:"Also save spoken audio of the translation"`
	JSON  bool   `help:"Print the result as JSON"`
}

// DocumentCmd is the "document" subcommand.
type DocumentCmd struct {
	Path   string `arg:"" type:"existingfile" help:"Document to translate"`
	To     string `short:"t" required:"" help:"Target language name or code"`
	Speak  bool   `short:"s" help:"Also save spoken audio of the translation"`
	Format string `short:"f" help:"Document format (${formats}); detected from the extension by default"`
	JSON   bool   `help:"Print the result as JSON"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Path   string `arg:"" type:"existingfile" help:"Document to read"`
	Format string `short:"f" help:"Document format (${formats}); detected from the extension by default"`
}

// SpeakCmd is the "speak" subcommand.
type SpeakCmd struct {
	Text string `arg:"" help:"Text to speak"`
	Lang string `short:"l" required:"" help:"Speech language name or code"`
}

// LanguagesCmd is the "languages" subcommand.
type LanguagesCmd struct{}

// CacheCmd groups the "cache" subcommands.
type CacheCmd struct {
	Purge CachePurgeCmd `cmd:"" help:"Remove cached translations older than a duration"`
}

// CachePurgeCmd is the "cache purge" subcommand.
type CachePurgeCmd struct {
	OlderThan time.Duration `default:"720h" help:"Remove entries older than this (e.g. 24h, 0 removes all)"`
}
