package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/redhoddie/olc"
	"github.com/redhoddie/olc/etree"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	// Stdin is non-nil only when input is piped into the process.
	Stdin io.Reader

	Links      olc.LinkService
	Classifier olc.Classifier
	Fetcher    olc.Fetcher
	Extractor  olc.Extractor
	Inspector  olc.Inspector
	Exporter   *etree.Exporter
	Logger     *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Add    AddCmd    `cmd:"" help:"Add a link (metadata auto-filled by the classifier when omitted)"`
	Ls     LsCmd     `cmd:"" help:"List all links"`
	Find   FindCmd   `cmd:"" help:"Search links"`
	View   ViewCmd   `cmd:"" help:"View detailed information for a link"`
	Edit   EditCmd   `cmd:"" help:"Edit a link"`
	Rm     RmCmd     `cmd:"" help:"Remove a link"`
	Import ImportCmd `cmd:"" help:"Import links from stdin, one URL per line"`
	Export ExportCmd `cmd:"" help:"Export the catalogue"`

	Verbose bool `short:"v" help:"Enable debug logging"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Link        string   `short:"l" help:"Domain name (example.com) or URL (https://example.com); read from stdin when piped"`
	Name        string   `short:"n" help:"Name of the resource"`
	Desc        string   `short:"d" help:"Description"`
	Type        string   `short:"t" help:"Main type/category"`
	Sub         []string `help:"Comma-separated subtypes" sep:","`
	Tags        []string `help:"Comma-separated tags" sep:","`
	Roles       []string `help:"Comma-separated user roles" sep:","`
	Lang        string   `help:"Language (default: en)"`
	Cost        string   `help:"Cost model (free/freemium/paid)"`
	Account     *bool    `help:"Requires account (true/false)"`
	DataTypes   []string `name:"data-types" help:"Comma-separated data types" sep:","`
	API         *bool    `help:"API available (true/false)"`
	Rating      *float64 `help:"Rating (0-5)"`
	RatingCount *int     `name:"rating-count" help:"Number of ratings"`
	NoAI        bool     `name:"no-ai" help:"Skip the classifier; fill name/description from the page's own metadata"`
}

// LsCmd is the "ls" subcommand.
type LsCmd struct{}

// FindCmd is the "find" subcommand.
type FindCmd struct {
	Query string `arg:"" help:"Search term"`
}

// ViewCmd is the "view" subcommand.
type ViewCmd struct {
	Link string `short:"l" required:"" help:"Domain name or URL to view"`
}

// EditCmd is the "edit" subcommand. With no field flags the link is
// reclassified and the classifier-fillable fields are overwritten.
type EditCmd struct {
	Link        string    `short:"l" required:"" help:"Domain name or URL to edit"`
	Name        *string   `short:"n" help:"New name"`
	Desc        *string   `short:"d" help:"New description"`
	Type        *string   `short:"t" help:"New type"`
	Sub         *[]string `help:"New comma-separated subtypes" sep:","`
	Tags        *[]string `help:"New comma-separated tags" sep:","`
	Roles       *[]string `help:"New comma-separated user roles" sep:","`
	Lang        *string   `help:"New language"`
	Cost        *string   `help:"New cost model"`
	Account     *bool     `help:"New requires account (true/false)"`
	DataTypes   *[]string `name:"data-types" help:"New comma-separated data types" sep:","`
	API         *bool     `help:"New API available (true/false)"`
	Rating      *float64  `help:"New rating (0-5)"`
	RatingCount *int      `name:"rating-count" help:"New rating count"`
}

// RmCmd is the "rm" subcommand.
type RmCmd struct {
	Link string `short:"l" help:"Domain name or URL to remove; read from stdin when piped"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Concurrency int     `short:"c" default:"4" help:"Concurrent classification limit"`
	RPS         float64 `name:"rps" default:"1" help:"Max page fetches per second per host"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Format string `short:"f" enum:"json,opml" default:"json" help:"Output format (json or opml)"`
}
