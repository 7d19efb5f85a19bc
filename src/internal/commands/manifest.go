package commands

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/octetpost/octetpost/src/internal/config"
	"github.com/octetpost/octetpost/src/internal/log"
	"github.com/octetpost/octetpost/src/internal/manifest"
)

// ManifestCommand renders a manifest file the same way POST /5/manifest does.
type ManifestCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config

	contentType string
	path        string
}

// CreateManifestCommand creates a new manifest command.
func CreateManifestCommand() Runner {
	return &ManifestCommand{}
}

// Name returns the command name.
func (c *ManifestCommand) Name() string {
	return "manifest"
}

// Init parses flags and the manifest file argument ("-" reads stdin).
func (c *ManifestCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx
	c.fs = flag.NewFlagSet("manifest", flag.ContinueOnError)
	c.fs.StringVar(&c.contentType, "type", manifest.MediaTypeTOML, "Media type of the manifest file")

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	if c.fs.NArg() != 1 {
		return fmt.Errorf("expected exactly one manifest file, got %d", c.fs.NArg())
	}
	c.path = c.fs.Arg(0)

	// stdout carries the rendered orders
	log.SetOutput(os.Stderr, nil)

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	return nil
}

// Run prints the rendered orders. An empty manifest prints nothing.
func (c *ManifestCommand) Run() error {
	var (
		content []byte
		err     error
	)
	if c.path == "-" {
		content, err = io.ReadAll(os.Stdin)
	} else {
		content, err = os.ReadFile(c.path)
	}
	if err != nil {
		return fmt.Errorf("failed to read manifest: %w", err)
	}

	parser, err := manifest.NewParser(c.cfg.Manifest.LineTemplate)
	if err != nil {
		return err
	}

	m, err := parser.Parse(c.contentType, content)
	if err != nil {
		return err
	}

	if m.IsEmpty() {
		log.Warnf("Manifest %s has no orders", c.path)
		return nil
	}

	log.Debugf("Rendering %d orders from %s", m.Len(), c.path)
	_, err = fmt.Fprintln(c.ctx.stdout(), parser.Render(m))
	return err
}
