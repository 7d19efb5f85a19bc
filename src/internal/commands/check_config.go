package commands

import (
	"flag"
	"fmt"

	"github.com/octetpost/octetpost/src/internal/config"
	"github.com/octetpost/octetpost/src/internal/log"
)

// CheckConfigCommand validates the configuration and prints the effective values.
type CheckConfigCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config

	quiet bool
}

// CreateCheckConfigCommand creates a new check-config command.
func CreateCheckConfigCommand() Runner {
	return &CheckConfigCommand{}
}

// Name returns the command name.
func (c *CheckConfigCommand) Name() string {
	return "check-config"
}

// Init initializes the check-config command with arguments.
func (c *CheckConfigCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx
	c.fs = flag.NewFlagSet("check-config", flag.ContinueOnError)
	c.fs.BoolVar(&c.quiet, "quiet", false, "Only report validity, do not print the effective configuration")

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	return nil
}

// Run prints the effective configuration with defaults applied.
func (c *CheckConfigCommand) Run() error {
	log.Infof("Configuration is valid")

	if c.quiet {
		return nil
	}

	buf, err := c.cfg.SerializeConfig()
	if err != nil {
		return fmt.Errorf("failed to serialize configuration: %w", err)
	}

	_, err = c.ctx.stdout().Write(buf.Bytes())
	return err
}
