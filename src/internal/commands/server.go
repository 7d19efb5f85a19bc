package commands

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/octetpost/octetpost/src/internal/components"
	"github.com/octetpost/octetpost/src/internal/config"
	"github.com/octetpost/octetpost/src/internal/log"
)

// ServerCommand implements the server command for running the HTTP API server.
type ServerCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config

	// Command-specific flags
	bindAddr string

	server *components.APIServer
}

// CreateServerCommand creates a new server command.
func CreateServerCommand() Runner {
	return &ServerCommand{}
}

// Name returns the command name.
func (c *ServerCommand) Name() string {
	return "server"
}

// Init initializes the server command with arguments.
func (c *ServerCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx
	c.fs = flag.NewFlagSet("server", flag.ContinueOnError)

	c.fs.StringVar(&c.bindAddr, "bind", "", "Address to bind the HTTP server, overrides server.bind_address (e.g., 0.0.0.0:8000)")

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadConfig(ctx.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Flag value wins over the config file
	if c.bindAddr != "" {
		cfg.Server.BindAddress = c.bindAddr
	}

	if err := cfg.ValidateConfig(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	c.cfg = cfg

	c.server = components.NewAPIServer(cfg)

	return nil
}

// Run starts the HTTP API server and blocks until a signal or a server error.
func (c *ServerCommand) Run() error {
	if path := c.cfg.GetAbsConfigFilePath(); path != "" {
		log.Infof("Configuration loaded from: %s", path)
	} else {
		log.Infof("No configuration file given, using defaults")
	}

	if err := c.server.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", c.server.Name(), err)
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err, ok := <-c.server.Errors():
		if ok && err != nil {
			if stopErr := c.server.Stop(); stopErr != nil {
				log.Errorf("Failed to stop %s: %v", c.server.Name(), stopErr)
			}
			return fmt.Errorf("server error: %w", err)
		}
		return nil

	case sig := <-shutdown:
		log.Infof("Received signal %v, shutting down server...", sig)

		if err := c.server.Stop(); err != nil {
			return err
		}

		log.Infof("Server stopped gracefully")
	}

	return nil
}
