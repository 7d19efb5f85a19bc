// Package commands implements CLI command handlers for octetpost.
//
// Each subcommand implements the Runner interface:
//   - Init(): parse arguments and load configuration
//   - Run(): execute the command
//   - Name(): return the command name used for dispatch
//
// # Available Commands
//
//   - server: run the HTTP API until SIGINT or SIGTERM
//   - manifest: render a manifest file to stdout
//   - check-config: validate the configuration and print effective values
//
// # Example Usage
//
//	cmd := commands.CreateManifestCommand()
//	ctx := &commands.AppContext{ConfigPath: "/etc/octetpost.toml"}
//	if err := cmd.Init([]string{"orders.toml"}, ctx); err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cmd.Run(); err != nil {
//	    log.Fatalf("%v", err)
//	}
package commands
