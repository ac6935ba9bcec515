package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ringboard/internal/config"
	"github.com/vovakirdan/ringboard/internal/platform/tui"
)

var (
	flagSSHAddr        string
	flagHostKey        string
	flagIdleTimeout    int
	flagServeOverrides []string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the ringboard SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game session on the active layout.
Runs are stored per-server (all users share the same run history).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.ringboard/host_key

Examples:
  ringboard serve                           # Listen on :23234 with auto-generated key
  ringboard serve --ssh :2222               # Listen on port 2222
  ringboard serve --host-key ./my_host_key  # Use specific host key
  ringboard serve --db ./runs.db            # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringArrayVar(&flagServeOverrides, "override", nil, "Portal rule override applied to every session (repeatable)")
}

func runServe(_ *cobra.Command, _ []string) {
	opts, err := config.ParseOverrides(flagServeOverrides)
	if err != nil {
		fatal("Error parsing overrides", err)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Layout:      resolveLayout(),
		Overrides:   opts,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting ringboard SSH server on %s (layout %s)\n", cfg.Address, cfg.Layout.ID)
	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return port
}
