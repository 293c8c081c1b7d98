// loqa-assistant: Task Interview MCP Server
//
// An MCP server that integrates with any AI coding tool to turn
// one-line ideas into fully specified task records through a guided
// interview, with support for pausing, resuming, and multiple
// concurrent interviews.
//
// Usage:
//
//	loqa-assistant serve    # Start MCP server (stdio transport)
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	asserver "github.com/loqalabs/loqa-assistant/internal/server"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("loqa-assistant v%s\n", asserver.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func run() error {
	s, cleanup, err := asserver.New()
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	defer cleanup()

	// Graceful shutdown on interrupt.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		cancel()
	}()

	_ = ctx // stdio server manages its own lifecycle

	// The stdio server runs until the host closes the transport.
	// Anything written to stdout other than protocol traffic would
	// corrupt the session, so all diagnostics go to stderr.
	return server.ServeStdio(s)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `loqa-assistant v%s — Task Interview MCP Server

Usage:
  loqa-assistant serve    Start the MCP server (stdio transport)

Configuration:
  Add to your AI tool's MCP config:

  {
    "mcpServers": {
      "loqa-assistant": {
        "command": "loqa-assistant",
        "args": ["serve"]
      }
    }
  }

Settings live in ~/.loqa-assistant/config.yaml (created on demand;
all fields optional).
`, asserver.Version)
}
