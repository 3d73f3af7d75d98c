package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/bitmap-bundle-mcp/internal/config"
	"github.com/ironsheep/bitmap-bundle-mcp/internal/imaging"
	"github.com/ironsheep/bitmap-bundle-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("bitmap-bundle-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("bitmap-bundle-mcp - MCP server for multi-resolution bitmap bundles")
			fmt.Println()
			fmt.Println("Usage: bitmap-bundle-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Printf("  %s=path.toml   Read settings from a TOML file\n", config.EnvConfigFile)
			fmt.Printf("  %s=debug     Enable debug logging\n", config.EnvLogLevel)
			fmt.Printf("  %s=name         Resample filter (default %s)\n", config.EnvFilter, imaging.DefaultFilter)
			fmt.Printf("  %s=n       Maximum registered bundles (0 = no limit)\n", config.EnvMaxBundles)
			fmt.Printf("  %s=n     Largest requested width or height (default %d)\n", config.EnvMaxDimension, config.DefaultMaxDimension)
			fmt.Println()
			fmt.Println("Filters:")
			for _, name := range imaging.FilterNames() {
				fmt.Printf("  %s\n", name)
			}
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	if cfg.Debug() {
		log.Printf("Bitmap Bundle MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv, err := server.NewWithConfig(cfg)
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
