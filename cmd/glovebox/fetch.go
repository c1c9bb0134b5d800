// ABOUTME: CLI command for downloading a pre-trained vector file.
// ABOUTME: Streams the configured or given URL to the vector path, Ctrl+C aborts cleanly.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/2389-research/glovebox/internal/config"
	"github.com/2389-research/glovebox/internal/storage"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [url]",
	Short: "Download a vector file",
	Long: `Download a pre-trained vector file to the configured vector path. With no
argument the configured vectors.url is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFetch,
}

// Flags
var fetchOut string

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringVar(&fetchOut, "out", "", "Destination path (default: configured vector path)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	url := globalConfig.Vectors.URL
	if len(args) == 1 {
		url = args[0]
	}
	if url == "" {
		return fmt.Errorf("no URL given and no vectors.url configured")
	}

	dest := fetchOut
	if dest == "" {
		path, err := globalConfig.GetVectorsPath()
		if err != nil {
			return fmt.Errorf("no destination (pass --out or configure a vector path): %w", err)
		}
		dest = path
	} else {
		path, err := config.ExpandPath(dest)
		if err != nil {
			return err
		}
		dest = path
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fmt.Printf("Downloading %s...\n", url)
	n, err := storage.Fetch(ctx, url, dest)
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	fmt.Printf("Saved %d bytes to %s\n", n, dest)
	return nil
}
