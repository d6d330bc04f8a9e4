// Command hlsfetch downloads an HLS stream to a single local file. It is an
// example consumer of the m3u8 package, adapted from the teacher's hls.go
// Downloader (see SPEC_FULL.md's DOMAIN STACK section), and is not itself
// part of the m3u8 core.
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/quickhls/m3u8/internal/fetch"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		quality string
		threads int
		output  string
		verbose bool
	)

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	cmd := &cobra.Command{
		Use:   "hlsfetch <playlist-url>",
		Short: "Download an HLS stream to a single file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
			if output == "" {
				output = "output.ts"
			}

			client := &http.Client{Timeout: 60 * time.Second}
			d := fetch.New(client, logger, quality, threads)

			logger.Info("starting download", "url", args[0], "quality", quality, "threads", threads)
			if err := d.Download(args[0], output); err != nil {
				logger.Error("download failed", "error", err)
				return fmt.Errorf("download failed: %w", err)
			}
			logger.Info("download complete", "output", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&quality, "quality", "q", "best", `"best", "worst", or "<width>x<height>"`)
	cmd.Flags().IntVarP(&threads, "threads", "t", 4, "number of concurrent segment downloads")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path (default output.ts)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}
