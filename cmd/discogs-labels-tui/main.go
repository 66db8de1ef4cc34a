package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/handiism/discogs-labels/internal/logger"
	"github.com/handiism/discogs-labels/internal/printing"
	"github.com/handiism/discogs-labels/internal/tui"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		inputPath  string
		outputPath string
		chromeURL  string
		noSandbox  bool
		logPath    string
	)

	cmd := &cobra.Command{
		Use:           "discogs-labels-tui",
		Short:         "Interactive label sheet generator for Discogs exports",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputPath == "" {
				outputPath = defaultOutput(inputPath)
			}

			// The screen belongs to Bubble Tea; renderer logs go to a file
			// or nowhere.
			logCfg := logger.VerboseConfig()
			logCfg.Format = "json"
			logCfg.Output = logPath
			if logPath == "" {
				logCfg.Writer = io.Discard
			}
			log, err := logger.New(logCfg)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			renderer := printing.NewChromedpRenderer(&printing.ChromedpConfig{
				RemoteURL: chromeURL,
				NoSandbox: noSandbox,
				Logger:    log.Named("chromedp"),
			})
			defer renderer.Close()

			return tui.Run(tui.Options{
				ConfigPath: configPath,
				InputPath:  inputPath,
				OutputPath: outputPath,
				Renderer:   renderer,
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "Configuration file path")
	flags.StringVarP(&inputPath, "file", "f", "", "Discogs CSV export")
	flags.StringVarP(&outputPath, "out", "o", "", "Output PDF path (default: next to the export)")
	flags.StringVar(&chromeURL, "chrome-url", "", "DevTools URL of a running Chrome (default: launch one)")
	flags.BoolVar(&noSandbox, "no-sandbox", false, "Run Chrome without its sandbox")
	flags.StringVar(&logPath, "log", "", "Write debug logs to this file")

	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// defaultOutput places the PDF next to the export: crate.csv -> crate.pdf.
func defaultOutput(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".pdf"
}
