package main

import (
	"time"

	"github.com/handiism/discogs-labels/internal/config"
	"github.com/handiism/discogs-labels/internal/generate"
	"github.com/handiism/discogs-labels/internal/logger"
	"github.com/handiism/discogs-labels/internal/model"
	"github.com/handiism/discogs-labels/internal/printing"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rendererFactory builds the PDF renderer once the flags are known.
type rendererFactory func(cfg *printing.ChromedpConfig) printing.PDFRenderer

func newChromedpRenderer(cfg *printing.ChromedpConfig) printing.PDFRenderer {
	return printing.NewChromedpRenderer(cfg)
}

type rootOptions struct {
	configPath  string
	inputPath   string
	outputPath  string
	profile     string
	inventory   bool
	skipInvalid bool
	noGrid      bool
	htmlPath    string
	title       string
	chromeURL   string
	noSandbox   bool
	timeout     time.Duration
	verbose     bool
}

func newRootCommand(newRenderer rendererFactory) *cobra.Command {
	var opts rootOptions

	rootCmd := &cobra.Command{
		Use:           "discogs-labels",
		Short:         "Print QR code labels for a Discogs collection or inventory export",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, newRenderer)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Configuration file path")
	flags.StringVarP(&opts.inputPath, "file", "f", "", "Discogs CSV export")
	flags.StringVarP(&opts.outputPath, "out", "o", "", "Output PDF path")
	flags.StringVarP(&opts.profile, "profile", "p", "", "Label profile (configuration section)")
	flags.BoolVarP(&opts.inventory, "inventory", "i", false, "Input is an inventory export instead of a collection export")
	flags.BoolVar(&opts.skipInvalid, "skip-invalid", false, "Skip rows without an identifier instead of failing")
	flags.BoolVar(&opts.noGrid, "no-grid", false, "Do not draw cell borders")
	flags.StringVar(&opts.htmlPath, "html", "", "Also write the laid out HTML sheet to this path")
	flags.StringVar(&opts.title, "title", "", "PDF document title")
	flags.StringVar(&opts.chromeURL, "chrome-url", "", "DevTools URL of a running Chrome (default: launch one)")
	flags.BoolVar(&opts.noSandbox, "no-sandbox", false, "Run Chrome without its sandbox")
	flags.DurationVar(&opts.timeout, "timeout", 30*time.Second, "PDF rendering timeout")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Show debug output")

	for _, name := range []string{"config", "file", "out", "profile"} {
		_ = rootCmd.MarkFlagRequired(name)
	}

	return rootCmd
}

func runGenerate(cmd *cobra.Command, opts rootOptions, newRenderer rendererFactory) error {
	logCfg := logger.DefaultConfig()
	if opts.verbose {
		logCfg = logger.VerboseConfig()
	}
	logCfg.Writer = cmd.ErrOrStderr()

	log, err := logger.New(logCfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	profile, err := config.LoadProfile(opts.configPath, opts.profile)
	if err != nil {
		return err
	}
	log.Debug("profile resolved",
		zap.String("profile", profile.Name),
		zap.Int("rows", profile.Rows),
		zap.Int("columns", profile.Columns),
		zap.Float64("cell", profile.CellDimension),
		zap.Stringer("unit", profile.Unit))

	renderer := newRenderer(&printing.ChromedpConfig{
		DefaultTimeout: opts.timeout,
		RemoteURL:      opts.chromeURL,
		NoSandbox:      opts.noSandbox,
		Logger:         log.Named("chromedp"),
	})
	defer renderer.Close()

	manager := generate.NewManager(profile, renderer, progressLogger(log))
	result, err := manager.Run(cmd.Context(), generate.Options{
		InputPath:   opts.inputPath,
		OutputPath:  opts.outputPath,
		Shape:       model.ShapeFor(opts.inventory),
		SkipInvalid: opts.skipInvalid,
		GridLines:   !opts.noGrid,
		HTMLPath:    opts.htmlPath,
		Title:       opts.title,
		Timeout:     opts.timeout,
	})
	if err != nil {
		return err
	}

	log.Debug("done", zap.Duration("duration", result.Duration), zap.Bool("written", result.Written))
	return nil
}

// progressLogger maps pipeline events onto log levels.
func progressLogger(log *zap.Logger) func(generate.ProgressEvent) {
	return func(event generate.ProgressEvent) {
		switch event.Level {
		case generate.LevelVerbose:
			log.Debug(event.Message)
		case generate.LevelWarning:
			log.Warn(event.Message)
		case generate.LevelError:
			log.Error(event.Message)
		default:
			log.Info(event.Message)
		}
	}
}
