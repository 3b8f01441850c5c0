package main

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"biliscribe/internal/bili"
	"biliscribe/internal/config"
	"biliscribe/internal/logging"
	"biliscribe/internal/pipeline"
	"biliscribe/internal/services/whisper"
	"biliscribe/internal/services/ytdlp"
	"biliscribe/internal/subtitle"
)

type runFlags struct {
	page      int
	prefer    string
	outDir    string
	apiKey    string
	logLevel  string
	logFormat string
}

func (f *runFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.IntVar(&f.page, "page", 0, "Zero-based part index for multi-part videos")
	fl.StringVar(&f.prefer, "prefer", "", `Subtitle preference: "ai" or "native"`)
	fl.StringVarP(&f.outDir, "out", "o", "", "Output directory for the Markdown document")
	fl.StringVar(&f.apiKey, "key", "", "OpenAI API key for the transcription fallback")
	fl.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fl.StringVar(&f.logFormat, "log-format", "", "Log format (console, json)")
}

func runAcquisition(cmd *cobra.Command, cfg *config.Config, input string, flags *runFlags) error {
	logger, err := newRunLogger(cmd, cfg, flags)
	if err != nil {
		return err
	}

	opts, err := resolveRunOptions(cmd, cfg, flags)
	if err != nil {
		return err
	}

	service := bili.NewClient(bili.Config{
		BaseURL:        cfg.Bilibili.BaseURL,
		UserAgent:      cfg.Bilibili.UserAgent,
		TimeoutSeconds: cfg.Bilibili.TimeoutSeconds,
	})
	extractor := ytdlp.NewCLI(
		ytdlp.WithBinary(cfg.YtDlp.Binary),
		ytdlp.WithFormat(cfg.YtDlp.Format),
	)
	transcriber := whisper.NewClient(whisper.Config{
		APIKey:         opts.APIKey,
		BaseURL:        cfg.Whisper.BaseURL,
		Model:          cfg.Whisper.Model,
		Language:       cfg.Whisper.Language,
		TimeoutSeconds: cfg.Whisper.TimeoutSeconds,
	})

	runner := pipeline.NewRunner(opts, service, extractor, transcriber, logger)
	result, err := runner.Run(cmd.Context(), input)
	if err != nil {
		// Expected pipeline failures report to the user on stdout and do not
		// count as command errors; anything else surfaces normally.
		if message, ok := pipeline.UserMessage(err); ok {
			fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.OutputPath)
	return nil
}

func resolveRunOptions(cmd *cobra.Command, cfg *config.Config, flags *runFlags) (pipeline.Options, error) {
	page := cfg.Transcript.Page
	if cmd.Flags().Changed("page") {
		page = flags.page
	}

	preferValue := flags.prefer
	if preferValue == "" {
		preferValue = cfg.Transcript.Prefer
	}
	prefer, ok := subtitle.ParsePreference(preferValue)
	if !ok {
		return pipeline.Options{}, fmt.Errorf("prefer: unsupported value %q (use \"ai\" or \"native\")", preferValue)
	}

	outDir := cfg.Paths.OutputDir
	if flags.outDir != "" {
		expanded, err := config.ExpandPath(flags.outDir)
		if err != nil {
			return pipeline.Options{}, err
		}
		outDir = expanded
	}

	return pipeline.Options{
		Page:      page,
		Prefer:    prefer,
		OutputDir: outDir,
		APIKey:    cfg.ResolveAPIKey(flags.apiKey),
	}, nil
}

func newRunLogger(cmd *cobra.Command, cfg *config.Config, flags *runFlags) (*slog.Logger, error) {
	level := cfg.Logging.Level
	if flags.logLevel != "" {
		level = flags.logLevel
	}
	format := cfg.Logging.Format
	if flags.logFormat != "" {
		format = flags.logFormat
	}
	logger, err := logging.New(logging.Options{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}
	return logger.With(logging.String("run_id", uuid.NewString())), nil
}
