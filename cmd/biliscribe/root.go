package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)
	flags := &runFlags{}

	rootCmd := &cobra.Command{
		Use:   "biliscribe <video-link-or-BV>",
		Short: "Turn Bilibili videos into Markdown transcripts",
		Long: `biliscribe resolves a Bilibili video reference, downloads its published
subtitle track when one exists, and otherwise extracts the audio with yt-dlp
and transcribes it through the OpenAI transcription API. Each run writes one
Markdown document named after the video's BV identifier.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return runAcquisition(cmd, cfg, args[0], flags)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	flags.register(rootCmd)

	rootCmd.AddCommand(newTracksCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newDoctorCommand(ctx))

	return rootCmd
}
