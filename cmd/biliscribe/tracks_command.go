package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	xlanguage "golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"biliscribe/internal/bili"
	"biliscribe/internal/bvid"
	"biliscribe/internal/language"
	"biliscribe/internal/subtitle"
)

func newTracksCommand(ctx *commandContext) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "tracks <video-link-or-BV>",
		Short: "List the published subtitle tracks for a video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			reference, ok := bvid.Extract(args[0])
			if !ok {
				return fmt.Errorf("no BV identifier in %q", args[0])
			}

			client := bili.NewClient(bili.Config{
				BaseURL:        cfg.Bilibili.BaseURL,
				UserAgent:      cfg.Bilibili.UserAgent,
				TimeoutSeconds: cfg.Bilibili.TimeoutSeconds,
			})
			view, err := client.View(cmd.Context(), reference)
			if err != nil {
				return fmt.Errorf("fetch video metadata: %w", err)
			}
			cid, ok := bili.ResolveCID(view, page)
			if !ok {
				return fmt.Errorf("video %s has no content id", reference)
			}
			tracks, err := client.SubtitleCatalog(cmd.Context(), reference, cid)
			if err != nil {
				return fmt.Errorf("fetch subtitle catalog: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", view.Title, reference)
			if len(tracks) == 0 {
				fmt.Fprintln(out, "No subtitle tracks published; a run would fall back to audio transcription.")
				return nil
			}

			rows := make([][]string, 0, len(tracks))
			for i, track := range tracks {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					track.Lan,
					track.LanDoc,
					canonicalTag(track.Lan),
					languageName(track.Lan),
				})
			}
			fmt.Fprintln(out, renderTable([]string{"#", "Lan", "Description", "Tag", "Language"}, rows))

			chosen := subtitle.Select(tracks, subtitle.PreferAI)
			fmt.Fprintf(out, "Default selection (prefer=ai): %s\n", subtitle.SourceTag(chosen))
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "Zero-based part index for multi-part videos")
	return cmd
}

// languageName resolves a track's language tag to an English display name,
// preferring full BCP 47 parsing over the small built-in table.
func languageName(code string) string {
	if tag, err := xlanguage.Parse(code); err == nil {
		if name := display.English.Tags().Name(tag); name != "" {
			return name
		}
	}
	return language.DisplayName(code)
}

// canonicalTag normalizes a track's lan value to its BCP 47 form. Bilibili's
// synthetic values like "ai-zh" do not parse and render as "-".
func canonicalTag(code string) string {
	tag, err := xlanguage.Parse(code)
	if err != nil {
		return "-"
	}
	return tag.String()
}
