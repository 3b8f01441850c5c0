package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"biliscribe/internal/deps"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check external tools and credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := deps.CheckBinaries(deps.Defaults(cfg.YtDlp.Binary))

			rows := make([][]string, 0, len(statuses)+1)
			healthy := true
			for _, status := range statuses {
				state := "ok"
				if !status.Available {
					state = "missing"
					healthy = false
					if status.Detail != "" {
						state = "missing (" + status.Detail + ")"
					}
				}
				rows = append(rows, []string{status.Name, state, status.Description})
			}

			credential := "configured"
			if cfg.ResolveAPIKey("") == "" {
				credential = "not set"
				healthy = false
			}
			rows = append(rows, []string{"openai api key", credential, "transcription for videos without subtitles"})

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Dependency", "Status", "Purpose"}, rows))
			if healthy {
				fmt.Fprintln(out, "All checks passed; both acquisition paths are available.")
			} else {
				fmt.Fprintln(out, "Subtitle downloads still work; the audio fallback needs the items above.")
			}
			return nil
		},
	}
}
