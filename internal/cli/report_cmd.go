package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hypatia-cli/hypatia/internal/cli/formatter"
	"github.com/hypatia-cli/hypatia/internal/service"
)

func newReportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show all answered questions grouped by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ui := app.Conversation.Bank().UI()
			st := formatter.NewStyles(app.Settings.DarkMode(ctx))

			sections, err := app.Reports.Report(ctx)
			if errors.Is(err, service.ErrNoAnswers) {
				fmt.Println(ui.NoAnswers)
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatReport(st, ui.ReportTitle, sections))
			return nil
		},
	}
}

func newTranscriptCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "transcript",
		Short: "Replay the recorded conversation in question-bank order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ui := app.Conversation.Bank().UI()
			st := formatter.NewStyles(app.Settings.DarkMode(ctx))

			entries, err := app.Conversation.Transcript(ctx)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println(ui.NoAnswers)
				return nil
			}
			fmt.Println(formatter.FormatTranscript(st, entries, ui.SkipLabel))
			return nil
		},
	}
}
