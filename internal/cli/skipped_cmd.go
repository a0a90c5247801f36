package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/hypatia-cli/hypatia/internal/cli/formatter"
)

func newSkippedCmd(app *App) *cobra.Command {
	var retry bool

	cmd := &cobra.Command{
		Use:   "skipped",
		Short: "List skipped questions, optionally re-opening one",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ui := app.Conversation.Bank().UI()
			st := formatter.NewStyles(app.Settings.DarkMode(ctx))

			skipped, err := app.Reports.Skipped(ctx)
			if err != nil {
				return err
			}
			if len(skipped) == 0 {
				fmt.Println(ui.NoSkipped)
				return nil
			}
			if !retry {
				fmt.Println(formatter.FormatSkipped(st, ui.SkippedList, skipped))
				return nil
			}

			var choice string
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewSelect[string]().
						Title(ui.SkippedList).
						Options(huh.NewOptions(skipped...)...).
						Value(&choice),
				),
			).WithTheme(hypatiaHuhTheme(st)).WithShowHelp(false)
			if err := form.Run(); err != nil {
				return err
			}
			if _, err := app.Conversation.Retry(ctx, choice); err != nil {
				return err
			}
			fmt.Println(choice)
			return nil
		},
	}

	cmd.Flags().BoolVar(&retry, "retry", false, "Pick a skipped question and put it back in play")

	return cmd
}
