package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/hypatia-cli/hypatia/internal/cli/formatter"
)

func newResetCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all answers, usage, and priorities",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ui := app.Conversation.Bank().UI()

			if !force {
				st := formatter.NewStyles(app.Settings.DarkMode(ctx))
				confirmed := false
				form := huh.NewForm(
					huh.NewGroup(
						huh.NewConfirm().
							Title(ui.ResetConfirm).
							Value(&confirmed),
					),
				).WithTheme(hypatiaHuhTheme(st)).WithShowHelp(false)
				if err := form.Run(); err != nil {
					return err
				}
				if !confirmed {
					return nil
				}
			}

			if _, err := app.Conversation.Reset(ctx); err != nil {
				return err
			}
			fmt.Println(ui.ResetDone)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")

	return cmd
}
