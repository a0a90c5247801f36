package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hypatia-cli/hypatia/internal/domain"
)

func newLangCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "lang [ar|en]",
		Short: "Show or change the questionnaire language",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if len(args) == 0 {
				fmt.Println(app.Settings.Language(ctx))
				return nil
			}
			lang, err := domain.ParseLanguage(args[0])
			if err != nil {
				return err
			}
			if err := app.Settings.SetLanguage(ctx, lang); err != nil {
				return err
			}
			fmt.Println(lang)
			return nil
		},
	}
}

func newGuideCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "guide",
		Short: "Show the user guide",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(app.Conversation.Bank().UI().UserGuide)
			return nil
		},
	}
}
