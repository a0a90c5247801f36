package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hypatia-cli/hypatia/internal/importer"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a previously exported bundle or a legacy answers file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ui := app.Conversation.Bank().UI()
			result, err := app.Transfer.ImportFile(context.Background(), args[0])
			if err != nil {
				if errors.Is(err, importer.ErrInvalidFormat) {
					return fmt.Errorf("%s: %w", ui.InvalidDataFormat, err)
				}
				return fmt.Errorf("%s: %w", ui.ImportError, err)
			}
			for _, w := range result.Warnings {
				fmt.Fprintln(cmd.ErrOrStderr(), w)
			}
			fmt.Printf("%s (%d)\n", ui.Imported, result.Entries)
			if result.Legacy {
				fmt.Println("legacy format: usage and priorities reset to defaults")
			}
			return nil
		},
	}
}
