package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hypatia-cli/hypatia/internal/service"
)

func newExportCmd(app *App) *cobra.Command {
	var dir string
	var stdout bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export answers, usage, and priorities as a portable JSON bundle",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if stdout {
				data, err := app.Transfer.ExportBytes(ctx, service.ExportManual)
				if err != nil {
					return err
				}
				_, err = os.Stdout.Write(append(data, '\n'))
				return err
			}
			if dir == "" {
				dir = app.ExportDir
			}
			path, err := app.Transfer.Export(ctx, service.ExportManual, dir)
			if err != nil {
				return err
			}
			ui := app.Conversation.Bank().UI()
			fmt.Printf("%s %s\n", ui.Exported, path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Directory to write the bundle into")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "Write the bundle to stdout instead of a file")

	return cmd
}
