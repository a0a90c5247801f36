package cli

import (
	"github.com/spf13/cobra"

	"github.com/hypatia-cli/hypatia/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Conversation service.ConversationService
	Transfer     service.TransferService
	Reports      service.ReportService
	Settings     service.SettingsService

	// ExportDir is where export documents are written.
	ExportDir string

	// IsInteractive reports whether stdin is attached to a terminal; the
	// bare root command only drops into chat when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "hypatia" command and registers all
// subcommands against the provided App. Run without arguments on a terminal
// it goes straight into the chat.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "hypatia",
		Short: "Conversational questionnaire with adaptive question scheduling",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runChat(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newChatCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newReportCmd(app),
		newTranscriptCmd(app),
		newSkippedCmd(app),
		newEditCmd(app),
		newResetCmd(app),
		newLangCmd(app),
		newGuideCmd(app),
	)

	return root
}
