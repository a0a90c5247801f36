package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/hypatia-cli/hypatia/internal/cli/formatter"
	"github.com/hypatia-cli/hypatia/internal/domain"
	"github.com/hypatia-cli/hypatia/internal/service"
)

func newEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Change the recorded answer for an answered question",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ui := app.Conversation.Bank().UI()
			st := formatter.NewStyles(app.Settings.DarkMode(ctx))

			answered, err := app.Reports.Answered(ctx)
			if errors.Is(err, service.ErrNoAnswers) {
				fmt.Println(ui.NoAnswers)
				return nil
			}
			if err != nil {
				return err
			}

			options := make([]huh.Option[string], 0, len(answered))
			for _, e := range answered {
				options = append(options, huh.NewOption(e.Question, e.Question))
			}

			var question string
			pick := huh.NewForm(
				huh.NewGroup(
					huh.NewSelect[string]().
						Title(ui.ReportTitle).
						Options(options...).
						Value(&question),
				),
			).WithTheme(hypatiaHuhTheme(st)).WithShowHelp(false)
			if err := pick.Run(); err != nil {
				return err
			}

			var value string
			for _, e := range answered {
				if e.Question == question {
					value = e.Answer
					break
				}
			}
			value, err = collectReplacement(app, st, question, value)
			if err != nil {
				return err
			}

			if err := app.Reports.EditAnswer(ctx, question, value); err != nil {
				return err
			}
			fmt.Println(ui.Saved)
			return nil
		},
	}
}

// collectReplacement prompts for the new answer with the input widget the
// question's category calls for: select and checkbox questions re-offer
// their fixed options, everything else is a free-text field.
func collectReplacement(app *App, st formatter.Styles, question, current string) (string, error) {
	b := app.Conversation.Bank()
	key, known := b.CategoryOf(question)
	if !known {
		return runTextEdit(st, question, current)
	}
	c, _ := b.Category(key)

	switch c.Kind {
	case domain.InputSelect:
		value := current
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title(question).
					Options(huh.NewOptions(c.Options...)...).
					Value(&value),
			),
		).WithTheme(hypatiaHuhTheme(st)).WithShowHelp(false)
		if err := form.Run(); err != nil {
			return "", err
		}
		return value, nil

	case domain.InputCheckbox:
		picked := splitCheckboxValue(current, c.Options)
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewMultiSelect[string]().
					Title(question).
					Options(huh.NewOptions(c.Options...)...).
					Value(&picked),
			),
		).WithTheme(hypatiaHuhTheme(st)).WithShowHelp(false)
		if err := form.Run(); err != nil {
			return "", err
		}
		return strings.Join(picked, domain.CheckboxSeparator), nil

	default:
		return runTextEdit(st, question, current)
	}
}

func runTextEdit(st formatter.Styles, question, current string) (string, error) {
	value := current
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(question).
				Value(&value),
		),
	).WithTheme(hypatiaHuhTheme(st)).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return "", err
	}
	return value, nil
}

// splitCheckboxValue recovers the selected options from a stored joined
// value, dropping anything no longer in the option set.
func splitCheckboxValue(value string, options []string) []string {
	valid := make(map[string]struct{}, len(options))
	for _, opt := range options {
		valid[opt] = struct{}{}
	}
	var picked []string
	for _, part := range strings.Split(value, domain.CheckboxSeparator) {
		part = strings.TrimSpace(part)
		if _, ok := valid[part]; ok {
			picked = append(picked, part)
		}
	}
	return picked
}
