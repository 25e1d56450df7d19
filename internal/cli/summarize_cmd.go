package cli

import (
	"errors"
	"fmt"

	"github.com/Ahtty/diary-statistics/internal/cli/formatter"
	"github.com/Ahtty/diary-statistics/internal/intelligence"
	"github.com/Ahtty/diary-statistics/internal/llm"
	"github.com/spf13/cobra"
)

func newSummarizeCmd(app *App) *cobra.Command {
	var userID string
	var month monthValue
	var apiKey string
	var model string

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Generate a monthly narrative from the selected entries",
		Long: `Generate a natural-language summary of the selected diary entries.

The command computes the full set of aggregates locally, condenses them into
a digest, and sends only the digest (plus short excerpts) to the completion
service. The API key is read from --api-key or the environment for this
invocation only; it is never written anywhere.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadScoped(app, cmd, userID, &month)
			if err != nil {
				return err
			}

			digest := intelligence.BuildMonthlyDigest(userID, month.String(), records)
			out := cmd.OutOrStdout()

			narrator, err := app.NewNarrative(apiKey, model)
			if err != nil {
				if errors.Is(err, llm.ErrMissingCredential) {
					// Scripted callers get a hard failure; an interactive
					// session keeps the local stats and a hint instead.
					if app.IsInteractive != nil && !app.IsInteractive() {
						return err
					}
					fmt.Fprintln(out, formatter.FormatDigestFallback(digest))
					fmt.Fprintln(out, formatter.Dim("No API key found. Pass --api-key or set DIARYSTAT_OPENAI_API_KEY to generate a narrative."))
					return nil
				}
				return err
			}

			narrative, err := narrator.MonthlyNarrative(cmd.Context(), digest)
			if err != nil {
				// The aggregates were computed locally, so show them
				// instead of failing the whole command.
				fmt.Fprintln(cmd.ErrOrStderr(), formatter.StyleRed.Render(fmt.Sprintf("Summary unavailable: %v", err)))
				fmt.Fprintln(out, formatter.FormatDigestFallback(digest))
				return nil
			}

			fmt.Fprintln(out, formatter.FormatNarrative(narrative))

			highlights, err := narrator.MonthlyHighlights(cmd.Context(), digest)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), formatter.Dim(fmt.Sprintf("Highlights unavailable: %v", err)))
				return nil
			}
			fmt.Fprintln(out, formatter.FormatHighlights(highlights))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "Scope to a single user ID")
	cmd.Flags().Var(&month, "month", "Scope to a calendar month (YYYY-MM)")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "API key for this invocation (never persisted)")
	cmd.Flags().StringVar(&model, "model", "", "Override the completion model")

	return cmd
}
