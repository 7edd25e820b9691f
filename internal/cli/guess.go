package cli

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/mcoot/hangbot/internal/model"
)

func newGuessCmd() *cobra.Command {
	var guessed string
	var showCandidates int

	cmd := &cobra.Command{
		Use:   "guess <pattern>",
		Short: "Suggest the next letter for a pattern",
		Long: `Suggest the next letter for a hangman pattern.

Unknown positions are written as '_'; spaces are ignored, so "a _ _ _ e" and
"a___e" are the same pattern. Letters shown in the pattern count as guessed.`,
		Example: `  hangbot guess "a _ _ _ e" --guessed xz`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := model.ParsePattern(strings.Join(args, ""))
			if err := validatePattern(pattern); err != nil {
				return err
			}
			letters := strings.ToLower(guessed)
			if err := validateGuessed(letters); err != nil {
				return err
			}

			guessedSet := model.ParseLetterSet(letters + strings.ReplaceAll(pattern, string(model.Placeholder), ""))
			decision := app.Engine.Decide(pattern, guessedSet)

			view := newDecisionView(pattern, guessedSet, decision)
			if showCandidates > 0 {
				candidates := app.Engine.Candidates(pattern, guessedSet)
				view.Candidates = candidates[:min(showCandidates, len(candidates))]
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(view)
			return nil
		},
	}

	cmd.Flags().StringVarP(&guessed, "guessed", "g", "", "Letters already guessed, e.g. xz or x,z")
	cmd.Flags().IntVar(&showCandidates, "candidates", 0, "List up to this many matching words")

	return cmd
}

// validateGuessed accepts a-z letters, optionally separated by commas or spaces
func validateGuessed(letters string) error {
	for _, r := range letters {
		if r == ',' || unicode.IsSpace(r) {
			continue
		}
		if _, ok := model.LetterIndex(r); !ok {
			return fmt.Errorf("guessed letters must be a-z, got %q", r)
		}
	}
	return nil
}

func validatePattern(pattern string) error {
	if pattern == "" {
		return fmt.Errorf("pattern must not be empty")
	}
	for _, r := range pattern {
		if r == model.Placeholder {
			continue
		}
		if _, ok := model.LetterIndex(r); !ok {
			return fmt.Errorf("pattern may only contain a-z and '%c', got %q", model.Placeholder, r)
		}
	}
	return nil
}
