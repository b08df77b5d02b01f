package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/listkit/internal/typeahead"
)

// ErrNoMatch is returned when type-ahead input selects nothing.
var ErrNoMatch = errors.New("no item matches")

// NewMatchCmd creates the match command, which reports the row type-ahead
// would select for some typed text.
func NewMatchCmd() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "match TEXT FILE...",
		Short: "Show which item type-ahead selects for some text",
		Long: `Types TEXT into a list built from the item files and prints the selected
row. Items starting with TEXT win, the smallest first; otherwise the
smallest item sorting after TEXT is selected.`,
		Example: `  # Prints the row of "signal" in a list holding sys and signal
  listkit match s items.yaml

  # Match against the "name" column of a sorted table
  listkit match --column name --sort size:desc re tables.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := *configFromContext(ctx)
			cfg.List.TypingSensitive = true

			l, err := buildList(ctx, &cfg, flags, args[1:])
			if err != nil {
				return err
			}

			ev := typeahead.KeyEvent{Kind: typeahead.KeyCharacters, Runes: []rune(args[0])}
			if !l.HandleKey(ev) {
				return fmt.Errorf("%w %q", ErrNoMatch, args[0])
			}

			row := l.DisplayedSelection()[0]
			logical := l.Selection()[0]
			value := l.DisplayedValues(l.TypingColumn().Key)[row]
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "row %d (item %d): %v\n", row, logical, value)
			return err
		},
	}
	flags.register(cmd)

	return cmd
}
