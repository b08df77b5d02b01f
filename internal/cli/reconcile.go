package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// ErrIndexDirection is returned unless exactly one of --logical and
// --displayed is given.
var ErrIndexDirection = errors.New("exactly one of --logical or --displayed is required")

// NewReconcileCmd creates the reconcile command, which translates indexes
// between the logical order of the item files and the sorted view.
func NewReconcileCmd() *cobra.Command {
	var (
		flags     listFlags
		logical   []int
		displayed []int
	)

	cmd := &cobra.Command{
		Use:   "reconcile FILE...",
		Short: "Translate item indexes between logical and displayed order",
		Long: `Builds a list from the item files, sorts it, and translates the given
indexes. --logical maps positions in the files to rows of the sorted view;
--displayed maps rows back. Indexes that match no item are omitted.`,
		Example: `  # Where do the first and third items appear when sorted by name?
  listkit reconcile --sort name:asc --logical 0,2 items.yaml

  # Which items are on the first two rows?
  listkit reconcile --sort name:desc --displayed 0,1 items.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toDisplayed := cmd.Flags().Changed("logical")
			if toDisplayed == cmd.Flags().Changed("displayed") {
				return ErrIndexDirection
			}

			ctx := cmd.Context()
			l, err := buildList(ctx, configFromContext(ctx), flags, args)
			if err != nil {
				return err
			}

			var out []int
			if toDisplayed {
				out = l.Reconciler().ToDisplayed(logical)
			} else {
				out = l.Reconciler().ToLogical(displayed)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), joinInts(out))
			return err
		},
	}
	flags.register(cmd)
	cmd.Flags().IntSliceVar(&logical, "logical", nil, "logical item indexes to translate to displayed rows")
	cmd.Flags().IntSliceVar(&displayed, "displayed", nil, "displayed rows to translate to logical item indexes")

	return cmd
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
