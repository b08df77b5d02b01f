package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/listkit/internal/listmodel"
	listview "github.com/rshade/listkit/internal/tui/list"
)

// ErrNotTerminal is returned when browse runs without an interactive terminal.
var ErrNotTerminal = errors.New("browse needs an interactive terminal")

// defaultViewWidth is used until the terminal reports its size.
const defaultViewWidth = 80

// NewBrowseCmd creates the browse command, which opens the item files in an
// interactive list.
func NewBrowseCmd() *cobra.Command {
	var (
		flags listFlags
		printChoice bool
	)

	cmd := &cobra.Command{
		Use:   "browse FILE...",
		Short: "Browse items in an interactive list",
		Long: `Opens the item files in a scrollable list. Typing selects the best
matching item, ctrl+o cycles the sort column and ctrl+r reverses it.
Enter chooses the current item and leaves; with --print the selected
items are then written to stdout.`,
		Example: `  # Browse a table sorted by size, largest first
  listkit browse --sort size:desc tables.yaml

  # Pick an item and print it
  listkit browse --print items.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
				return ErrNotTerminal
			}

			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			l, err := buildList(ctx, cfg, flags, args)
			if err != nil {
				return err
			}

			model := listview.NewModel(l, cfg.List.Height, defaultViewWidth)
			// Enter chooses the current item and leaves.
			chosen := false
			l.OnDoubleClick(func(*listmodel.List) { chosen = true })

			p := tea.NewProgram(quitOnChoice{model: model, chosen: &chosen}, tea.WithContext(ctx), tea.WithAltScreen())
			if _, err = p.Run(); err != nil {
				return fmt.Errorf("running list view: %w", err)
			}

			logger.Debug().Ctx(ctx).Bool("chosen", chosen).Ints("selection", l.Selection()).Msg("browse finished")
			if printChoice && chosen {
				return printSelection(cmd.OutOrStdout(), l)
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&printChoice, "print", false, "print the selected items after enter is pressed")

	return cmd
}

// quitOnChoice ends the program once an item has been chosen with enter.
type quitOnChoice struct {
	model  *listview.Model
	chosen *bool
}

func (q quitOnChoice) Init() tea.Cmd { return q.model.Init() }

func (q quitOnChoice) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := q.model.Update(msg)
	if *q.chosen {
		return q, tea.Quit
	}
	return q, cmd
}

func (q quitOnChoice) View() string {
	if *q.chosen {
		return ""
	}
	return q.model.View()
}

// printSelection writes the value of each selected item on its own line,
// using the typing column for tables.
func printSelection(w io.Writer, l *listmodel.List) error {
	key := l.TypingColumn().Key
	values := l.DisplayedValues(key)
	for _, row := range l.DisplayedSelection() {
		if _, err := fmt.Fprintln(w, values[row]); err != nil {
			return err
		}
	}
	return nil
}
